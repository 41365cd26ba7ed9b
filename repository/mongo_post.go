package repository

import (
	"context"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"socialnet/apperrors"
	"socialnet/models"
)

// MongoPostRepository implements PostRepository on a mongo collection.
type MongoPostRepository struct {
	col *mongo.Collection
}

func NewMongoPostRepository(col *mongo.Collection) *MongoPostRepository {
	return &MongoPostRepository{col: col}
}

func (r *MongoPostRepository) Create(ctx context.Context, post *models.Post) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, post)
	return err
}

func (r *MongoPostRepository) GetByID(ctx context.Context, id primitive.ObjectID) (models.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var post models.Post
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&post)
	if err == mongo.ErrNoDocuments {
		return models.Post{}, apperrors.NotFoundf("post not found")
	}
	return post, err
}

// Like performs a guarded $addToSet: the filter only matches while userID is
// absent from the like set, so concurrent duplicate likes cannot both win
// and concurrent likes by different users are both kept.
func (r *MongoPostRepository) Like(ctx context.Context, postID, userID primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": postID, "likes": bson.M{"$ne": userID}},
		bson.M{"$addToSet": bson.M{"likes": userID}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		exists, err := r.col.CountDocuments(ctx, bson.M{"_id": postID})
		if err != nil {
			return err
		}
		if exists == 0 {
			return apperrors.NotFoundf("post not found")
		}
		return apperrors.Conflictf("post already liked")
	}
	return nil
}

func (r *MongoPostRepository) AddComment(ctx context.Context, postID primitive.ObjectID, comment models.Comment) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": postID},
		bson.M{"$push": bson.M{"comments": comment}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperrors.NotFoundf("post not found")
	}
	return nil
}

func (r *MongoPostRepository) ByAuthors(ctx context.Context, authors []primitive.ObjectID) ([]models.Post, error) {
	if len(authors) == 0 {
		return []models.Post{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	// Secondary _id sort keeps equal timestamps in insertion order.
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: 1}})
	cursor, err := r.col.Find(ctx, bson.M{"author": bson.M{"$in": authors}}, opts)
	if err != nil {
		return nil, err
	}
	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *MongoPostRepository) SearchByContent(ctx context.Context, query string, limit int64) ([]models.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"content": primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}}
	cursor, err := r.col.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	posts := []models.Post{}
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}
