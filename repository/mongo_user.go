package repository

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"socialnet/apperrors"
	"socialnet/models"
)

const queryTimeout = 10 * time.Second

// MongoUserRepository implements UserRepository on a mongo collection.
// The client is kept alongside the collection because Follow/Unfollow run
// inside a multi-document transaction.
type MongoUserRepository struct {
	client *mongo.Client
	col    *mongo.Collection
}

func NewMongoUserRepository(client *mongo.Client, col *mongo.Collection) *MongoUserRepository {
	return &MongoUserRepository{client: client, col: col}
}

// EnsureIndexes creates the unique email index. Registration relies on it:
// the check-then-insert in Create is only a fast path, and the index is what
// stops two concurrent inserts of the same email.
func (r *MongoUserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

func (r *MongoUserRepository) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	err := r.col.FindOne(ctx, bson.M{"email": user.Email}).Err()
	if err == nil {
		return apperrors.Conflictf("email already registered")
	}
	if err != mongo.ErrNoDocuments {
		return err
	}

	_, err = r.col.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return apperrors.Conflictf("email already registered")
	}
	return err
}

func (r *MongoUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var user models.User
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, apperrors.NotFoundf("user not found")
	}
	return user, err
}

func (r *MongoUserRepository) GetByEmail(ctx context.Context, email string) (models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var user models.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, apperrors.NotFoundf("user not found")
	}
	return user, err
}

func (r *MongoUserRepository) GetMany(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	if len(ids) == 0 {
		return []models.User{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *MongoUserRepository) UpdateProfile(ctx context.Context, id primitive.ObjectID, upd ProfileUpdate) (models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"username":       upd.Username,
		"bio":            upd.Bio,
		"profilePicture": upd.ProfilePicture,
	}}

	var user models.User
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, apperrors.NotFoundf("user not found")
	}
	return user, err
}

func (r *MongoUserRepository) SetAvatar(ctx context.Context, id primitive.ObjectID, url string) (models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var user models.User
	err := r.col.FindOneAndUpdate(ctx, bson.M{"_id": id},
		bson.M{"$set": bson.M{"profilePicture": url}},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return models.User{}, apperrors.NotFoundf("user not found")
	}
	return user, err
}

// Follow updates both sides of the relationship inside one transaction so a
// concurrent reader never observes only one side updated.
func (r *MongoUserRepository) Follow(ctx context.Context, actor, target primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	session, err := r.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		count, err := r.col.CountDocuments(sc, bson.M{"_id": target})
		if err != nil {
			return nil, err
		}
		if count == 0 {
			return nil, apperrors.NotFoundf("user not found")
		}

		// Guarded update: matches only when target is absent from the
		// following set, so the same-user race resolves to one winner.
		res, err := r.col.UpdateOne(sc,
			bson.M{"_id": actor, "following": bson.M{"$ne": target}},
			bson.M{"$addToSet": bson.M{"following": target}})
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			exists, err := r.col.CountDocuments(sc, bson.M{"_id": actor})
			if err != nil {
				return nil, err
			}
			if exists == 0 {
				return nil, apperrors.NotFoundf("user not found")
			}
			return nil, apperrors.Conflictf("already following this user")
		}

		_, err = r.col.UpdateOne(sc, bson.M{"_id": target},
			bson.M{"$addToSet": bson.M{"followers": actor}})
		return nil, err
	})
	return err
}

func (r *MongoUserRepository) Unfollow(ctx context.Context, actor, target primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	session, err := r.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		res, err := r.col.UpdateOne(sc,
			bson.M{"_id": actor, "following": target},
			bson.M{"$pull": bson.M{"following": target}})
		if err != nil {
			return nil, err
		}
		if res.MatchedCount == 0 {
			return nil, apperrors.Conflictf("not following this user")
		}

		_, err = r.col.UpdateOne(sc, bson.M{"_id": target},
			bson.M{"$pull": bson.M{"followers": actor}})
		return nil, err
	})
	return err
}

func (r *MongoUserRepository) SearchByUsername(ctx context.Context, query string, limit int64) ([]models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := bson.M{"username": primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}}
	cursor, err := r.col.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
