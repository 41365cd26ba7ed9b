package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"socialnet/apperrors"
	"socialnet/models"
)

// MongoNotificationRepository implements NotificationRepository on a mongo
// collection.
type MongoNotificationRepository struct {
	col *mongo.Collection
}

func NewMongoNotificationRepository(col *mongo.Collection) *MongoNotificationRepository {
	return &MongoNotificationRepository{col: col}
}

func (r *MongoNotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, n)
	return err
}

func (r *MongoNotificationRepository) ByRecipient(ctx context.Context, recipient primitive.ObjectID, limit int64) ([]models.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(limit)
	cursor, err := r.col.Find(ctx, bson.M{"recipient": recipient}, opts)
	if err != nil {
		return nil, err
	}
	notifications := []models.Notification{}
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkRead only matches notifications owned by recipient, so a caller can
// never flip someone else's flag.
func (r *MongoNotificationRepository) MarkRead(ctx context.Context, id, recipient primitive.ObjectID) (models.Notification, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var n models.Notification
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "recipient": recipient},
		bson.M{"$set": bson.M{"isRead": true}},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&n)
	if err == mongo.ErrNoDocuments {
		return models.Notification{}, apperrors.NotFoundf("notification not found")
	}
	return n, err
}

func (r *MongoNotificationRepository) MarkAllRead(ctx context.Context, recipient primitive.ObjectID) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.col.UpdateMany(ctx,
		bson.M{"recipient": recipient, "isRead": false},
		bson.M{"$set": bson.M{"isRead": true}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}
