package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"socialnet/models"
)

// MongoMessageRepository implements MessageRepository on a mongo collection.
// The conversation id is the sole sharding key for retrieval.
type MongoMessageRepository struct {
	col *mongo.Collection
}

func NewMongoMessageRepository(col *mongo.Collection) *MongoMessageRepository {
	return &MongoMessageRepository{col: col}
}

func (r *MongoMessageRepository) Create(ctx context.Context, msg *models.Message) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.col.InsertOne(ctx, msg)
	return err
}

func (r *MongoMessageRepository) ByConversation(ctx context.Context, id models.ConversationID) ([]models.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cursor, err := r.col.Find(ctx, bson.M{"conversationId": id}, opts)
	if err != nil {
		return nil, err
	}
	messages := []models.Message{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
