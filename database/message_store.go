package database

import (
	"context"
	"fmt"

	"github.com/Vedantroy475/Healthcare-AI-Assistant-Chatbot/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const messagesCollectionName = "messages"

// MessageStore archives chat exchanges. The dispatcher never reads these
// records back; they exist for audit and analytics only.
type MessageStore struct {
	collection *mongo.Collection
}

func NewMessageStore(db *mongo.Database) *MessageStore {
	return &MessageStore{
		collection: db.Collection(messagesCollectionName),
	}
}

// Save inserts one exchange record
func (ms *MessageStore) Save(ctx context.Context, message *models.Message) error {
	if _, err := ms.collection.InsertOne(ctx, message); err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return nil
}

// RecentBySession returns the most recent exchanges for a session, newest
// first.
func (ms *MessageStore) RecentBySession(ctx context.Context, sessionID string, limit int64) ([]models.Message, error) {
	if limit <= 0 {
		limit = 50
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)

	cursor, err := ms.collection.Find(ctx, bson.M{"session_id": sessionID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.Message
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode messages: %w", err)
	}

	return results, nil
}
