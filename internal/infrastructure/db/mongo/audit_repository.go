package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/getready/ats-system/internal/core/domain"
)

const collectionEvents = "application_events"

type AuditRepository struct {
	col *mongo.Collection
}

func NewAuditRepository(db *mongo.Database) *AuditRepository {
	return &AuditRepository{col: db.Collection(collectionEvents)}
}

func (r *AuditRepository) Insert(ctx context.Context, event *domain.ActivityEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bson.M{
		"application_id": event.ApplicationID,
		"kind":           event.Kind,
		"actor_id":       event.ActorID,
		"actor_role":     event.ActorRole,
		"detail":         event.Detail,
		"timestamp":      event.Timestamp,
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// ListByApplication returns an application's trail, oldest first.
func (r *AuditRepository) ListByApplication(ctx context.Context, applicationID string) ([]domain.ActivityEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"application_id": applicationID},
		options.Find().SetSort(bson.D{{Key: "timestamp", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer cur.Close(ctx)

	var events []domain.ActivityEvent
	for cur.Next(ctx) {
		var doc struct {
			ApplicationID string    `bson:"application_id"`
			Kind          string    `bson:"kind"`
			ActorID       string    `bson:"actor_id"`
			ActorRole     string    `bson:"actor_role"`
			Detail        string    `bson:"detail"`
			Timestamp     time.Time `bson:"timestamp"`
		}
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode event: %w", err)
		}
		events = append(events, domain.ActivityEvent{
			ApplicationID: doc.ApplicationID,
			Kind:          doc.Kind,
			ActorID:       doc.ActorID,
			ActorRole:     doc.ActorRole,
			Detail:        doc.Detail,
			Timestamp:     doc.Timestamp,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// EnsureIndexes creates the trail lookup index on the events collection.
func (r *AuditRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "application_id", Value: 1}, {Key: "timestamp", Value: 1}},
	})
	return err
}
