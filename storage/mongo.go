package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"alumni-portal/internal/status"
	"alumni-portal/models"
)

// Mongo implements every store interface over a single database. Collection
// names match the documents the original deployment already holds.
type Mongo struct {
	client     *mongo.Client
	events     *mongo.Collection
	activities *mongo.Collection
	alumni     *mongo.Collection
	users      *mongo.Collection
}

// OpenMongo connects and pings within a bounded timeout. A failure here is
// the only fatal storage condition; callers exit on error.
func OpenMongo(ctx context.Context, uri, database string) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	db := client.Database(database)
	return &Mongo{
		client:     client,
		events:     db.Collection("events"),
		activities: db.Collection("activities"),
		alumni:     db.Collection("alumni"),
		users:      db.Collection("users"),
	}, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *Mongo) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return m.client.Ping(ctx, nil)
}

func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := m.events.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "date", Value: 1}},
			Options: options.Index().SetName("events_date"),
		},
	})
	if err != nil {
		return fmt.Errorf("events indexes: %w", err)
	}

	_, err = m.activities.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "timestamp", Value: -1}},
			Options: options.Index().SetName("activities_timestamp"),
		},
	})
	if err != nil {
		return fmt.Errorf("activities indexes: %w", err)
	}

	_, err = m.users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("users_email_unique"),
		},
	})
	if err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}
	return nil
}

func (m *Mongo) ListEvents(ctx context.Context) ([]models.Event, error) {
	// _id order is insertion order for ObjectIDs, which keeps repeated
	// listings stable absent writes.
	cursor, err := m.events.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find events: %w", err)
	}
	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return events, nil
}

func (m *Mongo) ListUpcomingEvents(ctx context.Context, now time.Time) ([]models.Event, error) {
	filter := bson.M{"date": bson.M{"$gt": now}}
	cursor, err := m.events.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find upcoming events: %w", err)
	}
	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("decode upcoming events: %w", err)
	}
	return events, nil
}

func (m *Mongo) InsertEvent(ctx context.Context, event *models.Event) error {
	res, err := m.events.InsertOne(ctx, event)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	event.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (m *Mongo) CountEvents(ctx context.Context) (int64, error) {
	count, err := m.events.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count events: %w", err)
	}
	return count, nil
}

func (m *Mongo) CountUpcomingEvents(ctx context.Context, now time.Time) (int64, error) {
	count, err := m.events.CountDocuments(ctx, bson.M{"date": bson.M{"$gt": now}})
	if err != nil {
		return 0, fmt.Errorf("count upcoming events: %w", err)
	}
	return count, nil
}

func (m *Mongo) RecentActivities(ctx context.Context, limit int64) ([]models.Activity, error) {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}}).SetLimit(limit)
	cursor, err := m.activities.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find activities: %w", err)
	}
	var activities []models.Activity
	if err := cursor.All(ctx, &activities); err != nil {
		return nil, fmt.Errorf("decode activities: %w", err)
	}
	return activities, nil
}

func (m *Mongo) InsertActivity(ctx context.Context, activity *models.Activity) error {
	res, err := m.activities.InsertOne(ctx, activity)
	if err != nil {
		return fmt.Errorf("insert activity: %w", err)
	}
	activity.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (m *Mongo) CountAlumni(ctx context.Context) (int64, error) {
	count, err := m.alumni.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count alumni: %w", err)
	}
	return count, nil
}

func (m *Mongo) InsertUser(ctx context.Context, user *models.User) error {
	res, err := m.users.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return status.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	user.ID = res.InsertedID.(primitive.ObjectID)
	return nil
}

func (m *Mongo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := m.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, status.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return &user, nil
}
