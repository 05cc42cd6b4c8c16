package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}

	return client, nil
}

// EnsureIndexes creates the unique index backing duplicate-request
// suppression. The application-level existence check is only a fast path;
// this index is the real guard under concurrent identical requests.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("meals-request").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "recEmail", Value: 1},
			{Key: "recMealId", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	return err
}
