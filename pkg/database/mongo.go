package database

import (
	"context"
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// NewMongoDatabase connects to the document store and returns the database
// named in the URI path (default "classico"). The connection is verified
// with a ping so a bad URI fails here, not on first query.
func NewMongoDatabase(ctx context.Context, uri string) (*mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		return nil, err
	}

	return client.Database(databaseName(uri)), nil
}

func databaseName(uri string) string {
	parsed, err := url.Parse(uri)
	if err != nil {
		return "classico"
	}
	name := strings.TrimPrefix(parsed.Path, "/")
	if name == "" {
		return "classico"
	}
	return name
}
