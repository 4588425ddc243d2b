// Package mongodb provides MongoDB-backed implementations for the data
// storage interfaces defined in the internal/store package, along with the
// client lifecycle helpers needed by the auth service.
package mongodb

import (
	"context"
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// connectTimeout bounds the initial connection handshake and ping.
const connectTimeout = 10 * time.Second

// Connect creates a MongoDB client for the given URI and verifies
// connectivity with a ping. The client is still returned when the ping fails
// so the caller can decide whether an unreachable store is fatal; queries
// issued through it will surface errors at the store layer.
func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		return client, err
	}

	return client, nil
}

// DatabaseFromURI extracts the database name from a MongoDB connection
// string, falling back to the given default when the URI carries none.
func DatabaseFromURI(uri, fallback string) string {
	parsed, err := url.Parse(uri)
	if err != nil {
		return fallback
	}
	name := strings.TrimPrefix(parsed.Path, "/")
	if name == "" {
		return fallback
	}
	return name
}

// Disconnect closes the client with a bounded timeout.
func Disconnect(client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	return client.Disconnect(ctx)
}
