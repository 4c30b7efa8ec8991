// Package database owns the connection to the MongoDB entity store.
//
// The handle is opened once at startup, passed explicitly to every
// repository, and closed on shutdown. Nothing in this package is global
// state.
package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DB is the application's handle on the entity store.
type DB struct {
	client *mongo.Client
	db     *mongo.Database
}

// Open connects to uri, verifies the connection is live, and returns a
// handle scoped to dbName.
func Open(ctx context.Context, uri, dbName string) (*DB, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(25)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("database: connect: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("database: ping: %w", err)
	}

	return &DB{client: client, db: client.Database(dbName)}, nil
}

// Collection returns the named collection on the handle's database.
func (d *DB) Collection(name string) *mongo.Collection {
	return d.db.Collection(name)
}

// Ping verifies the connection is still live.
func (d *DB) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return d.client.Ping(pingCtx, readpref.Primary())
}

// Close disconnects from the store.
func (d *DB) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}
