// Package repositories contains the per-entity data access layer over the
// MongoDB entity store. Every repository is a thin wrapper: find by id, find
// by filter, insert, partial update, delete, plus the array-field operators
// the cart and address flows need.
//
// Referential-integrity and uniqueness checks live in the services; the
// repositories' job is faithful translation to store operations and mapping
// store errors onto the API error kinds.
package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shashiranjanraj/nikkei/pkg/errors"
	"github.com/shashiranjanraj/nikkei/pkg/metrics"
)

// base holds the store operations shared by every entity repository.
type base[T any] struct {
	col  *mongo.Collection
	kind string // entity name used in error messages
}

func newBase[T any](col *mongo.Collection, kind string) base[T] {
	return base[T]{col: col, kind: kind}
}

// FindByID returns the document with the given id, or NotFound.
func (b *base[T]) FindByID(ctx context.Context, id primitive.ObjectID) (*T, error) {
	return b.findOne(ctx, bson.M{"_id": id})
}

func (b *base[T]) findOne(ctx context.Context, filter bson.M) (*T, error) {
	defer metrics.ObserveStoreOp(b.col.Name(), "find", time.Now())

	var doc T
	err := b.col.FindOne(ctx, filter).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, errors.Newf(errors.CodeNotFound, "%s not found", b.kind)
	}
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "find "+b.kind)
	}
	return &doc, nil
}

// Find returns every document matching filter.
func (b *base[T]) Find(ctx context.Context, filter bson.M) ([]T, error) {
	defer metrics.ObserveStoreOp(b.col.Name(), "find", time.Now())

	cursor, err := b.col.Find(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "find "+b.kind)
	}

	var docs []T
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "decode "+b.kind)
	}
	return docs, nil
}

// All returns every document in the collection.
func (b *base[T]) All(ctx context.Context) ([]T, error) {
	return b.Find(ctx, bson.M{})
}

func (b *base[T]) insert(ctx context.Context, doc any) error {
	defer metrics.ObserveStoreOp(b.col.Name(), "insert", time.Now())

	_, err := b.col.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		// unique index backstop; services pre-check, this catches races
		return errors.Newf(errors.CodeValidation, "%s violates a uniqueness constraint", b.kind)
	}
	if err != nil {
		return errors.Wrap(errors.CodeInternal, err, "insert "+b.kind)
	}
	return nil
}

// UpdateByID applies a partial $set merge and returns the updated document,
// or NotFound when the id matches nothing.
func (b *base[T]) UpdateByID(ctx context.Context, id primitive.ObjectID, fields bson.M) (*T, error) {
	return b.findOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
}

func (b *base[T]) findOneAndUpdate(ctx context.Context, filter, update bson.M) (*T, error) {
	defer metrics.ObserveStoreOp(b.col.Name(), "update", time.Now())

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc T
	err := b.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, errors.Newf(errors.CodeNotFound, "%s not found", b.kind)
	}
	if mongo.IsDuplicateKeyError(err) {
		return nil, errors.Newf(errors.CodeValidation, "%s violates a uniqueness constraint", b.kind)
	}
	if err != nil {
		return nil, errors.Wrap(errors.CodeInternal, err, "update "+b.kind)
	}
	return &doc, nil
}

// DeleteByID removes the document with the given id. Deleting an absent
// document is not an error.
func (b *base[T]) DeleteByID(ctx context.Context, id primitive.ObjectID) error {
	defer metrics.ObserveStoreOp(b.col.Name(), "delete", time.Now())

	if _, err := b.col.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return errors.Wrap(errors.CodeInternal, err, "delete "+b.kind)
	}
	return nil
}

func (b *base[T]) exists(ctx context.Context, filter bson.M) (bool, error) {
	defer metrics.ObserveStoreOp(b.col.Name(), "count", time.Now())

	n, err := b.col.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, errors.Wrap(errors.CodeInternal, err, "count "+b.kind)
	}
	return n > 0, nil
}

// notID excludes a document from a uniqueness check, for updates that keep
// the same value.
func notID(id primitive.ObjectID) bson.M {
	return bson.M{"$ne": id}
}
