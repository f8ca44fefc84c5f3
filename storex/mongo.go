package storex

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FindOne decodes the first document matching filter into a T, translating
// any failure. A missing document comes back as a 404 fault.
func FindOne[T any](ctx context.Context, coll *mongo.Collection, filter any, opts ...*options.FindOneOptions) (T, error) {
	var dest T
	if err := coll.FindOne(ctx, filter, opts...).Decode(&dest); err != nil {
		return dest, Translate(err)
	}
	return dest, nil
}

// Find decodes every document matching filter into a []T, translating any
// failure.
func Find[T any](ctx context.Context, coll *mongo.Collection, filter any, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, Translate(err)
	}

	var dest []T
	if err := cursor.All(ctx, &dest); err != nil {
		return nil, Translate(err)
	}
	return dest, nil
}

// InsertOne inserts a document, translating any failure. A duplicate key
// comes back as a 409 fault.
func InsertOne(ctx context.Context, coll *mongo.Collection, doc any) (*mongo.InsertOneResult, error) {
	result, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, Translate(err)
	}
	return result, nil
}
