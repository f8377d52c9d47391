package kv_repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/anuntech/nutrisnap-backend/internal/infra/db/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const MongoCollection = "kv_store"

type kvDocument struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

type MongoStore struct {
	Db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		Db: db,
	}
}

func (s *MongoStore) Get(ctx context.Context, key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(ctx, helpers.MongoTimeout)
	defer cancel()

	collection := s.Db.Collection(MongoCollection)

	var doc kvDocument
	err := collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("error reading key %s from MongoDB: %w", key, err)
	}

	return doc.Value, true, nil
}

func (s *MongoStore) Set(ctx context.Context, key string, value string) error {
	ctx, cancel := context.WithTimeout(ctx, helpers.MongoTimeout)
	defer cancel()

	collection := s.Db.Collection(MongoCollection)

	update := bson.M{
		"$set": bson.M{"value": value},
	}
	_, err := collection.UpdateOne(ctx, bson.M{"_id": key}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("error saving key %s to MongoDB: %w", key, err)
	}

	return nil
}

func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), helpers.MongoTimeout)
	defer cancel()

	return s.Db.Client().Disconnect(ctx)
}
