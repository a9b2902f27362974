package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultConnTimeout = 5 * time.Second

	collProducts = "products"
	collOrders   = "orders"
	collCounters = "counters"
)

// Store оборачивает подключение к MongoDB.
type Store struct {
	client *mongodrv.Client
	db     *mongodrv.Database
}

// Open подключается к MongoDB и проверяет доступность базы.
func Open(ctx context.Context, uri, database string) (*Store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, defaultConnTimeout)
	defer cancel()

	client, err := mongodrv.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancelPing := context.WithTimeout(ctx, defaultConnTimeout)
	defer cancelPing()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &Store{client: client, db: client.Database(database)}, nil
}

// Ping проверяет доступность подключения.
func (s *Store) Ping(ctx context.Context) error {
	if s == nil || s.client == nil {
		return fmt.Errorf("mongo store is not initialized")
	}

	pingCtx, cancel := context.WithTimeout(ctx, defaultConnTimeout)
	defer cancel()
	return s.client.Ping(pingCtx, nil)
}

// EnsureCounter создаёт счётчик последовательных идентификаторов,
// если его ещё нет. Повторный вызов безопасен.
func (s *Store) EnsureCounter(ctx context.Context) error {
	counters := s.db.Collection(collCounters)

	count, err := counters.CountDocuments(ctx, bson.M{"_id": counterID})
	if err != nil {
		return fmt.Errorf("count counters: %w", err)
	}
	if count > 0 {
		return nil
	}

	_, err = counters.InsertOne(ctx, bson.M{"_id": counterID, "sequence_value": counterSeed})
	if err != nil && !mongodrv.IsDuplicateKeyError(err) {
		return fmt.Errorf("seed counter: %w", err)
	}
	return nil
}

// Close закрывает подключение к базе.
func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}
