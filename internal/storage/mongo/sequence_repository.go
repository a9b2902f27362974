package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	mongodrv "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
)

// Счётчик повторяет схему оригинальной базы: документ {_id: "id",
// sequence_value: N} в коллекции counters. Первый выданный id — 12345.
const (
	counterID   = "id"
	counterSeed = 12344
)

// sequenceRepository выдаёт последовательные идентификаторы через
// атомарный increment-and-fetch на стороне базы.
type sequenceRepository struct {
	counters *mongodrv.Collection
}

// NewSequenceRepository возвращает репозиторий счётчика поверх Store.
func NewSequenceRepository(store *Store) domain.SequenceRepository {
	return &sequenceRepository{counters: store.db.Collection(collCounters)}
}

// NextID атомарно инкрементирует счётчик и возвращает новое значение.
// Upsert создаёт счётчик прозрачно, если EnsureCounter не вызывали.
func (r *sequenceRepository) NextID(ctx context.Context) (int64, error) {
	res := r.counters.FindOneAndUpdate(ctx,
		bson.M{"_id": counterID},
		bson.M{"$inc": bson.M{"sequence_value": 1}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)

	var doc struct {
		SequenceValue int64 `bson:"sequence_value"`
	}
	if err := res.Decode(&doc); err != nil {
		return 0, fmt.Errorf("increment sequence: %w", err)
	}
	return doc.SequenceValue, nil
}

var _ domain.SequenceRepository = (*sequenceRepository)(nil)
