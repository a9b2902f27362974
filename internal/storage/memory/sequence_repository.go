package memory

import (
	"context"
	"sync/atomic"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
)

// seedSequenceValue повторяет стартовое значение счётчика оригинальной базы:
// первый выданный идентификатор — 12345.
const seedSequenceValue = 12344

// sequenceRepositoryInMemory — атомарный счётчик для in-memory режима.
type sequenceRepositoryInMemory struct {
	value atomic.Int64
}

// NewSequenceRepository возвращает счётчик, засеянный стандартным значением.
func NewSequenceRepository() domain.SequenceRepository {
	r := &sequenceRepositoryInMemory{}
	r.value.Store(seedSequenceValue)
	return r
}

// NextID атомарно инкрементирует счётчик и возвращает новое значение.
func (r *sequenceRepositoryInMemory) NextID(_ context.Context) (int64, error) {
	return r.value.Add(1), nil
}

var _ domain.SequenceRepository = (*sequenceRepositoryInMemory)(nil)
