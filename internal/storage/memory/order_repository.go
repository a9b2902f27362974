package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
)

// orderRepositoryInMemory — простая in-memory реализация OrderRepository.
// Заказы хранятся в порядке вставки.
type orderRepositoryInMemory struct {
	mu    sync.RWMutex
	items []domain.Order
}

// NewOrderRepository возвращает in-memory репозиторий для локальной разработки и тестов.
func NewOrderRepository() domain.OrderRepository {
	return &orderRepositoryInMemory{}
}

// Create сохраняет заказ как есть и назначает ему идентификатор хранилища.
func (r *orderRepositoryInMemory) Create(_ context.Context, order domain.Order) (domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	// Копируем позиции, чтобы избежать непредсказуемых мутаций извне.
	order.Items = append([]domain.OrderItem(nil), order.Items...)
	r.items = append(r.items, order)
	return order, nil
}

// ListByUser возвращает страницу заказов пользователя в порядке вставки.
func (r *orderRepositoryInMemory) ListByUser(_ context.Context, userID string, page domain.Page) ([]domain.Order, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]domain.Order, 0, len(r.items))
	for _, order := range r.items {
		if order.UserID != userID {
			continue
		}
		matched = append(matched, order)
	}

	total := int64(len(matched))
	if page.Offset >= total {
		return []domain.Order{}, total, nil
	}

	end := page.Offset + page.Limit
	if end > total {
		end = total
	}
	result := make([]domain.Order, end-page.Offset)
	copy(result, matched[page.Offset:end])
	return result, total, nil
}

var _ domain.OrderRepository = (*orderRepositoryInMemory)(nil)
