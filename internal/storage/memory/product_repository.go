package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
)

// productRepositoryInMemory — простая in-memory реализация ProductRepository.
// Порядок вставки сохраняется слайсом, как порядок _id в документной базе.
type productRepositoryInMemory struct {
	mu    sync.RWMutex
	items []domain.Product
	byID  map[int64]domain.Product
}

// NewProductRepository возвращает in-memory репозиторий для локальной разработки и тестов.
func NewProductRepository() domain.ProductRepository {
	return &productRepositoryInMemory{
		byID: make(map[int64]domain.Product),
	}
}

// Create сохраняет товар с уже назначенным последовательным id.
func (r *productRepositoryInMemory) Create(_ context.Context, product domain.Product) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Сохраняем копию, чтобы избежать непредсказуемых мутаций извне.
	r.items = append(r.items, product)
	r.byID[product.ID] = product
	return product, nil
}

// List возвращает страницу товаров в порядке вставки и общее число совпадений.
func (r *productRepositoryInMemory) List(_ context.Context, filter domain.ProductFilter, page domain.Page) ([]domain.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]domain.Product, 0, len(r.items))
	for _, product := range r.items {
		if !matches(product, filter) {
			continue
		}
		matched = append(matched, product)
	}

	total := int64(len(matched))
	if page.Offset >= total {
		return []domain.Product{}, total, nil
	}

	end := page.Offset + page.Limit
	if end > total {
		end = total
	}
	result := make([]domain.Product, end-page.Offset)
	copy(result, matched[page.Offset:end])
	return result, total, nil
}

// FindByID возвращает товар по последовательному id или ErrProductNotFound.
func (r *productRepositoryInMemory) FindByID(_ context.Context, sequentialID int64) (domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.byID[sequentialID]
	if !ok {
		return domain.Product{}, domain.ErrProductNotFound
	}
	return product, nil
}

// matches применяет логическое AND заданных предикатов фильтра.
func matches(product domain.Product, filter domain.ProductFilter) bool {
	if filter.Name != "" && !strings.Contains(strings.ToLower(product.Name), strings.ToLower(filter.Name)) {
		return false
	}
	if filter.Size != "" && product.Sizes.Size != filter.Size {
		return false
	}
	return true
}

var _ domain.ProductRepository = (*productRepositoryInMemory)(nil)
