package domain

import "context"

// ProductRepository описывает требования к хранилищу каталога.
type ProductRepository interface {
	// Create сохраняет новый товар с уже назначенным последовательным id.
	Create(ctx context.Context, product Product) (Product, error)
	// List возвращает страницу товаров в порядке вставки и общее число
	// записей, удовлетворяющих фильтру (без учёта limit/offset).
	List(ctx context.Context, filter ProductFilter, page Page) ([]Product, int64, error)
	// FindByID возвращает товар по последовательному id или ErrProductNotFound.
	FindByID(ctx context.Context, sequentialID int64) (Product, error)
}

// OrderRepository описывает требования к хранилищу заказов.
type OrderRepository interface {
	// Create сохраняет заказ как есть и возвращает его с назначенным id.
	Create(ctx context.Context, order Order) (Order, error)
	// ListByUser возвращает страницу заказов пользователя в порядке вставки
	// и общее число его заказов.
	ListByUser(ctx context.Context, userID string, page Page) ([]Order, int64, error)
}

// SequenceRepository выдаёт монотонно возрастающие идентификаторы.
type SequenceRepository interface {
	// NextID атомарно инкрементирует общий счётчик и возвращает новое
	// значение. Два вызова никогда не наблюдают одно и то же число.
	NextID(ctx context.Context) (int64, error)
}
