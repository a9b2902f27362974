package domain

import "errors"

var (
	// Ошибка отсутствующего имени товара.
	ErrProductNameRequired = errors.New("product name is required")
	// Ошибка отрицательной цены товара.
	ErrProductPriceNegative = errors.New("product price must be non-negative")
	// Ошибка отсутствующей метки размера.
	ErrSizeLabelRequired = errors.New("size label is required")
	// Ошибка отрицательного количества размера.
	ErrSizeQuantityNegative = errors.New("size quantity must be non-negative")
	// Ошибка отсутствующего идентификатора пользователя в заказе.
	ErrUserIDRequired = errors.New("userId is required")
	// Ошибка отсутствующей ссылки на товар в позиции заказа.
	ErrItemProductIDRequired = errors.New("item productId is required")
	// Ошибка при некорректном количестве товара в позиции (<= 0).
	ErrItemQtyInvalid = errors.New("item qty must be greater than zero")
	// Ошибка выхода limit за допустимый диапазон [1, 100].
	ErrLimitOutOfRange = errors.New("limit must be between 1 and 100")
	// Ошибка отрицательного offset.
	ErrOffsetNegative = errors.New("offset must be non-negative")
	// ErrProductNotFound возвращается, если товара с таким последовательным id нет.
	ErrProductNotFound = errors.New("product not found")
	// ErrOrderNotFound возвращается, если заказ не найден в репозитории.
	ErrOrderNotFound = errors.New("order not found")
)

// IsNotFound проверяет, является ли ошибка отсутствием записи.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrProductNotFound) || errors.Is(err, ErrOrderNotFound)
}
