package domain

import "time"

// OrderItem представляет одну позицию заказа.
type OrderItem struct {
	// ProductID — слабая ссылка на последовательный идентификатор товара.
	// Ссылочная целостность не гарантируется: товар может отсутствовать.
	ProductID string
	// Qty — количество единиц товара.
	Qty int
}

// Order — заказ пользователя. ID назначается хранилищем при создании.
// Запись неизменяема после создания.
type Order struct {
	ID        string
	UserID    string
	Items     []OrderItem
	CreatedAt time.Time
}

// ValidateInvariants проверяет форму заказа. Существование товаров по ссылкам
// намеренно не проверяется: висячие ссылки отбрасываются на этапе обогащения.
func (o *Order) ValidateInvariants() []error {
	var errs []error

	if o.UserID == "" {
		errs = append(errs, ErrUserIDRequired)
	}
	for _, item := range o.Items {
		if item.ProductID == "" {
			errs = append(errs, ErrItemProductIDRequired)
		}
		if item.Qty <= 0 {
			errs = append(errs, ErrItemQtyInvalid)
		}
	}

	return errs
}

// ProductRef — краткая ссылка на товар внутри обогащённого заказа.
type ProductRef struct {
	Name string
	// ID — строковое представление последовательного идентификатора товара.
	ID string
}

// EnrichedItem — позиция заказа, дополненная данными каталога.
type EnrichedItem struct {
	Product ProductRef
	Qty     int
}

// EnrichedOrder — производное представление заказа, вычисляемое при чтении.
// Никогда не сохраняется: позиции с отсутствующими товарами уже отброшены,
// Total — сумма price*qty по найденным позициям в исходном порядке.
type EnrichedOrder struct {
	ID    string
	Items []EnrichedItem
	Total float64
}
