package kafka

import "time"

// EventType определяет тип события
type EventType string

const (
	// Catalog события
	EventTypeProductCreated EventType = "product.created"

	// Order события
	EventTypeOrderCreated EventType = "order.created"
)

// Topics для Kafka
const (
	TopicProductEvents = "catalog.product.events"
	TopicOrderEvents   = "catalog.order.events"
)

// ProductEvent представляет событие каталога
type ProductEvent struct {
	EventType EventType `json:"event_type"`
	ProductID int64     `json:"product_id"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

// OrderEvent представляет событие заказа
type OrderEvent struct {
	EventType EventType `json:"event_type"`
	OrderID   string    `json:"order_id"`
	UserID    string    `json:"user_id"`
	ItemCount int       `json:"item_count"`
	Timestamp time.Time `json:"timestamp"`
}

// NewProductCreatedEvent создает событие о новом товаре
func NewProductCreatedEvent(productID int64, name string, price float64) *ProductEvent {
	return &ProductEvent{
		EventType: EventTypeProductCreated,
		ProductID: productID,
		Name:      name,
		Price:     price,
		Timestamp: time.Now(),
	}
}

// NewOrderCreatedEvent создает событие о новом заказе
func NewOrderCreatedEvent(orderID, userID string, itemCount int) *OrderEvent {
	return &OrderEvent{
		EventType: EventTypeOrderCreated,
		OrderID:   orderID,
		UserID:    userID,
		ItemCount: itemCount,
		Timestamp: time.Now(),
	}
}
