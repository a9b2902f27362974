package domain

import "context"

// ProductFinder — минимальный доступ к каталогу, достаточный для обогащения заказов.
type ProductFinder interface {
	FindByID(ctx context.Context, sequentialID int64) (Product, error)
}

// EventPublisher публикует доменные события наружу (best effort).
type EventPublisher interface {
	// Publish передаёт событие во внешний брокер; ошибка публикации
	// не должна влиять на результат породившей её операции.
	Publish(topic, key string, event interface{}) error
}
