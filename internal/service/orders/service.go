package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
	"github.com/vladislavdragonenkov/catalog/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/catalog/internal/metrics"
	"github.com/vladislavdragonenkov/catalog/internal/service/enrich"
)

// Service реализует операции заказов поверх доменного репозитория
// и движка обогащения.
type Service struct {
	orders    domain.OrderRepository
	enricher  *enrich.Enricher
	publisher domain.EventPublisher
	metrics   *metrics.CatalogMetrics
	logger    *log.Entry
}

// NewService конструирует сервис заказов с зависимостями.
// publisher может быть nil: события тогда не публикуются.
func NewService(
	orders domain.OrderRepository,
	enricher *enrich.Enricher,
	publisher domain.EventPublisher,
	m *metrics.CatalogMetrics,
	logger *log.Entry,
) *Service {
	if logger == nil {
		logger = log.WithField("component", "orders-service")
	}
	return &Service{
		orders:    orders,
		enricher:  enricher,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
	}
}

// CreateOrder сохраняет заказ как есть. Существование товаров по ссылкам
// не проверяется: висячие ссылки отбрасываются на этапе обогащения.
func (s *Service) CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error) {
	if errs := order.ValidateInvariants(); len(errs) > 0 {
		return domain.Order{}, fmt.Errorf("invalid order: %w", errors.Join(errs...))
	}

	order.CreatedAt = time.Now().UTC()
	stored, err := s.orders.Create(ctx, order)
	if err != nil {
		return domain.Order{}, err
	}

	s.metrics.RecordOrderCreated()
	s.logger.WithFields(log.Fields{
		"order_id": stored.ID,
		"user_id":  stored.UserID,
		"items":    len(stored.Items),
	}).Info("заказ создан")

	s.publishCreated(stored)
	return stored, nil
}

// ListOrdersByUser возвращает страницу обогащённых заказов пользователя
// и окно пагинации. Каждый сохранённый заказ проходит через обогащение.
func (s *Service) ListOrdersByUser(ctx context.Context, userID string, page domain.Page) ([]domain.EnrichedOrder, domain.Window, error) {
	if errs := page.Validate(); len(errs) > 0 {
		return nil, domain.Window{}, fmt.Errorf("invalid page: %w", errors.Join(errs...))
	}

	stored, total, err := s.orders.ListByUser(ctx, userID, page)
	if err != nil {
		return nil, domain.Window{}, err
	}

	enriched := make([]domain.EnrichedOrder, 0, len(stored))
	for _, order := range stored {
		e, err := s.enricher.Enrich(ctx, order)
		if err != nil {
			return nil, domain.Window{}, err
		}
		enriched = append(enriched, e)
	}

	return enriched, domain.ComputeWindow(page.Offset, page.Limit, total), nil
}

// publishCreated отправляет событие о новом заказе, если publisher настроен.
// Ошибка публикации не влияет на результат создания.
func (s *Service) publishCreated(order domain.Order) {
	if s.publisher == nil {
		return
	}
	event := kafka.NewOrderCreatedEvent(order.ID, order.UserID, len(order.Items))
	if err := s.publisher.Publish(kafka.TopicOrderEvents, order.ID, event); err != nil {
		s.logger.WithError(err).Warn("не удалось опубликовать событие order.created")
	}
}
