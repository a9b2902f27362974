package catalog

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
	"github.com/vladislavdragonenkov/catalog/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/catalog/internal/metrics"
)

// Service реализует операции каталога поверх доменных репозиториев.
type Service struct {
	products  domain.ProductRepository
	sequence  domain.SequenceRepository
	publisher domain.EventPublisher
	metrics   *metrics.CatalogMetrics
	logger    *log.Entry
}

// NewService конструирует сервис каталога с зависимостями.
// publisher может быть nil: события тогда не публикуются.
func NewService(
	products domain.ProductRepository,
	sequence domain.SequenceRepository,
	publisher domain.EventPublisher,
	m *metrics.CatalogMetrics,
	logger *log.Entry,
) *Service {
	if logger == nil {
		logger = log.WithField("component", "catalog-service")
	}
	return &Service{
		products:  products,
		sequence:  sequence,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
	}
}

// CreateProduct назначает товару новый последовательный id и сохраняет его.
// В ответе — реальный назначенный идентификатор.
func (s *Service) CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	if errs := product.ValidateInvariants(); len(errs) > 0 {
		return domain.Product{}, fmt.Errorf("invalid product: %w", errors.Join(errs...))
	}

	id, err := s.sequence.NextID(ctx)
	if err != nil {
		return domain.Product{}, err
	}
	product.ID = id
	product.CreatedAt = time.Now().UTC()

	stored, err := s.products.Create(ctx, product)
	if err != nil {
		return domain.Product{}, err
	}

	s.metrics.RecordProductCreated()
	s.logger.WithFields(log.Fields{
		"product_id": stored.ID,
		"name":       stored.Name,
	}).Info("товар создан")

	s.publishCreated(stored)
	return stored, nil
}

// ListProducts возвращает страницу каталога и окно пагинации.
func (s *Service) ListProducts(ctx context.Context, filter domain.ProductFilter, page domain.Page) ([]domain.Product, domain.Window, error) {
	if errs := page.Validate(); len(errs) > 0 {
		return nil, domain.Window{}, fmt.Errorf("invalid page: %w", errors.Join(errs...))
	}

	items, total, err := s.products.List(ctx, filter, page)
	if err != nil {
		return nil, domain.Window{}, err
	}

	return items, domain.ComputeWindow(page.Offset, page.Limit, total), nil
}

// FindProduct возвращает товар по последовательному id.
func (s *Service) FindProduct(ctx context.Context, sequentialID int64) (domain.Product, error) {
	return s.products.FindByID(ctx, sequentialID)
}

// publishCreated отправляет событие о новом товаре, если publisher настроен.
// Ошибка публикации не влияет на результат создания.
func (s *Service) publishCreated(product domain.Product) {
	if s.publisher == nil {
		return
	}
	event := kafka.NewProductCreatedEvent(product.ID, product.Name, product.Price)
	if err := s.publisher.Publish(kafka.TopicProductEvents, strconv.FormatInt(product.ID, 10), event); err != nil {
		s.logger.WithError(err).Warn("не удалось опубликовать событие product.created")
	}
}
