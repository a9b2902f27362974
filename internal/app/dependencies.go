package app

import (
	"context"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/catalog/internal/health"
	"github.com/vladislavdragonenkov/catalog/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/catalog/internal/storage/memory"
	mongostore "github.com/vladislavdragonenkov/catalog/internal/storage/mongo"
)

// Dependencies содержит все зависимости приложения.
type Dependencies struct {
	Products domain.ProductRepository
	Orders   domain.OrderRepository
	Sequence domain.SequenceRepository

	// Publisher nil, если Kafka не настроен.
	Publisher domain.EventPublisher

	Checkers map[string]healthcheck.Checker

	store    *mongostore.Store
	producer *kafka.Producer
}

// NewDependencies создаёт и инициализирует все зависимости приложения.
// При пустом MongoURI используется in-memory хранилище, при пустом
// KafkaBrokers события не публикуются.
func NewDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*Dependencies, error) {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	deps := &Dependencies{
		Checkers: make(map[string]healthcheck.Checker),
	}

	if cfg.MongoURI != "" {
		store, err := mongostore.Open(ctx, cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			return nil, err
		}
		if err := store.EnsureCounter(ctx); err != nil {
			closeStore(store, logger)
			return nil, err
		}

		deps.store = store
		deps.Products = mongostore.NewProductRepository(store)
		deps.Orders = mongostore.NewOrderRepository(store)
		deps.Sequence = mongostore.NewSequenceRepository(store)
		deps.Checkers["mongo"] = healthcheck.NewPingChecker("mongo", store.Ping)
		logger.WithField("database", cfg.MongoDB).Info("mongo storage initialized")
	} else {
		deps.Products = memory.NewProductRepository()
		deps.Orders = memory.NewOrderRepository()
		deps.Sequence = memory.NewSequenceRepository()
		logger.Info("in-memory storage initialized")
	}

	if producer := initKafkaProducer(cfg.KafkaBrokers, logger); producer != nil {
		deps.producer = producer
		deps.Publisher = producer
	}

	return deps, nil
}

// Close освобождает внешние ресурсы: соединение с Mongo и Kafka producer.
func (d *Dependencies) Close(logger *log.Entry) {
	if d.producer != nil {
		if err := d.producer.Close(); err != nil {
			logger.WithError(err).Warn("failed to close kafka producer")
		} else {
			logger.Info("kafka producer closed")
		}
	}
	closeStore(d.store, logger)
}

func closeStore(store *mongostore.Store, logger *log.Entry) {
	if store == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.Close(ctx); err != nil {
		logger.WithError(err).Warn("failed to close mongo connection")
	}
}

// initKafkaProducer инициализирует Kafka producer если brokers не пустой.
// Ошибка подключения не фатальна: приложение продолжает без событий.
func initKafkaProducer(brokers string, logger *log.Entry) *kafka.Producer {
	if brokers == "" {
		return nil
	}

	brokerList := strings.Split(brokers, ",")
	producer, err := kafka.NewProducer(brokerList)
	if err != nil {
		logger.WithError(err).Warn("failed to create kafka producer, continuing without kafka")
		return nil
	}

	logger.WithField("brokers", brokerList).Info("kafka producer initialized")
	return producer
}
