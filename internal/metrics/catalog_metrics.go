package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CatalogMetrics содержит метрики каталога и заказов.
type CatalogMetrics struct {
	// Счётчики созданных записей
	productsCreated prometheus.Counter
	ordersCreated   prometheus.Counter

	// Метрики обогащения заказов
	ordersEnriched prometheus.Counter
	itemsDropped   prometheus.Counter

	// HTTP-метрики
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// NewCatalogMetrics создаёт метрики на стандартном registerer.
func NewCatalogMetrics() *CatalogMetrics {
	return newCatalogMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newCatalogMetricsWithRegisterer(registerer prometheus.Registerer) *CatalogMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &CatalogMetrics{
		productsCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "catalog_products_created_total",
			Help: "Total number of products created",
		}),
		ordersCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "catalog_orders_created_total",
			Help: "Total number of orders created",
		}),
		ordersEnriched: registerCounter(registerer, prometheus.CounterOpts{
			Name: "catalog_orders_enriched_total",
			Help: "Total number of orders enriched at read time",
		}),
		itemsDropped: registerCounter(registerer, prometheus.CounterOpts{
			Name: "catalog_enrichment_items_dropped_total",
			Help: "Total number of order items dropped due to dangling product references",
		}),
		httpRequests: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "catalog_http_requests_total",
			Help: "Total number of HTTP requests handled",
		}, []string{"method", "path", "status"}),
		httpDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "catalog_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}, []string{"method", "path"}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram vec %q: %v", opts.Name, err))
	}
	return collector
}

// RecordProductCreated увеличивает счётчик созданных товаров.
func (m *CatalogMetrics) RecordProductCreated() {
	if m == nil {
		return
	}
	m.productsCreated.Inc()
}

// RecordOrderCreated увеличивает счётчик созданных заказов.
func (m *CatalogMetrics) RecordOrderCreated() {
	if m == nil {
		return
	}
	m.ordersCreated.Inc()
}

// RecordOrderEnriched увеличивает счётчик обогащённых заказов.
func (m *CatalogMetrics) RecordOrderEnriched() {
	if m == nil {
		return
	}
	m.ordersEnriched.Inc()
}

// RecordItemDropped увеличивает счётчик отброшенных позиций с висячими ссылками.
func (m *CatalogMetrics) RecordItemDropped() {
	if m == nil {
		return
	}
	m.itemsDropped.Inc()
}

// RecordHTTPRequest записывает завершённый HTTP-запрос.
func (m *CatalogMetrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, path, status).Inc()
	m.httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}
