package enrich

import (
	"context"
	"errors"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
	"github.com/vladislavdragonenkov/catalog/internal/metrics"
)

// Enricher выполняет read-time join позиций заказа с текущим каталогом.
// Хранимые данные никогда не мутируются.
type Enricher struct {
	products domain.ProductFinder
	metrics  *metrics.CatalogMetrics
	logger   *log.Entry
}

// NewEnricher конструирует движок обогащения с зависимостями.
func NewEnricher(products domain.ProductFinder, m *metrics.CatalogMetrics, logger *log.Entry) *Enricher {
	if logger == nil {
		logger = log.WithField("component", "enricher")
	}
	return &Enricher{
		products: products,
		metrics:  m,
		logger:   logger,
	}
}

// Enrich дополняет заказ данными каталога и считает сумму.
// Позиции с отсутствующими товарами молча отбрасываются и в сумму не входят:
// это осознанная политика, а не дефект. Сумма накапливается в исходном
// порядке позиций. Ошибка хранилища фатальна для всего запроса.
func (e *Enricher) Enrich(ctx context.Context, order domain.Order) (domain.EnrichedOrder, error) {
	enriched := domain.EnrichedOrder{
		ID:    order.ID,
		Items: make([]domain.EnrichedItem, 0, len(order.Items)),
	}

	for _, item := range order.Items {
		sequentialID, err := strconv.ParseInt(item.ProductID, 10, 64)
		if err != nil {
			// Нечисловая ссылка эквивалентна отсутствующему товару.
			e.dropItem(order.ID, item.ProductID)
			continue
		}

		product, err := e.products.FindByID(ctx, sequentialID)
		if errors.Is(err, domain.ErrProductNotFound) {
			e.dropItem(order.ID, item.ProductID)
			continue
		}
		if err != nil {
			return domain.EnrichedOrder{}, err
		}

		enriched.Items = append(enriched.Items, domain.EnrichedItem{
			Product: domain.ProductRef{
				Name: product.Name,
				ID:   strconv.FormatInt(product.ID, 10),
			},
			Qty: item.Qty,
		})
		enriched.Total += product.Price * float64(item.Qty)
	}

	e.metrics.RecordOrderEnriched()
	return enriched, nil
}

func (e *Enricher) dropItem(orderID, productID string) {
	e.metrics.RecordItemDropped()
	e.logger.WithFields(log.Fields{
		"order_id":   orderID,
		"product_id": productID,
	}).Debug("позиция с висячей ссылкой отброшена при обогащении")
}
