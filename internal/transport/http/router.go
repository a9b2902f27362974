package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/catalog/internal/metrics"
)

// NewRouter собирает маршруты API и навешивает сквозные middleware.
func NewRouter(products ProductService, orders OrderService, m *metrics.CatalogMetrics, logger *log.Entry) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RequestMetrics(m))

	r.HandleFunc("/", handleRoot).Methods(http.MethodGet)
	r.HandleFunc("/products", HandleCreateProduct(products)).Methods(http.MethodPost)
	r.HandleFunc("/products", HandleListProducts(products)).Methods(http.MethodGet)
	r.HandleFunc("/orders", HandleCreateOrder(orders)).Methods(http.MethodPost)
	r.HandleFunc("/orders/{userId}", HandleListOrders(orders)).Methods(http.MethodGet)

	return r
}

func handleRoot(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Hello World"})
}

// routePattern возвращает шаблон маршрута для меток метрик.
func routePattern(r *http.Request) string {
	if route := mux.CurrentRoute(r); route != nil {
		if pattern, err := route.GetPathTemplate(); err == nil {
			return pattern
		}
	}
	return r.URL.Path
}

func statusText(status int) string {
	return strconv.Itoa(status)
}
