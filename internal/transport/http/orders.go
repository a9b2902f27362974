package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
)

// OrderService — минимальный интерфейс заказов для HTTP-слоя.
type OrderService interface {
	CreateOrder(ctx context.Context, order domain.Order) (domain.Order, error)
	ListOrdersByUser(ctx context.Context, userID string, page domain.Page) ([]domain.EnrichedOrder, domain.Window, error)
}

// HandleCreateOrder возвращает обработчик POST /orders.
// Ссылки на товары не проверяются: висячие отбрасываются при чтении.
func HandleCreateOrder(svc OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOrderRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "", "invalid request body")
			return
		}
		if apiErr := req.validate(); apiErr != nil {
			writeAPIError(w, apiErr)
			return
		}

		items := make([]domain.OrderItem, 0, len(req.Items))
		for _, item := range req.Items {
			items = append(items, domain.OrderItem{ProductID: item.ProductID, Qty: item.Qty})
		}

		stored, err := svc.CreateOrder(r.Context(), domain.Order{
			UserID: req.UserID,
			Items:  items,
		})
		if err != nil {
			writeInternalError(w)
			return
		}

		writeJSON(w, http.StatusCreated, createOrderResponse{ID: stored.ID})
	}
}

// HandleListOrders возвращает обработчик GET /orders/{userId}.
func HandleListOrders(svc OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, apiErr := parsePage(r)
		if apiErr != nil {
			writeAPIError(w, apiErr)
			return
		}

		userID := mux.Vars(r)["userId"]

		enriched, window, err := svc.ListOrdersByUser(r.Context(), userID, page)
		if err != nil {
			writeInternalError(w)
			return
		}

		data := make([]enrichedOrderPayload, 0, len(enriched))
		for _, order := range enriched {
			data = append(data, toEnrichedOrderPayload(order))
		}

		writeJSON(w, http.StatusOK, listOrdersResponse{
			Data: data,
			Page: toPageInfo(window, page.Limit),
		})
	}
}

type createOrderRequest struct {
	UserID string             `json:"userId"`
	Items  []orderItemPayload `json:"items"`
}

type orderItemPayload struct {
	ProductID string `json:"productId"`
	Qty       int    `json:"qty"`
}

func (r createOrderRequest) validate() *apiError {
	if r.UserID == "" {
		return badRequest(codeUserIDRequired, "userId", "userId is required")
	}
	for _, item := range r.Items {
		if item.ProductID == "" {
			return badRequest(codeProductIDRequired, "items.productId", "item productId is required")
		}
		if item.Qty <= 0 {
			return badRequest(codeQtyInvalid, "items.qty", "item qty must be greater than zero")
		}
	}
	return nil
}

type createOrderResponse struct {
	ID string `json:"id"`
}

type productRefPayload struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

type enrichedItemPayload struct {
	Product productRefPayload `json:"product"`
	Qty     int               `json:"qty"`
}

type enrichedOrderPayload struct {
	ID    string                `json:"id"`
	Items []enrichedItemPayload `json:"items"`
	Total float64               `json:"total"`
}

type listOrdersResponse struct {
	Data []enrichedOrderPayload `json:"data"`
	Page pageInfo               `json:"page"`
}

func toEnrichedOrderPayload(order domain.EnrichedOrder) enrichedOrderPayload {
	items := make([]enrichedItemPayload, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, enrichedItemPayload{
			Product: productRefPayload{Name: item.Product.Name, ID: item.Product.ID},
			Qty:     item.Qty,
		})
	}
	return enrichedOrderPayload{
		ID:    order.ID,
		Items: items,
		Total: order.Total,
	}
}
