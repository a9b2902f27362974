package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
)

// ProductService — минимальный интерфейс каталога для HTTP-слоя.
type ProductService interface {
	CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	ListProducts(ctx context.Context, filter domain.ProductFilter, page domain.Page) ([]domain.Product, domain.Window, error)
}

// HandleCreateProduct возвращает обработчик POST /products.
// В ответе — реальный назначенный последовательный id, а не заглушка.
func HandleCreateProduct(svc ProductService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createProductRequest
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

		stored, err := svc.CreateProduct(r.Context(), domain.Product{
			Name:  req.Name,
			Price: req.Price,
			Sizes: domain.SizeInfo{
				Size:     req.Sizes.Size,
				Quantity: req.Sizes.Quantity,
			},
		})
		if err != nil {
			writeInternalError(w)
			return
		}

		writeJSON(w, http.StatusCreated, createProductResponse{ID: stored.ID})
	}
}

// HandleListProducts возвращает обработчик GET /products.
func HandleListProducts(svc ProductService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, apiErr := parsePage(r)
		if apiErr != nil {
			writeAPIError(w, apiErr)
			return
		}

		filter := domain.ProductFilter{
			Name: r.URL.Query().Get("name"),
			Size: r.URL.Query().Get("size"),
		}

		items, window, err := svc.ListProducts(r.Context(), filter, page)
		if err != nil {
			writeInternalError(w)
			return
		}

		data := make([]productPayload, 0, len(items))
		for _, p := range items {
			data = append(data, productPayload{ID: p.ID, Name: p.Name, Price: p.Price})
		}

		writeJSON(w, http.StatusOK, listProductsResponse{
			Data: data,
			Page: toPageInfo(window, page.Limit),
		})
	}
}

type createProductRequest struct {
	Name  string              `json:"name"`
	Price float64             `json:"price"`
	Sizes sizeQuantityPayload `json:"sizes"`
}

type sizeQuantityPayload struct {
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

func (r createProductRequest) validate() *apiError {
	if r.Name == "" {
		return badRequest(codeNameRequired, "name", "name is required")
	}
	if r.Price < 0 {
		return badRequest(codePriceNegative, "price", "price must be non-negative")
	}
	if r.Sizes.Size == "" {
		return badRequest(codeSizeLabelRequired, "sizes.size", "size label is required")
	}
	if r.Sizes.Quantity < 0 {
		return badRequest(codeSizeQuantityInvalid, "sizes.quantity", "size quantity must be non-negative")
	}
	return nil
}

type createProductResponse struct {
	ID int64 `json:"id"`
}

type productPayload struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type listProductsResponse struct {
	Data []productPayload `json:"data"`
	Page pageInfo         `json:"page"`
}
