package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/vladislavdragonenkov/catalog/internal/domain"
)

// pageInfo — окно пагинации в ответе. null означает отсутствие страницы.
type pageInfo struct {
	Next     *int64 `json:"next"`
	Limit    int64  `json:"limit"`
	Previous *int64 `json:"previous"`
}

func toPageInfo(window domain.Window, limit int64) pageInfo {
	return pageInfo{
		Next:     window.Next,
		Limit:    limit,
		Previous: window.Previous,
	}
}

// parsePage читает limit и offset из query-параметров.
// Отсутствующие параметры получают значения по умолчанию; некорректные
// отклоняются до обращения к хранилищу.
func parsePage(r *http.Request) (domain.Page, *apiError) {
	page := domain.DefaultPage()

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return domain.Page{}, badRequest(codeInvalidLimit, "limit", "limit must be an integer")
		}
		page.Limit = limit
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return domain.Page{}, badRequest(codeInvalidOffset, "offset", "offset must be an integer")
		}
		page.Offset = offset
	}

	if page.Limit < 1 || page.Limit > domain.MaxPageLimit {
		return domain.Page{}, badRequest(codeInvalidLimit, "limit",
			fmt.Sprintf("limit must be between 1 and %d", domain.MaxPageLimit))
	}
	if page.Offset < 0 {
		return domain.Page{}, badRequest(codeInvalidOffset, "offset", "offset must be non-negative")
	}

	return page, nil
}
