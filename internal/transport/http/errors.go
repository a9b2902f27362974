package http

import (
	"encoding/json"
	"net/http"
)

const (
	codeInvalidRequestBody  = "invalid_request_body"
	codeNameRequired        = "name_required"
	codePriceNegative       = "price_negative"
	codeSizeLabelRequired   = "size_label_required"
	codeSizeQuantityInvalid = "size_quantity_invalid"
	codeUserIDRequired      = "user_id_required"
	codeProductIDRequired   = "product_id_required"
	codeQtyInvalid          = "qty_invalid"
	codeInvalidLimit        = "invalid_limit"
	codeInvalidOffset       = "invalid_offset"
	codeInternalError       = "internal_error"
)

// errorResponse — тело ошибки с кодом и, для ошибок валидации, именем поля.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
	Field string `json:"field,omitempty"`
}

// apiError — ошибка валидации, привязанная к конкретному полю запроса.
type apiError struct {
	status  int
	code    string
	field   string
	message string
}

func (e *apiError) Error() string { return e.message }

func badRequest(code, field, message string) *apiError {
	return &apiError{status: http.StatusBadRequest, code: code, field: field, message: message}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, field, msg string) {
	writeJSON(w, status, errorResponse{Error: msg, Code: code, Field: field})
}

func writeAPIError(w http.ResponseWriter, err *apiError) {
	writeError(w, err.status, err.code, err.field, err.message)
}

// writeInternalError отдаёт 500: ошибка хранилища фатальна для запроса,
// без повторных попыток.
func writeInternalError(w http.ResponseWriter) {
	writeError(w, http.StatusInternalServerError, codeInternalError, "", "internal error")
}
