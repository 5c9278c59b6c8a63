package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/DRSN-tech/terranova/internal/usecase"
	"github.com/DRSN-tech/terranova/pkg/e"
	"github.com/go-chi/chi/v5"
)

// ErrorResponse — ответ JSON-эндпоинтов при ошибке.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// AddToCartResponse — успешный ответ добавления в корзину.
type AddToCartResponse struct {
	Success   bool `json:"success"`
	CartCount int  `json:"cart_count"`
}

func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{
		Success: false,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrInvalidItemID):
		return http.StatusBadRequest, e.ErrInvalidItemID.Error()
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrSessionConflict):
		return http.StatusConflict, e.ErrSessionConflict.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	WriteSuccess(w, code, NewErrorResponse(msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writePageError отвечает на ошибку HTML-маршрута простым текстом.
func writePageError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	http.Error(w, msg, code)
}

func parseItemID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "item_id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, e.Wrap(raw, e.ErrInvalidItemID)
	}

	return id, nil
}

// parseBuildForm читает форму кастомизации. Множественные поля принимаются
// и в виде "plants", и в виде "plants[]", как их отправляет браузер.
func parseBuildForm(w http.ResponseWriter, r *http.Request) (*usecase.SubmitBuildReq, error) {
	const maxFormSize = 1 << 20

	r.Body = http.MaxBytesReader(w, r.Body, maxFormSize)
	if err := r.ParseForm(); err != nil {
		return nil, e.Wrap(err.Error(), e.ErrStatusBadRequest)
	}

	form := r.PostForm
	return &usecase.SubmitBuildReq{
		GrowingMedium:   form.Get(usecase.FieldGrowingMedium),
		DrainageLayer:   form.Get(usecase.FieldDrainageLayer),
		HardscapeStones: form.Get(usecase.FieldHardscapeStones),
		Plants:          multiValue(form, usecase.FieldPlants),
		Care:            multiValue(form, usecase.FieldCare),
		Accessories:     multiValue(form, usecase.FieldAccessories),
	}, nil
}

func multiValue(form url.Values, field string) []string {
	values := append([]string{}, form[field]...)
	return append(values, form[field+"[]"]...)
}
