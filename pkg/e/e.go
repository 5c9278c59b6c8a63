package e

import "fmt"

var (
	// Каталог
	ErrCatalogNotFound = fmt.Errorf("catalog source not found")
	ErrEmptyCatalog    = fmt.Errorf("catalog has no usable rows")
	ErrMissingColumn   = fmt.Errorf("catalog header is missing a required column")

	// Корзина и сессия
	ErrProductNotFound = fmt.Errorf("product not found")
	ErrNoDraft         = fmt.Errorf("no staged custom build")
	ErrSessionConflict = fmt.Errorf("session was modified concurrently")

	// 400 Bad Request
	ErrStatusBadRequest = fmt.Errorf("bad request")
	ErrMissingField     = fmt.Errorf("required field is missing")
	ErrMalformedOption  = fmt.Errorf("malformed option value")
	ErrInvalidPrice     = fmt.Errorf("invalid price")
	ErrInvalidItemID    = fmt.Errorf("invalid item id")

	// Конфигурация
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// 500
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
