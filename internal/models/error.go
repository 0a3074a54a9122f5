package models

import "errors"

// Sentinel errors shared by the service and controller layers.
// Services wrap them with context; controllers match with errors.Is.
var (
	// ErrNotFound is returned when a referenced row does not exist
	ErrNotFound = errors.New("not found")
	// ErrValidation is returned when a value is rejected before persistence
	ErrValidation = errors.New("validation errors")
	// ErrConstraintViolation is returned when storage rejects a write
	ErrConstraintViolation = errors.New("constraint violation")
)

// Client-facing error messages
const (
	MsgRestaurantNotFound       = "Restaurant not found"
	MsgPizzaNotFound            = "Pizza not found"
	MsgRestaurantPizzaNotFound  = "RestaurantPizza not found"
	MsgPizzaOrRestaurantMissing = "Pizza or Restaurant not found"
	MsgValidationErrors         = "validation errors"
)

// ErrorResponse is the single-message error body, e.g. {"error": "Restaurant not found"}
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorsResponse is the multi-message error body, e.g. {"errors": ["validation errors"]}
type ErrorsResponse struct {
	Errors []string `json:"errors"`
}
