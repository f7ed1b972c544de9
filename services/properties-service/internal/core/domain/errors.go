package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidParameter           = errors.New("invalid parameter")
	ErrValidationFailed           = errors.New("validation failed")
	ErrNotFound                   = errors.New("property not found")
	ErrStorageUnavailable         = errors.New("storage unavailable")
	ErrNotificationDeliveryFailed = errors.New("notification delivery failed")
)

// InvalidParameterError параметр запроса не удалось разобрать
type InvalidParameterError struct {
	Field string
	Value string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid value %q for parameter %s", e.Value, e.Field)
}

func (e *InvalidParameterError) Unwrap() error { return ErrInvalidParameter }

// ValidationError тело объявления не прошло проверку схемы хранилища
type ValidationError struct {
	Details []string
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return ErrValidationFailed.Error()
	}
	return ErrValidationFailed.Error() + ": " + strings.Join(e.Details, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrValidationFailed }
