package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMalformedPayload           = errors.New("malformed payload")
	ErrNotificationDeliveryFailed = errors.New("notification delivery failed")
)

// MalformedPayloadError в объявлении нет полей, без которых письмо не собрать
type MalformedPayloadError struct {
	Missing []string
}

func (e *MalformedPayloadError) Error() string {
	return fmt.Sprintf("%s: missing %s", ErrMalformedPayload, strings.Join(e.Missing, ", "))
}

func (e *MalformedPayloadError) Unwrap() error { return ErrMalformedPayload }
