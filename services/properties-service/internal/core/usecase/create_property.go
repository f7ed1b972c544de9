package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"real-estate-platform/pkg/contextkeys"
	"real-estate-platform/pkg/logging"
	"real-estate-platform/services/properties-service/internal/core/domain"
	"real-estate-platform/services/properties-service/internal/core/port"
)

const DefaultNotifyTimeout = 10 * time.Second

// CreatePropertyUseCase сохраняет объявление и в фоне отправляет уведомление.
// Результат уведомления не влияет на ответ клиенту.
type CreatePropertyUseCase struct {
	storage       port.PropertyStoragePort
	notifier      port.PropertyNotifierPort
	notifyTimeout time.Duration

	inflight sync.WaitGroup
}

func NewCreatePropertyUseCase(storage port.PropertyStoragePort, notifier port.PropertyNotifierPort, notifyTimeout time.Duration) *CreatePropertyUseCase {
	if notifyTimeout <= 0 {
		notifyTimeout = DefaultNotifyTimeout
	}
	return &CreatePropertyUseCase{
		storage:       storage,
		notifier:      notifier,
		notifyTimeout: notifyTimeout,
	}
}

func (uc *CreatePropertyUseCase) Execute(ctx context.Context, payload json.RawMessage) (*domain.Property, error) {
	ucLogger := contextkeys.LoggerFromContext(ctx).WithFields(logging.Fields{
		"use_case": "CreateProperty",
	})

	property, err := uc.storage.Create(ctx, payload)
	if err != nil {
		ucLogger.Warn("Property was not stored", logging.Fields{"error": err.Error()})
		return nil, classifyStorageError(err)
	}

	ucLogger.Info("Property stored", logging.Fields{
		"property_id": property.ID.String(),
		"city":        property.Location.City,
	})

	if uc.notifier != nil {
		uc.dispatchNotification(ctx, *property)
	}
	return property, nil
}

// dispatchNotification запускает уведомление с собственным таймаутом,
// не привязанным к отмене запроса
func (uc *CreatePropertyUseCase) dispatchNotification(ctx context.Context, property domain.Property) {
	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.notifyTimeout)
	logger := contextkeys.LoggerFromContext(ctx).WithFields(logging.Fields{
		"component":   "PropertyNotification",
		"property_id": property.ID.String(),
	})

	uc.inflight.Add(1)
	go func() {
		defer uc.inflight.Done()
		defer cancel()

		if err := uc.notifier.NotifyPropertyCreated(notifyCtx, property); err != nil {
			logger.Error("Failed to send property notification", err, nil)
			return
		}
		logger.Debug("Property notification dispatched", nil)
	}()
}

// Wait дожидается фоновых уведомлений, используется при остановке сервиса
func (uc *CreatePropertyUseCase) Wait() {
	uc.inflight.Wait()
}
