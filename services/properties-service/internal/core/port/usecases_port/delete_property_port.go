package usecases_port

import "context"

type DeletePropertyUseCase interface {
	Execute(ctx context.Context, rawID string) error
}
