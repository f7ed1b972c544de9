package usecases_port

import "context"

type DeleteImageUseCase interface {
	Execute(ctx context.Context, rawID string) error
}
