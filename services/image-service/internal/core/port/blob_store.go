package port

import (
	"context"
	"io"
)

// BlobStorePort хранилище содержимого файлов
type BlobStorePort interface {
	Put(ctx context.Context, name, contentType string, content io.Reader, size int64) error
	Delete(ctx context.Context, name string) error
	// URL публичный адрес объекта с именем name
	URL(name string) string
}
