package usecase

import (
	"context"
	"errors"
	"io"
	"sync"

	"real-estate-platform/services/image-service/internal/core/domain"

	"github.com/google/uuid"
)

// memoryRepo записи в памяти
type memoryRepo struct {
	mu      sync.Mutex
	images  []domain.Image
	SaveErr error
	FindErr error
}

func (r *memoryRepo) Save(_ context.Context, image domain.Image) error {
	if r.SaveErr != nil {
		return r.SaveErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.images = append(r.images, image)
	return nil
}

func (r *memoryRepo) FindByProperty(_ context.Context, propertyID uuid.UUID) ([]domain.Image, error) {
	if r.FindErr != nil {
		return nil, r.FindErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Image
	for _, img := range r.images {
		if img.PropertyID == propertyID {
			out = append(out, img)
		}
	}
	return out, nil
}

func (r *memoryRepo) Delete(_ context.Context, id uuid.UUID) (*domain.Image, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, img := range r.images {
		if img.ID == id {
			r.images = append(r.images[:i], r.images[i+1:]...)
			return &img, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryRepo) Ping(context.Context) error { return nil }

func (r *memoryRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.images)
}

// memoryBlobs содержимое файлов в памяти
type memoryBlobs struct {
	mu        sync.Mutex
	objects   map[string][]byte
	PutErr    error
	DeleteErr error
}

func newMemoryBlobs() *memoryBlobs {
	return &memoryBlobs{objects: make(map[string][]byte)}
}

func (b *memoryBlobs) Put(_ context.Context, name, _ string, content io.Reader, _ int64) error {
	if b.PutErr != nil {
		return b.PutErr
	}
	data, err := io.ReadAll(content)
	if err != nil {
		return err
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.objects[name] = data
	return nil
}

func (b *memoryBlobs) Delete(_ context.Context, name string) error {
	if b.DeleteErr != nil {
		return b.DeleteErr
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.objects[name]; !ok {
		return errors.New("no such object")
	}
	delete(b.objects, name)
	return nil
}

func (b *memoryBlobs) URL(name string) string { return "/api/images/uploads/" + name }

func (b *memoryBlobs) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.objects)
}
