package principles

import (
	"context"

	"github.com/Pmanetas/M-S-Algorithms--sub001/internal/infrastructure/persistence/filestore"
)

// Repository interface defines whole-document access to the persisted
// principles list.
type Repository interface {
	Load(ctx context.Context) ([]Principle, error)
	Save(ctx context.Context, list []Principle) error
}

type repository struct {
	store *filestore.Store[[]Principle]
}

// NewRepository creates a principles repository backed by the given store.
func NewRepository(store *filestore.Store[[]Principle]) Repository {
	return &repository{store: store}
}

func (r *repository) Load(ctx context.Context) ([]Principle, error) {
	list, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []Principle{}
	}
	return list, nil
}

func (r *repository) Save(ctx context.Context, list []Principle) error {
	return r.store.Save(ctx, list)
}
