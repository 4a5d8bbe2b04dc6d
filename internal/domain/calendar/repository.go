package calendar

import (
	"context"

	"github.com/Pmanetas/M-S-Algorithms--sub001/internal/infrastructure/persistence/filestore"
)

// Repository interface defines whole-document access to the persisted
// calendar. The document is always loaded and saved wholesale; the
// record-level mutations live in the service.
type Repository interface {
	Load(ctx context.Context) (EventMap, error)
	Save(ctx context.Context, events EventMap) error
}

// repository implements Repository on top of the JSON file store.
type repository struct {
	store *filestore.Store[EventMap]
}

// NewRepository creates a calendar repository backed by the given store.
func NewRepository(store *filestore.Store[EventMap]) Repository {
	return &repository{store: store}
}

func (r *repository) Load(ctx context.Context) (EventMap, error) {
	events, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = EventMap{}
	}
	return events, nil
}

func (r *repository) Save(ctx context.Context, events EventMap) error {
	return r.store.Save(ctx, events)
}
