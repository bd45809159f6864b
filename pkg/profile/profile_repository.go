package profile

import (
	"context"

	"nutrilog/entities"
	"nutrilog/internal/storage"
)

type (
	ProfileRepository interface {
		GetProfile(ctx context.Context) (entities.Profile, error)
		SetProfile(ctx context.Context, p entities.Profile) (entities.Profile, error)
	}

	profileRepository struct {
		store *storage.JSONStore
	}
)

func NewProfileRepository(store *storage.JSONStore) ProfileRepository {
	return &profileRepository{store: store}
}

func (r *profileRepository) GetProfile(_ context.Context) (entities.Profile, error) {
	var p entities.Profile
	err := r.store.View(func(doc *storage.Document) error {
		p = doc.Profile
		return nil
	})
	return p, err
}

// SetProfile replaces the stored profile wholesale and persists before
// returning.
func (r *profileRepository) SetProfile(_ context.Context, p entities.Profile) (entities.Profile, error) {
	err := r.store.Update(func(doc *storage.Document) error {
		doc.Profile = p
		return nil
	})
	return p, err
}
