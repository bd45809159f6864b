package meal

import (
	"context"

	"nutrilog/domain"
	"nutrilog/entities"
	"nutrilog/internal/storage"
)

type (
	MealRepository interface {
		ListMeals(ctx context.Context) ([]entities.Meal, error)
		CreateMeal(ctx context.Context, m entities.Meal) (entities.Meal, error)
		UpdateMeal(ctx context.Context, id int64, date, category string) (entities.Meal, error)
		DeleteMeal(ctx context.Context, id int64) error
	}

	mealRepository struct {
		store *storage.JSONStore
	}
)

func NewMealRepository(store *storage.JSONStore) MealRepository {
	return &mealRepository{store: store}
}

func (r *mealRepository) ListMeals(_ context.Context) ([]entities.Meal, error) {
	var meals []entities.Meal
	err := r.store.View(func(doc *storage.Document) error {
		meals = append(meals, doc.Meals...)
		return nil
	})
	return meals, err
}

// CreateMeal appends the meal to the end of the collection. The caller
// assigns a timestamp-derived id; it is bumped past the last stored id on
// collision so ids stay unique and sortable.
func (r *mealRepository) CreateMeal(_ context.Context, m entities.Meal) (entities.Meal, error) {
	err := r.store.Update(func(doc *storage.Document) error {
		if n := len(doc.Meals); n > 0 && doc.Meals[n-1].ID >= m.ID {
			m.ID = doc.Meals[n-1].ID + 1
		}
		doc.Meals = append(doc.Meals, m)
		return nil
	})
	return m, err
}

// UpdateMeal changes only the supplied fields; empty strings leave the
// stored value untouched. A failed lookup writes nothing.
func (r *mealRepository) UpdateMeal(_ context.Context, id int64, date, category string) (entities.Meal, error) {
	var updated entities.Meal
	err := r.store.Update(func(doc *storage.Document) error {
		for i := range doc.Meals {
			if doc.Meals[i].ID != id {
				continue
			}
			if date != "" {
				doc.Meals[i].Date = date
			}
			if category != "" {
				doc.Meals[i].Category = category
			}
			updated = doc.Meals[i]
			return nil
		}
		return domain.ErrMealNotFound
	})
	return updated, err
}

func (r *mealRepository) DeleteMeal(_ context.Context, id int64) error {
	return r.store.Update(func(doc *storage.Document) error {
		for i := range doc.Meals {
			if doc.Meals[i].ID == id {
				doc.Meals = append(doc.Meals[:i], doc.Meals[i+1:]...)
				return nil
			}
		}
		return domain.ErrMealNotFound
	})
}
