package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nutrilog/entities"
)

func TestNewJSONStoreSeedsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")

	store, err := NewJSONStore(path)
	require.NoError(t, err)

	assert.FileExists(t, path)
	err = store.View(func(doc *Document) error {
		assert.Equal(t, entities.DefaultTargets(), doc.Profile.Targets)
		assert.NotNil(t, doc.Meals)
		assert.Empty(t, doc.Meals)
		return nil
	})
	require.NoError(t, err)
}

func TestUpdatePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")

	store, err := NewJSONStore(path)
	require.NoError(t, err)

	err = store.Update(func(doc *Document) error {
		doc.Meals = append(doc.Meals, entities.Meal{ID: 42, Date: "2024-06-15", MealName: "Toast"})
		return nil
	})
	require.NoError(t, err)

	reopened, err := NewJSONStore(path)
	require.NoError(t, err)

	err = reopened.View(func(doc *Document) error {
		require.Len(t, doc.Meals, 1)
		assert.Equal(t, int64(42), doc.Meals[0].ID)
		assert.Equal(t, "Toast", doc.Meals[0].MealName)
		return nil
	})
	require.NoError(t, err)
}

func TestUpdateFailureWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")

	store, err := NewJSONStore(path)
	require.NoError(t, err)

	boom := errors.New("boom")
	err = store.Update(func(doc *Document) error {
		doc.Meals = append(doc.Meals, entities.Meal{ID: 1})
		return boom
	})
	assert.ErrorIs(t, err, boom)

	err = store.View(func(doc *Document) error {
		assert.Empty(t, doc.Meals)
		return nil
	})
	require.NoError(t, err)
}

func TestReadRepairsPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"profile":{"age":30}}`), 0644))

	store, err := NewJSONStore(path)
	require.NoError(t, err)

	err = store.View(func(doc *Document) error {
		assert.Equal(t, 30, doc.Profile.Age)
		assert.Equal(t, entities.DefaultTargets(), doc.Profile.Targets, "missing targets fall back to defaults")
		assert.NotNil(t, doc.Meals, "missing meal list becomes an empty one")
		return nil
	})
	require.NoError(t, err)
}

func TestNewJSONStoreRejectsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))

	_, err := NewJSONStore(path)
	assert.Error(t, err)
}
