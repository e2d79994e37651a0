package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-backend/config"
	"restaurant-backend/models"
)

func TestCreateCategoryAssignsNextSortOrder(t *testing.T) {
	setupTestDB(t)
	require.NoError(t, seedCategories())

	created, err := CreateCategory(" Lunch ", nil)
	require.NoError(t, err)
	assert.Equal(t, "Lunch", created.Name)
	assert.Equal(t, 10, created.SortOrder)
}

func TestCreateCategoryEmptyTableStartsAtOne(t *testing.T) {
	setupTestDB(t)

	created, err := CreateCategory("Specials", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, created.SortOrder)
}

func TestCreateCategoryExplicitSortOrder(t *testing.T) {
	setupTestDB(t)

	order := 42
	created, err := CreateCategory("Specials", &order)
	require.NoError(t, err)
	assert.Equal(t, 42, created.SortOrder)
}

func TestCreateCategoryBlankNameRejected(t *testing.T) {
	setupTestDB(t)

	for _, name := range []string{"", "   "} {
		_, err := CreateCategory(name, nil)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}

	var count int64
	require.NoError(t, config.DB.Model(&models.MenuCategory{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdateCategoryPatchesOnlyProvidedFields(t *testing.T) {
	setupTestDB(t)
	created, err := CreateCategory("Drinks", nil)
	require.NoError(t, err)

	// Blank name keeps the old one, sort order changes
	order := 5
	updated, err := UpdateCategory(created.ID, "  ", &order)
	require.NoError(t, err)
	assert.Equal(t, "Drinks", updated.Name)
	assert.Equal(t, 5, updated.SortOrder)

	// Name changes (trimmed), nil sort order keeps the old one
	updated, err = UpdateCategory(created.ID, " Beverages ", nil)
	require.NoError(t, err)
	assert.Equal(t, "Beverages", updated.Name)
	assert.Equal(t, 5, updated.SortOrder)
}

func TestUpdateCategoryNotFound(t *testing.T) {
	setupTestDB(t)

	_, err := UpdateCategory(999, "Anything", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListCategoriesOrderedBySortOrder(t *testing.T) {
	setupTestDB(t)
	first := 3
	second := 1
	_, err := CreateCategory("Last", &first)
	require.NoError(t, err)
	_, err = CreateCategory("First", &second)
	require.NoError(t, err)

	categories, err := ListCategories()
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "First", categories[0].Name)
	assert.Equal(t, "Last", categories[1].Name)
}
