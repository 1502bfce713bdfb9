package service

import (
	"testing"

	"restaurant-forum-backend/internal/models"
	"restaurant-forum-backend/pkg/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryNameRequired(t *testing.T) {
	svc := NewCategoryService(newFakeStore())

	_, err := svc.CreateCategory("")
	assert.True(t, apperr.Is(err, apperr.KindValidation))
}

func TestCategoryDuplicateName(t *testing.T) {
	svc := NewCategoryService(newFakeStore())

	_, err := svc.CreateCategory("Japanese")
	require.NoError(t, err)

	_, err = svc.CreateCategory("Japanese")
	assert.True(t, apperr.Is(err, apperr.KindConflict))
}

func TestCategoryDeleteBlockedWhileInUse(t *testing.T) {
	store := newFakeStore()
	svc := NewCategoryService(store)

	category, err := svc.CreateCategory("Japanese")
	require.NoError(t, err)
	store.restaurants[1] = &models.Restaurant{ID: 1, CategoryID: category.ID}

	_, err = svc.DeleteCategory(category.ID)
	assert.True(t, apperr.Is(err, apperr.KindConflict))

	delete(store.restaurants, 1)
	_, err = svc.DeleteCategory(category.ID)
	assert.NoError(t, err)
}
