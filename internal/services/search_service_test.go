package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AxelVC22/Inmuebles-api/internal/models"
	"github.com/AxelVC22/Inmuebles-api/internal/repositories"
	"github.com/AxelVC22/Inmuebles-api/internal/utils"
)

func TestSearch_PaginationMetadata(t *testing.T) {
	properties := newFakePropertyRepo()
	properties.cards = []models.ListingCard{{ID: 3}, {ID: 2}, {ID: 1}}
	properties.total = 45
	svc := NewSearchService(properties, newFakePreferenceRepo())

	result, err := svc.Search(context.Background(), repositories.ListingFilter{Page: 2, PageSize: 20})

	require.NoError(t, err)
	assert.Len(t, result.Properties, 3)
	assert.Equal(t, 2, result.Pagination.CurrentPage)
	assert.Equal(t, 3, result.Pagination.TotalPages)
	assert.Equal(t, 45, result.Pagination.TotalResults)
	assert.Equal(t, 20, result.Pagination.ResultsPerPage)
	assert.True(t, result.Pagination.HasNextPage)
	assert.True(t, result.Pagination.HasPreviousPage)
}

func TestSearch_DefaultsApplied(t *testing.T) {
	properties := newFakePropertyRepo()
	svc := NewSearchService(properties, newFakePreferenceRepo())

	result, err := svc.Search(context.Background(), repositories.ListingFilter{})

	require.NoError(t, err)
	assert.Equal(t, 1, result.Pagination.CurrentPage)
	assert.Equal(t, 20, result.Pagination.ResultsPerPage)
	assert.False(t, result.Pagination.HasPreviousPage)
}

func TestRecommended_WithoutPreferences(t *testing.T) {
	svc := NewSearchService(newFakePropertyRepo(), newFakePreferenceRepo())

	_, err := svc.Recommended(context.Background(), 1, 1, 20)

	assertAppErrorStatus(t, err, 400)
}

func TestRecommended_BuildsFilterFromPreferences(t *testing.T) {
	properties := newFakePropertyRepo()
	preferences := newFakePreferenceRepo()
	preferences.byUser[1] = &models.Preference{
		UserID:     1,
		BudgetMin:  utils.Ptr(5000.0),
		BudgetMax:  utils.Ptr(10000.0),
		CategoryID: utils.Ptr(int64(2)),
	}
	svc := NewSearchService(properties, preferences)

	_, err := svc.Recommended(context.Background(), 1, 1, 20)

	require.NoError(t, err)
	require.NotNil(t, properties.lastF)
	assert.Equal(t, 5000.0, *properties.lastF.BudgetMin)
	assert.Equal(t, 10000.0, *properties.lastF.BudgetMax)
	assert.Equal(t, int64(2), *properties.lastF.CategoryID)
	assert.Nil(t, properties.lastF.Title, "recommendations never filter by title")
}
