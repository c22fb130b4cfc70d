package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AxelVC22/Inmuebles-api/internal/models"
	"github.com/AxelVC22/Inmuebles-api/internal/utils"
)

func TestSavePreferences_InvertedRange(t *testing.T) {
	svc := NewPreferenceService(newFakePreferenceRepo(), newFakeCatalogRepo())

	_, err := svc.Save(context.Background(), 1, &models.Preference{
		BudgetMin: utils.Ptr(10000.0),
		BudgetMax: utils.Ptr(5000.0),
	})

	assertAppErrorStatus(t, err, 400)
}

func TestSavePreferences_UnknownCategory(t *testing.T) {
	svc := NewPreferenceService(newFakePreferenceRepo(), newFakeCatalogRepo())

	_, err := svc.Save(context.Background(), 1, &models.Preference{
		CategoryID: utils.Ptr(int64(9)),
	})

	assertAppErrorStatus(t, err, 400)
}

func TestSavePreferences_UpsertReplaces(t *testing.T) {
	prefs := newFakePreferenceRepo()
	catalogs := newFakeCatalogRepo()
	catalogs.categories[2] = true
	svc := NewPreferenceService(prefs, catalogs)

	first, err := svc.Save(context.Background(), 1, &models.Preference{
		BudgetMin: utils.Ptr(5000.0),
	})
	require.NoError(t, err)

	second, err := svc.Save(context.Background(), 1, &models.Preference{
		BudgetMax:  utils.Ptr(12000.0),
		CategoryID: utils.Ptr(int64(2)),
	})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID, "one preference row per user")
	assert.Nil(t, second.BudgetMin)
	assert.Equal(t, 12000.0, *second.BudgetMax)
}

func TestGetPreferences_NotSet(t *testing.T) {
	svc := NewPreferenceService(newFakePreferenceRepo(), newFakeCatalogRepo())

	pref, err := svc.Get(context.Background(), 1)

	require.NoError(t, err, "unset preferences are not an error")
	assert.Nil(t, pref)
}
