package repository

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jmathewk/PromoDeck/models"
	"github.com/jmathewk/PromoDeck/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*MemoryOfferRepository, *time.Time) {
	t.Helper()
	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	repo := NewMemoryOfferRepository(nil)
	repo.Now = func() time.Time { return now }
	return repo, &now
}

func strPtr(s string) *string { return &s }

func patchOf(t *testing.T, body string) models.OfferPatch {
	t.Helper()
	var patch models.OfferPatch
	require.NoError(t, json.Unmarshal([]byte(body), &patch))
	return patch
}

func TestCreateRequiresTitle(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.Create(models.OfferCreate{Title: ""})
	assert.True(t, utils.IsValidationError(err))

	_, err = repo.Create(models.OfferCreate{Title: "   "})
	assert.True(t, utils.IsValidationError(err))
}

func TestCreateAssignsIDAndTimestamps(t *testing.T) {
	repo, now := newTestRepo(t)

	offer, err := repo.Create(models.OfferCreate{Title: "  Summer Sale  ", IsActive: true})
	require.NoError(t, err)

	assert.Equal(t, uint(1), offer.ID)
	assert.Equal(t, "Summer Sale", offer.Title)
	assert.Equal(t, *now, offer.CreatedAt)
	assert.Equal(t, *now, offer.UpdatedAt)
	assert.Nil(t, offer.Description)
	assert.Nil(t, offer.StartAt)
}

func TestCreateStoresEmptyOptionalsAsAbsent(t *testing.T) {
	repo, _ := newTestRepo(t)

	offer, err := repo.Create(models.OfferCreate{Title: "Sale", Description: strPtr(""), ThumbnailPath: strPtr("")})
	require.NoError(t, err)
	assert.Nil(t, offer.Description)
	assert.Nil(t, offer.ThumbnailPath)
}

func TestUpdatePartialMergeLeavesOtherFieldsUntouched(t *testing.T) {
	repo, now := newTestRepo(t)

	created, err := repo.Create(models.OfferCreate{Title: "Sale", Description: strPtr("old"), IsActive: true})
	require.NoError(t, err)

	*now = now.Add(time.Minute)
	updated, err := repo.Update(created.ID, patchOf(t, `{"description":"new"}`))
	require.NoError(t, err)

	assert.Equal(t, "Sale", updated.Title)
	assert.True(t, updated.IsActive)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "new", *updated.Description)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.UpdatedAt.After(created.UpdatedAt))
}

func TestUpdateExplicitFalseIsApplied(t *testing.T) {
	repo, _ := newTestRepo(t)

	created, err := repo.Create(models.OfferCreate{Title: "Sale", IsActive: true})
	require.NoError(t, err)

	updated, err := repo.Update(created.ID, patchOf(t, `{"isActive":false}`))
	require.NoError(t, err)
	assert.False(t, updated.IsActive)
}

func TestUpdateNullClearsNullableField(t *testing.T) {
	repo, _ := newTestRepo(t)

	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
	created, err := repo.Create(models.OfferCreate{Title: "Sale", StartAt: &start, Description: strPtr("keep me")})
	require.NoError(t, err)

	updated, err := repo.Update(created.ID, patchOf(t, `{"startAt":null}`))
	require.NoError(t, err)
	assert.Nil(t, updated.StartAt)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "keep me", *updated.Description)
}

func TestUpdateRejectsEmptyOrNullTitle(t *testing.T) {
	repo, _ := newTestRepo(t)

	created, err := repo.Create(models.OfferCreate{Title: "Sale"})
	require.NoError(t, err)

	_, err = repo.Update(created.ID, patchOf(t, `{"title":""}`))
	assert.True(t, utils.IsValidationError(err))

	_, err = repo.Update(created.ID, patchOf(t, `{"title":null}`))
	assert.True(t, utils.IsValidationError(err))

	// a failed update leaves the record alone
	offer, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sale", offer.Title)
}

func TestUpdateUnknownIDIsNotFound(t *testing.T) {
	repo, _ := newTestRepo(t)
	_, err := repo.Update(99, patchOf(t, `{"description":"x"}`))
	assert.True(t, utils.IsNotFoundError(err))
}

func TestUpdateAcceptsInvertedWindow(t *testing.T) {
	repo, now := newTestRepo(t)

	created, err := repo.Create(models.OfferCreate{Title: "Sale", IsActive: true})
	require.NoError(t, err)

	updated, err := repo.Update(created.ID, patchOf(t, `{"startAt":"2025-08-01T00:00:00Z","endAt":"2025-07-01T00:00:00Z"}`))
	require.NoError(t, err)

	// Stored literally, never visible.
	require.NotNil(t, updated.StartAt)
	require.NotNil(t, updated.EndAt)
	assert.True(t, updated.StartAt.After(*updated.EndAt))
	assert.False(t, models.Visible(*updated, *now))
	assert.False(t, models.Visible(*updated, time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)))
}

func TestDeleteIsPermanentAndIdempotentlyNotFound(t *testing.T) {
	repo, _ := newTestRepo(t)

	created, err := repo.Create(models.OfferCreate{Title: "Sale"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(created.ID))

	_, err = repo.GetByID(created.ID)
	assert.True(t, utils.IsNotFoundError(err))

	err = repo.Delete(created.ID)
	assert.True(t, utils.IsNotFoundError(err))

	err = repo.Delete(12345)
	assert.True(t, utils.IsNotFoundError(err))
}

func TestListNewestFirst(t *testing.T) {
	repo, now := newTestRepo(t)

	for _, title := range []string{"first", "second", "third"} {
		_, err := repo.Create(models.OfferCreate{Title: title})
		require.NoError(t, err)
		*now = now.Add(time.Minute)
	}

	offers, err := repo.List()
	require.NoError(t, err)
	require.Len(t, offers, 3)
	assert.Equal(t, "third", offers[0].Title)
	assert.Equal(t, "first", offers[2].Title)
}

func TestListVisibleFiltersAndTruncates(t *testing.T) {
	repo, now := newTestRepo(t)
	future := now.Add(24 * time.Hour)

	_, err := repo.Create(models.OfferCreate{Title: "hidden inactive", IsActive: false})
	require.NoError(t, err)
	_, err = repo.Create(models.OfferCreate{Title: "hidden future", IsActive: true, StartAt: &future})
	require.NoError(t, err)
	for _, title := range []string{"a", "b", "c"} {
		*now = now.Add(time.Minute)
		_, err = repo.Create(models.OfferCreate{Title: title, IsActive: true})
		require.NoError(t, err)
	}

	offers, err := repo.ListVisible(*now, 2)
	require.NoError(t, err)
	require.Len(t, offers, 2)
	assert.Equal(t, "c", offers[0].Title)
	assert.Equal(t, "b", offers[1].Title)

	offers, err = repo.ListVisible(*now, 50)
	require.NoError(t, err)
	assert.Len(t, offers, 3)
}

func TestDeleteReclaimsAssetsBestEffort(t *testing.T) {
	assets, err := utils.NewAssetStore(t.TempDir())
	require.NoError(t, err)

	repo := NewMemoryOfferRepository(assets)

	// paths that do not exist on disk must not surface an error
	created, err := repo.Create(models.OfferCreate{
		Title:         "Sale",
		ThumbnailPath: strPtr("/uploads/gone.png"),
		PdfPath:       strPtr("/uploads/gone.pdf"),
	})
	require.NoError(t, err)
	assert.NoError(t, repo.Delete(created.ID))
}
