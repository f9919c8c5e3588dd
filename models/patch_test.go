package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldUnmarshalDistinguishesPresence(t *testing.T) {
	var patch OfferPatch
	require.NoError(t, json.Unmarshal([]byte(`{"description":"half price","startAt":null,"isActive":false}`), &patch))

	// present with value
	assert.True(t, patch.Description.Set)
	assert.True(t, patch.Description.Valid)
	assert.Equal(t, "half price", patch.Description.Value)

	// present with explicit null
	assert.True(t, patch.StartAt.Set)
	assert.False(t, patch.StartAt.Valid)
	assert.Nil(t, patch.StartAt.Ptr())

	// false is not "not supplied"
	assert.True(t, patch.IsActive.Set)
	assert.True(t, patch.IsActive.Valid)
	assert.False(t, patch.IsActive.Value)

	// omitted entirely
	assert.False(t, patch.Title.Set)
	assert.False(t, patch.EndAt.Set)
}

func TestFieldUnmarshalTime(t *testing.T) {
	var patch OfferPatch
	require.NoError(t, json.Unmarshal([]byte(`{"endAt":"2025-12-31T23:59:59Z"}`), &patch))

	require.True(t, patch.EndAt.Set)
	require.True(t, patch.EndAt.Valid)
	assert.Equal(t, time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC), patch.EndAt.Value)
}

func TestFieldUnmarshalRejectsWrongType(t *testing.T) {
	var patch OfferPatch
	assert.Error(t, json.Unmarshal([]byte(`{"isActive":"yes"}`), &patch))
}

func TestPublicProjectionOmitsAdminFields(t *testing.T) {
	desc := "two for one"
	offer := Offer{ID: 7, Title: "Sale", Description: &desc, IsActive: true}

	raw, err := json.Marshal(offer.Public())
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Contains(t, fields, "title")
	assert.Contains(t, fields, "thumbnailPath")
	assert.NotContains(t, fields, "isActive")
	assert.NotContains(t, fields, "createdAt")
	assert.NotContains(t, fields, "updatedAt")
}
