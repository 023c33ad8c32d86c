package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateAlbumRequestValidate(t *testing.T) {
	t.Run("empty payload", func(t *testing.T) {
		req := &UpdateAlbumRequest{}
		assert.ErrorIs(t, req.Validate(), ErrEmptyPayload)
	})

	t.Run("blank name", func(t *testing.T) {
		req := &UpdateAlbumRequest{Name: Some("   ")}
		assert.ErrorIs(t, req.Validate(), ErrAlbumNameRequired)
	})

	t.Run("name cannot be nulled", func(t *testing.T) {
		var req UpdateAlbumRequest
		require.NoError(t, json.Unmarshal([]byte(`{"name":null}`), &req))
		assert.ErrorIs(t, req.Validate(), ErrAlbumNameRequired)
	})

	t.Run("clearing a reference alone is valid", func(t *testing.T) {
		req := &UpdateAlbumRequest{CoverID: Null[int64]()}
		assert.NoError(t, req.Validate())
	})
}

func TestAlbumApplyUpdate(t *testing.T) {
	coverID := int64(3)
	collectionID := int64(7)

	album := &Album{Name: "before", CoverID: &coverID, CollectionID: &collectionID}

	// Decode the way a handler would, so tri-state behavior is exercised
	// end to end: coverId absent, collectionId explicit null.
	var req UpdateAlbumRequest
	require.NoError(t, json.Unmarshal([]byte(`{"name":"after","collectionId":null}`), &req))
	require.NoError(t, req.Validate())

	album.ApplyUpdate(&req)

	assert.Equal(t, "after", album.Name)
	require.NotNil(t, album.CoverID)
	assert.Equal(t, int64(3), *album.CoverID)
	assert.Nil(t, album.CollectionID)
}

func TestCollectionRequestValidate(t *testing.T) {
	t.Run("create requires a name", func(t *testing.T) {
		req := &CreateCollectionRequest{Name: " "}
		assert.ErrorIs(t, req.Validate(), ErrCollectionNameRequired)
	})

	t.Run("update requires a payload", func(t *testing.T) {
		req := &UpdateCollectionRequest{}
		assert.ErrorIs(t, req.Validate(), ErrEmptyPayload)
	})
}
