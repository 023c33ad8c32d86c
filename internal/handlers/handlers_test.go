package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/photoalbum/server/internal/models"
	"github.com/photoalbum/server/internal/repository"
	"github.com/photoalbum/server/internal/services"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()

	db, err := repository.NewSQLiteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	storage, err := services.NewPhotoStorageService(t.TempDir(), nil, 1)
	require.NoError(t, err)

	collectionRepo := repository.NewCollectionRepository(db)
	albumRepo := repository.NewAlbumRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	cascadeRepo, err := repository.NewCascadeRepository(db)
	require.NoError(t, err)

	collectionHandler := NewCollectionHandler(services.NewCollectionService(collectionRepo, cascadeRepo, storage))
	albumHandler := NewAlbumHandler(services.NewAlbumService(albumRepo, collectionRepo, photoRepo, cascadeRepo, storage))
	photoHandler := NewPhotoHandler(services.NewPhotoService(photoRepo, cascadeRepo, storage))
	locationHandler := NewLocationHandler(services.NewLocationService(locationRepo, albumRepo, photoRepo))

	r := chi.NewRouter()
	r.Route("/api/collections", func(r chi.Router) {
		r.Get("/", collectionHandler.List)
		r.Post("/", collectionHandler.Create)
		r.Get("/{id}", collectionHandler.Get)
		r.Put("/{id}", collectionHandler.Update)
		r.Patch("/{id}", collectionHandler.Update)
		r.Delete("/{id}", collectionHandler.Delete)
	})
	r.Route("/api/albums", func(r chi.Router) {
		r.Get("/", albumHandler.List)
		r.Post("/", albumHandler.Create)
		r.Get("/{id}", albumHandler.Get)
		r.Put("/{id}", albumHandler.Update)
		r.Patch("/{id}", albumHandler.Update)
		r.Delete("/{id}", albumHandler.Delete)
	})
	r.Route("/api/photos", func(r chi.Router) {
		r.Post("/upload", photoHandler.Upload)
		r.Get("/", photoHandler.List)
		r.Post("/", photoHandler.Create)
		r.Get("/{id}", photoHandler.Get)
		r.Put("/{id}", photoHandler.Update)
		r.Patch("/{id}", photoHandler.Update)
		r.Delete("/{id}", photoHandler.Delete)
	})
	r.Route("/api/locations", func(r chi.Router) {
		r.Get("/album/{id}", locationHandler.ByAlbum)
		r.Get("/photo/{id}", locationHandler.ByPhoto)
		r.Post("/", locationHandler.Create)
		r.Delete("/", locationHandler.Delete)
	})

	return r
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeInto(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst))
}

func TestCollectionEndpoints(t *testing.T) {
	router := newTestRouter(t)

	t.Run("create and fetch", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/collections/", map[string]string{"name": "holidays"})
		require.Equal(t, http.StatusCreated, rec.Code)

		var created models.Collection
		decodeInto(t, rec, &created)
		assert.Equal(t, "holidays", created.Name)

		rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/collections/%d", created.ID), nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("blank name is a 400", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/collections/", map[string]string{"name": "  "})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing collection is a 404", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/collections/9999", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		var body models.ErrorResponse
		decodeInto(t, rec, &body)
		assert.NotEmpty(t, body.Error)
	})

	t.Run("malformed id is a 400", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/collections/abc", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAlbumEndpoints(t *testing.T) {
	router := newTestRouter(t)

	t.Run("list wraps data with a total count", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			rec := doJSON(t, router, http.MethodPost, "/api/albums/", map[string]string{"name": "album"})
			require.Equal(t, http.StatusCreated, rec.Code)
		}

		rec := doJSON(t, router, http.MethodGet, "/api/albums/?perPage=2&page=0", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var list models.AlbumListResponse
		decodeInto(t, rec, &list)
		assert.Len(t, list.Data, 2)
		assert.Equal(t, 3, list.TotalCount)
	})

	t.Run("negative paging is a 400", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/albums/?perPage=-1", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("dangling collection reference is a 400", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/albums/", map[string]interface{}{
			"name":         "album",
			"collectionId": 9999,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("patch with explicit null clears the collection", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/collections/", map[string]string{"name": "group"})
		require.Equal(t, http.StatusCreated, rec.Code)
		var collection models.Collection
		decodeInto(t, rec, &collection)

		rec = doJSON(t, router, http.MethodPost, "/api/albums/", map[string]interface{}{
			"name":         "grouped",
			"collectionId": collection.ID,
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		var album models.Album
		decodeInto(t, rec, &album)
		require.NotNil(t, album.CollectionID)

		req := httptest.NewRequest(http.MethodPatch,
			fmt.Sprintf("/api/albums/%d", album.ID),
			strings.NewReader(`{"collectionId":null}`))
		req.Header.Set("Content-Type", "application/json")
		patchRec := httptest.NewRecorder()
		router.ServeHTTP(patchRec, req)
		require.Equal(t, http.StatusOK, patchRec.Code)

		var updated models.Album
		decodeInto(t, patchRec, &updated)
		assert.Nil(t, updated.CollectionID)
	})

	t.Run("update accepts PUT as well as PATCH", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/albums/", map[string]string{"name": "before"})
		require.Equal(t, http.StatusCreated, rec.Code)
		var album models.Album
		decodeInto(t, rec, &album)

		rec = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/albums/%d", album.ID),
			map[string]string{"name": "via put"})
		require.Equal(t, http.StatusOK, rec.Code)

		var updated models.Album
		decodeInto(t, rec, &updated)
		assert.Equal(t, "via put", updated.Name)
	})

	t.Run("empty patch payload is a 400", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/albums/", map[string]string{"name": "target"})
		require.Equal(t, http.StatusCreated, rec.Code)
		var album models.Album
		decodeInto(t, rec, &album)

		rec = doJSON(t, router, http.MethodPatch, fmt.Sprintf("/api/albums/%d", album.ID), map[string]string{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPhotoEndpoints(t *testing.T) {
	router := newTestRouter(t)

	uploadOne := func(t *testing.T) string {
		t.Helper()

		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		part, err := writer.CreateFormFile("files", "shot.jpg")
		require.NoError(t, err)
		_, err = part.Write([]byte("fake image"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/photos/upload", &buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)

		var resp models.UploadResponse
		decodeInto(t, rec, &resp)
		require.Len(t, resp.URLs, 1)
		return resp.URLs[0]
	}

	t.Run("upload then register", func(t *testing.T) {
		path := uploadOne(t)

		rec := doJSON(t, router, http.MethodPost, "/api/photos/", map[string]string{"path": path})
		require.Equal(t, http.StatusCreated, rec.Code)

		var photo models.Photo
		decodeInto(t, rec, &photo)
		require.NotNil(t, photo.Path)
		assert.Equal(t, path, *photo.Path)
	})

	t.Run("upload with disallowed extension is a 400", func(t *testing.T) {
		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		part, err := writer.CreateFormFile("files", "malware.exe")
		require.NoError(t, err)
		_, err = part.Write([]byte("nope"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/photos/upload", &buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("registering an unknown path is a 400", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodPost, "/api/photos/", map[string]string{"path": "ghost.jpg"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed receivedAt filter is a 400", func(t *testing.T) {
		rec := doJSON(t, router, http.MethodGet, "/api/photos/?receivedAt=yesterday", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("filter narrows the listing", func(t *testing.T) {
		path := uploadOne(t)
		rec := doJSON(t, router, http.MethodPost, "/api/photos/", map[string]string{
			"path":      path,
			"fromGroup": "hikers",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = doJSON(t, router, http.MethodGet, "/api/photos/?fromGroup=hikers", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var list models.PhotoListResponse
		decodeInto(t, rec, &list)
		assert.Equal(t, 1, list.TotalCount)
		require.Len(t, list.Data, 1)
		assert.Equal(t, "hikers", *list.Data[0].FromGroup)
	})
}

func TestLocationEndpoints(t *testing.T) {
	router := newTestRouter(t)

	createAlbum := func(t *testing.T) models.Album {
		t.Helper()
		rec := doJSON(t, router, http.MethodPost, "/api/albums/", map[string]string{"name": "album"})
		require.Equal(t, http.StatusCreated, rec.Code)
		var album models.Album
		decodeInto(t, rec, &album)
		return album
	}

	createPhoto := func(t *testing.T) models.Photo {
		t.Helper()

		var buf bytes.Buffer
		writer := multipart.NewWriter(&buf)
		part, err := writer.CreateFormFile("files", "p.jpg")
		require.NoError(t, err)
		_, err = part.Write([]byte("img"))
		require.NoError(t, err)
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/photos/upload", &buf)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusCreated, rec.Code)
		var upload models.UploadResponse
		decodeInto(t, rec, &upload)

		rec = doJSON(t, router, http.MethodPost, "/api/photos/", map[string]string{"path": upload.URLs[0]})
		require.Equal(t, http.StatusCreated, rec.Code)
		var photo models.Photo
		decodeInto(t, rec, &photo)
		return photo
	}

	t.Run("place, list and remove", func(t *testing.T) {
		album := createAlbum(t)
		photo := createPhoto(t)

		body := map[string]int64{"albumId": album.ID, "photoId": photo.ID}
		rec := doJSON(t, router, http.MethodPost, "/api/locations/", body)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/locations/album/%d", album.ID), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		var byAlbum models.AlbumLocationsResponse
		decodeInto(t, rec, &byAlbum)
		assert.Equal(t, []int64{photo.ID}, byAlbum.PhotoIDs)

		rec = doJSON(t, router, http.MethodDelete, "/api/locations/", body)
		assert.Equal(t, http.StatusOK, rec.Code)

		rec = doJSON(t, router, http.MethodDelete, "/api/locations/", body)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("duplicate placement is a 409", func(t *testing.T) {
		album := createAlbum(t)
		photo := createPhoto(t)

		body := map[string]int64{"albumId": album.ID, "photoId": photo.ID}
		rec := doJSON(t, router, http.MethodPost, "/api/locations/", body)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = doJSON(t, router, http.MethodPost, "/api/locations/", body)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("cascade delete shows up through the API", func(t *testing.T) {
		album := createAlbum(t)
		photo := createPhoto(t)

		body := map[string]int64{"albumId": album.ID, "photoId": photo.ID}
		rec := doJSON(t, router, http.MethodPost, "/api/locations/", body)
		require.Equal(t, http.StatusCreated, rec.Code)

		rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/albums/%d", album.ID), nil)
		require.Equal(t, http.StatusOK, rec.Code)

		// The photo was only located in the deleted album, so it is gone too
		rec = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/photos/%d", photo.ID), nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
