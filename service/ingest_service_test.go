package service

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"claimlens-backend/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateFromURLFetchesAndPersists(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<html><head><title>Acme Guide</title></head><body>claim rules</body></html>"))
	}))
	defer server.Close()

	store := newStubDocumentStore()
	svc := NewIngestService(IngestWithDocumentStore(store))

	result, err := svc.CreateFromURL(context.Background(), CreateFromURLRequest{URL: server.URL})
	require.NoError(t, err)

	doc := result.Document
	assert.Equal(t, "Acme Guide", doc.Name)
	require.NotNil(t, doc.SourceURL)
	assert.Equal(t, server.URL, *doc.SourceURL)
	assert.Equal(t, "claim rules", doc.Content)
	require.Len(t, store.createdDocs, 1)
}

func TestCreateFromURLDuplicateRejectedBeforeFetch(t *testing.T) {
	var fetched atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetched.Store(true)
	}))
	defer server.Close()

	store := newStubDocumentStore()
	store.existingURLs[server.URL] = true

	svc := NewIngestService(IngestWithDocumentStore(store))

	_, err := svc.CreateFromURL(context.Background(), CreateFromURLRequest{URL: server.URL})
	assert.ErrorIs(t, err, ErrDuplicateURL)
	assert.False(t, fetched.Load(), "duplicate check must run before any network I/O")
	assert.Empty(t, store.createdDocs)
}

func TestCreateFromURLNotFoundStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	store := newStubDocumentStore()
	svc := NewIngestService(IngestWithDocumentStore(store))

	_, err := svc.CreateFromURL(context.Background(), CreateFromURLRequest{URL: server.URL})
	assert.ErrorIs(t, err, ErrFetchFailed)
	assert.Empty(t, store.createdDocs, "nothing persisted for failed fetches")
}

func TestCreateFromURLUnreachableHost(t *testing.T) {
	store := newStubDocumentStore()
	svc := NewIngestService(IngestWithDocumentStore(store))

	_, err := svc.CreateFromURL(context.Background(), CreateFromURLRequest{URL: "http://127.0.0.1:1/nope"})
	assert.ErrorIs(t, err, ErrFetchFailed)
	assert.Empty(t, store.createdDocs)
}

func TestCreateFromURLPlainTextUsesURLAsName(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("just text"))
	}))
	defer server.Close()

	store := newStubDocumentStore()
	svc := NewIngestService(IngestWithDocumentStore(store))

	result, err := svc.CreateFromURL(context.Background(), CreateFromURLRequest{URL: server.URL})
	require.NoError(t, err)
	assert.Equal(t, server.URL, result.Document.Name)
	assert.Equal(t, "just text", result.Document.Content)
}

func TestCreateFromURLArchivesRawPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html><head><title>t</title></head><body>b</body></html>"))
	}))
	defer server.Close()

	archive, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	store := newStubDocumentStore()
	svc := NewIngestService(
		IngestWithDocumentStore(store),
		IngestWithArchive(archive),
	)

	result, err := svc.CreateFromURL(context.Background(), CreateFromURLRequest{URL: server.URL})
	require.NoError(t, err)

	doc := result.Document
	require.NotNil(t, doc.RawStoragePath)
	assert.Equal(t, *doc.RawStoragePath, store.updatedPaths[doc.ID])

	reader, err := archive.Retrieve(context.Background(), *doc.RawStoragePath)
	require.NoError(t, err)
	defer reader.Close()

	raw, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "<title>t</title>", "the archive keeps the original bytes, not the extraction")
}

func TestCreateFromText(t *testing.T) {
	store := newStubDocumentStore()
	svc := NewIngestService(IngestWithDocumentStore(store))

	result, err := svc.CreateFromText(context.Background(), CreateFromTextRequest{
		Name:    "My Edits",
		Content: "pasted rules",
	})
	require.NoError(t, err)

	doc := result.Document
	assert.Equal(t, "My Edits", doc.Name)
	assert.Equal(t, "pasted rules", doc.Content)
	assert.Nil(t, doc.SourceURL)
	require.NotNil(t, doc.DocumentType)
	assert.Equal(t, "Legacy Code", *doc.DocumentType)
}

func TestCreateFromTextDefaultsName(t *testing.T) {
	store := newStubDocumentStore()
	svc := NewIngestService(IngestWithDocumentStore(store))

	result, err := svc.CreateFromText(context.Background(), CreateFromTextRequest{Content: "rules"})
	require.NoError(t, err)
	assert.Equal(t, "Legacy Code", result.Document.Name)
}

func TestUpdateDocumentPatchesOnlyProvidedFields(t *testing.T) {
	store := newStubDocumentStore()
	svc := NewIngestService(IngestWithDocumentStore(store))

	created, err := svc.CreateFromText(context.Background(), CreateFromTextRequest{
		Name:    "before",
		Content: "old content",
	})
	require.NoError(t, err)

	newName := "after"
	updated, err := svc.UpdateDocument(context.Background(), UpdateDocumentRequest{
		ID:   created.Document.ID,
		Name: &newName,
	})
	require.NoError(t, err)

	assert.Equal(t, "after", updated.Name)
	assert.Equal(t, "old content", updated.Content, "absent fields stay unchanged")
}

func TestUpdateDocumentNotFound(t *testing.T) {
	svc := NewIngestService(IngestWithDocumentStore(newStubDocumentStore()))

	name := "x"
	_, err := svc.UpdateDocument(context.Background(), UpdateDocumentRequest{ID: uuid.New(), Name: &name})
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestDeleteDocument(t *testing.T) {
	store := newStubDocumentStore()
	svc := NewIngestService(IngestWithDocumentStore(store))

	created, err := svc.CreateFromText(context.Background(), CreateFromTextRequest{Content: "rules"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteDocument(context.Background(), created.Document.ID))
	assert.Equal(t, []uuid.UUID{created.Document.ID}, store.deletedIDs)

	err = svc.DeleteDocument(context.Background(), created.Document.ID)
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestGetDocumentNotFound(t *testing.T) {
	svc := NewIngestService(IngestWithDocumentStore(newStubDocumentStore()))

	_, err := svc.GetDocument(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}
