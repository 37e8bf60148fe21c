package metadata_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campuslib/library-circulation-go/metadata"
)

func Test_GoogleBooksClient_Lookup_MapsFirstVolume(t *testing.T) {
	// arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/volumes", r.URL.Path)
		assert.Equal(t, "isbn:9780306406157", r.URL.Query().Get("q"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"totalItems": 1,
			"items": [{
				"volumeInfo": {
					"title": "Molecular Biology",
					"authors": ["Bruce Alberts", "Alexander Johnson"],
					"publisher": "Garland",
					"publishedDate": "2015-03-02"
				}
			}]
		}`))
	}))
	defer server.Close()

	client := metadata.NewGoogleBooksClient(metadata.WithBaseURL(server.URL))

	// act
	meta, err := client.Lookup(context.Background(), "9780306406157")

	// assert
	require.NoError(t, err)
	assert.Equal(t, "Molecular Biology", meta.Title)
	assert.Equal(t, []string{"Bruce Alberts", "Alexander Johnson"}, meta.Authors)
	assert.Equal(t, "Garland", meta.Publisher)
	assert.Equal(t, 2015, meta.Year)
}

func Test_GoogleBooksClient_Lookup_YearOnlyPublishedDate(t *testing.T) {
	// arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{
			"totalItems": 1,
			"items": [{"volumeInfo": {"title": "T", "authors": ["A"], "publisher": "P", "publishedDate": "1998"}}]
		}`))
	}))
	defer server.Close()

	client := metadata.NewGoogleBooksClient(metadata.WithBaseURL(server.URL))

	// act
	meta, err := client.Lookup(context.Background(), "9780306406157")

	// assert
	require.NoError(t, err)
	assert.Equal(t, 1998, meta.Year)
}

func Test_GoogleBooksClient_Lookup_NoHitsIsNotFound(t *testing.T) {
	// arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"totalItems": 0}`))
	}))
	defer server.Close()

	client := metadata.NewGoogleBooksClient(metadata.WithBaseURL(server.URL))

	// act
	_, err := client.Lookup(context.Background(), "9780306406157")

	// assert
	assert.ErrorIs(t, err, metadata.ErrNotFound)
}

func Test_GoogleBooksClient_Lookup_ServerErrorIsLookupFailure(t *testing.T) {
	// arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := metadata.NewGoogleBooksClient(metadata.WithBaseURL(server.URL))

	// act
	_, err := client.Lookup(context.Background(), "9780306406157")

	// assert
	assert.ErrorIs(t, err, metadata.ErrLookupFailed)
}

func Test_GoogleBooksClient_Lookup_GarbagePayloadIsLookupFailure(t *testing.T) {
	// arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"totalItems": `))
	}))
	defer server.Close()

	client := metadata.NewGoogleBooksClient(metadata.WithBaseURL(server.URL))

	// act
	_, err := client.Lookup(context.Background(), "9780306406157")

	// assert
	assert.ErrorIs(t, err, metadata.ErrLookupFailed)
}
