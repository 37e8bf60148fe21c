package metadata

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/campuslib/library-circulation-go/core"
)

const defaultGoogleBooksBaseURL = "https://www.googleapis.com/books/v1"

var jsonCodec = jsoniter.ConfigFastest

// GoogleBooksClient implements Lookup against the Google Books volumes API.
type GoogleBooksClient struct {
	httpClient *http.Client
	baseURL    string
}

// ClientOption defines a functional option for configuring GoogleBooksClient.
type ClientOption func(*GoogleBooksClient)

// WithHTTPClient sets the HTTP client, e.g. one with custom timeouts.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *GoogleBooksClient) {
		c.httpClient = httpClient
	}
}

// WithBaseURL overrides the API base URL, used by tests to point at a local server.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *GoogleBooksClient) {
		c.baseURL = baseURL
	}
}

// NewGoogleBooksClient creates a lookup client with optional configuration.
func NewGoogleBooksClient(options ...ClientOption) *GoogleBooksClient {
	client := &GoogleBooksClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    defaultGoogleBooksBaseURL,
	}

	for _, option := range options {
		option(client)
	}

	return client
}

// volumesResponse mirrors the slice of the volumes API payload this client reads.
type volumesResponse struct {
	TotalItems int `json:"totalItems"`
	Items      []struct {
		VolumeInfo struct {
			Title         string   `json:"title"`
			Authors       []string `json:"authors"`
			Publisher     string   `json:"publisher"`
			PublishedDate string   `json:"publishedDate"`
		} `json:"volumeInfo"`
	} `json:"items"`
}

// Lookup queries the volumes API by ISBN and maps the first hit onto BookMetadata.
func (c *GoogleBooksClient) Lookup(ctx context.Context, isbn core.ISBNString) (BookMetadata, error) {
	var empty BookMetadata

	requestURL := fmt.Sprintf("%s/volumes?q=%s", c.baseURL, url.QueryEscape("isbn:"+isbn))

	request, buildErr := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if buildErr != nil {
		return empty, errors.Join(ErrLookupFailed, buildErr)
	}

	response, doErr := c.httpClient.Do(request)
	if doErr != nil {
		return empty, errors.Join(ErrLookupFailed, doErr)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return empty, errors.Join(ErrLookupFailed, fmt.Errorf("unexpected status %d", response.StatusCode))
	}

	var payload volumesResponse
	if decodeErr := jsonCodec.NewDecoder(response.Body).Decode(&payload); decodeErr != nil {
		return empty, errors.Join(ErrLookupFailed, decodeErr)
	}

	if payload.TotalItems == 0 || len(payload.Items) == 0 {
		return empty, ErrNotFound
	}

	info := payload.Items[0].VolumeInfo

	return BookMetadata{
		Title:     info.Title,
		Authors:   info.Authors,
		Publisher: info.Publisher,
		Year:      yearFromPublishedDate(info.PublishedDate),
	}, nil
}

// yearFromPublishedDate extracts the year from dates like "2006", "2006-07", "2006-07-14".
func yearFromPublishedDate(publishedDate string) int {
	if len(publishedDate) < 4 {
		return 0
	}

	year, err := strconv.Atoi(publishedDate[:4])
	if err != nil {
		return 0
	}

	return year
}
