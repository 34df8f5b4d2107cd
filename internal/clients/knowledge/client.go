package knowledge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/learnmate/coordinator/internal/utils"
)

const (
	defaultAPIURL  = "https://www.wikidata.org/w/api.php"
	requestTimeout = 5 * time.Second
)

// ErrNoDescription is returned when the knowledge base has no entry for
// the subject.
var ErrNoDescription = errors.New("knowledge: no description found")

// Describer looks up a one-line description of a subject.
type Describer interface {
	Describe(ctx context.Context, subject string) (string, error)
}

// Client queries the Wikidata entity-search API for short subject
// descriptions used in catalog insights.
type Client struct {
	apiURL     string
	httpClient *http.Client
	logger     utils.Logger
}

func NewClient(logger utils.Logger) *Client {
	return &Client{
		apiURL:     defaultAPIURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
	}
}

// NewClientWithURL is used by tests to point the client at a stub server.
func NewClientWithURL(apiURL string, logger utils.Logger) *Client {
	c := NewClient(logger)
	c.apiURL = apiURL
	return c
}

type searchResponse struct {
	Search []struct {
		Description string `json:"description"`
	} `json:"search"`
}

func (c *Client) Describe(ctx context.Context, subject string) (string, error) {
	params := url.Values{}
	params.Set("action", "wbsearchentities")
	params.Set("search", subject)
	params.Set("language", "en")
	params.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("knowledge: unexpected status %d", resp.StatusCode)
	}

	var data searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", err
	}
	if len(data.Search) == 0 || data.Search[0].Description == "" {
		return "", ErrNoDescription
	}
	return data.Search[0].Description, nil
}
