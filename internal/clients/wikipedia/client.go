package wikipedia

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/learnmate/coordinator/internal/models"
	"github.com/learnmate/coordinator/internal/utils"
)

const (
	defaultSummaryURL  = "https://en.wikipedia.org/api/rest_v1/page/summary"
	defaultSectionsURL = "https://en.wikipedia.org/api/rest_v1/page/mobile-sections"
	userAgent          = "LearnMate-Quiz-Generator/1.0"

	summaryTimeout  = 10 * time.Second
	sectionsTimeout = 15 * time.Second

	// Sections shorter than this carry too little text to question.
	minSectionLength = 50
)

// ErrPageNotFound is returned when no title variant yields usable content.
var ErrPageNotFound = errors.New("wikipedia: no page found for subject")

// Fetcher resolves a subject title to cleaned article content.
type Fetcher interface {
	FetchSubjectData(ctx context.Context, subjectTitle string) (*models.SourcePage, error)
}

// Client talks to the Wikipedia REST API.
type Client struct {
	httpClient  *http.Client
	summaryURL  string
	sectionsURL string
	logger      utils.Logger
}

func NewClient(logger utils.Logger) *Client {
	return &Client{
		httpClient:  &http.Client{},
		summaryURL:  defaultSummaryURL,
		sectionsURL: defaultSectionsURL,
		logger:      logger,
	}
}

// NewClientWithBaseURLs is used by tests to point the client at a stub server.
func NewClientWithBaseURLs(logger utils.Logger, summaryURL, sectionsURL string) *Client {
	c := NewClient(logger)
	c.summaryURL = summaryURL
	c.sectionsURL = sectionsURL
	return c
}

var (
	htmlTagPattern   = regexp.MustCompile(`<[^>]*>`)
	referencePattern = regexp.MustCompile(`\[\d+\]`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// cleanText strips markup, bracketed reference numbers and redundant
// whitespace from raw article text.
func cleanText(text string) string {
	text = htmlTagPattern.ReplaceAllString(text, "")
	text = referencePattern.ReplaceAllString(text, "")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

type summaryResponse struct {
	Title   string `json:"title"`
	Extract string `json:"extract"`
}

type sectionsResponse struct {
	DisplayTitle    string `json:"displaytitle"`
	NormalizedTitle string `json:"normalizedtitle"`
	Lead            struct {
		Text string `json:"text"`
	} `json:"lead"`
	Remaining struct {
		Sections []struct {
			Line   string `json:"line"`
			Anchor string `json:"anchor"`
			Text   string `json:"text"`
		} `json:"sections"`
	} `json:"remaining"`
}

func (c *Client) getJSON(ctx context.Context, rawURL string, timeout time.Duration, dest interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("wikipedia: unexpected status %d for %s", resp.StatusCode, rawURL)
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}

func (c *Client) fetchPageSummary(ctx context.Context, title string) (*models.SourcePage, error) {
	var data summaryResponse
	rawURL := c.summaryURL + "/" + url.PathEscape(title)
	if err := c.getJSON(ctx, rawURL, summaryTimeout, &data); err != nil {
		return nil, err
	}

	pageTitle := data.Title
	if pageTitle == "" {
		pageTitle = title
	}
	return &models.SourcePage{
		Title:    pageTitle,
		Extract:  cleanText(data.Extract),
		Sections: []models.SourceSection{},
	}, nil
}

func (c *Client) fetchFullPage(ctx context.Context, title string) (*models.SourcePage, error) {
	var data sectionsResponse
	rawURL := c.sectionsURL + "/" + url.PathEscape(title)
	if err := c.getJSON(ctx, rawURL, sectionsTimeout, &data); err != nil {
		return nil, err
	}

	sections := make([]models.SourceSection, 0, len(data.Remaining.Sections))
	for _, section := range data.Remaining.Sections {
		content := cleanText(section.Text)
		if len(content) < minSectionLength {
			continue
		}
		sectionTitle := section.Line
		if sectionTitle == "" {
			sectionTitle = section.Anchor
		}
		sections = append(sections, models.SourceSection{
			Title:   sectionTitle,
			Content: content,
		})
	}

	pageTitle := data.DisplayTitle
	if pageTitle == "" {
		pageTitle = data.NormalizedTitle
	}
	if pageTitle == "" {
		pageTitle = title
	}
	return &models.SourcePage{
		Title:    pageTitle,
		Extract:  cleanText(data.Lead.Text),
		Sections: sections,
	}, nil
}

var trailingQualifierPattern = regexp.MustCompile(` Fundamentals| Basics| Introduction`)

// titleVariants lists the lookup titles tried in order for a subject.
func titleVariants(subjectTitle string) []string {
	candidates := []string{
		subjectTitle,
		strings.ReplaceAll(subjectTitle, " & ", " and "),
		strings.TrimSpace(trailingQualifierPattern.ReplaceAllString(subjectTitle, "")),
		strings.SplitN(subjectTitle, " & ", 2)[0],
		strings.SplitN(subjectTitle, " and ", 2)[0],
	}

	variants := make([]string, 0, len(candidates))
	seen := make(map[string]bool)
	for _, candidate := range candidates {
		candidate = strings.TrimSpace(candidate)
		if candidate == "" || seen[candidate] {
			continue
		}
		seen[candidate] = true
		variants = append(variants, candidate)
	}
	return variants
}

// FetchSubjectData tries each title variant, preferring sectioned full-page
// content and falling back to the summary endpoint. Individual fetch
// failures are logged and the next variant is tried.
func (c *Client) FetchSubjectData(ctx context.Context, subjectTitle string) (*models.SourcePage, error) {
	variants := titleVariants(subjectTitle)

	for _, title := range variants {
		page, err := c.fetchFullPage(ctx, title)
		if err != nil {
			c.logger.Debug("Full page fetch failed", "title", title, "error", err)
		} else if len(page.Sections) > 0 {
			return page, nil
		}
	}

	for _, title := range variants {
		page, err := c.fetchPageSummary(ctx, title)
		if err != nil {
			c.logger.Debug("Summary fetch failed", "title", title, "error", err)
			continue
		}
		return page, nil
	}

	c.logger.Warn("Could not find Wikipedia data for subject", "subject", subjectTitle)
	return nil, ErrPageNotFound
}
