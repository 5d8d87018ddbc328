// Package source provides the remote implementation of the property store,
// backed by the legacy inspection API, plus the built-in sample catalog used
// when no live data is available.
package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/realityai/inspect-api/internal/config"
	"github.com/realityai/inspect-api/internal/models"
	"github.com/realityai/inspect-api/internal/repository"
)

// maxResponseBytes guards against unbounded upstream payloads.
const maxResponseBytes = 4 << 20 // 4MB

// RemoteStore is a PropertyStore backed by the upstream inspection API.
// The upstream wraps every payload in a {success, data, error} envelope.
type RemoteStore struct {
	baseURL string
	http    *retryablehttp.Client
}

var _ repository.PropertyStore = (*RemoteStore)(nil)

// NewRemoteStore builds a RemoteStore from source configuration. Retries use
// short exponential backoff so a flaky upstream does not stall the dashboard.
func NewRemoteStore(cfg config.SourceConfig) *RemoteStore {
	rc := retryablehttp.NewClient()
	rc.RetryWaitMin = 100 * time.Millisecond
	rc.RetryWaitMax = 900 * time.Millisecond
	rc.RetryMax = cfg.RetryMax
	rc.HTTPClient.Timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	rc.Logger = nil

	return &RemoteStore{
		baseURL: cfg.BaseURL,
		http:    rc,
	}
}

// envelope is the upstream response wrapper.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Success bool            `json:"success"`
}

// remoteProperty mirrors the upstream property payload. Dates arrive as
// plain "YYYY-MM-DD" strings, timestamps as RFC 3339.
type remoteProperty struct {
	ID             string  `json:"id"`
	Address        string  `json:"address"`
	City           string  `json:"city"`
	State          string  `json:"state"`
	ZipCode        string  `json:"zipCode"`
	TourDate       *string `json:"tourDate"`
	ImageURL       string  `json:"imageUrl"`
	Grade          string  `json:"grade"`
	EstimatedPrice float64 `json:"estimatedPrice"`
	ListPrice      float64 `json:"listPrice"`
	OurEstimate    float64 `json:"ourEstimate"`
	IssueCount     int     `json:"issueCount"`
	CriticalIssues int     `json:"criticalIssues"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// remoteIssue mirrors the upstream issue payload. Newer upstreams send the
// numeric cost bounds; older ones only send the "$X - $Y" display string,
// which is parsed here and nowhere downstream.
type remoteIssue struct {
	ID                string   `json:"id"`
	PropertyID        string   `json:"propertyId"`
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Category          string   `json:"category"`
	ImageURL          string   `json:"imageUrl"`
	ConcernLevel      int      `json:"concernLevel"`
	EstimatedCostLow  *float64 `json:"estimatedCostLow"`
	EstimatedCostHigh *float64 `json:"estimatedCostHigh"`
	EstimatedCost     string   `json:"estimatedCost"`
	DetectedDate      *string  `json:"detectedDate"`
	CreatedAt         string   `json:"createdAt"`
}

// remoteDetail is the property detail payload: property fields plus issues.
type remoteDetail struct {
	remoteProperty
	Issues []remoteIssue `json:"issues"`
}

// ListProperties fetches all properties from the upstream list endpoint.
func (s *RemoteStore) ListProperties(ctx context.Context) ([]models.Property, error) {
	data, err := s.get(ctx, "/api/properties/")
	if err != nil {
		return nil, err
	}

	var remotes []remoteProperty
	if err := json.Unmarshal(data, &remotes); err != nil {
		return nil, fmt.Errorf("failed to decode property list: %w", err)
	}

	properties := make([]models.Property, 0, len(remotes))
	for _, r := range remotes {
		properties = append(properties, r.toModel())
	}
	return properties, nil
}

// GetProperty fetches a single property via the detail endpoint.
// Returns nil, nil if the upstream reports the property missing.
func (s *RemoteStore) GetProperty(ctx context.Context, id string) (*models.Property, error) {
	detail, err := s.getDetail(ctx, id)
	if err != nil || detail == nil {
		return nil, err
	}
	property := detail.toModel()
	return &property, nil
}

// ListIssues fetches a property's issues. The upstream has no issues-only
// endpoint, so this reads the detail payload and discards the property part.
func (s *RemoteStore) ListIssues(ctx context.Context, propertyID string) ([]models.Issue, error) {
	detail, err := s.getDetail(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if detail == nil {
		return []models.Issue{}, nil
	}

	issues := make([]models.Issue, 0, len(detail.Issues))
	for _, r := range detail.Issues {
		issues = append(issues, r.toModel())
	}
	return issues, nil
}

func (s *RemoteStore) getDetail(ctx context.Context, id string) (*remoteDetail, error) {
	data, err := s.get(ctx, fmt.Sprintf("/api/properties/%s/", id))
	if err != nil {
		if errors.Is(err, errUpstreamNotFound) {
			return nil, nil
		}
		return nil, err
	}

	var detail remoteDetail
	if err := json.Unmarshal(data, &detail); err != nil {
		return nil, fmt.Errorf("failed to decode property detail: %w", err)
	}
	return &detail, nil
}

// errUpstreamNotFound marks a 404 from the upstream so callers can map it
// to the repository's nil-means-missing convention.
var errUpstreamNotFound = errors.New("upstream resource not found")

// get performs a GET against the upstream and unwraps the envelope.
func (s *RemoteStore) get(ctx context.Context, path string) (json.RawMessage, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build upstream request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, errUpstreamNotFound
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read upstream response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to decode upstream envelope: %w", err)
	}
	if resp.StatusCode >= 400 || !env.Success {
		msg := env.Error
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, fmt.Errorf("upstream error %d on %s: %s", resp.StatusCode, path, msg)
	}

	return env.Data, nil
}

func (r remoteProperty) toModel() models.Property {
	return models.Property{
		ID:             r.ID,
		Address:        r.Address,
		City:           r.City,
		State:          r.State,
		ZipCode:        r.ZipCode,
		TourDate:       parseDate(r.TourDate),
		ImageURL:       r.ImageURL,
		Grade:          r.Grade,
		EstimatedPrice: r.EstimatedPrice,
		ListPrice:      r.ListPrice,
		OurEstimate:    r.OurEstimate,
		IssueCount:     r.IssueCount,
		CriticalIssues: r.CriticalIssues,
		CreatedAt:      parseTimestamp(r.CreatedAt),
		UpdatedAt:      parseTimestamp(r.UpdatedAt),
	}
}

func (r remoteIssue) toModel() models.Issue {
	issue := models.Issue{
		ID:           r.ID,
		PropertyID:   r.PropertyID,
		Title:        r.Title,
		Description:  r.Description,
		Category:     models.Category(r.Category),
		ImageURL:     r.ImageURL,
		ConcernLevel: r.ConcernLevel,
		CreatedAt:    parseTimestamp(r.CreatedAt),
	}
	if d := parseDate(r.DetectedDate); d != nil {
		issue.DetectedDate = *d
	}

	// A malformed legacy cost string degrades to a zero range; downstream
	// aggregation treats that as a zero contribution.
	switch {
	case r.EstimatedCostLow != nil && r.EstimatedCostHigh != nil:
		issue.EstimatedCost = models.CostRange{Low: *r.EstimatedCostLow, High: *r.EstimatedCostHigh}
	case r.EstimatedCost != "":
		if parsed, err := models.ParseCostRange(r.EstimatedCost); err == nil {
			issue.EstimatedCost = parsed
		}
	}

	return issue
}

// parseDate reads an upstream "YYYY-MM-DD" date, tolerating a full RFC 3339
// timestamp. Returns nil for absent or unparseable values.
func parseDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	if t, err := time.Parse("2006-01-02", *s); err == nil {
		return &t
	}
	if t, err := time.Parse(time.RFC3339, *s); err == nil {
		return &t
	}
	return nil
}

func parseTimestamp(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}
