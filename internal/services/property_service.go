package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/realityai/inspect-api/internal/inspection"
	"github.com/realityai/inspect-api/internal/logger"
	"github.com/realityai/inspect-api/internal/models"
	"github.com/realityai/inspect-api/internal/report"
	"github.com/realityai/inspect-api/internal/repository"
	"github.com/realityai/inspect-api/internal/source"
)

// Service-level errors
var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrInvalidFilter    = errors.New("invalid severity filter")
)

// PropertyDetail is the assembled detail view for one property: the record
// itself, aggregate counts over the FULL issue list, the type breakdown,
// and the issue list after filtering and severity ordering.
type PropertyDetail struct {
	Property   models.Property        `json:"property"`
	Summary    inspection.Summary     `json:"summary"`
	IssueTypes []inspection.TypeCount `json:"issueTypes"`
	Issues     []models.Issue         `json:"issues"`
}

// Report is a rendered inspection report ready to stream to a client.
type Report struct {
	GeneratedAt time.Time
	Filename    string
	Data        []byte
}

// PropertyService defines the interface for property business logic.
type PropertyService interface {
	// ListProperties returns the dashboard catalog. If the configured store
	// fails or holds no properties, the built-in sample catalog is returned
	// instead so the dashboard is never empty.
	ListProperties(ctx context.Context) ([]models.Property, error)

	// GetPropertyDetail assembles the detail view for one property.
	// Summary and IssueTypes always cover the full issue list; severity and
	// issueType only narrow the Issues slice.
	// Returns ErrInvalidFilter for an unrecognized severity value.
	// Returns ErrPropertyNotFound if the property exists nowhere.
	GetPropertyDetail(ctx context.Context, id string, severity inspection.SeverityFilter, issueType string) (*PropertyDetail, error)

	// GenerateReport renders the full PDF inspection report for a property.
	// The report always covers every issue, regardless of dashboard filters.
	// Returns ErrPropertyNotFound if the property exists nowhere.
	GenerateReport(ctx context.Context, id string) (*Report, error)
}

// propertyService is the concrete implementation of PropertyService.
type propertyService struct {
	store repository.PropertyStore
	log   *logger.Logger
	now   func() time.Time
}

// NewPropertyService creates a new instance of PropertyService.
func NewPropertyService(store repository.PropertyStore, log *logger.Logger) PropertyService {
	return &propertyService{
		store: store,
		log:   log,
		now:   time.Now,
	}
}

// ListProperties returns all properties, falling back to the sample catalog
// when the store fails or is empty.
func (s *propertyService) ListProperties(ctx context.Context) ([]models.Property, error) {
	properties, err := s.store.ListProperties(ctx)
	if err != nil {
		s.log.Warn("Property store unavailable, serving sample catalog", map[string]interface{}{
			"error": err.Error(),
		})
		return source.SampleProperties(), nil
	}

	if len(properties) == 0 {
		s.log.Info("Property store empty, serving sample catalog", nil)
		return source.SampleProperties(), nil
	}

	s.log.Info("Properties listed", map[string]interface{}{
		"count": len(properties),
	})
	return properties, nil
}

// GetPropertyDetail assembles the detail view: property record, summary over
// all issues, type breakdown, and the filtered, severity-ordered issue list.
func (s *propertyService) GetPropertyDetail(ctx context.Context, id string, severity inspection.SeverityFilter, issueType string) (*PropertyDetail, error) {
	if !inspection.ValidSeverityFilter(severity) {
		s.log.Warn("Invalid severity filter", map[string]interface{}{
			"property_id": id,
			"severity":    string(severity),
		})
		return nil, fmt.Errorf("%w: %q", ErrInvalidFilter, severity)
	}

	property, issues, err := s.fetchPropertyWithIssues(ctx, id)
	if err != nil {
		return nil, err
	}

	filtered := inspection.Filter(issues, severity, issueType)

	detail := &PropertyDetail{
		Property:   *property,
		Summary:    inspection.Summarize(issues),
		IssueTypes: inspection.IssueTypes(issues),
		Issues:     inspection.SortBySeverity(filtered),
	}

	s.log.Info("Property detail assembled", map[string]interface{}{
		"property_id":  id,
		"total_issues": detail.Summary.TotalIssues,
		"shown_issues": len(detail.Issues),
	})

	return detail, nil
}

// GenerateReport renders the inspection report PDF for a property.
func (s *propertyService) GenerateReport(ctx context.Context, id string) (*Report, error) {
	property, issues, err := s.fetchPropertyWithIssues(ctx, id)
	if err != nil {
		return nil, err
	}

	generatedAt := s.now()
	doc := report.Compose(*property, issues, generatedAt)

	var buf bytes.Buffer
	if err := report.RenderPDF(doc, generatedAt, &buf); err != nil {
		s.log.Error("Failed to render report", err, map[string]interface{}{
			"property_id": id,
		})
		return nil, fmt.Errorf("failed to render report for property %s: %w", id, err)
	}

	s.log.Info("Report generated", map[string]interface{}{
		"property_id": id,
		"pages":       doc.PageCount(),
		"bytes":       buf.Len(),
	})

	return &Report{
		GeneratedAt: generatedAt,
		Filename:    report.Filename(property.Address),
		Data:        buf.Bytes(),
	}, nil
}

// fetchPropertyWithIssues reads a property and its issues from the store,
// falling back to the sample catalog when the store fails or does not know
// the property. A property missing from both yields ErrPropertyNotFound.
func (s *propertyService) fetchPropertyWithIssues(ctx context.Context, id string) (*models.Property, []models.Issue, error) {
	property, err := s.store.GetProperty(ctx, id)
	if err != nil {
		s.log.Warn("Property store unavailable, checking sample catalog", map[string]interface{}{
			"property_id": id,
			"error":       err.Error(),
		})
		return samplePropertyWithIssues(id)
	}

	if property == nil {
		s.log.Debug("Property not in store, checking sample catalog", map[string]interface{}{
			"property_id": id,
		})
		return samplePropertyWithIssues(id)
	}

	issues, err := s.store.ListIssues(ctx, id)
	if err != nil {
		s.log.Error("Failed to load issues", err, map[string]interface{}{
			"property_id": id,
		})
		return nil, nil, fmt.Errorf("failed to load issues for property %s: %w", id, err)
	}

	return property, issues, nil
}

func samplePropertyWithIssues(id string) (*models.Property, []models.Issue, error) {
	for _, p := range source.SampleProperties() {
		if p.ID == id {
			return &p, source.SampleIssues(id), nil
		}
	}
	return nil, nil, ErrPropertyNotFound
}
