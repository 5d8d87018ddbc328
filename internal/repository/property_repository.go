package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/realityai/inspect-api/internal/database"
	"github.com/realityai/inspect-api/internal/models"
)

// PropertyStore defines the interface for property and issue data access.
// The service layer depends on this interface so the Postgres-backed store
// and the remote inspection API client are interchangeable.
type PropertyStore interface {
	// ListProperties returns every property known to the store.
	// Returns an empty slice if none exist (not an error).
	ListProperties(ctx context.Context) ([]models.Property, error)

	// GetProperty fetches a single property by ID.
	// Returns nil, nil if the property does not exist (not an error).
	// Returns error only for actual store failures.
	GetProperty(ctx context.Context, id string) (*models.Property, error)

	// ListIssues returns all issues recorded against the given property.
	// Returns an empty slice if the property has no issues (not an error).
	ListIssues(ctx context.Context, propertyID string) ([]models.Issue, error)
}

// propertyRepository is the Postgres-backed implementation of PropertyStore.
type propertyRepository struct {
	db *database.Database
}

// NewPropertyRepository creates a new Postgres-backed PropertyStore.
func NewPropertyRepository(db *database.Database) PropertyStore {
	return &propertyRepository{
		db: db,
	}
}

// propertyColumns is the shared select list for property queries. The issue
// counts and repair total are derived from the issues table in SQL so list
// rows match what the aggregator computes from a full issue fetch.
const propertyColumns = `
	p.id,
	p.address,
	COALESCE(p.city, ''),
	COALESCE(p.state, ''),
	COALESCE(p.zip_code, ''),
	COALESCE(p.image_url, ''),
	COALESCE(p.grade, 'B+'),
	COALESCE(p.estimated_price, 0),
	p.tour_date,
	(SELECT COUNT(*) FROM issues i WHERE i.property_id = p.id),
	(SELECT COUNT(*) FROM issues i WHERE i.property_id = p.id AND i.concern_level >= 8),
	p.created_at,
	p.updated_at
`

// ListProperties fetches all properties ordered by address for stable
// dashboard rendering.
func (r *propertyRepository) ListProperties(ctx context.Context) ([]models.Property, error) {
	query := fmt.Sprintf(`SELECT %s FROM properties p ORDER BY p.address`, propertyColumns)

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	defer rows.Close()

	var results []models.Property

	for rows.Next() {
		property, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property row: %w", err)
		}
		results = append(results, property)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating property rows: %w", err)
	}

	// Return empty slice if no properties exist (not an error)
	if results == nil {
		results = []models.Property{}
	}

	return results, nil
}

// GetProperty fetches a single property by ID.
func (r *propertyRepository) GetProperty(ctx context.Context, id string) (*models.Property, error) {
	query := fmt.Sprintf(`SELECT %s FROM properties p WHERE p.id = $1`, propertyColumns)

	row := r.db.Pool.QueryRow(ctx, query, id)
	property, err := scanProperty(row)

	// Handle no rows found - this is not an error at the repository level
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query property %s: %w", id, err)
	}

	return &property, nil
}

// ListIssues fetches all issues for a property, highest concern first so
// downstream consumers see the same ordering the report uses.
func (r *propertyRepository) ListIssues(ctx context.Context, propertyID string) ([]models.Issue, error) {
	query := `
		SELECT
			id,
			property_id,
			title,
			COALESCE(description, ''),
			COALESCE(category, 'General'),
			COALESCE(image_url, ''),
			COALESCE(estimated_cost_low, 0),
			COALESCE(estimated_cost_high, 0),
			COALESCE(concern_level, 5),
			detected_date,
			created_at
		FROM issues
		WHERE property_id = $1
		ORDER BY concern_level DESC, created_at
	`

	rows, err := r.db.Pool.Query(ctx, query, propertyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query issues for property %s: %w", propertyID, err)
	}
	defer rows.Close()

	var results []models.Issue

	for rows.Next() {
		var issue models.Issue
		var detected *time.Time

		err := rows.Scan(
			&issue.ID,
			&issue.PropertyID,
			&issue.Title,
			&issue.Description,
			&issue.Category,
			&issue.ImageURL,
			&issue.EstimatedCost.Low,
			&issue.EstimatedCost.High,
			&issue.ConcernLevel,
			&detected,
			&issue.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan issue row: %w", err)
		}

		if detected != nil {
			issue.DetectedDate = *detected
		}

		results = append(results, issue)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating issue rows: %w", err)
	}

	// Return empty slice if the property has no issues (not an error)
	if results == nil {
		results = []models.Issue{}
	}

	return results, nil
}

// scanProperty reads one property row. Derived pricing fields mirror the
// listing convention: list price tracks the estimate and our estimate sits
// 5% under it.
func scanProperty(row pgx.Row) (models.Property, error) {
	var property models.Property

	err := row.Scan(
		&property.ID,
		&property.Address,
		&property.City,
		&property.State,
		&property.ZipCode,
		&property.ImageURL,
		&property.Grade,
		&property.EstimatedPrice,
		&property.TourDate,
		&property.IssueCount,
		&property.CriticalIssues,
		&property.CreatedAt,
		&property.UpdatedAt,
	)
	if err != nil {
		return models.Property{}, err
	}

	property.ListPrice = property.EstimatedPrice
	property.OurEstimate = property.EstimatedPrice * 0.95

	return property, nil
}
