package services

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/realityai/inspect-api/internal/inspection"
	"github.com/realityai/inspect-api/internal/logger"
	"github.com/realityai/inspect-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPropertyStore is a mock implementation of PropertyStore for testing
type MockPropertyStore struct {
	mock.Mock
}

func (m *MockPropertyStore) ListProperties(ctx context.Context) ([]models.Property, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Property), args.Error(1)
}

func (m *MockPropertyStore) GetProperty(ctx context.Context, id string) (*models.Property, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *MockPropertyStore) ListIssues(ctx context.Context, propertyID string) ([]models.Issue, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Issue), args.Error(1)
}

func newTestService(store *MockPropertyStore) PropertyService {
	return NewPropertyService(store, logger.New("test"))
}

func storedProperty() *models.Property {
	tour := time.Date(2025, time.November, 12, 0, 0, 0, 0, time.UTC)
	return &models.Property{
		ID:             "p-1",
		Address:        "77 Harbor Way",
		City:           "Alameda",
		State:          "CA",
		ZipCode:        "94501",
		TourDate:       &tour,
		Grade:          "B-",
		EstimatedPrice: 980000,
		ListPrice:      980000,
		OurEstimate:    931000,
	}
}

func storedIssues() []models.Issue {
	return []models.Issue{
		{
			ID:            "i-1",
			PropertyID:    "p-1",
			Title:         "Roof Leak",
			Category:      models.CategoryRoofing,
			ConcernLevel:  8,
			EstimatedCost: models.CostRange{Low: 3000, High: 5000},
		},
		{
			ID:            "i-2",
			PropertyID:    "p-1",
			Title:         "Drafty Window",
			Category:      models.CategoryWindows,
			ConcernLevel:  4,
			EstimatedCost: models.CostRange{Low: 400, High: 600},
		},
		{
			ID:            "i-3",
			PropertyID:    "p-1",
			Title:         "Roof Leak",
			Category:      models.CategoryRoofing,
			ConcernLevel:  6,
			EstimatedCost: models.CostRange{Low: 1000, High: 2000},
		},
	}
}

func TestListProperties_FromStore(t *testing.T) {
	mockStore := new(MockPropertyStore)
	service := newTestService(mockStore)
	ctx := context.Background()

	mockStore.On("ListProperties", ctx).Return([]models.Property{*storedProperty()}, nil)

	properties, err := service.ListProperties(ctx)

	require.NoError(t, err)
	require.Len(t, properties, 1)
	assert.Equal(t, "77 Harbor Way", properties[0].Address)
	mockStore.AssertExpectations(t)
}

func TestListProperties_StoreErrorFallsBackToSamples(t *testing.T) {
	mockStore := new(MockPropertyStore)
	service := newTestService(mockStore)
	ctx := context.Background()

	mockStore.On("ListProperties", ctx).Return(nil, errors.New("connection refused"))

	properties, err := service.ListProperties(ctx)

	require.NoError(t, err)
	require.Len(t, properties, 3)
	assert.Equal(t, "1425 Oak Street", properties[0].Address)
	mockStore.AssertExpectations(t)
}

func TestListProperties_EmptyStoreFallsBackToSamples(t *testing.T) {
	mockStore := new(MockPropertyStore)
	service := newTestService(mockStore)
	ctx := context.Background()

	mockStore.On("ListProperties", ctx).Return([]models.Property{}, nil)

	properties, err := service.ListProperties(ctx)

	require.NoError(t, err)
	assert.Len(t, properties, 3)
	mockStore.AssertExpectations(t)
}

func TestGetPropertyDetail_Success(t *testing.T) {
	mockStore := new(MockPropertyStore)
	service := newTestService(mockStore)
	ctx := context.Background()

	mockStore.On("GetProperty", ctx, "p-1").Return(storedProperty(), nil)
	mockStore.On("ListIssues", ctx, "p-1").Return(storedIssues(), nil)

	detail, err := service.GetPropertyDetail(ctx, "p-1", inspection.FilterAll, inspection.TypeFilterAll)

	require.NoError(t, err)
	assert.Equal(t, "p-1", detail.Property.ID)

	// Summary spans the full issue list
	assert.Equal(t, 3, detail.Summary.TotalIssues)
	assert.Equal(t, 1, detail.Summary.CriticalCount)
	assert.Equal(t, 1, detail.Summary.HighCount)
	assert.Equal(t, 1, detail.Summary.ModerateCount)
	assert.Equal(t, float64(4000+500+1500), detail.Summary.EstimatedRepairTotal)

	// Types are alphabetical with per-title counts
	require.Len(t, detail.IssueTypes, 2)
	assert.Equal(t, inspection.TypeCount{Type: "Drafty Window", Count: 1}, detail.IssueTypes[0])
	assert.Equal(t, inspection.TypeCount{Type: "Roof Leak", Count: 2}, detail.IssueTypes[1])

	// Issues come back severity-descending
	require.Len(t, detail.Issues, 3)
	assert.Equal(t, "i-1", detail.Issues[0].ID)
	assert.Equal(t, "i-3", detail.Issues[1].ID)
	assert.Equal(t, "i-2", detail.Issues[2].ID)
	mockStore.AssertExpectations(t)
}

func TestGetPropertyDetail_FiltersNarrowIssuesNotSummary(t *testing.T) {
	mockStore := new(MockPropertyStore)
	service := newTestService(mockStore)
	ctx := context.Background()

	mockStore.On("GetProperty", ctx, "p-1").Return(storedProperty(), nil)
	mockStore.On("ListIssues", ctx, "p-1").Return(storedIssues(), nil)

	detail, err := service.GetPropertyDetail(ctx, "p-1", inspection.FilterCritical, "Roof Leak")

	require.NoError(t, err)
	assert.Equal(t, 3, detail.Summary.TotalIssues)
	require.Len(t, detail.Issues, 1)
	assert.Equal(t, "i-1", detail.Issues[0].ID)
	mockStore.AssertExpectations(t)
}

func TestGetPropertyDetail_InvalidFilter(t *testing.T) {
	mockStore := new(MockPropertyStore)
	service := newTestService(mockStore)

	_, err := service.GetPropertyDetail(context.Background(), "p-1", "catastrophic", inspection.TypeFilterAll)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidFilter)
	mockStore.AssertNotCalled(t, "GetProperty")
}

func TestGetPropertyDetail_SampleFallback(t *testing.T) {
	mockStore := new(MockPropertyStore)
	service := newTestService(mockStore)
	ctx := context.Background()

	// Store does not know the property, but the sample catalog does
	mockStore.On("GetProperty", ctx, "1").Return(nil, nil)

	detail, err := service.GetPropertyDetail(ctx, "1", inspection.FilterAll, inspection.TypeFilterAll)

	require.NoError(t, err)
	assert.Equal(t, "1425 Oak Street", detail.Property.Address)
	assert.Equal(t, 8, detail.Summary.TotalIssues)
	assert.Equal(t, 2, detail.Summary.CriticalCount)
	mockStore.AssertExpectations(t)
}

func TestGetPropertyDetail_NotFoundAnywhere(t *testing.T) {
	mockStore := new(MockPropertyStore)
	service := newTestService(mockStore)
	ctx := context.Background()

	mockStore.On("GetProperty", ctx, "ghost").Return(nil, nil)

	_, err := service.GetPropertyDetail(ctx, "ghost", inspection.FilterAll, inspection.TypeFilterAll)

	assert.ErrorIs(t, err, ErrPropertyNotFound)
	mockStore.AssertExpectations(t)
}

func TestGetPropertyDetail_IssueLoadError(t *testing.T) {
	mockStore := new(MockPropertyStore)
	service := newTestService(mockStore)
	ctx := context.Background()

	mockStore.On("GetProperty", ctx, "p-1").Return(storedProperty(), nil)
	mockStore.On("ListIssues", ctx, "p-1").Return(nil, errors.New("query timeout"))

	_, err := service.GetPropertyDetail(ctx, "p-1", inspection.FilterAll, inspection.TypeFilterAll)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "query timeout")
	mockStore.AssertExpectations(t)
}

func TestGenerateReport_Success(t *testing.T) {
	mockStore := new(MockPropertyStore)
	service := newTestService(mockStore)
	ctx := context.Background()

	mockStore.On("GetProperty", ctx, "p-1").Return(storedProperty(), nil)
	mockStore.On("ListIssues", ctx, "p-1").Return(storedIssues(), nil)

	rpt, err := service.GenerateReport(ctx, "p-1")

	require.NoError(t, err)
	assert.Equal(t, "RealityAI-Report-77-Harbor-Way.pdf", rpt.Filename)
	assert.True(t, bytes.HasPrefix(rpt.Data, []byte("%PDF-")))
	assert.False(t, rpt.GeneratedAt.IsZero())
	mockStore.AssertExpectations(t)
}

func TestGenerateReport_StoreErrorUsesSampleCatalog(t *testing.T) {
	mockStore := new(MockPropertyStore)
	service := newTestService(mockStore)
	ctx := context.Background()

	mockStore.On("GetProperty", ctx, "1").Return(nil, errors.New("connection refused"))

	rpt, err := service.GenerateReport(ctx, "1")

	require.NoError(t, err)
	assert.Equal(t, "RealityAI-Report-1425-Oak-Street.pdf", rpt.Filename)
	assert.True(t, bytes.HasPrefix(rpt.Data, []byte("%PDF-")))
	mockStore.AssertExpectations(t)
}

func TestGenerateReport_NotFound(t *testing.T) {
	mockStore := new(MockPropertyStore)
	service := newTestService(mockStore)
	ctx := context.Background()

	mockStore.On("GetProperty", ctx, "ghost").Return(nil, nil)

	_, err := service.GenerateReport(ctx, "ghost")

	assert.ErrorIs(t, err, ErrPropertyNotFound)
	mockStore.AssertExpectations(t)
}
