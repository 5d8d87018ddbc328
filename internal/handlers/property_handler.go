package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	apierrors "github.com/realityai/inspect-api/internal/errors"
	"github.com/realityai/inspect-api/internal/inspection"
	"github.com/realityai/inspect-api/internal/middleware"
	"github.com/realityai/inspect-api/internal/models"
	"github.com/realityai/inspect-api/internal/services"
)

// PropertyHandler handles property-related HTTP requests.
type PropertyHandler struct {
	service services.PropertyService
}

// NewPropertyHandler creates a new PropertyHandler instance.
func NewPropertyHandler(service services.PropertyService) *PropertyHandler {
	return &PropertyHandler{
		service: service,
	}
}

// DetailRequest represents the query parameters for the detail endpoint.
// Both filters are optional; absent values mean "all".
type DetailRequest struct {
	Severity string `form:"severity" binding:"omitempty,oneof=all critical high moderate"`
	Type     string `form:"type"`
}

// ListResponse represents the response for the property list endpoint.
type ListResponse struct {
	Properties []models.Property `json:"properties"`
	Count      int               `json:"count"`
}

// List handles GET /api/v1/properties endpoint.
// It returns the full dashboard catalog.
func (h *PropertyHandler) List(c *gin.Context) {
	log := middleware.GetLogger(c)

	properties, err := h.service.ListProperties(c.Request.Context())
	if err != nil {
		apierrors.InternalServerError(c, "Failed to list properties", err)
		return
	}

	if log != nil {
		log.Info("Property list served", map[string]interface{}{
			"count": len(properties),
		})
	}

	c.JSON(http.StatusOK, ListResponse{
		Properties: properties,
		Count:      len(properties),
	})
}

// Detail handles GET /api/v1/properties/:id endpoint.
// Optional severity= and type= query parameters narrow the issue list;
// summary counts always cover the full inspection.
func (h *PropertyHandler) Detail(c *gin.Context) {
	log := middleware.GetLogger(c)
	id := c.Param("id")

	var req DetailRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid query parameters", nil)
		return
	}

	severity := inspection.FilterAll
	if req.Severity != "" {
		severity = inspection.SeverityFilter(req.Severity)
	}
	issueType := inspection.TypeFilterAll
	if req.Type != "" {
		issueType = req.Type
	}

	if log != nil {
		log.Info("Processing detail request", map[string]interface{}{
			"property_id": id,
			"severity":    string(severity),
			"type":        issueType,
		})
	}

	detail, err := h.service.GetPropertyDetail(c.Request.Context(), id, severity, issueType)
	if err != nil {
		if errors.Is(err, services.ErrInvalidFilter) {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}
		if errors.Is(err, services.ErrPropertyNotFound) {
			apierrors.NotFound(c, "Property not found")
			return
		}
		apierrors.InternalServerError(c, "Failed to load property detail", err)
		return
	}

	c.JSON(http.StatusOK, detail)
}

// Report handles GET /api/v1/properties/:id/report endpoint.
// It streams the rendered PDF as a download.
func (h *PropertyHandler) Report(c *gin.Context) {
	log := middleware.GetLogger(c)
	id := c.Param("id")

	rpt, err := h.service.GenerateReport(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			apierrors.NotFound(c, "Property not found")
			return
		}
		apierrors.InternalServerError(c, "Failed to generate report", err)
		return
	}

	if log != nil {
		log.Info("Report served", map[string]interface{}{
			"property_id": id,
			"filename":    rpt.Filename,
			"bytes":       len(rpt.Data),
		})
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", rpt.Filename))
	c.Data(http.StatusOK, "application/pdf", rpt.Data)
}
