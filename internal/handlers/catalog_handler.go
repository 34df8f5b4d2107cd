package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/learnmate/coordinator/internal/repositories"
	"github.com/learnmate/coordinator/internal/services"
	"github.com/learnmate/coordinator/internal/utils"
)

type CatalogHandler struct {
	BaseHandler
	catalog         repositories.CatalogRepository
	insightsService *services.InsightsService
}

func NewCatalogHandler(catalog repositories.CatalogRepository, insightsService *services.InsightsService, logger utils.Logger) *CatalogHandler {
	return &CatalogHandler{
		BaseHandler:     NewBaseHandler(logger),
		catalog:         catalog,
		insightsService: insightsService,
	}
}

// ListCatalog returns every course in the catalog.
func (h *CatalogHandler) ListCatalog(c *gin.Context) {
	items, err := h.catalog.List(c.Request.Context())
	if err != nil {
		h.RespondWithError(c, http.StatusInternalServerError, "Failed to load catalog", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetCourse returns a single catalog entry.
func (h *CatalogHandler) GetCourse(c *gin.Context) {
	courseID := ParseStringIDParam(c, "courseId")
	if courseID == "" {
		return
	}

	course, err := h.catalog.GetByID(c.Request.Context(), courseID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Message: "Course not found"})
			return
		}
		h.RespondWithError(c, http.StatusInternalServerError, "Failed to load course", err)
		return
	}
	c.JSON(http.StatusOK, course)
}

// GetCourseInsights returns the enrichment payload for a course.
func (h *CatalogHandler) GetCourseInsights(c *gin.Context) {
	courseID := ParseStringIDParam(c, "courseId")
	if courseID == "" {
		return
	}

	insights, err := h.insightsService.CourseInsights(c.Request.Context(), courseID)
	if err != nil {
		if services.IsNotFound(err) {
			c.JSON(http.StatusNotFound, ErrorResponse{Message: "Course not found"})
			return
		}
		h.RespondWithError(c, http.StatusInternalServerError, "Failed to load course insights", err)
		return
	}
	c.JSON(http.StatusOK, insights)
}
