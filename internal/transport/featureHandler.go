package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ainthinai/booking-api/internal/service"
)

type FeatureHandler struct {
	featureService service.FeatureService
}

func NewFeatureHandler(featureService service.FeatureService) *FeatureHandler {
	return &FeatureHandler{featureService: featureService}
}

func (h *FeatureHandler) CreateFeature(c *gin.Context) {
	var req service.CreateFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	feature, err := h.featureService.CreateFeature(c.Request.Context(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Feature created",
		"id":      feature.ID,
	})
}

func (h *FeatureHandler) GetFeaturesByType(c *gin.Context) {
	features, err := h.featureService.GetFeaturesByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, features)
}

func (h *FeatureHandler) GetFeature(c *gin.Context) {
	feature, err := h.featureService.GetFeature(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, feature)
}

func (h *FeatureHandler) UpdateFeature(c *gin.Context) {
	var req service.UpdateFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.featureService.UpdateFeature(c.Request.Context(), c.Param("id"), &req); err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Feature updated", nil)
}

func (h *FeatureHandler) DeleteFeature(c *gin.Context) {
	if err := h.featureService.DeleteFeature(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Feature deleted", nil)
}
