package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ainthinai/booking-api/internal/service"
)

type ItineraryHandler struct {
	itineraryService service.ItineraryService
	maxImageBytes    int64
}

func NewItineraryHandler(itineraryService service.ItineraryService, maxImageBytes int64) *ItineraryHandler {
	return &ItineraryHandler{itineraryService: itineraryService, maxImageBytes: maxImageBytes}
}

// SaveItinerary accepts a multipart form: "tourId", an "itinerary" JSON
// field with the full day tree, and any number of "images" files consumed
// in order, one per activity.
func (h *ItineraryHandler) SaveItinerary(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid multipart form")
		return
	}

	req := &service.SaveItineraryRequest{
		TourID: c.PostForm("tourId"),
	}

	if raw := c.PostForm("itinerary"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &req.Days); err != nil {
			respondError(c, http.StatusBadRequest, "invalid itinerary payload")
			return
		}
	}

	for _, header := range form.File["images"] {
		upload, err := readUpload(header, h.maxImageBytes)
		if err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return
		}
		req.Files = append(req.Files, *upload)
	}

	if _, err := h.itineraryService.SaveItinerary(c.Request.Context(), req); err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Itinerary saved successfully", nil)
}

func (h *ItineraryHandler) GetItinerary(c *gin.Context) {
	days, err := h.itineraryService.GetItinerary(c.Request.Context(), c.Param("tourId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, days)
}
