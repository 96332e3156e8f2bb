package transport

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ainthinai/booking-api/internal/service"
)

type TourHandler struct {
	tourService   service.TourService
	maxImageBytes int64
}

func NewTourHandler(tourService service.TourService, maxImageBytes int64) *TourHandler {
	return &TourHandler{tourService: tourService, maxImageBytes: maxImageBytes}
}

// parseJSONList tolerates both a JSON array and an already-empty value,
// the way the admin form submits feature id lists.
func parseJSONList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil || out == nil {
		return []string{}
	}
	return out
}

func parsePrice(raw string) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}

func readUpload(header *multipart.FileHeader, maxBytes int64) (*service.FileUpload, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxBytes {
		return nil, errFileTooLarge
	}

	return &service.FileUpload{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

var errFileTooLarge = errors.New("uploaded file is too large")

func (h *TourHandler) parseSaveRequest(c *gin.Context) (*service.SaveTourRequest, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid multipart form")
		return nil, false
	}

	req := &service.SaveTourRequest{
		CategoryID:   c.PostForm("category_id"),
		Title:        c.PostForm("title"),
		Place:        c.PostForm("place"),
		State:        c.PostForm("state"),
		District:     c.PostForm("district"),
		Description:  c.PostForm("description"),
		Location:     c.PostForm("location"),
		AdultPrice:   parsePrice(c.PostForm("adult_price")),
		ChildPrice:   parsePrice(c.PostForm("child_price")),
		Amenities:    parseJSONList(c.PostForm("amenities")),
		Activities:   parseJSONList(c.PostForm("activities")),
		Food:         parseJSONList(c.PostForm("food")),
		ThingsToKnow: parseJSONList(c.PostForm("things_to_know")),
	}

	if headers := form.File["main_image"]; len(headers) > 0 {
		upload, err := readUpload(headers[0], h.maxImageBytes)
		if err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return nil, false
		}
		req.MainImage = upload
	}

	for _, header := range form.File["gallery_images"] {
		upload, err := readUpload(header, h.maxImageBytes)
		if err != nil {
			respondError(c, http.StatusBadRequest, err.Error())
			return nil, false
		}
		req.Gallery = append(req.Gallery, *upload)
	}

	return req, true
}

func (h *TourHandler) CreateTour(c *gin.Context) {
	req, ok := h.parseSaveRequest(c)
	if !ok {
		return
	}

	tour, err := h.tourService.CreateTour(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Tour created",
		"id":      tour.ID,
	})
}

func (h *TourHandler) UpdateTour(c *gin.Context) {
	req, ok := h.parseSaveRequest(c)
	if !ok {
		return
	}

	if err := h.tourService.UpdateTour(c.Request.Context(), c.Param("id"), req); err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Tour updated", nil)
}

func (h *TourHandler) DeleteTour(c *gin.Context) {
	if err := h.tourService.DeleteTour(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Tour deleted", nil)
}

func (h *TourHandler) GetAllTours(c *gin.Context) {
	tours, err := h.tourService.GetAllTours(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tours)
}

func (h *TourHandler) GetTour(c *gin.Context) {
	tour, err := h.tourService.GetTour(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, tour)
}
