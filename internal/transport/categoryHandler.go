package transport

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ainthinai/booking-api/internal/service"
)

type CategoryHandler struct {
	categoryService service.CategoryService
	maxImageBytes   int64
}

func NewCategoryHandler(categoryService service.CategoryService, maxImageBytes int64) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, maxImageBytes: maxImageBytes}
}

func (h *CategoryHandler) readOptionalImage(c *gin.Context) (*service.FileUpload, bool) {
	header, err := c.FormFile("image")
	if err != nil {
		// no file attached
		return nil, true
	}

	upload, err := readUpload(header, h.maxImageBytes)
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return upload, true
}

func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.GetAllCategories(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	image, ok := h.readOptionalImage(c)
	if !ok {
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), c.PostForm("name"), image)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Category created",
		"id":      category.ID,
	})
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	image, ok := h.readOptionalImage(c)
	if !ok {
		return
	}

	err := h.categoryService.UpdateCategory(c.Request.Context(), c.Param("id"), c.PostForm("name"), image)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Updated", nil)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.categoryService.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}

	respondSuccess(c, http.StatusOK, "Deleted", nil)
}
