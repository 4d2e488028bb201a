package kitchen

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/Azekhiel/Bekal-bangsa/internal/ai"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /api/kitchen/cook
// --------------------------------------------------
func (h *Handler) Cook(c *gin.Context) {
	var req CookRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.service.Cook(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// --------------------------------------------------
// GET /api/kitchen/meals
// --------------------------------------------------
func (h *Handler) ListMeals(c *gin.Context) {
	meals, err := h.service.ListMeals(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if meals == nil {
		meals = []*MealProduction{}
	}
	c.JSON(http.StatusOK, meals)
}

// --------------------------------------------------
// POST /api/kitchen/meals/:id/serve
// --------------------------------------------------
func (h *Handler) Serve(c *gin.Context) {
	var mealID int
	if _, err := fmt.Sscanf(c.Param("id"), "%d", &mealID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid meal id"})
		return
	}

	meal, err := h.service.MarkServed(c.Request.Context(), mealID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   meal,
	})
}

// --------------------------------------------------
// POST /api/recommend-menu
// --------------------------------------------------
func (h *Handler) RecommendMenu(c *gin.Context) {
	var req struct {
		Ingredients []string `json:"ingredients"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	menu, err := h.service.RecommendMenu(c.Request.Context(), req.Ingredients)
	if err != nil {
		if errors.Is(err, ai.ErrUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI unavailable: " + err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, menu)
}

// --------------------------------------------------
// POST /api/kitchen/scan-food — QC vision check
// --------------------------------------------------
func (h *Handler) ScanFood(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot open uploaded file"})
		return
	}
	defer f.Close()

	image, err := io.ReadAll(f)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read uploaded file"})
		return
	}

	scan, err := h.service.ScanFood(c.Request.Context(), image)
	if err != nil {
		if errors.Is(err, ai.ErrUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI unavailable: " + err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, scan)
}

// --------------------------------------------------
// POST /api/kitchen/chat — Chef Bekal
// --------------------------------------------------
func (h *Handler) Chat(c *gin.Context) {
	var req ChatRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	reply, err := h.service.ChatWithChef(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ai.ErrUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error": "Maaf, Chef sedang mengecek gudang. Coba lagi nanti.",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reply": reply})
}
