package supply

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/Azekhiel/Bekal-bangsa/internal/ai"
	"github.com/Azekhiel/Bekal-bangsa/internal/geo"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /api/analyze — vision preview, nothing stored
// --------------------------------------------------
func (h *Handler) Analyze(c *gin.Context) {
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

	items, err := h.service.AnalyzeImage(c.Request.Context(), image)
	if err != nil {
		if errors.Is(err, ai.ErrUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI unavailable: " + err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   items,
	})
}

// --------------------------------------------------
// POST /api/upload — photo to object storage
// --------------------------------------------------
func (h *Handler) Upload(c *gin.Context) {
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

	url, err := h.service.UploadPhoto(
		c.Request.Context(),
		fileHeader.Filename,
		f,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// --------------------------------------------------
// POST /api/supplies — bulk insert
// --------------------------------------------------
func (h *Handler) CreateSupplies(c *gin.Context) {
	var inputs []SupplyInput

	if err := c.ShouldBindJSON(&inputs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if len(inputs) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"status":  "empty",
			"message": "Tidak ada barang untuk disimpan",
		})
		return
	}

	items, err := h.service.CreateSupplies(c.Request.Context(), inputs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"count":  len(items),
		"data":   items,
	})
}

// --------------------------------------------------
// GET /api/supplies — dashboard listing (?owner= narrows to one vendor)
// --------------------------------------------------
func (h *Handler) ListSupplies(c *gin.Context) {
	var supplies []*Supply
	var err error

	if owner := c.Query("owner"); owner != "" {
		supplies, err = h.service.ListByOwner(c.Request.Context(), owner)
	} else {
		supplies, err = h.service.ListSupplies(c.Request.Context())
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if supplies == nil {
		supplies = []*Supply{}
	}
	c.JSON(http.StatusOK, supplies)
}

// --------------------------------------------------
// GET /api/suppliers/search?q=Bawang&lat=..&long=..
// --------------------------------------------------
func (h *Handler) SearchSuppliers(c *gin.Context) {
	keyword := c.Query("q")

	lat := parseCoord(c.Query("lat"), geo.MonasLat)
	long := parseCoord(c.Query("long"), geo.MonasLong)

	results, err := h.service.SearchSuppliers(c.Request.Context(), keyword, lat, long)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if results == nil {
		results = []*SearchResult{}
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"count":  len(results),
		"data":   results,
	})
}

func parseCoord(raw string, fallback float64) float64 {
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return v
}
