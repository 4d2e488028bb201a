package notify

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// --------------------------------------------------
// POST /api/notifications/trigger — daily check
// --------------------------------------------------
func (h *Handler) Trigger(c *gin.Context) {
	result, err := h.service.CheckExpiryAndNotify(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// "data" mirrors "messages": the older dashboard reads the former, the
	// newer one the latter.
	c.JSON(http.StatusOK, gin.H{
		"status":         result.Status,
		"messages":       result.Messages,
		"data":           result.Messages,
		"expiring_items": result.ExpiringItems,
		"rescue_menu":    result.RescueMenu,
	})
}
