package order

import (
	"errors"
	"fmt"
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
// POST /api/orders
// --------------------------------------------------
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	o, err := h.service.CreateOrder(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   o,
	})
}

// --------------------------------------------------
// GET /api/orders?buyer=...
// --------------------------------------------------
func (h *Handler) ListMine(c *gin.Context) {
	orders, err := h.service.ListByBuyer(c.Request.Context(), c.Query("buyer"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if orders == nil {
		orders = []*Order{}
	}
	c.JSON(http.StatusOK, orders)
}

// --------------------------------------------------
// GET /api/orders/umkm — vendor's incoming orders
// --------------------------------------------------
func (h *Handler) ListIncoming(c *gin.Context) {
	orders, err := h.service.ListIncoming(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if orders == nil {
		orders = []*Order{}
	}
	c.JSON(http.StatusOK, orders)
}

// --------------------------------------------------
// PUT /api/orders/:id — status transition
// --------------------------------------------------
func (h *Handler) UpdateStatus(c *gin.Context) {
	var orderID int
	if _, err := fmt.Sscanf(c.Param("id"), "%d", &orderID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	o, err := h.service.UpdateStatus(c.Request.Context(), orderID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   o,
	})
}
