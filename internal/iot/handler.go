package iot

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

const logWindow = 50

type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

// --------------------------------------------------
// POST /api/iot/log — sensor ingest
// --------------------------------------------------
// Always answers 200: a store failure is reported in the body but never as
// an HTTP error, so the sensor simulator keeps its loop running.
func (h *Handler) Log(c *gin.Context) {
	var req LogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	reading := &SensorReading{
		Temperature: req.Temperature,
		Humidity:    req.Humidity,
		DeviceID:    req.DeviceID,
	}

	if err := h.repo.Insert(c.Request.Context(), reading); err != nil {
		log.Printf("iot insert failed (device %s): %v", req.DeviceID, err)
		c.JSON(http.StatusOK, gin.H{"status": "error", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// --------------------------------------------------
// GET /api/iot/logs — last 50, newest first
// --------------------------------------------------
func (h *Handler) List(c *gin.Context) {
	readings, err := h.repo.Last(c.Request.Context(), logWindow)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if readings == nil {
		readings = []*SensorReading{}
	}
	c.JSON(http.StatusOK, readings)
}
