package handler

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/civic-service/internal/application"
	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/civic-service/internal/application/dto"
	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/civic-service/internal/domain"

	"github.com/gin-gonic/gin"
)

// Identity headers are set by the gateway after JWT validation.
const (
	HeaderUserID   = "X-User-Id"
	HeaderUserName = "X-User-Name"
	HeaderUserRole = "X-User-Role"
)

type CivicHandler struct {
	civic *application.CivicService
}

func NewCivicHandler(civic *application.CivicService) *CivicHandler {
	return &CivicHandler{civic: civic}
}

func (h *CivicHandler) CreateEvent(c *gin.Context) {
	userID := c.GetHeader(HeaderUserID)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return
	}
	if c.GetHeader(HeaderUserRole) != "ADMIN" {
		c.JSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
		return
	}

	var req dto.CreateEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	event, err := h.civic.CreateEvent(userID, c.GetHeader(HeaderUserName), &req)
	if err != nil {
		log.Printf("create event failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusCreated, event)
}

func (h *CivicHandler) ListEvents(c *gin.Context) {
	events, err := h.civic.ListEvents()
	if err != nil {
		log.Printf("list events failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *CivicHandler) GetEvent(c *gin.Context) {
	event, err := h.civic.GetEvent(c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Event not found"})
			return
		}
		log.Printf("get event failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *CivicHandler) RegisterForEvent(c *gin.Context) {
	userID := c.GetHeader(HeaderUserID)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return
	}

	var req dto.RegisterEventReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Event ID is required"})
		return
	}

	registration, err := h.civic.RegisterForEvent(userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyRegistered):
			c.JSON(http.StatusBadRequest, gin.H{"message": "You already registered for this event"})
		case errors.Is(err, domain.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Event not found"})
		default:
			log.Printf("register for event failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":      "Successfully registered",
		"registration": registration,
	})
}

func (h *CivicHandler) MyRegistrations(c *gin.Context) {
	userID := c.GetHeader(HeaderUserID)
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return
	}

	registrations, err := h.civic.MyRegistrations(userID)
	if err != nil {
		log.Printf("list registrations failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, registrations)
}

func (h *CivicHandler) SessionAuditTrail(c *gin.Context) {
	if c.GetHeader(HeaderUserRole) != "ADMIN" {
		c.JSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
		return
	}

	entries, err := h.civic.SessionAuditTrail(c.Param("sessionId"))
	if err != nil {
		log.Printf("load audit trail failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *CivicHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"service":   "civic-service",
		"timestamp": time.Now(),
	})
}
