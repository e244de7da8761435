package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/ai-engine/internal/application"
	"github.com/Shrivardhan5306/Senatebot-Autonomous-Governance/services/ai-engine/internal/domain"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	governance *application.GovernanceService
}

func NewMessageHandler(governance *application.GovernanceService) *MessageHandler {
	return &MessageHandler{governance: governance}
}

type messageRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// HandleMessage is POST /api/ai/message. Error mapping: missing message is a
// 400 with no pipeline call; unparseable model output is a 500 carrying the
// raw completion for diagnosis; gateway trouble is a 502 without it.
func (h *MessageHandler) HandleMessage(c *gin.Context) {
	var req messageRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	resp, err := h.governance.Process(c.Request.Context(), req.SessionID, req.Message)
	if err != nil {
		var parseErr *domain.InvalidModelOutputError
		switch {
		case errors.As(err, &parseErr):
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "AI returned invalid JSON",
				"raw":   parseErr.Raw,
			})
		case errors.Is(err, domain.ErrModelUnavailable):
			log.Printf("model gateway failure: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "AI service unavailable"})
		default:
			log.Printf("pipeline failure: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Advanced AI processing failed"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *MessageHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
