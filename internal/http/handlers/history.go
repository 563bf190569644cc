package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/numberloom/numberloom-backend/internal/http/response"
	"github.com/numberloom/numberloom-backend/internal/services"
)

type HistoryHandler struct {
	history services.HistoryService
}

func NewHistoryHandler(history services.HistoryService) *HistoryHandler {
	return &HistoryHandler{history: history}
}

// GET /api/users/:user_id/stitches/:stitch_id/history
func (h *HistoryHandler) GetHistory(c *gin.Context) {
	userID, ok := pathUUID(c, "user_id")
	if !ok {
		return
	}
	stitchID, ok := pathUUID(c, "stitch_id")
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	events, err := h.history.GetRepositioningHistory(c.Request.Context(), userID, stitchID, limit)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"events": events})
}
