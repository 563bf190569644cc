package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/numberloom/numberloom-backend/internal/http/response"
	"github.com/numberloom/numberloom-backend/internal/services"
)

type QueueHandler struct {
	queue services.QueueService
}

func NewQueueHandler(queue services.QueueService) *QueueHandler {
	return &QueueHandler{queue: queue}
}

// GET /api/users/:user_id/paths/:path_id/next
func (h *QueueHandler) GetNextStitch(c *gin.Context) {
	userID, ok := pathUUID(c, "user_id")
	if !ok {
		return
	}
	pathID, ok := pathUUID(c, "path_id")
	if !ok {
		return
	}
	res, err := h.queue.GetNextStitch(c.Request.Context(), userID, pathID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, res)
}

// GET /api/users/:user_id/paths/:path_id/queue
func (h *QueueHandler) GetStitchQueue(c *gin.Context) {
	userID, ok := pathUUID(c, "user_id")
	if !ok {
		return
	}
	pathID, ok := pathUUID(c, "path_id")
	if !ok {
		return
	}
	view, err := h.queue.GetStitchQueue(c.Request.Context(), userID, pathID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, view)
}
