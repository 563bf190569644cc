package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/numberloom/numberloom-backend/internal/http/response"
	"github.com/numberloom/numberloom-backend/internal/scheduler"
	"github.com/numberloom/numberloom-backend/internal/services"
)

type RepositionHandler struct {
	repositioning services.RepositioningService
}

func NewRepositionHandler(repositioning services.RepositioningService) *RepositionHandler {
	return &RepositionHandler{repositioning: repositioning}
}

// POST /api/users/:user_id/paths/:path_id/stitches/:stitch_id/reposition
func (h *RepositionHandler) Reposition(c *gin.Context) {
	userID, ok := pathUUID(c, "user_id")
	if !ok {
		return
	}
	pathID, ok := pathUUID(c, "path_id")
	if !ok {
		return
	}
	stitchID, ok := pathUUID(c, "stitch_id")
	if !ok {
		return
	}

	var perf scheduler.PerformanceData
	if err := c.ShouldBindJSON(&perf); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	res, err := h.repositioning.RepositionStitch(c.Request.Context(), userID, pathID, stitchID, perf)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, res)
}
