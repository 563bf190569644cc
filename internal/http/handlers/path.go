package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/numberloom/numberloom-backend/internal/http/response"
	"github.com/numberloom/numberloom-backend/internal/services"
)

type PathHandler struct {
	path services.PathService
}

func NewPathHandler(path services.PathService) *PathHandler {
	return &PathHandler{path: path}
}

// GET /api/paths
func (h *PathHandler) ListPaths(c *gin.Context) {
	paths, err := h.path.ListActivePaths(c.Request.Context())
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondOK(c, gin.H{"paths": paths})
}

// POST /api/users/:user_id/paths/:path_id/initialize
func (h *PathHandler) Initialize(c *gin.Context) {
	userID, ok := pathUUID(c, "user_id")
	if !ok {
		return
	}
	pathID, ok := pathUUID(c, "path_id")
	if !ok {
		return
	}
	view, err := h.path.InitializePath(c.Request.Context(), userID, pathID)
	if err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondCreated(c, view)
}

// DELETE /api/users/:user_id/paths/:path_id/queue
func (h *PathHandler) Reset(c *gin.Context) {
	userID, ok := pathUUID(c, "user_id")
	if !ok {
		return
	}
	pathID, ok := pathUUID(c, "path_id")
	if !ok {
		return
	}
	if err := h.path.ResetPath(c.Request.Context(), userID, pathID); err != nil {
		response.RespondServiceError(c, err)
		return
	}
	response.RespondNoContent(c)
}
