package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/numberloom/numberloom-backend/internal/http/response"
)

// pathUUID parses a route param as a UUID, responding 400 on failure.
func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	raw := c.Param(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_"+name,
			fmt.Errorf("invalid %s: %q", name, raw))
		return uuid.Nil, false
	}
	return id, true
}
