package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/network/internal/api/middleware"
	"github.com/d60-Lab/network/pkg/response"
)

// ToggleFollow flips the follow edge from the current user to :username.
// @Summary Toggle follow
// @Tags graph
// @Produce json
// @Param username path string true "target username"
// @Success 200 {object} service.FollowResult
// @Failure 400 {object} map[string]string "self-follow"
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/follow/{username} [post]
func (h *Handler) ToggleFollow(c *gin.Context) {
	actorID := middleware.CurrentUserID(c)
	res, err := h.relSvc.ToggleFollow(c.Request.Context(), actorID, c.Param("username"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, res)
}
