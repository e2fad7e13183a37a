package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/network/internal/api/middleware"
	"github.com/d60-Lab/network/pkg/response"
)

func pageParam(c *gin.Context) int {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	return page
}

// Index serves the paginated global feed.
// @Summary Global feed
// @Tags feeds
// @Produce json
// @Param page query int false "page number" default(1)
// @Success 200 {object} service.FeedPage
// @Router / [get]
func (h *Handler) Index(c *gin.Context) {
	viewerID := middleware.CurrentUserID(c)
	fp, err := h.postSvc.GlobalFeed(c.Request.Context(), viewerID, pageParam(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, fp)
}

// Profile serves a user's posts with follower/following counts.
// @Summary Profile feed
// @Tags feeds
// @Produce json
// @Param username path string true "profile username"
// @Param page query int false "page number" default(1)
// @Success 200 {object} service.ProfilePage
// @Failure 404 {object} map[string]string
// @Router /u/{username} [get]
func (h *Handler) Profile(c *gin.Context) {
	viewerID := middleware.CurrentUserID(c)
	pp, err := h.postSvc.ProfileFeed(c.Request.Context(), viewerID, c.Param("username"), pageParam(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, pp)
}

// FollowingFeed serves posts authored by users the viewer follows.
// @Summary Following-only feed
// @Tags feeds
// @Produce json
// @Param page query int false "page number" default(1)
// @Success 200 {object} service.FeedPage
// @Failure 302 {string} string "redirect to /login when unauthenticated"
// @Router /following/ [get]
func (h *Handler) FollowingFeed(c *gin.Context) {
	viewerID := middleware.CurrentUserID(c)
	fp, err := h.postSvc.FollowingFeed(c.Request.Context(), viewerID, pageParam(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, fp)
}
