package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/network/internal/api/middleware"
	"github.com/d60-Lab/network/pkg/response"
)

type createPostRequest struct {
	Content string `json:"content"`
}

// Posts serves /api/posts: GET is a liveness-style ok, POST creates a post.
// @Summary Create post
// @Tags posts
// @Accept json
// @Produce json
// @Param request body createPostRequest true "post content"
// @Success 201 {object} service.PostView
// @Failure 400 {object} map[string]string "invalid JSON or empty content"
// @Failure 401 {object} map[string]string
// @Router /api/posts [post]
func (h *Handler) Posts(c *gin.Context) {
	if c.Request.Method == "GET" {
		response.Success(c, gin.H{"message": "ok"})
		return
	}
	actorID := middleware.CurrentUserID(c)
	if actorID == "" {
		response.Unauthorized(c, "Authentication required")
		return
	}
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid JSON")
		return
	}
	post, err := h.postSvc.CreatePost(c.Request.Context(), actorID, req.Content)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Created(c, post)
}

// ToggleLike flips the like edge from the current user to post :id.
// @Summary Toggle like
// @Tags posts
// @Produce json
// @Param id path string true "post id"
// @Success 200 {object} service.LikeResult
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/posts/{id}/like [post]
func (h *Handler) ToggleLike(c *gin.Context) {
	actorID := middleware.CurrentUserID(c)
	res, err := h.engSvc.ToggleLike(c.Request.Context(), actorID, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, res)
}
