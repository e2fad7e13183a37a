package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/network/internal/auth"
	"github.com/d60-Lab/network/internal/service"
	"github.com/d60-Lab/network/pkg/response"
)

// Handler bundles the services behind the HTTP surface.
type Handler struct {
	userSvc  service.UserService
	relSvc   service.RelationshipService
	engSvc   service.EngagementService
	postSvc  service.PostService
	sessions *auth.Manager
}

func NewHandler(
	userSvc service.UserService,
	relSvc service.RelationshipService,
	engSvc service.EngagementService,
	postSvc service.PostService,
	sessions *auth.Manager,
) *Handler {
	return &Handler{
		userSvc:  userSvc,
		relSvc:   relSvc,
		engSvc:   engSvc,
		postSvc:  postSvc,
		sessions: sessions,
	}
}

// writeServiceError maps domain sentinels onto the error taxonomy:
// 400 invalid operation / validation, 404 absent entity, 401 credentials,
// 409 conflict, 500 otherwise.
func (h *Handler) writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrFollowSelf),
		errors.Is(err, service.ErrEmptyContent),
		errors.Is(err, service.ErrContentTooLong):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrPostNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Unauthorized(c, err.Error())
	case errors.Is(err, service.ErrUsernameTaken):
		response.Conflict(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}
