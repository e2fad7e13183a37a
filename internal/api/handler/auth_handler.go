package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/d60-Lab/network/internal/api/middleware"
	"github.com/d60-Lab/network/pkg/logger"
	"github.com/d60-Lab/network/pkg/response"
)

type registerRequest struct {
	Username     string `json:"username" binding:"required,username,max=64"`
	Email        string `json:"email" binding:"omitempty,email"`
	Password     string `json:"password" binding:"required,min=1"`
	Confirmation string `json:"confirmation" binding:"required"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *Handler) setSession(c *gin.Context, token string) {
	c.SetCookie(middleware.SessionCookie, token, 0, "/", "", false, true)
}

// Register creates an account and opens a session.
// @Summary Register
// @Tags auth
// @Accept json
// @Produce json
// @Param request body registerRequest true "credentials"
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string "username taken"
// @Router /register [post]
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if req.Password != req.Confirmation {
		response.BadRequest(c, "Passwords must match")
		return
	}
	u, err := h.userSvc.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	token, err := h.sessions.Generate(u.ID, u.Username)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	h.setSession(c, token)
	logger.Info("user registered", zap.String("username", u.Username))
	response.Created(c, gin.H{"username": u.Username, "token": token})
}

// Login verifies credentials and opens a session.
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body loginRequest true "credentials"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /login [post]
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	u, err := h.userSvc.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	token, err := h.sessions.Generate(u.ID, u.Username)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	h.setSession(c, token)
	response.Success(c, gin.H{"username": u.Username, "token": token})
}

// Logout clears the session cookie.
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Router /logout [post]
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	response.Success(c, gin.H{"message": "ok"})
}
