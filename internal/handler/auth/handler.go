package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/hospital-admin/internal/handler"
	"github.com/jwalitptl/hospital-admin/internal/middleware"
	"github.com/jwalitptl/hospital-admin/internal/model"
	"github.com/jwalitptl/hospital-admin/internal/service/account"
)

type Handler struct {
	svc *account.Service
}

func NewHandler(svc *account.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, auth *middleware.AuthMiddleware) {
	group := r.Group("/auth")
	{
		group.POST("/login", h.Login)
		group.POST("/logout", auth.Authenticate(), h.Logout)
		group.GET("/me", auth.Authenticate(), h.Me)
	}

	acct := r.Group("/account", auth.Authenticate())
	{
		acct.PUT("/password", h.ChangePassword)
	}
}

func (h *Handler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	result, err := h.svc.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(result))
}

func (h *Handler) Logout(c *gin.Context) {
	token := c.GetString(middleware.ContextToken)

	message, err := h.svc.Logout(c.Request.Context(), token)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewMessageResponse(message))
}

// Me returns the authenticated user's profile lines.
func (h *Handler) Me(c *gin.Context) {
	user := middleware.CurrentUser(c)

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"user":    user,
		"details": user.Details(),
	}))
}

func (h *Handler) ChangePassword(c *gin.Context) {
	var req model.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	user := middleware.CurrentUser(c)
	message, err := h.svc.ChangePassword(c.Request.Context(), user.ID, req.NewPassword)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewMessageResponse(message))
}
