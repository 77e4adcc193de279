package registration

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/hospital-admin/internal/handler"
	"github.com/jwalitptl/hospital-admin/internal/model"
	"github.com/jwalitptl/hospital-admin/internal/service/account"
)

// Handler exposes the three registration operations. Registration is
// open: it needs no session, matching the original sign-up flow.
type Handler struct {
	svc *account.Service
}

func NewHandler(svc *account.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/register")
	{
		group.POST("/patient", h.RegisterPatient)
		group.POST("/floor-manager", h.RegisterFloorManager)
		group.POST("/surgeon", h.RegisterSurgeon)
	}
}

type registered struct {
	Message string      `json:"message"`
	User    *model.User `json:"user"`
}

func (h *Handler) RegisterPatient(c *gin.Context) {
	var req model.RegisterPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	user, message, err := h.svc.RegisterPatient(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(registered{Message: message, User: user}))
}

func (h *Handler) RegisterFloorManager(c *gin.Context) {
	var req model.RegisterFloorManagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	user, message, err := h.svc.RegisterFloorManager(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(registered{Message: message, User: user}))
}

func (h *Handler) RegisterSurgeon(c *gin.Context) {
	var req model.RegisterSurgeonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	user, message, err := h.svc.RegisterSurgeon(c.Request.Context(), &req)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(registered{Message: message, User: user}))
}
