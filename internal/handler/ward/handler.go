package ward

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jwalitptl/hospital-admin/internal/handler"
	"github.com/jwalitptl/hospital-admin/internal/middleware"
	"github.com/jwalitptl/hospital-admin/internal/model"
	"github.com/jwalitptl/hospital-admin/internal/service/ward"
)

// Handler exposes the floor manager operations. Every route requires a
// floor manager session; the managed floor is the manager's own.
type Handler struct {
	svc *ward.Service
}

func NewHandler(svc *ward.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, auth *middleware.AuthMiddleware) {
	group := r.Group("/ward", auth.Authenticate(), auth.RequireRole(model.RoleFloorManager))
	{
		group.POST("/rooms/assign", h.AssignRoom)
		group.POST("/rooms/unassign", h.UnassignRoom)
		group.POST("/surgeries", h.ScheduleSurgery)
	}
}

func (h *Handler) AssignRoom(c *gin.Context) {
	var req model.AssignRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid patient ID"))
		return
	}

	manager := middleware.CurrentUser(c)
	result, err := h.svc.AssignPatientToRoom(c.Request.Context(), manager.ID, patientID, req.RoomNumber)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(result))
}

func (h *Handler) UnassignRoom(c *gin.Context) {
	var req model.UnassignRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid patient ID"))
		return
	}

	manager := middleware.CurrentUser(c)
	result, err := h.svc.UnassignPatientFromRoom(c.Request.Context(), manager.ID, patientID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(result))
}

func (h *Handler) ScheduleSurgery(c *gin.Context) {
	var req model.ScheduleSurgeryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid patient ID"))
		return
	}
	surgeonID, err := uuid.Parse(req.SurgeonID)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid surgeon ID"))
		return
	}

	manager := middleware.CurrentUser(c)
	surgery, message, err := h.svc.ScheduleSurgery(c.Request.Context(), manager.ID, patientID, surgeonID, req.ScheduledAt)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, handler.NewSuccessResponse(gin.H{
		"message": message,
		"surgery": surgery,
	}))
}
