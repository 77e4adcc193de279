package patient

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jwalitptl/hospital-admin/internal/handler"
	"github.com/jwalitptl/hospital-admin/internal/middleware"
	"github.com/jwalitptl/hospital-admin/internal/model"
	"github.com/jwalitptl/hospital-admin/internal/service/patientcare"
)

// Handler exposes patient self-service: the check-in toggle and the
// read-only projections of the patient's stay.
type Handler struct {
	svc *patientcare.Service
}

func NewHandler(svc *patientcare.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, auth *middleware.AuthMiddleware) {
	group := r.Group("/patient", auth.Authenticate(), auth.RequireRole(model.RolePatient))
	{
		group.POST("/check", h.CheckInOrOut)
		group.GET("/room", h.RoomDetails)
		group.GET("/surgeon", h.SurgeonDetails)
		group.GET("/surgery", h.SurgeryDetails)
	}
}

func (h *Handler) CheckInOrOut(c *gin.Context) {
	user := middleware.CurrentUser(c)

	message, err := h.svc.CheckInOrOut(c.Request.Context(), user.ID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewMessageResponse(message))
}

func (h *Handler) RoomDetails(c *gin.Context) {
	h.respondDetail(c, h.svc.RoomDetails)
}

func (h *Handler) SurgeonDetails(c *gin.Context) {
	h.respondDetail(c, h.svc.SurgeonDetails)
}

func (h *Handler) SurgeryDetails(c *gin.Context) {
	h.respondDetail(c, h.svc.SurgeryDetails)
}

func (h *Handler) respondDetail(c *gin.Context, detail func(context.Context, uuid.UUID) (string, error)) {
	user := middleware.CurrentUser(c)

	message, err := detail(c.Request.Context(), user.ID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewMessageResponse(message))
}
