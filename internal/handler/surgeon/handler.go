package surgeon

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jwalitptl/hospital-admin/internal/handler"
	"github.com/jwalitptl/hospital-admin/internal/middleware"
	"github.com/jwalitptl/hospital-admin/internal/model"
	"github.com/jwalitptl/hospital-admin/internal/service/surgery"
)

// Handler exposes the surgeon operations.
type Handler struct {
	svc *surgery.Service
}

func NewHandler(svc *surgery.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, auth *middleware.AuthMiddleware) {
	group := r.Group("/surgeon", auth.Authenticate(), auth.RequireRole(model.RoleSurgeon))
	{
		group.GET("/patients", h.ListPatients)
		group.GET("/schedule", h.Schedule)
		group.POST("/surgeries/perform", h.PerformSurgery)
	}
}

func (h *Handler) ListPatients(c *gin.Context) {
	user := middleware.CurrentUser(c)

	patients, err := h.svc.Patients(c.Request.Context(), user.ID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(patients))
}

func (h *Handler) Schedule(c *gin.Context) {
	user := middleware.CurrentUser(c)

	entries, err := h.svc.Schedule(c.Request.Context(), user.ID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(entries))
}

func (h *Handler) PerformSurgery(c *gin.Context) {
	var req model.PerformSurgeryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return
	}

	patientID, err := uuid.Parse(req.PatientID)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid patient ID"))
		return
	}

	user := middleware.CurrentUser(c)
	message, err := h.svc.Perform(c.Request.Context(), user.ID, patientID)
	if err != nil {
		handler.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, handler.NewMessageResponse(message))
}
