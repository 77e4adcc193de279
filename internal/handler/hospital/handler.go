package hospital

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jwalitptl/hospital-admin/internal/handler"
	"github.com/jwalitptl/hospital-admin/internal/middleware"
	"github.com/jwalitptl/hospital-admin/internal/service/account"
)

// Handler exposes the lookup surface used for pre-validation: floors
// and their availability, plus the patient and surgeon directories.
type Handler struct {
	svc *account.Service
}

func NewHandler(svc *account.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup, auth *middleware.AuthMiddleware) {
	group := r.Group("/hospital")
	{
		// Floor availability backs the registration flow, so it stays
		// open like registration itself.
		group.GET("/floors", h.ListFloors)
		group.GET("/floors/:number", h.GetFloor)

		group.GET("/patients", auth.Authenticate(), h.ListPatients)
		group.GET("/surgeons", auth.Authenticate(), h.ListSurgeons)
	}
}

type floorView struct {
	FloorNumber int  `json:"floor_number"`
	Rooms       int  `json:"rooms"`
	HasManager  bool `json:"has_manager"`
	Full        bool `json:"full"`
}

func (h *Handler) ListFloors(c *gin.Context) {
	floors := h.svc.Floors()
	views := make([]floorView, 0, len(floors))
	for _, f := range floors {
		views = append(views, floorView{
			FloorNumber: f.FloorNumber,
			Rooms:       len(f.Rooms),
			HasManager:  f.HasManager(),
			Full:        f.Full(),
		})
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"floors":        views,
		"any_available": h.svc.AreAnyFloorsAvailable(),
	}))
}

func (h *Handler) GetFloor(c *gin.Context) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid floor number"))
		return
	}

	floor := h.svc.Floor(number)
	if floor == nil {
		c.JSON(http.StatusNotFound, handler.NewErrorResponse("floor not found"))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"floor":     floor,
		"available": h.svc.IsFloorAvailable(number),
	}))
}

func (h *Handler) ListPatients(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.svc.Patients()))
}

func (h *Handler) ListSurgeons(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.svc.Surgeons()))
}
