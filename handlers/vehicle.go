package handlers

import (
	"net/http"

	"autohub/middleware"
	"autohub/models"
	"autohub/services/vehicle"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	Vehicles vehicle.VehicleService
}

func NewVehicleHandler(svc vehicle.VehicleService) *VehicleHandler {
	return &VehicleHandler{Vehicles: svc}
}

func (h *VehicleHandler) ListHandler(c *gin.Context) {
	list, err := h.Vehicles.ListForUser(c.Request.Context(), middleware.PrincipalFrom(c).UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *VehicleHandler) AddHandler(c *gin.Context) {
	var v models.Vehicle
	if err := c.ShouldBindJSON(&v); err != nil {
		badRequest(c, err)
		return
	}
	created, err := h.Vehicles.AddForUser(c.Request.Context(), middleware.PrincipalFrom(c).UserID, v)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}
