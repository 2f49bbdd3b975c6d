package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/PratikPaudel/nwcs-inventory/internal/usecase/location"
	"github.com/PratikPaudel/nwcs-inventory/pkg/utils"
)

type LocationHandler struct {
	service *location.Service
}

func NewLocationHandler(service *location.Service) *LocationHandler {
	return &LocationHandler{service: service}
}

func (h *LocationHandler) RegisterRoutes(router *gin.RouterGroup) {
	locations := router.Group("/locations")
	{
		locations.GET("", h.ListLocations)
		locations.GET("/:id", h.GetLocation)
	}

	buildings := router.Group("/buildings")
	{
		buildings.GET("", h.ListBuildings)
		buildings.GET("/:id", h.GetBuilding)
	}
}

func (h *LocationHandler) ListLocations(c *gin.Context) {
	resp, err := h.service.ListLocations(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Locations retrieved successfully", resp)
}

func (h *LocationHandler) GetLocation(c *gin.Context) {
	locationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid location ID")
		return
	}

	resp, err := h.service.GetLocationByID(c.Request.Context(), locationID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Location retrieved successfully", resp)
}

func (h *LocationHandler) ListBuildings(c *gin.Context) {
	resp, err := h.service.ListBuildings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Buildings retrieved successfully", resp)
}

func (h *LocationHandler) GetBuilding(c *gin.Context) {
	buildingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid building ID")
		return
	}

	resp, err := h.service.GetBuildingByID(c.Request.Context(), buildingID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Building retrieved successfully", resp)
}
