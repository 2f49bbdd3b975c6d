package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/PratikPaudel/nwcs-inventory/internal/usecase/equipment"
	"github.com/PratikPaudel/nwcs-inventory/pkg/utils"
)

type EquipmentHandler struct {
	service *equipment.Service
}

func NewEquipmentHandler(service *equipment.Service) *EquipmentHandler {
	return &EquipmentHandler{service: service}
}

func (h *EquipmentHandler) RegisterRoutes(router *gin.RouterGroup) {
	items := router.Group("/equipment")
	{
		items.POST("", h.CreateEquipment)
		items.GET("", h.ListEquipment)
		items.GET("/:id", h.GetEquipment)
		items.PUT("/:id", h.UpdateEquipment)
		items.GET("/:id/history", h.GetEquipmentHistory)
	}

	router.POST("/inventory/search", h.SearchInventory)
}

// RegisterAdminRoutes mounts the destructive registry operations; removing a
// unit erases it from the registry, so only admins may do it.
func (h *EquipmentHandler) RegisterAdminRoutes(router *gin.RouterGroup) {
	router.DELETE("/equipment/:id", h.DeleteEquipment)
}

func (h *EquipmentHandler) CreateEquipment(c *gin.Context) {
	var req equipment.CreateEquipmentRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Equipment created successfully", resp)
}

func (h *EquipmentHandler) GetEquipment(c *gin.Context) {
	equipmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid equipment ID")
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), equipmentID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Equipment retrieved successfully", resp)
}

func (h *EquipmentHandler) ListEquipment(c *gin.Context) {
	var filter equipment.EquipmentFilterRequest

	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	resp, err := h.service.List(c.Request.Context(), &filter)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Equipment retrieved successfully", resp)
}

func (h *EquipmentHandler) UpdateEquipment(c *gin.Context) {
	equipmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid equipment ID")
		return
	}

	var req equipment.UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.Update(c.Request.Context(), equipmentID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Equipment updated successfully", resp)
}

func (h *EquipmentHandler) DeleteEquipment(c *gin.Context) {
	equipmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid equipment ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), equipmentID); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Equipment deleted successfully", nil)
}

func (h *EquipmentHandler) GetEquipmentHistory(c *gin.Context) {
	equipmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid equipment ID")
		return
	}

	resp, err := h.service.GetHistory(c.Request.Context(), equipmentID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Equipment history retrieved successfully", resp)
}

func (h *EquipmentHandler) SearchInventory(c *gin.Context) {
	var req equipment.SearchInventoryRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.SearchInventory(c.Request.Context(), req.Query)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Inventory retrieved successfully", resp)
}
