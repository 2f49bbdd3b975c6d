package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PratikPaudel/nwcs-inventory/internal/usecase/dashboard"
	"github.com/PratikPaudel/nwcs-inventory/pkg/utils"
)

type DashboardHandler struct {
	service *dashboard.Service
}

func NewDashboardHandler(service *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{service: service}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	dash := router.Group("/dashboard")
	{
		dash.GET("/devices-by-building", h.DevicesByBuilding)
		dash.GET("/devices-by-manufacturer", h.DevicesByManufacturer)
		dash.GET("/devices-by-form-factor", h.DevicesByFormFactor)
	}

	router.POST("/reports/generate", h.GenerateReport)
}

func (h *DashboardHandler) DevicesByBuilding(c *gin.Context) {
	resp, err := h.service.DevicesByBuilding(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Distribution retrieved successfully", resp)
}

func (h *DashboardHandler) DevicesByManufacturer(c *gin.Context) {
	resp, err := h.service.DevicesByManufacturer(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Distribution retrieved successfully", resp)
}

func (h *DashboardHandler) DevicesByFormFactor(c *gin.Context) {
	resp, err := h.service.DevicesByFormFactor(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Distribution retrieved successfully", resp)
}

func (h *DashboardHandler) GenerateReport(c *gin.Context) {
	var req dashboard.GenerateReportRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.GenerateReport(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Report generated successfully", resp)
}
