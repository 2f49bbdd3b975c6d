package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/PratikPaudel/nwcs-inventory/internal/usecase/deviceuser"
	"github.com/PratikPaudel/nwcs-inventory/pkg/utils"
)

type DeviceUserHandler struct {
	service *deviceuser.Service
}

func NewDeviceUserHandler(service *deviceuser.Service) *DeviceUserHandler {
	return &DeviceUserHandler{service: service}
}

func (h *DeviceUserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/device-users")
	{
		users.POST("", h.CreateDeviceUser)
		users.GET("", h.ListDeviceUsers)
		users.GET("/:id", h.GetDeviceUser)
	}

	router.GET("/users/search", h.SearchDeviceUsers)
	router.GET("/departments", h.ListDepartments)
	router.GET("/employment-types", h.ListEmploymentTypes)
}

func (h *DeviceUserHandler) CreateDeviceUser(c *gin.Context) {
	var req deviceuser.CreateDeviceUserRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Device user created successfully", resp)
}

func (h *DeviceUserHandler) GetDeviceUser(c *gin.Context) {
	deviceUserID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid device user ID")
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), deviceUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Device user retrieved successfully", resp)
}

func (h *DeviceUserHandler) ListDeviceUsers(c *gin.Context) {
	var filter deviceuser.DeviceUserFilterRequest

	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	resp, err := h.service.List(c.Request.Context(), &filter)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Device users retrieved successfully", resp)
}

func (h *DeviceUserHandler) SearchDeviceUsers(c *gin.Context) {
	query := c.Query("q")

	resp, err := h.service.Search(c.Request.Context(), query)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Device users retrieved successfully", resp)
}

func (h *DeviceUserHandler) ListDepartments(c *gin.Context) {
	resp, err := h.service.ListDepartments(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Departments retrieved successfully", resp)
}

func (h *DeviceUserHandler) ListEmploymentTypes(c *gin.Context) {
	resp, err := h.service.ListEmploymentTypes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Employment types retrieved successfully", resp)
}
