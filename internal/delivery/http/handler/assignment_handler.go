package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/PratikPaudel/nwcs-inventory/internal/usecase/assignment"
	"github.com/PratikPaudel/nwcs-inventory/pkg/utils"
)

type AssignmentHandler struct {
	service *assignment.Service
}

func NewAssignmentHandler(service *assignment.Service) *AssignmentHandler {
	return &AssignmentHandler{service: service}
}

func (h *AssignmentHandler) RegisterRoutes(router *gin.RouterGroup) {
	assignments := router.Group("/assignments")
	{
		assignments.POST("", h.CreateAssignment)
		assignments.GET("", h.ListAssignments)
		assignments.PUT("/:id", h.UpdateAssignment)
		assignments.DELETE("/:id", h.EndAssignment)
	}
}

func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req assignment.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.Create(c.Request.Context(), actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Assignment created successfully", resp)
}

func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	var filter assignment.AssignmentFilterRequest

	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	resp, err := h.service.List(c.Request.Context(), &filter)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Assignments retrieved successfully", resp)
}

func (h *AssignmentHandler) UpdateAssignment(c *gin.Context) {
	assignmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid assignment ID")
		return
	}

	var req assignment.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.Update(c.Request.Context(), assignmentID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Assignment updated successfully", resp)
}

// EndAssignment closes an assignment. The equipment's new status comes from
// the new_status query parameter and defaults to Available.
func (h *AssignmentHandler) EndAssignment(c *gin.Context) {
	actor, ok := actorID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	assignmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid assignment ID")
		return
	}

	newStatus := c.Query("new_status")

	if err := h.service.End(c.Request.Context(), actor, assignmentID, newStatus); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Assignment ended successfully", nil)
}
