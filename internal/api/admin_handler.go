package api

import (
	"fmt"
	"net/http"

	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/domain"
	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/repository"
	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminHandler holds the admin service dependency.
type AdminHandler struct {
	adminService service.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService service.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// UpdateUserRequest carries the fields an admin may change. Absent fields
// are left untouched.
type UpdateUserRequest struct {
	Name           *string      `json:"name" binding:"omitempty,max=50"`
	Phone          *string      `json:"phone"`
	SportsCategory *string      `json:"sportsCategory"`
	Role           *domain.Role `json:"role" binding:"omitempty,oneof=admin coach athlete"`
	CoachID        *string      `json:"coachId"`
	IsActive       *bool        `json:"isActive"`
}

// ListUsers returns every account.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.adminService.ListUsers(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondList(c, users, len(users))
}

// ListUsersByRole returns accounts holding the role path parameter.
func (h *AdminHandler) ListUsersByRole(c *gin.Context) {
	role := domain.Role(c.Param("role"))
	users, err := h.adminService.ListUsersByRole(c.Request.Context(), role)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondList(c, users, len(users))
}

// UpdateUser applies a partial update to a user record.
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	update := repository.UserUpdate{
		Name:           req.Name,
		Phone:          req.Phone,
		SportsCategory: req.SportsCategory,
		Role:           req.Role,
		IsActive:       req.IsActive,
	}
	if req.CoachID != nil {
		coachID, err := primitive.ObjectIDFromHex(*req.CoachID)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid coachId format")
			return
		}
		update.CoachID = &coachID
	}

	user, err := h.adminService.UpdateUser(c.Request.Context(), userID, update)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, user)
}

// DeleteUser removes a user record outright.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.adminService.DeleteUser(c.Request.Context(), userID); err != nil {
		respondServiceError(c, err)
		return
	}
	respondMessage(c, "User deleted successfully")
}

// SystemStats returns the platform-wide dashboard counts.
func (h *AdminHandler) SystemStats(c *gin.Context) {
	stats, err := h.adminService.SystemStats(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, stats)
}
