package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/domain"
	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the authentication service dependency.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// --- Request/Response Structs ---

type RegisterRequest struct {
	Name           string      `json:"name" binding:"required,max=50"`
	Email          string      `json:"email" binding:"required,email"`
	Password       string      `json:"password" binding:"required,min=6"`
	Role           domain.Role `json:"role" binding:"required,oneof=coach athlete"`
	Phone          string      `json:"phone"`
	SportsCategory string      `json:"sportsCategory"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// authPayload carries the token plus the authenticated user.
type authPayload struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

// --- Handler Methods ---

// Register creates a coach or athlete account and signs the caller in.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	token, user, err := h.authService.Register(c.Request.Context(), service.RegisterInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Role:           req.Role,
		Phone:          req.Phone,
		SportsCategory: req.SportsCategory,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserAlreadyExists):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrRoleNotAllowed):
			abortWithError(c, http.StatusBadRequest, err.Error())
		default:
			respondServiceError(c, err)
		}
		return
	}

	respondCreated(c, authPayload{Token: token, User: user})
}

// Login authenticates a user and returns a JWT token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAuthenticationFailed), errors.Is(err, service.ErrAccountDeactivated):
			abortWithError(c, http.StatusUnauthorized, err.Error())
		default:
			respondServiceError(c, err)
		}
		return
	}

	respondOK(c, authPayload{Token: token, User: user})
}

// Me returns the authenticated account. The middleware already loaded it.
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := getUserFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}
	respondOK(c, user)
}
