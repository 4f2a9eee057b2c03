package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/domain"
	"github.com/shubhamjadhav0715/smart-coaching-training-planner/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// apiResponse is the envelope every endpoint answers with.
type apiResponse struct {
	Success bool              `json:"success"`
	Data    interface{}       `json:"data,omitempty"`
	Message string            `json:"message,omitempty"`
	Count   *int              `json:"count,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, apiResponse{Success: true, Data: data})
}

func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, apiResponse{Success: true, Data: data})
}

// respondList includes a count alongside the collection payload.
func respondList(c *gin.Context, data interface{}, count int) {
	c.JSON(http.StatusOK, apiResponse{Success: true, Data: data, Count: &count})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, apiResponse{Success: true, Message: message})
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, apiResponse{Success: false, Message: message})
}

// respondServiceError translates service and domain errors into HTTP
// statuses. Anything unrecognized is logged and answered with a generic
// 500 so internals never leak to clients.
func respondServiceError(c *gin.Context, err error) {
	var fieldErrs domain.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		c.AbortWithStatusJSON(http.StatusBadRequest, apiResponse{
			Success: false,
			Message: "Validation failed",
			Errors:  fieldErrs,
		})
	case errors.Is(err, domain.ErrConflictingState):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidReference):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidRole):
		abortWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound):
		abortWithError(c, http.StatusNotFound, "Resource not found")
	case errors.Is(err, service.ErrNotAuthorized):
		abortWithError(c, http.StatusForbidden, "You are not authorized to access this resource")
	default:
		log.Printf("ERROR: %s %s: %v", c.Request.Method, c.FullPath(), err)
		abortWithError(c, http.StatusInternalServerError, "An internal error occurred")
	}
}

// parseIDParam reads and validates an ObjectID path parameter. On failure
// it has already written the 400 response; callers just return.
func parseIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid "+name+" format")
		return primitive.NilObjectID, false
	}
	return id, true
}
