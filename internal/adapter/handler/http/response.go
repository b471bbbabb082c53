package http

import (
	"errors"
	"net/http"
	"reflect"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/webike_repair_shop/internal/core/domain"
	"github.com/sm8ta/webike_repair_shop/internal/core/ports"
)

// successResponse is the envelope returned by every endpoint.
type successResponse struct {
	Success bool        `json:"success" example:"true"`
	Message string      `json:"message" example:"Bike fetched successfully"`
	Data    interface{} `json:"data,omitempty"`
}

type errorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Bike with the provided id: '42' not found"`
}

func newSuccessResponse(c *gin.Context, status int, message string, data interface{}) {
	resp := successResponse{
		Success: true,
		Message: message,
	}
	if !isEmptyData(data) {
		resp.Data = data
	}
	c.JSON(status, resp)
}

func newErrorResponse(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, errorResponse{
		Success: false,
		Message: message,
	})
}

// isEmptyData reports whether data should be left out of the envelope:
// nil values, nil pointers and empty slices or maps.
func isEmptyData(data interface{}) bool {
	if data == nil {
		return true
	}
	v := reflect.ValueOf(data)
	switch v.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return v.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	}
	return false
}

// handleError writes the response matching the domain error kind. Unknown
// errors become a 500 with a generic message; the cause is only logged.
func handleError(c *gin.Context, logger ports.LoggerPort, err error, fields map[string]interface{}) {
	if fields == nil {
		fields = map[string]interface{}{}
	}
	fields["error"] = err.Error()
	fields["path"] = c.FullPath()

	switch {
	case errors.Is(err, domain.ErrNotFound):
		logger.Warn("Resource not found", fields)
		newErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		logger.Warn("Request conflicts with existing data", fields)
		newErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrValidation):
		logger.Warn("Request failed validation", fields)
		newErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		logger.Error("Request failed", fields)
		newErrorResponse(c, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	}
}
