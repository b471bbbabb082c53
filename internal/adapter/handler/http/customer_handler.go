package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	openapierrors "github.com/go-openapi/errors"
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github.com/go-openapi/validate"
	"github.com/sm8ta/webike_repair_shop/internal/core/domain"
	"github.com/sm8ta/webike_repair_shop/internal/core/ports"
)

type CustomerHandler struct {
	customerService ports.CustomerService
	logger          ports.LoggerPort
	metrics         ports.MetricsPort
}

type CustomerRequest struct {
	Name  string `json:"name" binding:"required" example:"Anna Smith"`
	Email string `json:"email" binding:"required" example:"anna@example.com"`
	Phone string `json:"phone" binding:"required" example:"+1 555 0100"`
}

type UpdateCustomerRequest struct {
	Name  *string `json:"name,omitempty" example:"Anna Jones"`
	Phone *string `json:"phone,omitempty" example:"+1 555 0199"`
}

func NewCustomerHandler(
	customerService ports.CustomerService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		logger:          logger,
		metrics:         metrics,
	}
}

func validateEmail(email string) *openapierrors.Validation {
	return validate.FormatOf("email", "body", "email", email, strfmt.Default)
}

// trimmed returns a trimmed copy of an optional string field.
func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	return swag.String(strings.TrimSpace(swag.StringValue(v)))
}

// @Summary Create customer
// @Tags customers
// @Accept json
// @Produce json
// @Param request body CustomerRequest true "Customer data"
// @Success 201 {object} successResponse{data=domain.Customer} "Customer created"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 409 {object} errorResponse "Email already exists"
// @Router /api/customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create customer", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	email := strings.TrimSpace(req.Email)
	if verr := validateEmail(email); verr != nil {
		newErrorResponse(c, http.StatusBadRequest, verr.Error())
		return
	}

	customer := &domain.Customer{
		Name:  strings.TrimSpace(req.Name),
		Email: email,
		Phone: strings.TrimSpace(req.Phone),
	}

	created, err := h.customerService.CreateCustomer(c.Request.Context(), customer)
	if err != nil {
		handleError(c, h.logger, err, map[string]interface{}{
			"email": email,
		})
		return
	}

	newSuccessResponse(c, http.StatusCreated, "Customer created successfully", created)
}

// @Summary List customers
// @Tags customers
// @Produce json
// @Success 200 {object} successResponse{data=[]domain.Customer} "Customers"
// @Router /api/customers [get]
func (h *CustomerHandler) GetAllCustomers(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	customers, err := h.customerService.GetAllCustomers(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, err, nil)
		return
	}

	newSuccessResponse(c, http.StatusOK, "Customers fetched successfully", customers)
}

// @Summary Get customer
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} successResponse{data=domain.Customer} "Customer"
// @Failure 404 {object} errorResponse "Customer not found"
// @Router /api/customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	customerID := c.Param("id")

	customer, err := h.customerService.GetCustomerByID(c.Request.Context(), customerID)
	if err != nil {
		handleError(c, h.logger, err, map[string]interface{}{
			"customer_id": customerID,
		})
		return
	}

	newSuccessResponse(c, http.StatusOK, "Customer fetched successfully", customer)
}

// @Summary Update customer
// @Description Updates name and/or phone. Email cannot be changed.
// @Tags customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID"
// @Param request body UpdateCustomerRequest true "Fields to update"
// @Success 200 {object} successResponse{data=domain.Customer} "Customer updated"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 404 {object} errorResponse "Customer not found"
// @Router /api/customers/{id} [put]
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	customerID := c.Param("id")

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in update customer", map[string]interface{}{
			"error":       err.Error(),
			"customer_id": customerID,
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	update := domain.CustomerUpdate{
		Name:  trimmed(req.Name),
		Phone: trimmed(req.Phone),
	}

	updated, err := h.customerService.UpdateCustomer(c.Request.Context(), customerID, update)
	if err != nil {
		handleError(c, h.logger, err, map[string]interface{}{
			"customer_id": customerID,
		})
		return
	}

	newSuccessResponse(c, http.StatusOK, "Customer updated successfully", updated)
}

// @Summary Delete customer
// @Description Customers that still own bikes cannot be deleted.
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} successResponse{data=domain.Customer} "Deleted customer"
// @Failure 404 {object} errorResponse "Customer not found"
// @Failure 409 {object} errorResponse "Customer still owns bikes"
// @Router /api/customers/{id} [delete]
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	customerID := c.Param("id")

	deleted, err := h.customerService.DeleteCustomer(c.Request.Context(), customerID)
	if err != nil {
		handleError(c, h.logger, err, map[string]interface{}{
			"customer_id": customerID,
		})
		return
	}

	newSuccessResponse(c, http.StatusOK, "Customer deleted successfully", deleted)
}
