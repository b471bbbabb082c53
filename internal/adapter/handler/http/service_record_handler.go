package http

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"github.com/sm8ta/webike_repair_shop/internal/core/domain"
	"github.com/sm8ta/webike_repair_shop/internal/core/ports"
)

type ServiceRecordHandler struct {
	recordService ports.ServiceRecordService
	logger        ports.LoggerPort
	metrics       ports.MetricsPort
}

type ServiceRecordRequest struct {
	BikeID      string               `json:"bikeId" binding:"required" example:"3fa85f64-5717-4562-b3fc-2c963f66afa6"`
	ServiceDate strfmt.DateTime      `json:"serviceDate" swaggertype:"string" format:"date-time" example:"2024-06-01T09:00:00Z"`
	Description string               `json:"description" binding:"required" example:"Replace brake pads"`
	Status      domain.ServiceStatus `json:"status,omitempty" swaggertype:"string" enums:"pending,in-progress,done" example:"pending"`
}

type CompleteServiceRequest struct {
	CompletionDate *strfmt.DateTime `json:"completionDate,omitempty" swaggertype:"string" format:"date-time" example:"2024-06-02T17:30:00Z"`
}

func NewServiceRecordHandler(
	recordService ports.ServiceRecordService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *ServiceRecordHandler {
	return &ServiceRecordHandler{
		recordService: recordService,
		logger:        logger,
		metrics:       metrics,
	}
}

// @Summary Create service record
// @Tags services
// @Accept json
// @Produce json
// @Param request body ServiceRecordRequest true "Service record data"
// @Success 201 {object} successResponse{data=domain.ServiceRecord} "Service record created"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 404 {object} errorResponse "Bike not found"
// @Router /api/services [post]
func (h *ServiceRecordHandler) CreateServiceRecord(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req ServiceRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create service record", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	serviceDate := time.Time(req.ServiceDate)
	if serviceDate.IsZero() {
		newErrorResponse(c, http.StatusBadRequest, "serviceDate is required")
		return
	}

	bikeID, err := uuid.Parse(req.BikeID)
	if err != nil {
		handleError(c, h.logger, domain.NewNotFoundError("Bike", req.BikeID), nil)
		return
	}

	record := &domain.ServiceRecord{
		BikeID:      bikeID,
		ServiceDate: serviceDate,
		Description: strings.TrimSpace(req.Description),
		Status:      req.Status,
	}

	created, err := h.recordService.CreateServiceRecord(c.Request.Context(), record)
	if err != nil {
		handleError(c, h.logger, err, map[string]interface{}{
			"bike_id": req.BikeID,
		})
		return
	}

	newSuccessResponse(c, http.StatusCreated, "Service record created successfully", created)
}

// @Summary List service records
// @Tags services
// @Produce json
// @Success 200 {object} successResponse{data=[]domain.ServiceRecord} "Service records"
// @Router /api/services [get]
func (h *ServiceRecordHandler) GetAllServiceRecords(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	records, err := h.recordService.GetAllServiceRecords(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, err, nil)
		return
	}

	newSuccessResponse(c, http.StatusOK, "Service records fetched successfully", records)
}

// @Summary Pending or overdue service records
// @Description Records not done that are pending, in progress, or whose service date is more than 7 days ago
// @Tags services
// @Produce json
// @Success 200 {object} successResponse{data=[]domain.ServiceRecord} "Pending or overdue records"
// @Router /api/services/status [get]
func (h *ServiceRecordHandler) GetPendingOrOverdue(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	records, err := h.recordService.GetPendingOrOverdue(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, err, nil)
		return
	}

	newSuccessResponse(c, http.StatusOK, "Overdue or pending services fetched successfully", records)
}

// @Summary Get service record
// @Tags services
// @Produce json
// @Param id path string true "Service record ID"
// @Success 200 {object} successResponse{data=domain.ServiceRecord} "Service record"
// @Failure 404 {object} errorResponse "Service record not found"
// @Router /api/services/{id} [get]
func (h *ServiceRecordHandler) GetServiceRecord(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	serviceID := c.Param("id")

	record, err := h.recordService.GetServiceRecordByID(c.Request.Context(), serviceID)
	if err != nil {
		handleError(c, h.logger, err, map[string]interface{}{
			"service_id": serviceID,
		})
		return
	}

	newSuccessResponse(c, http.StatusOK, "Service record fetched successfully", record)
}

// @Summary Complete service record
// @Description Marks the record done. Completion date defaults to now.
// @Tags services
// @Accept json
// @Produce json
// @Param id path string true "Service record ID"
// @Param request body CompleteServiceRequest false "Completion date"
// @Success 200 {object} successResponse{data=domain.ServiceRecord} "Service marked as completed"
// @Failure 400 {object} errorResponse "Completion date before service date"
// @Failure 404 {object} errorResponse "Service record not found"
// @Router /api/services/{id}/complete [put]
func (h *ServiceRecordHandler) CompleteServiceRecord(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	serviceID := c.Param("id")

	var req CompleteServiceRequest
	// the body is optional
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.logger.Error("Failed JSON parse in complete service record", map[string]interface{}{
			"error":      err.Error(),
			"service_id": serviceID,
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	var completionDate *time.Time
	if req.CompletionDate != nil {
		t := time.Time(*req.CompletionDate)
		completionDate = &t
	}

	record, err := h.recordService.CompleteServiceRecord(c.Request.Context(), serviceID, completionDate)
	if err != nil {
		handleError(c, h.logger, err, map[string]interface{}{
			"service_id": serviceID,
		})
		return
	}

	h.metrics.RecordServiceCompleted()

	newSuccessResponse(c, http.StatusOK, "Service marked as completed", record)
}
