package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sm8ta/webike_repair_shop/internal/core/domain"
	"github.com/sm8ta/webike_repair_shop/internal/core/ports"
)

type BikeHandler struct {
	bikeService ports.BikeService
	logger      ports.LoggerPort
	metrics     ports.MetricsPort
}

type BikeRequest struct {
	Brand      string `json:"brand" binding:"required" example:"Trek"`
	Model      string `json:"model" binding:"required" example:"Marlin 7"`
	Year       int    `json:"year" binding:"required" example:"2022"`
	CustomerID string `json:"customerId" binding:"required" example:"3fa85f64-5717-4562-b3fc-2c963f66afa6"`
}

func NewBikeHandler(
	bikeService ports.BikeService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *BikeHandler {
	return &BikeHandler{
		bikeService: bikeService,
		logger:      logger,
		metrics:     metrics,
	}
}

// @Summary Add bike
// @Description Registers a bike for an existing customer
// @Tags bikes
// @Accept json
// @Produce json
// @Param request body BikeRequest true "Bike data"
// @Success 200 {object} successResponse{data=domain.Bike} "Bike added"
// @Failure 400 {object} errorResponse "Invalid request"
// @Failure 404 {object} errorResponse "Customer not found"
// @Router /api/bikes [post]
func (h *BikeHandler) CreateBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req BikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create bike", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		handleError(c, h.logger, domain.NewNotFoundError("Customer", req.CustomerID), nil)
		return
	}

	bike := &domain.Bike{
		Brand:      strings.TrimSpace(req.Brand),
		Model:      strings.TrimSpace(req.Model),
		Year:       req.Year,
		CustomerID: customerID,
	}

	createdBike, err := h.bikeService.CreateBike(c.Request.Context(), bike)
	if err != nil {
		handleError(c, h.logger, err, map[string]interface{}{
			"customer_id": req.CustomerID,
		})
		return
	}

	newSuccessResponse(c, http.StatusOK, "Bike added successfully", createdBike)
}

// @Summary List bikes
// @Tags bikes
// @Produce json
// @Success 200 {object} successResponse{data=[]domain.Bike} "Bikes"
// @Router /api/bikes [get]
func (h *BikeHandler) GetAllBikes(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikes, err := h.bikeService.GetAllBikes(c.Request.Context())
	if err != nil {
		handleError(c, h.logger, err, nil)
		return
	}

	newSuccessResponse(c, http.StatusOK, "Bikes fetched successfully", bikes)
}

// @Summary Get bike
// @Tags bikes
// @Produce json
// @Param id path string true "Bike ID"
// @Success 200 {object} successResponse{data=domain.Bike} "Bike"
// @Failure 404 {object} errorResponse "Bike not found"
// @Router /api/bikes/{id} [get]
func (h *BikeHandler) GetBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikeID := c.Param("id")

	bike, err := h.bikeService.GetBikeByID(c.Request.Context(), bikeID)
	if err != nil {
		handleError(c, h.logger, err, map[string]interface{}{
			"bike_id": bikeID,
		})
		return
	}

	newSuccessResponse(c, http.StatusOK, "Bike fetched successfully", bike)
}
