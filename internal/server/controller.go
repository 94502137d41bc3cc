package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Michaelcode2/product-api-service/internal/models"
	"github.com/Michaelcode2/product-api-service/internal/usecase"
)

type Controller interface {
	Health(c echo.Context) error
	GetProduct(c echo.Context) error
}

// ConnectorHealth is the slice of the connector manager the health endpoint
// needs.
type ConnectorHealth interface {
	IsAlive() bool
}

type controller struct {
	products  usecase.ProductUsecase
	connector ConnectorHealth
	log       *zap.SugaredLogger
}

func NewController(
	products usecase.ProductUsecase,
	connector ConnectorHealth,
	log *zap.SugaredLogger,
) Controller {
	return &controller{
		products:  products,
		connector: connector,
		log:       log.Named("http"),
	}
}

func (h *controller) Health(c echo.Context) error {
	if h.connector == nil {
		h.log.Errorw("health check failed", "error", "connector manager not configured")
		return c.JSON(http.StatusInternalServerError, models.HealthStatus{
			Status: models.HealthUnhealthy,
			Error:  "connector manager not configured",
		})
	}
	if h.connector.IsAlive() {
		return c.JSON(http.StatusOK, models.HealthStatus{
			Status:       models.HealthHealthy,
			COMConnector: "connected",
		})
	}
	return c.JSON(http.StatusOK, models.HealthStatus{
		Status:       models.HealthDegraded,
		COMConnector: "disconnected",
	})
}

type getProductRequest struct {
	ScanCode string `param:"scanCode" validate:"required,ean13"`
}

func (h *controller) GetProduct(c echo.Context) error {
	var req getProductRequest
	if err := c.Bind(&req); err != nil {
		return invalidBarcode(c, req.ScanCode, h.log)
	}
	if err := c.Validate(req); err != nil {
		return invalidBarcode(c, req.ScanCode, h.log)
	}

	ctx := c.Request().Context()
	record, err := h.products.LookupByBarcode(ctx, req.ScanCode)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, record)
	case errors.Is(err, models.ErrInvalidBarcode):
		return invalidBarcode(c, req.ScanCode, h.log)
	case errors.Is(err, models.ErrUnavailable):
		return c.JSON(http.StatusServiceUnavailable, echo.Map{
			"error": "Service not initialized",
		})
	case errors.Is(err, models.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "Product not found",
		})
	default:
		h.log.Errorw("error processing product request",
			"scan_code", req.ScanCode,
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Failed to fetch product data",
		})
	}
}

func invalidBarcode(c echo.Context, scanCode string, log *zap.SugaredLogger) error {
	log.Warnw("invalid EAN13 barcode format", "scan_code", scanCode)
	return c.JSON(http.StatusBadRequest, echo.Map{
		"error":   "Invalid barcode format",
		"details": "Barcode must be a valid EAN13 format (13 digits with valid checksum)",
	})
}
