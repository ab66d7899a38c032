package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/KiwiRant/Kitchen-database/internal/api/metrics"
	"github.com/KiwiRant/Kitchen-database/internal/core/domain"
	"github.com/KiwiRant/Kitchen-database/internal/core/ports"
)

// SaleHandler handles sale listing and creation.
type SaleHandler struct {
	service ports.SaleService
}

func NewSaleHandler(service ports.SaleService) *SaleHandler {
	return &SaleHandler{service: service}
}

type listSalesResponse struct {
	Success bool          `json:"success"`
	Sales   []domain.Sale `json:"sales"`
}

// List returns all sales joined with their client's name, newest first.
//
// @Summary      List sales
// @Tags         sales
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listSalesResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/sales [get]
func (h *SaleHandler) List(c echo.Context) error {
	sales, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listSalesResponse{Success: true, Sales: sales})
}

type createSaleRequest struct {
	ClientID    int64   `json:"clientId"    validate:"required"`
	JobName     string  `json:"jobName"     validate:"required"`
	Description string  `json:"description" validate:"required"`
	Quantity    float64 `json:"quantity"    validate:"required,gt=0"`
	UnitPrice   float64 `json:"unitPrice"   validate:"gte=0"`
}

type createSaleResponse struct {
	Success bool         `json:"success"`
	Sale    *domain.Sale `json:"sale"`
}

// Create records a sale under an existing client. The total is computed
// server-side; a client-sent total is ignored.
//
// @Summary      Record a sale
// @Tags         sales
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSaleRequest  true  "Sale details"
// @Success      201   {object}  createSaleResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/sales [post]
func (h *SaleHandler) Create(c echo.Context) error {
	var req createSaleRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sale, err := h.service.Create(c.Request().Context(), ports.CreateSaleInput{
		ClientID:    req.ClientID,
		JobName:     req.JobName,
		Description: req.Description,
		Quantity:    req.Quantity,
		UnitPrice:   req.UnitPrice,
		CreatedBy:   sessionIdentifier(c),
	})
	if err != nil {
		return err
	}

	metrics.SalesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, createSaleResponse{Success: true, Sale: sale})
}
