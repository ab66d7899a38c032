package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/KiwiRant/Kitchen-database/internal/api/metrics"
	"github.com/KiwiRant/Kitchen-database/internal/core/domain"
	"github.com/KiwiRant/Kitchen-database/internal/core/ports"
)

// QuoteHandler handles quote listing and creation.
type QuoteHandler struct {
	service ports.QuoteService
}

func NewQuoteHandler(service ports.QuoteService) *QuoteHandler {
	return &QuoteHandler{service: service}
}

type listQuotesResponse struct {
	Success bool           `json:"success"`
	Quotes  []domain.Quote `json:"quotes"`
}

// List returns quotes with their decoded line-item snapshots, optionally
// filtered by client_id and job_name query parameters.
//
// @Summary      List quotes
// @Tags         quotes
// @Produce      json
// @Security     BearerAuth
// @Param        client_id  query     int     false  "Filter by client"
// @Param        job_name   query     string  false  "Filter by job name"
// @Success      200        {object}  listQuotesResponse
// @Failure      400        {object}  errorResponse
// @Failure      401        {object}  errorResponse
// @Failure      500        {object}  errorResponse
// @Router       /api/quotes [get]
func (h *QuoteHandler) List(c echo.Context) error {
	var filter ports.QuoteFilter
	if raw := c.QueryParam("client_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "client_id must be a number")
		}
		filter.ClientID = id
	}
	filter.JobName = c.QueryParam("job_name")

	quotes, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listQuotesResponse{Success: true, Quotes: quotes})
}

type createQuoteRequest struct {
	ClientID int64  `json:"clientId" validate:"required"`
	JobName  string `json:"jobName"  validate:"required"`
	Notes    string `json:"notes"`
}

type createQuoteResponse struct {
	Success bool          `json:"success"`
	Quote   *domain.Quote `json:"quote"`
}

// Create issues a new quote from the sales recorded under (clientId, jobName).
//
// @Summary      Create a quote
// @Tags         quotes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createQuoteRequest  true  "Quote details"
// @Success      201   {object}  createQuoteResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/quotes [post]
func (h *QuoteHandler) Create(c echo.Context) error {
	var req createQuoteRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	quote, err := h.service.Create(c.Request().Context(), ports.CreateQuoteInput{
		ClientID:  req.ClientID,
		JobName:   req.JobName,
		Notes:     req.Notes,
		CreatedBy: sessionIdentifier(c),
	})
	if err != nil {
		return err
	}

	metrics.QuotesCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, createQuoteResponse{Success: true, Quote: quote})
}
