package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/KiwiRant/Kitchen-database/internal/core/domain"
	"github.com/KiwiRant/Kitchen-database/internal/core/ports"
)

// ClientHandler handles client listing and creation.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

type listClientsResponse struct {
	Success bool                   `json:"success"`
	Clients []domain.ClientSummary `json:"clients"`
}

// List returns all clients with their per-job sales aggregates.
//
// @Summary      List clients with sales totals
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listClientsResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listClientsResponse{Success: true, Clients: clients})
}

type createClientRequest struct {
	Name  string `json:"name"  validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

type createClientResponse struct {
	Success bool           `json:"success"`
	Client  *domain.Client `json:"client"`
}

// Create registers a new client.
//
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createClientRequest  true  "Client details"
// @Success      201   {object}  createClientResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req createClientRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client, err := h.service.Create(c.Request().Context(), ports.CreateClientInput{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Notes: req.Notes,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, createClientResponse{Success: true, Client: client})
}
