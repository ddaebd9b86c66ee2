package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sweetshop/inventory-system/internal/api/metrics"
	"github.com/sweetshop/inventory-system/internal/core/ports"
)

// SweetHandler handles HTTP requests for inventory operations.
type SweetHandler struct {
	service ports.SweetService
}

func NewSweetHandler(service ports.SweetService) *SweetHandler {
	return &SweetHandler{service: service}
}

// Create handles POST /api/sweets. Requires a valid bearer token.
//
// @Summary      Create a new sweet
// @Tags         sweets
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createSweetRequest  true  "Sweet details"
// @Success      201   {object}  sweetResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/sweets [post]
func (h *SweetHandler) Create(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}

	var req createSweetRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	sweet, err := h.service.Create(c.Request().Context(), ports.CreateSweetInput{
		Name:     req.Name,
		Category: req.Category,
		Price:    req.Price,
		Quantity: req.Quantity,
	})
	if err != nil {
		return err
	}

	metrics.SweetsCreatedTotal.WithLabelValues(sweet.Category).Inc()
	return c.JSON(http.StatusCreated, toSweetResponse(sweet))
}

// List handles GET /api/sweets. Open read, no auth required.
//
// @Summary      List all sweets
// @Tags         sweets
// @Produce      json
// @Success      200  {array}  sweetResponse
// @Router       /api/sweets [get]
func (h *SweetHandler) List(c echo.Context) error {
	sweets, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]sweetResponse, 0, len(sweets))
	for _, s := range sweets {
		resp = append(resp, toSweetResponse(s))
	}
	return c.JSON(http.StatusOK, resp)
}
