package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"printshop/internal/model"
	"printshop/internal/service"
)

// CustomerHandler handles admin-facing customer endpoints.
type CustomerHandler struct {
	customerService service.CustomerService
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// UpdateCustomerRequest is a partial update; omitted fields are unchanged.
type UpdateCustomerRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	Company *string `json:"company"`
	Active  *bool   `json:"isActive"`
}

// UpdateCustomerResponse wraps the updated customer.
type UpdateCustomerResponse struct {
	Message  string          `json:"message"`
	Customer *model.Customer `json:"customer"`
}

// List godoc
// @Summary List all customers
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Customer
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /customers [get]
func (h *CustomerHandler) List(c echo.Context) error {
	customers, err := h.customerService.ListCustomers(c.Request().Context())
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, customers)
}

// Get godoc
// @Summary Get a customer and their orders
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Param customerId path string true "Customer ID"
// @Success 200 {object} service.CustomerDetail
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /customers/{customerId} [get]
func (h *CustomerHandler) Get(c echo.Context) error {
	detail, err := h.customerService.GetCustomer(c.Request().Context(), c.Param("customerId"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, detail)
}

// Update godoc
// @Summary Update a customer
// @Description Partial update of customer contact fields and active flag. Order snapshots are unaffected.
// @Tags customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param customerId path string true "Customer ID"
// @Param request body UpdateCustomerRequest true "Fields to update"
// @Success 200 {object} UpdateCustomerResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /customers/{customerId} [put]
func (h *CustomerHandler) Update(c echo.Context) error {
	var req UpdateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body", "INVALID_BODY")
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(err.Error(), "VALIDATION_FAILED")
	}

	customer, err := h.customerService.UpdateCustomer(c.Request().Context(), c.Param("customerId"), service.UpdateCustomerInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
		Company: req.Company,
		Active:  req.Active,
	})
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, UpdateCustomerResponse{
		Message:  "Customer updated successfully",
		Customer: customer,
	})
}

// Stats godoc
// @Summary Customer statistics overview
// @Tags customers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.StatsOverview
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /customers/stats/overview [get]
func (h *CustomerHandler) Stats(c echo.Context) error {
	stats, err := h.customerService.Stats(c.Request().Context())
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}
