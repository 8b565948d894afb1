package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"printshop/internal/errors"
	"printshop/internal/model"
	"printshop/internal/service"
	"printshop/internal/storage"
)

// OrderHandler handles order endpoints.
type OrderHandler struct {
	orderService service.OrderService
	store        *storage.Store
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(orderService service.OrderService, store *storage.Store) *OrderHandler {
	return &OrderHandler{orderService: orderService, store: store}
}

// SubmitResponse is returned after a successful order submission.
type SubmitResponse struct {
	Message    string `json:"message"`
	OrderID    string `json:"orderId"`
	CustomerID string `json:"customerId"`
}

// UpdateStatusRequest is a partial status update; omitted fields are left
// unchanged.
type UpdateStatusRequest struct {
	Status        *string          `json:"status"`
	AdminNotes    *string          `json:"adminNotes"`
	EstimatedCost *decimal.Decimal `json:"estimatedCost"`
	ActualCost    *decimal.Decimal `json:"actualCost"`
}

// UpdateStatusResponse wraps the updated order.
type UpdateStatusResponse struct {
	Message string       `json:"message"`
	Order   *model.Order `json:"order"`
}

// Submit godoc
// @Summary Submit a new fabrication order
// @Description Multipart form with the design file and contact details. Creates the customer on first submission with a given email.
// @Tags orders
// @Accept mpfd
// @Produce json
// @Param file formData file true "Design file"
// @Param serviceType formData string true "Service category" Enums(3D Printing, PCB Printing)
// @Param name formData string true "Customer name"
// @Param email formData string true "Customer email"
// @Param phone formData string true "Customer phone"
// @Param address formData string true "Customer address"
// @Param company formData string false "Company"
// @Param projectDescription formData string false "Project description"
// @Param quantity formData int false "Quantity"
// @Param specifications formData string false "Specifications"
// @Param deadline formData string false "Deadline (YYYY-MM-DD)"
// @Success 201 {object} SubmitResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /orders [post]
func (h *OrderHandler) Submit(c echo.Context) error {
	in := service.SubmitInput{
		ServiceType:        model.ServiceType(c.FormValue("serviceType")),
		Name:               c.FormValue("name"),
		Email:              c.FormValue("email"),
		Phone:              c.FormValue("phone"),
		Address:            c.FormValue("address"),
		Company:            c.FormValue("company"),
		ProjectDescription: c.FormValue("projectDescription"),
		Specifications:     c.FormValue("specifications"),
	}

	if q := c.FormValue("quantity"); q != "" {
		quantity, err := strconv.Atoi(q)
		if err != nil || quantity < 1 {
			return badRequest("quantity must be a positive integer", "INVALID_QUANTITY")
		}
		in.Quantity = quantity
	}

	if d := c.FormValue("deadline"); d != "" {
		deadline, err := parseDeadline(d)
		if err != nil {
			return badRequest("deadline must be an RFC3339 or YYYY-MM-DD date", "INVALID_DEADLINE")
		}
		in.Deadline = &deadline
	}

	// Validate the cheap fields before touching the disk so a rejected
	// submission leaves nothing behind.
	if !in.ServiceType.Valid() {
		return mapError(c, errors.ErrInvalidServiceType)
	}
	if in.Name == "" || in.Email == "" || in.Phone == "" || in.Address == "" {
		return mapError(c, errors.ErrMissingFields)
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return mapError(c, errors.ErrFileRequired)
	}
	src, err := fileHeader.Open()
	if err != nil {
		return mapError(c, errors.ErrFileRequired)
	}
	defer src.Close()

	info, err := h.store.Save(src, fileHeader.Filename)
	if err != nil {
		c.Logger().Errorf("save upload: %v", err)
		return mapError(c, err)
	}
	in.File = info

	result, err := h.orderService.Submit(c.Request().Context(), in)
	if err != nil {
		// The order was not created; do not keep the orphaned upload.
		_ = h.store.Remove(info)
		return mapError(c, err)
	}

	return c.JSON(http.StatusCreated, SubmitResponse{
		Message:    "Order created successfully",
		OrderID:    result.OrderID,
		CustomerID: result.CustomerID,
	})
}

// List godoc
// @Summary List all orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} service.OrderView
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.orderService.ListOrders(c.Request().Context())
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}

// Get godoc
// @Summary Get an order by ID
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param orderId path string true "Order ID"
// @Success 200 {object} service.OrderView
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /orders/{orderId} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.orderService.GetOrder(c.Request().Context(), c.Param("orderId"))
	if err != nil {
		return mapError(c, err)
	}
	return c.JSON(http.StatusOK, order)
}

// UpdateStatus godoc
// @Summary Update order status, notes or costs
// @Description Partial update; omitted fields are unchanged. Status changes must follow the lifecycle.
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param orderId path string true "Order ID"
// @Param request body UpdateStatusRequest true "Fields to update"
// @Success 200 {object} UpdateStatusResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /orders/{orderId}/status [put]
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return badRequest("invalid request body", "INVALID_BODY")
	}

	in := service.UpdateStatusInput{
		AdminNotes:    req.AdminNotes,
		EstimatedCost: req.EstimatedCost,
		ActualCost:    req.ActualCost,
	}
	if req.Status != nil {
		status := model.OrderStatus(*req.Status)
		in.Status = &status
	}

	order, err := h.orderService.UpdateStatus(c.Request().Context(), c.Param("orderId"), in)
	if err != nil {
		return mapError(c, err)
	}

	return c.JSON(http.StatusOK, UpdateStatusResponse{
		Message: "Order updated successfully",
		Order:   order,
	})
}

// GetFile godoc
// @Summary Download the order's design file
// @Tags orders
// @Produce octet-stream
// @Security BearerAuth
// @Param orderId path string true "Order ID"
// @Success 200 {file} file
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /orders/{orderId}/file [get]
func (h *OrderHandler) GetFile(c echo.Context) error {
	path, originalName, err := h.orderService.GetFile(c.Request().Context(), c.Param("orderId"))
	if err != nil {
		return mapError(c, err)
	}
	return c.Attachment(path, originalName)
}

func parseDeadline(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
