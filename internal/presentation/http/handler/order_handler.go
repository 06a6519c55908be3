package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sonsardina/framing-api/internal/application/service"
	"github.com/sonsardina/framing-api/internal/presentation/http/dto/request"
	"github.com/sonsardina/framing-api/internal/presentation/http/dto/response"
)

// OrderHandler handles quote, order and item HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// Quote prices an item without storing it
func (h *OrderHandler) Quote(c *gin.Context) {
	var req request.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := req.ToQuoteInput()
	calculated, err := h.orderService.Quote(c.Request.Context(), &input)
	if err != nil {
		pricingError(c, err)
		return
	}

	response.OK(c, "Price calculated successfully", calculated)
}

// Create handles order creation
func (h *OrderHandler) Create(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	details, err := h.orderService.CreateOrder(c.Request.Context(), req.ToInput())
	if err != nil {
		pricingError(c, err)
		return
	}

	response.Created(c, "Order created successfully", details)
}

// Get handles getting an order with its priced item
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	details, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", details)
}

// Recalculate prices a stored item again
func (h *OrderHandler) Recalculate(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req request.RecalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	calculated, err := h.orderService.RecalculateItem(c.Request.Context(), id, req.Discount, request.ToExtraParts(req.ExtraParts))
	if err != nil {
		pricingError(c, err)
		return
	}

	response.OK(c, "Item recalculated successfully", calculated)
}
