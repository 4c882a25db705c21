package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/repair_shop_app/internal/core/domain"
	portssvc "github.com/SscSPs/repair_shop_app/internal/core/ports/services"
	"github.com/SscSPs/repair_shop_app/internal/dto"
	"github.com/SscSPs/repair_shop_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// orderHandler handles HTTP requests related to orders and their lifecycle.
type orderHandler struct {
	orderService     portssvc.OrderSvcFacade
	lifecycleService portssvc.LifecycleSvcFacade
}

// newOrderHandler creates a new orderHandler.
func newOrderHandler(os portssvc.OrderSvcFacade, ls portssvc.LifecycleSvcFacade) *orderHandler {
	return &orderHandler{
		orderService:     os,
		lifecycleService: ls,
	}
}

// registerOrderRoutes registers routes related to orders.
func registerOrderRoutes(rg *gin.RouterGroup, orderService portssvc.OrderSvcFacade, lifecycleService portssvc.LifecycleSvcFacade) {
	h := newOrderHandler(orderService, lifecycleService)

	orders := rg.Group("/orders")
	{
		orders.POST("", h.createOrder)
		orders.GET("", h.listOrders)
		orders.GET("/:id", h.getOrder)
		orders.PUT("/:id", h.editOrder)
		orders.DELETE("/:id", h.deleteOrder)
		orders.PATCH("/:id/status", h.changeStatus)
		orders.POST("/:id/complete", h.completeOrder)
	}
}

// createOrder godoc
// @Summary Create a new order
// @Description Opens an order with the next sequential number, links the client by phone and books prepayments.
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   order body dto.CreateOrderRequest true "Order details"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 409 {object} dto.ErrorResponse "Order number could not be allocated"
// @Failure 500 {object} dto.ErrorResponse "Failed to create order"
// @Security BearerAuth
// @Router /orders [post]
func (h *orderHandler) createOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateOrder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	operator, ok := operatorOrAbort(c, logger)
	if !ok {
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), req, operator)
	if err != nil {
		respondError(c, logger, err, "Failed to create order")
		return
	}

	logger.Info("Order created", slog.Int64("order_id", order.OrderID), slog.String("order_number", order.OrderNumber))
	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

// listOrders godoc
// @Summary List orders
// @Description Lists active (default), archived or all orders, optionally filtered by order number, client name or phone.
// @Tags orders
// @Produce  json
// @Param   view query string false "active | archive | all"
// @Param   search query string false "Substring of order number, client name or phone"
// @Success 200 {array} dto.OrderResponse
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Failed to list orders"
// @Security BearerAuth
// @Router /orders [get]
func (h *orderHandler) listOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListOrdersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	filter := domain.OrderFilter{View: domain.ParseOrderView(params.View), Search: params.Search}
	orders, err := h.orderService.ListOrders(c.Request.Context(), filter)
	if err != nil {
		respondError(c, logger, err, "Failed to list orders")
		return
	}
	c.JSON(http.StatusOK, dto.ToListOrderResponse(orders))
}

// getOrder godoc
// @Summary Get an order by ID
// @Tags orders
// @Produce  json
// @Param   id path int true "Order ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid order ID"
// @Failure 404 {object} dto.ErrorResponse "Order not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to retrieve order"
// @Security BearerAuth
// @Router /orders/{id} [get]
func (h *orderHandler) getOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID, ok := parseID(c, c.Param("id"), "order ID")
	if !ok {
		return
	}

	order, err := h.orderService.GetOrderByID(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve order")
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// editOrder godoc
// @Summary Edit an order
// @Description Applies the single permitted edit of an order that has not been issued.
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   id path int true "Order ID"
// @Param   order body dto.EditOrderRequest true "Fields to change"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Edit limit reached or order issued"
// @Failure 404 {object} dto.ErrorResponse "Order not found"
// @Failure 409 {object} dto.ErrorResponse "Concurrent modification"
// @Failure 500 {object} dto.ErrorResponse "Failed to edit order"
// @Security BearerAuth
// @Router /orders/{id} [put]
func (h *orderHandler) editOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID, ok := parseID(c, c.Param("id"), "order ID")
	if !ok {
		return
	}

	var req dto.EditOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for EditOrder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	operator, ok := operatorOrAbort(c, logger)
	if !ok {
		return
	}

	order, err := h.orderService.EditOrder(c.Request.Context(), orderID, req, operator)
	if err != nil {
		respondError(c, logger, err, "Failed to edit order")
		return
	}

	logger.Info("Order edited", slog.Int64("order_id", orderID))
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// deleteOrder godoc
// @Summary Delete an order
// @Description Deletes an order that has no accrued commissions.
// @Tags orders
// @Param   id path int true "Order ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid order ID"
// @Failure 404 {object} dto.ErrorResponse "Order not found"
// @Failure 409 {object} dto.ErrorResponse "Order has accrued commissions"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete order"
// @Security BearerAuth
// @Router /orders/{id} [delete]
func (h *orderHandler) deleteOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID, ok := parseID(c, c.Param("id"), "order ID")
	if !ok {
		return
	}

	operator, ok := operatorOrAbort(c, logger)
	if !ok {
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), orderID, operator); err != nil {
		respondError(c, logger, err, "Failed to delete order")
		return
	}

	logger.Info("Order deleted", slog.Int64("order_id", orderID))
	c.Status(http.StatusNoContent)
}

// changeStatus godoc
// @Summary Change an order's status
// @Description Moving to Ready accrues commissions. Moving to Issued records the final payment.
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   id path int true "Order ID"
// @Param   status body dto.ChangeStatusRequest true "Target status and optional payment"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid status or payment method"
// @Failure 404 {object} dto.ErrorResponse "Order not found"
// @Failure 409 {object} dto.ErrorResponse "Concurrent modification"
// @Failure 500 {object} dto.ErrorResponse "Failed to change status"
// @Security BearerAuth
// @Router /orders/{id}/status [patch]
func (h *orderHandler) changeStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID, ok := parseID(c, c.Param("id"), "order ID")
	if !ok {
		return
	}

	var req dto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ChangeStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	operator, ok := operatorOrAbort(c, logger)
	if !ok {
		return
	}

	order, err := h.lifecycleService.ChangeStatus(c.Request.Context(), orderID, req, operator)
	if err != nil {
		respondError(c, logger, err, "Failed to change order status")
		return
	}

	logger.Info("Order status changed", slog.Int64("order_id", orderID), slog.String("status", string(order.Status)))
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// completeOrder godoc
// @Summary Complete an order
// @Description Issues the order and records the final payment in the ledger.
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   id path int true "Order ID"
// @Param   payment body dto.CompleteOrderRequest true "Final payment"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid payment"
// @Failure 404 {object} dto.ErrorResponse "Order not found"
// @Failure 409 {object} dto.ErrorResponse "Order already issued"
// @Failure 500 {object} dto.ErrorResponse "Failed to complete order"
// @Security BearerAuth
// @Router /orders/{id}/complete [post]
func (h *orderHandler) completeOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	orderID, ok := parseID(c, c.Param("id"), "order ID")
	if !ok {
		return
	}

	var req dto.CompleteOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CompleteOrder", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	operator, ok := operatorOrAbort(c, logger)
	if !ok {
		return
	}

	order, err := h.lifecycleService.CompleteOrder(c.Request.Context(), orderID, req.PaymentAmount, req.PaymentMethod, operator)
	if err != nil {
		respondError(c, logger, err, "Failed to complete order")
		return
	}

	logger.Info("Order completed", slog.Int64("order_id", orderID), slog.String("amount", req.PaymentAmount.String()))
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}
