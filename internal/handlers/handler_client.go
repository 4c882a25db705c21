package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/repair_shop_app/internal/core/ports/services"
	"github.com/SscSPs/repair_shop_app/internal/dto"
	"github.com/SscSPs/repair_shop_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type clientHandler struct {
	orderService portssvc.OrderReaderSvc
}

func registerClientRoutes(rg *gin.RouterGroup, orderService portssvc.OrderReaderSvc) {
	h := &clientHandler{orderService: orderService}

	clients := rg.Group("/clients")
	{
		clients.GET("", h.listClients)
		clients.GET("/:id/orders", h.listClientOrders)
	}
}

// listClients godoc
// @Summary List clients
// @Tags clients
// @Produce  json
// @Param   search query string false "Substring of name or phone"
// @Success 200 {array} domain.Client
// @Failure 500 {object} dto.ErrorResponse "Failed to list clients"
// @Security BearerAuth
// @Router /clients [get]
func (h *clientHandler) listClients(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clients, err := h.orderService.ListClients(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, logger, err, "Failed to list clients")
		return
	}
	c.JSON(http.StatusOK, clients)
}

// listClientOrders godoc
// @Summary List a client's order history
// @Tags clients
// @Produce  json
// @Param   id path int true "Client ID"
// @Success 200 {array} dto.OrderResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid client ID"
// @Failure 404 {object} dto.ErrorResponse "Client not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to list orders"
// @Security BearerAuth
// @Router /clients/{id}/orders [get]
func (h *clientHandler) listClientOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	clientID, ok := parseID(c, c.Param("id"), "client ID")
	if !ok {
		return
	}

	orders, err := h.orderService.ListClientOrders(c.Request.Context(), clientID)
	if err != nil {
		respondError(c, logger, err, "Failed to list client orders")
		return
	}
	c.JSON(http.StatusOK, dto.ToListOrderResponse(orders))
}
