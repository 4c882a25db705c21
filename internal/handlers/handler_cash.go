package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/repair_shop_app/internal/core/ports/services"
	"github.com/SscSPs/repair_shop_app/internal/dto"
	"github.com/SscSPs/repair_shop_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// cashHandler serves the cash ledger.
type cashHandler struct {
	cashService portssvc.CashSvcFacade
}

func newCashHandler(cs portssvc.CashSvcFacade) *cashHandler {
	return &cashHandler{cashService: cs}
}

func registerCashRoutes(rg *gin.RouterGroup, cashService portssvc.CashSvcFacade) {
	h := newCashHandler(cashService)

	cash := rg.Group("/cash")
	{
		cash.GET("", h.getOverview)
		cash.POST("", h.recordTransaction)
		cash.POST("/reconcile", h.reconcile)
	}
}

// getOverview godoc
// @Summary Cash overview
// @Description Returns balances computed over the full ledger and the most recent entries.
// @Tags cash
// @Produce  json
// @Param   limit query int false "Number of recent entries" default(100)
// @Success 200 {object} dto.CashOverviewResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse "Failed to load cash overview"
// @Security BearerAuth
// @Router /cash [get]
func (h *cashHandler) getOverview(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListCashParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	overview, err := h.cashService.GetOverview(c.Request.Context(), params.Limit)
	if err != nil {
		respondError(c, logger, err, "Failed to load cash overview")
		return
	}
	c.JSON(http.StatusOK, dto.ToCashOverviewResponse(overview))
}

// recordTransaction godoc
// @Summary Record a manual cash entry
// @Tags cash
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateCashTransactionRequest true "Ledger entry"
// @Success 201 {object} dto.CashTransactionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Failed to record transaction"
// @Security BearerAuth
// @Router /cash [post]
func (h *cashHandler) recordTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCashTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	operator, ok := operatorOrAbort(c, logger)
	if !ok {
		return
	}

	txn, err := h.cashService.RecordTransaction(c.Request.Context(), req, operator)
	if err != nil {
		respondError(c, logger, err, "Failed to record transaction")
		return
	}

	logger.Info("Cash transaction recorded", slog.Int64("transaction_id", txn.TransactionID))
	c.JSON(http.StatusCreated, dto.ToCashTransactionResponse(txn))
}

// reconcile godoc
// @Summary Reconcile counted balances
// @Description Books Inventory corrections so each method's ledger balance matches the counted amount.
// @Description Each method is applied independently; check the per-method result.
// @Tags cash
// @Accept  json
// @Produce  json
// @Param   counts body dto.ReconcileRequest true "Counted balances"
// @Success 200 {object} domain.ReconciliationResult
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Failed to reconcile"
// @Security BearerAuth
// @Router /cash/reconcile [post]
func (h *cashHandler) reconcile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ReconcileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Reconcile", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	operator, ok := operatorOrAbort(c, logger)
	if !ok {
		return
	}

	result, err := h.cashService.Reconcile(c.Request.Context(), req, operator)
	if err != nil {
		respondError(c, logger, err, "Failed to reconcile")
		return
	}
	c.JSON(http.StatusOK, result)
}
