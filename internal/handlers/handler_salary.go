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

type salaryHandler struct {
	commissionService portssvc.CommissionSvcFacade
}

func registerSalaryRoutes(rg *gin.RouterGroup, commissionService portssvc.CommissionSvcFacade) {
	h := &salaryHandler{commissionService: commissionService}

	logs := rg.Group("/salary-logs")
	{
		logs.GET("", h.listSalaryLogs)
		logs.POST("", h.payout)
	}
}

// listSalaryLogs godoc
// @Summary List salary logs
// @Tags salary
// @Produce  json
// @Param   workerId query int false "Only logs of this master"
// @Param   unpaidOnly query bool false "Only unpaid logs"
// @Success 200 {array} dto.SalaryLogResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse "Failed to list salary logs"
// @Security BearerAuth
// @Router /salary-logs [get]
func (h *salaryHandler) listSalaryLogs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListSalaryLogsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	logs, err := h.commissionService.ListSalaryLogs(c.Request.Context(), domain.SalaryLogFilter{
		WorkerID:   params.WorkerID,
		UnpaidOnly: params.UnpaidOnly,
	})
	if err != nil {
		respondError(c, logger, err, "Failed to list salary logs")
		return
	}
	c.JSON(http.StatusOK, dto.ToListSalaryLogResponse(logs))
}

// payout godoc
// @Summary Pay out a master
// @Description Marks the master's unpaid logs (or the listed subset) paid and books one Salary expense.
// @Tags salary
// @Accept  json
// @Produce  json
// @Param   payout body dto.PayoutRequest true "Payout"
// @Success 200 {object} dto.PayoutResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input or nothing to pay"
// @Failure 404 {object} dto.ErrorResponse "Master not found"
// @Failure 409 {object} dto.ErrorResponse "Concurrent payout"
// @Failure 500 {object} dto.ErrorResponse "Failed to pay out"
// @Security BearerAuth
// @Router /salary-logs [post]
func (h *salaryHandler) payout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.PayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Payout", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	operator, ok := operatorOrAbort(c, logger)
	if !ok {
		return
	}

	payout, err := h.commissionService.PayoutWorker(c.Request.Context(), req, operator)
	if err != nil {
		respondError(c, logger, err, "Failed to pay out")
		return
	}

	logger.Info("Salary paid out", slog.Int64("worker_id", payout.WorkerID), slog.String("amount", payout.Amount.String()))
	c.JSON(http.StatusOK, dto.ToPayoutResponse(payout))
}
