package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/repair_shop_app/internal/core/domain"
	portssvc "github.com/SscSPs/repair_shop_app/internal/core/ports/services"
	"github.com/SscSPs/repair_shop_app/internal/dto"
	"github.com/SscSPs/repair_shop_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// adminHandler serves the back-office: fixed costs, month configuration,
// the cashflow report and the system log.
type adminHandler struct {
	reportService portssvc.ReportSvcFacade
	auditService  portssvc.AuditSvcFacade
}

func newAdminHandler(rs portssvc.ReportSvcFacade, as portssvc.AuditSvcFacade) *adminHandler {
	return &adminHandler{reportService: rs, auditService: as}
}

func registerAdminRoutes(rg *gin.RouterGroup, reportService portssvc.ReportSvcFacade, auditService portssvc.AuditSvcFacade) {
	h := newAdminHandler(reportService, auditService)

	admin := rg.Group("/admin")
	{
		admin.GET("/fixed-costs", h.listFixedCosts)
		admin.POST("/fixed-costs", h.createFixedCost)
		admin.DELETE("/fixed-costs", h.deleteFixedCost)

		admin.GET("/month-config", h.getMonthConfig)
		admin.PUT("/month-config", h.setMonthConfig)

		admin.GET("/cashflow", h.getCashflow)
		admin.GET("/system-logs", h.listSystemLogs)
	}
}

// resolveMonth fills zero values with the current UTC month.
func resolveMonth(p dto.MonthParams) (int, int) {
	now := time.Now().UTC()
	year, month := p.Year, p.Month
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	return year, month
}

// listFixedCosts godoc
// @Summary List fixed costs
// @Tags admin
// @Produce  json
// @Success 200 {array} domain.FixedCost
// @Failure 500 {object} dto.ErrorResponse "Failed to list fixed costs"
// @Security BearerAuth
// @Router /admin/fixed-costs [get]
func (h *adminHandler) listFixedCosts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	costs, err := h.reportService.ListFixedCosts(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to list fixed costs")
		return
	}
	c.JSON(http.StatusOK, costs)
}

// createFixedCost godoc
// @Summary Add a fixed cost
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   cost body dto.CreateFixedCostRequest true "Fixed cost"
// @Success 201 {object} domain.FixedCost
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Failed to create fixed cost"
// @Security BearerAuth
// @Router /admin/fixed-costs [post]
func (h *adminHandler) createFixedCost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFixedCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	operator, ok := operatorOrAbort(c, logger)
	if !ok {
		return
	}

	cost, err := h.reportService.CreateFixedCost(c.Request.Context(), req, operator)
	if err != nil {
		respondError(c, logger, err, "Failed to create fixed cost")
		return
	}
	c.JSON(http.StatusCreated, cost)
}

// deleteFixedCost godoc
// @Summary Remove a fixed cost
// @Tags admin
// @Param   id query int true "Fixed cost ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse "Fixed cost not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to delete fixed cost"
// @Security BearerAuth
// @Router /admin/fixed-costs [delete]
func (h *adminHandler) deleteFixedCost(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	id, ok := parseID(c, c.Query("id"), "fixed cost ID")
	if !ok {
		return
	}

	operator, ok := operatorOrAbort(c, logger)
	if !ok {
		return
	}

	if err := h.reportService.DeleteFixedCost(c.Request.Context(), id, operator); err != nil {
		respondError(c, logger, err, "Failed to delete fixed cost")
		return
	}
	c.Status(http.StatusNoContent)
}

// getMonthConfig godoc
// @Summary Get a month's working days
// @Description Returns the configured working days, or the default flagged isDefault.
// @Tags admin
// @Produce  json
// @Param   year query int false "Year, defaults to the current one"
// @Param   month query int false "Month 1-12, defaults to the current one"
// @Success 200 {object} domain.MonthConfig
// @Failure 400 {object} dto.ErrorResponse "Invalid month"
// @Failure 500 {object} dto.ErrorResponse "Failed to load month config"
// @Security BearerAuth
// @Router /admin/month-config [get]
func (h *adminHandler) getMonthConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.MonthParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	year, month := resolveMonth(params)
	cfg, err := h.reportService.GetMonthConfig(c.Request.Context(), year, month)
	if err != nil {
		respondError(c, logger, err, "Failed to load month config")
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// setMonthConfig godoc
// @Summary Set a month's working days
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   config body dto.MonthConfigRequest true "Month configuration"
// @Success 200 {object} domain.MonthConfig
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 500 {object} dto.ErrorResponse "Failed to save month config"
// @Security BearerAuth
// @Router /admin/month-config [put]
func (h *adminHandler) setMonthConfig(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.MonthConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	operator, ok := operatorOrAbort(c, logger)
	if !ok {
		return
	}

	cfg, err := h.reportService.SetMonthConfig(c.Request.Context(), req, operator)
	if err != nil {
		respondError(c, logger, err, "Failed to save month config")
		return
	}
	logger.Info("Month config saved", slog.Int("year", cfg.Year), slog.Int("month", cfg.Month), slog.Int("working_days", cfg.WorkingDays))
	c.JSON(http.StatusOK, cfg)
}

// getCashflow godoc
// @Summary Monthly cashflow report
// @Description Revenue, commissions, staff pay, fixed costs, other expenses and net profit of a month.
// @Tags admin
// @Produce  json
// @Param   year query int false "Year, defaults to the current one"
// @Param   month query int false "Month 1-12, defaults to the current one"
// @Success 200 {object} domain.CashflowReport
// @Failure 400 {object} dto.ErrorResponse "Invalid month"
// @Failure 500 {object} dto.ErrorResponse "Failed to build report"
// @Security BearerAuth
// @Router /admin/cashflow [get]
func (h *adminHandler) getCashflow(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.MonthParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	year, month := resolveMonth(params)
	report, err := h.reportService.GetCashflowReport(c.Request.Context(), year, month)
	if err != nil {
		respondError(c, logger, err, "Failed to build cashflow report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// listSystemLogs godoc
// @Summary List system logs
// @Description Newest first, paginated with an opaque nextToken.
// @Tags admin
// @Produce  json
// @Param   type query string false "ORDER, WORKER, CASH, PAYROLL, FIXED_COST or MONTH_CONFIG"
// @Param   targetId query string false "Target entity id"
// @Param   limit query int false "Page size" default(50)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListSystemLogsResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid query parameters"
// @Failure 500 {object} dto.ErrorResponse "Failed to list system logs"
// @Security BearerAuth
// @Router /admin/system-logs [get]
func (h *adminHandler) listSystemLogs(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListSystemLogsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	filter := domain.SystemLogFilter{Type: domain.LogType(params.Type), TargetID: params.TargetID}
	logs, next, err := h.auditService.ListSystemLogs(c.Request.Context(), filter, params.Limit, params.NextToken)
	if err != nil {
		respondError(c, logger, err, "Failed to list system logs")
		return
	}
	c.JSON(http.StatusOK, dto.ToListSystemLogsResponse(logs, next))
}
