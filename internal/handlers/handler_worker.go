package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/repair_shop_app/internal/core/ports/services"
	"github.com/SscSPs/repair_shop_app/internal/dto"
	"github.com/SscSPs/repair_shop_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// workerHandler manages masters.
type workerHandler struct {
	workerService portssvc.WorkerSvcFacade
}

func newWorkerHandler(ws portssvc.WorkerSvcFacade) *workerHandler {
	return &workerHandler{workerService: ws}
}

func registerWorkerRoutes(rg *gin.RouterGroup, workerService portssvc.WorkerSvcFacade) {
	h := newWorkerHandler(workerService)

	masters := rg.Group("/masters")
	{
		masters.GET("", h.listWorkers)
		masters.POST("", h.upsertWorker)
		masters.DELETE("", h.deactivateWorker)
	}
}

// listWorkers godoc
// @Summary List masters
// @Tags masters
// @Produce  json
// @Param   includeInactive query bool false "Include deactivated masters"
// @Success 200 {array} dto.WorkerResponse
// @Failure 500 {object} dto.ErrorResponse "Failed to list masters"
// @Security BearerAuth
// @Router /masters [get]
func (h *workerHandler) listWorkers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListWorkersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	workers, err := h.workerService.ListWorkers(c.Request.Context(), params.IncludeInactive)
	if err != nil {
		respondError(c, logger, err, "Failed to list masters")
		return
	}
	c.JSON(http.StatusOK, dto.ToListWorkerResponse(workers))
}

// upsertWorker godoc
// @Summary Create or update a master
// @Description Creates a master, or updates the one whose id is given.
// @Tags masters
// @Accept  json
// @Produce  json
// @Param   master body dto.UpsertWorkerRequest true "Master details"
// @Success 200 {object} dto.WorkerResponse "Updated"
// @Success 201 {object} dto.WorkerResponse "Created"
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 404 {object} dto.ErrorResponse "Master not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to save master"
// @Security BearerAuth
// @Router /masters [post]
func (h *workerHandler) upsertWorker(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpsertWorkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpsertWorker", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	operator, ok := operatorOrAbort(c, logger)
	if !ok {
		return
	}

	worker, err := h.workerService.UpsertWorker(c.Request.Context(), req, operator)
	if err != nil {
		respondError(c, logger, err, "Failed to save master")
		return
	}

	status := http.StatusOK
	if req.ID == nil {
		status = http.StatusCreated
	}
	logger.Info("Master saved", slog.Int64("worker_id", worker.WorkerID))
	c.JSON(status, dto.ToWorkerResponse(worker))
}

// deactivateWorker godoc
// @Summary Deactivate a master
// @Description Hides a master from assignment. Accrued salary logs are kept.
// @Tags masters
// @Param   id query int true "Master ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid master ID"
// @Failure 404 {object} dto.ErrorResponse "Master not found"
// @Failure 500 {object} dto.ErrorResponse "Failed to deactivate master"
// @Security BearerAuth
// @Router /masters [delete]
func (h *workerHandler) deactivateWorker(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	workerID, ok := parseID(c, c.Query("id"), "master ID")
	if !ok {
		return
	}

	operator, ok := operatorOrAbort(c, logger)
	if !ok {
		return
	}

	if err := h.workerService.DeactivateWorker(c.Request.Context(), workerID, operator); err != nil {
		respondError(c, logger, err, "Failed to deactivate master")
		return
	}
	c.Status(http.StatusNoContent)
}
