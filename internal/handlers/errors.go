package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/repair_shop_app/internal/apperrors"
	"github.com/SscSPs/repair_shop_app/internal/dto"
	"github.com/SscSPs/repair_shop_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondError maps a service error onto a status code and writes it.
// Store errors answer with their fixed AppError message, service rejections
// echo the error text and server errors only show fallback.
func respondError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	var appErr *apperrors.AppError
	switch {
	case errors.As(err, &appErr) && appErr.Code >= 400 && appErr.Code < 500:
		logger.Warn("Request failed", slog.String("error", err.Error()))
		c.JSON(appErr.Code, dto.ErrorResponse{Error: appErr.Message})
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrInvalidPaymentMethod):
		logger.Warn("Rejected invalid request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrEditLimitExceeded), errors.Is(err, apperrors.ErrOrderLocked):
		logger.Warn("Order is not editable", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Request conflicts with current state", slog.String("error", err.Error()))
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "Forbidden"})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: fallback})
	}
}

// operatorOrAbort returns the authenticated operator, answering 401 when absent.
func operatorOrAbort(c *gin.Context, logger *slog.Logger) (string, bool) {
	operator, ok := middleware.GetOperatorFromContext(c)
	if !ok {
		logger.Error("Operator not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized"})
		return "", false
	}
	return operator, true
}

// parseID reads a positive int64 from raw, answering 400 when it is not one.
func parseID(c *gin.Context, raw, name string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid " + name + ": " + raw})
		return 0, false
	}
	return id, true
}
