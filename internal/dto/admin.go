package dto

import (
	"time"

	"github.com/SscSPs/repair_shop_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateFixedCostRequest defines a recurring monthly cost.
type CreateFixedCostRequest struct {
	Name   string          `json:"name" binding:"required"`
	Amount decimal.Decimal `json:"amount" binding:"gt=0"`
}

// MonthParams selects a calendar month. Zero values mean the current month.
type MonthParams struct {
	Year  int `form:"year" binding:"omitempty,gte=2000,lte=2100"`
	Month int `form:"month" binding:"omitempty,gte=1,lte=12"`
}

// MonthConfigRequest sets the working days of a month.
type MonthConfigRequest struct {
	Year        int `json:"year" binding:"required,gte=2000,lte=2100"`
	Month       int `json:"month" binding:"required,gte=1,lte=12"`
	WorkingDays int `json:"workingDays" binding:"gte=0,lte=31"`
}

// ListSystemLogsParams defines query parameters for the system log.
type ListSystemLogsParams struct {
	Type      string  `form:"type"`
	TargetID  string  `form:"targetId"`
	Limit     int     `form:"limit,default=50" binding:"gte=1,lte=200"`
	NextToken *string `form:"nextToken"`
}

// SystemLogResponse defines the data returned for a system log entry.
// Payloads that are not valid JSON are returned as plain strings.
type SystemLogResponse struct {
	LogID     int64            `json:"id"`
	Type      domain.LogType   `json:"type"`
	Action    domain.LogAction `json:"action"`
	TargetID  string           `json:"targetId"`
	Details   string           `json:"details"`
	OldData   any              `json:"oldData"`
	NewData   any              `json:"newData"`
	Operator  string           `json:"operator"`
	CreatedAt time.Time        `json:"createdAt"`
}

// ListSystemLogsResponse wraps a page of system log entries.
type ListSystemLogsResponse struct {
	Logs      []SystemLogResponse `json:"logs"`
	NextToken *string             `json:"nextToken,omitempty"`
}

func payload(raw string) any {
	if msg, ok := domain.DecodePayload(raw); ok {
		return msg
	}
	if raw == "" {
		return nil
	}
	return raw
}

// ToSystemLogResponse converts a domain.SystemLog to its DTO.
func ToSystemLogResponse(l *domain.SystemLog) SystemLogResponse {
	return SystemLogResponse{
		LogID:     l.LogID,
		Type:      l.Type,
		Action:    l.Action,
		TargetID:  l.TargetID,
		Details:   l.Details,
		OldData:   payload(l.OldData),
		NewData:   payload(l.NewData),
		Operator:  l.Operator,
		CreatedAt: l.CreatedAt,
	}
}

// ToListSystemLogsResponse converts a page of entries to its DTO.
func ToListSystemLogsResponse(logs []domain.SystemLog, nextToken *string) ListSystemLogsResponse {
	res := ListSystemLogsResponse{Logs: make([]SystemLogResponse, len(logs)), NextToken: nextToken}
	for i := range logs {
		res.Logs[i] = ToSystemLogResponse(&logs[i])
	}
	return res
}
