package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// LogType groups system log entries by the kind of entity touched.
type LogType string

const (
	LogTypeOrder       LogType = "ORDER"
	LogTypeWorker      LogType = "WORKER"
	LogTypeFixedCost   LogType = "FIXED_COST"
	LogTypeMonthConfig LogType = "MONTH_CONFIG"
	LogTypePayroll     LogType = "PAYROLL"
	LogTypeCash        LogType = "CASH"
)

// LogAction names the mutation a system log entry records.
type LogAction string

const (
	ActionCreate    LogAction = "CREATE"
	ActionEdit      LogAction = "EDIT"
	ActionDelete    LogAction = "DELETE"
	ActionStatus    LogAction = "STATUS"
	ActionPayout    LogAction = "PAYOUT"
	ActionReconcile LogAction = "RECONCILE"
)

// SystemLog is an append-only audit entry. OldData and NewData hold JSON text.
type SystemLog struct {
	LogID     int64     `json:"id"`
	Type      LogType   `json:"type"`
	Action    LogAction `json:"action"`
	TargetID  string    `json:"targetId"`
	Details   string    `json:"details"`
	OldData   string    `json:"oldData"`
	NewData   string    `json:"newData"`
	Operator  string    `json:"operator"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewSystemLog snapshots before/after values as JSON. A value that cannot be
// marshalled is stored as JSON null.
func NewSystemLog(logType LogType, action LogAction, targetID, details string, before, after any, operator string) SystemLog {
	return SystemLog{
		Type:      logType,
		Action:    action,
		TargetID:  targetID,
		Details:   details,
		OldData:   snapshot(before),
		NewData:   snapshot(after),
		Operator:  operator,
		CreatedAt: time.Now().UTC(),
	}
}

func snapshot(v any) string {
	if v == nil {
		return "null"
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}

// DecodePayload returns raw as JSON when it is valid, and false otherwise so
// readers can show a fallback instead of failing.
func DecodePayload(raw string) (json.RawMessage, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || !json.Valid([]byte(trimmed)) {
		return nil, false
	}
	return json.RawMessage(trimmed), true
}

// SystemLogFilter narrows a system log listing. Empty fields match everything.
type SystemLogFilter struct {
	Type     LogType
	TargetID string
}
