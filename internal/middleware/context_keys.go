package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// operatorKey stores the authenticated operator's identity (the JWT subject).
const operatorKey = contextKey("operator")

// SystemOperator is recorded on audit entries when no authenticated operator is known.
const SystemOperator = "system"

// GetOperatorFromContext retrieves the authenticated operator from the Gin context.
// It returns the operator and a boolean indicating if it was found.
func GetOperatorFromContext(c *gin.Context) (string, bool) {
	if val, exists := c.Get(string(operatorKey)); exists {
		operator, ok := val.(string)
		return operator, ok
	}
	operator := GetOperatorFromCtx(c.Request.Context())
	if operator == SystemOperator {
		return "", false
	}
	return operator, true
}

// GetOperatorFromCtx returns the operator stored by AuthMiddleware, or SystemOperator.
func GetOperatorFromCtx(ctx context.Context) string {
	if ctx == nil {
		return SystemOperator
	}
	if operator, ok := ctx.Value(operatorKey).(string); ok && operator != "" {
		return operator
	}
	return SystemOperator
}

// WithOperator returns a copy of ctx carrying operator.
func WithOperator(ctx context.Context, operator string) context.Context {
	return context.WithValue(ctx, operatorKey, operator)
}

// GetRequestIDFromCtx returns the request id assigned by StructuredLoggingMiddleware.
func GetRequestIDFromCtx(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
