// Package audit records classification transitions for operators.
package audit

import (
	"go.uber.org/zap"

	"corpdirectory/internal/domain"
)

// Logger writes human-readable audit records for directory changes.
type Logger struct {
	log *zap.Logger
}

// NewLogger creates an audit logger on top of a zap core.
func NewLogger(log *zap.Logger) *Logger {
	return &Logger{log: log}
}

// UserTypeHasChanged records a classification transition.
func (l *Logger) UserTypeHasChanged(userID int, oldType, newType domain.UserType) {
	l.log.Info("user type has changed",
		zap.Int("user_id", userID),
		zap.String("old_type", oldType.String()),
		zap.String("new_type", newType.String()),
	)
}
