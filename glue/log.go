package glue

import "go.uber.org/zap"

var logger = zap.NewNop()

// SetLogger installs the logger used to report lifecycle transitions (Debug)
// and contract violations (Error, right before the panic). A nil logger
// restores the default no-op logger.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger = l
}

// defect reports a broken caller contract and aborts the operation.
func defect(msg string, fields ...zap.Field) {
	logger.Error(msg, fields...)
	panic("glue: " + msg)
}
