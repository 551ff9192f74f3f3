// SPDX-License-Identifier: MIT

package cluster

import (
	"sync/atomic"

	"go.uber.org/zap"
)

var logger atomic.Pointer[zap.Logger]

func init() {
	logger.Store(zap.NewNop())
}

// SetLogger installs the logger that receives per-restart k-means diagnostics
// at debug level. A nil logger restores the silent default.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}

func currentLogger() *zap.Logger { return logger.Load() }
