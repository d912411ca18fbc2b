// Package goroutine launches background work with panic recovery.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"bookstore/internal/shared/logger"
)

// SafeGo runs fn on a new goroutine. A panic in fn is logged with its stack
// instead of taking down the process; post-settlement event publishing runs
// through this so a broker hiccup can never undo a committed order.
func SafeGo(log logger.Interface, name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
			}
		}()
		fn()
	}()
}
