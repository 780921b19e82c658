// Package lifecycle holds process-wide timing constants shared by start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful shutdown of servers and client pools.
const DefaultTimeout = 10 * time.Second
