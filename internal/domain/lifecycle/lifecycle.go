// Package lifecycle holds process-wide lifecycle constants shared by the
// storage providers and the delivery servers.
package lifecycle

import "time"

// DefaultTimeout bounds start-up pings and graceful shutdown.
const DefaultTimeout = 10 * time.Second
