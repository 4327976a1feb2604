package treasury

import "time"

// Balance verification settings. The operator balance read may lag the
// executed grant calls, so the check polls a few times before the run is
// declared aborted.
const (
	balanceCheckAttempts = 5
	balanceCheckInterval = 2 * time.Second
)
