package region

import "errors"

var (
	ErrRegistration      = errors.New("region registration rejected")
	ErrCapacityExceeded  = errors.New("region monitor capacity exceeded")
	ErrMonitorNotRunning = errors.New("region monitor is not running")
)
