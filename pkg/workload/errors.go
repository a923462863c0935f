package workload

import "errors"

var (
	ErrFailedToParseYAML   = errors.New("workload: failed to parse YAML")
	ErrEmptyWorkload       = errors.New("workload: no operations")
	ErrUnknownOp           = errors.New("workload: unknown operation")
	ErrInvalidCapacity     = errors.New("workload: capacity must not be negative")
	ErrInvalidStressConfig = errors.New("workload: workers, ops and keys must be positive")
	ErrReplayCancelled     = errors.New("workload: replay cancelled")
)
