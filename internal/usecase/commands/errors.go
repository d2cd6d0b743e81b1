package commands

import "hotel-ops/internal/pkg/errs"

// Sentinels shared across the lifecycle commands. Feature-specific ones
// live next to their use case.
var (
	ErrPermissionDenied     = errs.New("operation not permitted for role")
	ErrDomainValidation     = errs.New("domain validation error")
	ErrStoreOperationFailed = errs.New("store operation failed")
)
