package errs

// Sentinel errors shared by the use case and handler layers
var (
	// Boundary errors
	ErrUnauthenticated = New("unauthenticated")

	// Lookup errors
	ErrLockerNotFound  = New("locker not found")
	ErrCellNotFound    = New("cell not found")
	ErrPaymentNotFound = New("payment not found")
	ErrProductNotFound = New("product not found")

	// State errors
	ErrInvalidCellState = New("invalid cell state")
	ErrCellNotForSale   = New("cell is not available for sale")

	// Device errors
	ErrDispatchFailed = New("device dispatch failed")

	// Provider errors
	ErrProviderUnavailable = New("payment provider unavailable")
	ErrUnknownProvider     = New("unknown payment provider")

	// Returned by providers that only push callbacks
	ErrStatusPollUnsupported = New("provider does not support status polling")

	// Validation errors
	ErrDomainValidation = New("domain validation error")

	// Operation errors
	ErrDatabaseOperationFailed = New("database operation failed")
)
