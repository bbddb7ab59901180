package errors

// ErrorInfo contains detailed error information
type ErrorInfo struct {
	Kind    Kind   `json:"kind"`              // Error classification
	Code    string `json:"code"`              // Business error code, e.g., "CUSTOMER_NOT_FOUND"
	Message string `json:"message"`           // User-friendly error message
	Details string `json:"details,omitempty"` // Detailed error information (optional)
	Cause   string `json:"cause,omitempty"`   // Full wrapped error chain
}

// NewErrorInfo flattens err for structured output. Errors outside the
// application catalogue are reported as internal errors.
func NewErrorInfo(err error) *ErrorInfo {
	if err == nil {
		return nil
	}

	if appErr, ok := asAppError(err); ok {
		info := &ErrorInfo{
			Kind:    appErr.Kind(),
			Code:    appErr.ErrorCode(),
			Message: appErr.Message(),
			Details: appErr.Details(),
		}
		if cause := err.Error(); cause != appErr.Error() {
			info.Cause = cause
		}

		return info
	}

	return &ErrorInfo{
		Kind:    KindInternal,
		Code:    ErrInternalError.ErrorCode(),
		Message: ErrInternalError.Message(),
		Cause:   err.Error(),
	}
}
