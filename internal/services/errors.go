package services

// ValidationError is returned when a required request field is missing.
type ValidationError struct{ Message string }

func (e *ValidationError) Error() string { return e.Message }

// ProviderError wraps any failure from the upstream generation call.
// Its message is the upstream message, unchanged.
type ProviderError struct{ Err error }

func (e *ProviderError) Error() string { return e.Err.Error() }

func (e *ProviderError) Unwrap() error { return e.Err }
