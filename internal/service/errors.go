package service

// ValidationError marks client input as malformed or semantically invalid.
// Code is the machine-readable string returned to the client, e.g.
// "no_items" or "invalid_menu_item". Maps to HTTP 400 at the api boundary.
type ValidationError struct {
	Code string
}

func (e *ValidationError) Error() string {
	return e.Code
}

func validation(code string) error {
	return &ValidationError{Code: code}
}
