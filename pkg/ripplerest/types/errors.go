package types

import "fmt"

// ValidationError reports a populated field whose value does not match its declared pattern.
type ValidationError struct {
	Type    string
	Field   string
	Pattern string
	Value   string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("the field %s in %s should follow the pattern %s", e.Field, e.Type, e.Pattern)
}
