package validation

// Validator validates a struct and returns field-level error messages,
// or nil when the struct is valid.
type Validator interface {
	ValidateStruct(s any) map[string]string
}
