package models

// NullableString maps empty form input to nil so optional columns store
// NULL instead of "".
func NullableString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
