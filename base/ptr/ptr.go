package ptr

// String return a pointer to the input value
func String(value string) *string {
	return &value
}

// Float64 return a pointer to the input value
func Float64(value float64) *float64 {
	return &value
}
