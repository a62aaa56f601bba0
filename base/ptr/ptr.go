package ptr

// String return a pointer to the input value
func String(value string) *string {
	return &value
}

// StringValue dereferences p, returning "" for nil
func StringValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
