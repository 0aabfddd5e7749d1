package ptr

// Ptr returns a pointer to v. Useful for optional filter and patch fields.
func Ptr[T any](v T) *T {
	return &v
}
