package services

// ptr returns a pointer to v, for building partial inputs in tests.
func ptr[T any](v T) *T {
	return &v
}
