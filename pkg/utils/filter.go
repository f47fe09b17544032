package utils

// Filter returns the items for which keep reports true, in their original order.
// The result is never nil so it encodes as an empty JSON array.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}
