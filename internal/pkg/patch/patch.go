package patch

// Coalesce returns the value pointed to by ptr if it's not nil, otherwise returns fallback
func Coalesce[T any](ptr *T, fallback T) T {
	if ptr != nil {
		return *ptr
	}
	return fallback
}

// Apply overwrites dst with *src when src is set. Patch DTOs use pointer
// fields so an absent JSON key leaves the stored value alone.
func Apply[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
