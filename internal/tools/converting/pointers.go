package converting

// If nil returns the default value for the type
func Unwrap[T any](x *T) (r T) {
	if x != nil {
		r = *x
	}

	return
}

// If nil returns fallback
func UnwrapOr[T any](x *T, fallback T) T {
	if x == nil {
		return fallback
	}

	return *x
}

func PointerToValue[T any](v T) *T {
	return &v
}
