package collections

// SliceRemoveIndex returns a new slice without the element at i.  The input
// slice is not modified.
func SliceRemoveIndex[T any](slice []T, i int) []T {
	result := make([]T, 0, len(slice)-1)
	result = append(result, slice[:i]...)
	result = append(result, slice[i+1:]...)
	return result
}

// SliceInsertAt returns a new slice with value inserted at i.  The input
// slice is not modified.
func SliceInsertAt[T any](slice []T, i int, value T) []T {
	result := make([]T, 0, len(slice)+1)
	result = append(result, slice[:i]...)
	result = append(result, value)
	result = append(result, slice[i:]...)
	return result
}

// SliceClone returns a copy of the slice, or nil for an empty one.
func SliceClone[T any](slice []T) []T {
	if len(slice) == 0 {
		return nil
	}
	return append(make([]T, 0, len(slice)), slice...)
}
