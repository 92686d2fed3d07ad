package slice

// FindIndex returns the first index of t in vs, otherwise -1
func FindIndex[T comparable](vs []T, t T) int {
	for i, v := range vs {
		if v == t {
			return i
		}
	}

	return -1
}

// Contains returns true if t exists in the slice and false otherwise
func Contains[T comparable](vs []T, t T) bool {
	return FindIndex(vs, t) > -1
}

// Unique concatenates the slices keeping the first occurrence of every value.
// The result is never nil.
func Unique[T comparable](slices ...[]T) []T {
	size := 0
	for _, s := range slices {
		size += len(s)
	}

	seen := make(map[T]struct{}, size)
	uniq := make([]T, 0, size)

	for _, s := range slices {
		for _, v := range s {
			if _, ok := seen[v]; ok {
				continue
			}

			seen[v] = struct{}{}
			uniq = append(uniq, v)
		}
	}

	return uniq
}
