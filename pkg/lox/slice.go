// Package lox holds collection helpers missing from samber/lo.
package lox

// MapErr maps every item and stops at the first error.
func MapErr[T, R any](collection []T, iteratee func(item T) (R, error)) ([]R, error) {
	var err error

	result := make([]R, len(collection))

	for i, item := range collection {
		result[i], err = iteratee(item)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// ReverseMap turns a map into a slice; the order follows map iteration.
func ReverseMap[T, T1 any, R comparable](collection map[R]T, iteratee func(key R, value T) T1) []T1 {
	result := make([]T1, 0, len(collection))

	for k, v := range collection {
		result = append(result, iteratee(k, v))
	}

	return result
}
