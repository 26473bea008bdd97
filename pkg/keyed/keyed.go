// Package keyed provides order-preserving set operations over sequences whose
// elements carry a comparable key.
package keyed

// UnionBy merges two sequences with left-biased precedence: the result contains
// every element of primary in its original order, followed by the elements of
// secondary whose key does not occur in primary, in their original order. When
// both sides carry the same key, primary's element wins.
func UnionBy[T any, K comparable](key func(T) K, primary, secondary []T) []T {
	taken := make(map[K]struct{}, len(primary))
	out := make([]T, 0, len(primary)+len(secondary))
	for _, v := range primary {
		taken[key(v)] = struct{}{}
		out = append(out, v)
	}
	for _, v := range secondary {
		if _, ok := taken[key(v)]; ok {
			continue
		}
		out = append(out, v)
	}
	return out
}

// DiffBy returns the subsequence of candidates whose key does not occur in
// exclude, preserving candidate order. An empty result is a valid outcome.
func DiffBy[T any, K comparable](key func(T) K, candidates []T, exclude []K) []T {
	drop := make(map[K]struct{}, len(exclude))
	for _, k := range exclude {
		drop[k] = struct{}{}
	}
	var out []T
	for _, v := range candidates {
		if _, ok := drop[key(v)]; ok {
			continue
		}
		out = append(out, v)
	}
	return out
}
