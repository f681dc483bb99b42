package kmap

// GraySequence returns the reflected Gray-code ordering for n boolean
// variables: 2^n tuples of n values, most significant bit first, where
// consecutive tuples differ in exactly one position. n = 0 yields a single
// empty tuple, which gives a one-cell axis.
func GraySequence(n int) [][]bool {
	if n < 0 {
		return nil
	}
	seq := make([][]bool, 1<<uint(n))
	for i := range seq {
		g := i ^ (i >> 1)
		tuple := make([]bool, n)
		for b := 0; b < n; b++ {
			tuple[b] = g&(1<<uint(n-1-b)) != 0
		}
		seq[i] = tuple
	}
	return seq
}
