package transformation

import "fmt"

// FullTransformationMonoid returns a generating set of the monoid of all
// transformations of degree n (n^n elements):
//
//	n == 1: [0]
//	n == 2: [1 0], [0 0]
//	n >= 3: the transposition (0 1), the collapse 1 -> 0, and the n-cycle
//	        i -> i-1 (mod n).
//
// Returns ErrInvalidDegree if n < 1.
func FullTransformationMonoid(n int) ([]Transformation, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDegree, n)
	}
	switch n {
	case 1:
		return []Transformation{Identity(1)}, nil
	case 2:
		return []Transformation{MustNew(1, 0), MustNew(0, 0)}, nil
	}

	swap := Identity(n).Images()
	swap[0], swap[1] = 1, 0
	collapse := Identity(n).Images()
	collapse[1] = 0
	cycle := make([]int, n)
	cycle[0] = n - 1
	for i := 1; i < n; i++ {
		cycle[i] = i - 1
	}

	return []Transformation{
		{images: swap},
		{images: collapse},
		{images: cycle},
	}, nil
}

// SymmetricGroup returns a generating set of all permutations of degree n:
// the n-cycle and, for n >= 3, the transposition (0 1).
// Returns ErrInvalidDegree if n < 1.
func SymmetricGroup(n int) ([]Transformation, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDegree, n)
	}
	cycle, _ := CyclicGroup(n)
	if n < 3 {
		return cycle, nil
	}
	swap := Identity(n).Images()
	swap[0], swap[1] = 1, 0

	return append(cycle, Transformation{images: swap}), nil
}

// CyclicGroup returns the single generator i -> i+1 (mod n).
// Returns ErrInvalidDegree if n < 1.
func CyclicGroup(n int) ([]Transformation, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDegree, n)
	}
	cycle := make([]int, n)
	for i := range cycle {
		cycle[i] = (i + 1) % n
	}

	return []Transformation{{images: cycle}}, nil
}
