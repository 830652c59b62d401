package transformation

import (
	"fmt"
	"strconv"
	"strings"
)

// Transformation is an immutable total function on {0..n-1}.
// The zero value is the transformation of degree 0.
type Transformation struct {
	images []int
}

// New validates images and returns the transformation they describe.
// The slice is copied; later changes to images do not affect the result.
// Returns ErrImageOutOfRange if any image is negative or >= len(images).
func New(images []int) (Transformation, error) {
	n := len(images)
	out := make([]int, n)
	for i, img := range images {
		if img < 0 || img >= n {
			return Transformation{}, fmt.Errorf("%w: image of %d is %d, degree is %d",
				ErrImageOutOfRange, i, img, n)
		}
		out[i] = img
	}

	return Transformation{images: out}, nil
}

// MustNew is New that panics on invalid input. Intended for literals in tests
// and examples.
func MustNew(images ...int) Transformation {
	t, err := New(images)
	if err != nil {
		panic(err)
	}

	return t
}

// Identity returns the identity transformation of degree n.
func Identity(n int) Transformation {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return Transformation{images: out}
}

// Constant returns the transformation of degree n mapping everything to v.
// Returns ErrImageOutOfRange if v is not in {0..n-1}.
func Constant(n, v int) (Transformation, error) {
	if v < 0 || v >= n {
		return Transformation{}, fmt.Errorf("%w: constant %d, degree is %d", ErrImageOutOfRange, v, n)
	}
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}

	return Transformation{images: out}, nil
}

// Degree returns n, the size of the domain.
func (t Transformation) Degree() int { return len(t.images) }

// At returns the image of i. It panics if i is outside the domain.
func (t Transformation) At(i int) int { return t.images[i] }

// Images returns a copy of the image list.
func (t Transformation) Images() []int {
	out := make([]int, len(t.images))
	copy(out, t.images)

	return out
}

// Mul returns the composition "t then u": (t.Mul(u))[i] == u[t[i]].
// Mul panics if the degrees differ; use Compose at validation boundaries.
func (t Transformation) Mul(u Transformation) Transformation {
	if len(t.images) != len(u.images) {
		panic(fmt.Sprintf("transformation: Mul of degree %d by degree %d", len(t.images), len(u.images)))
	}
	out := make([]int, len(t.images))
	for i, img := range t.images {
		out[i] = u.images[img]
	}

	return Transformation{images: out}
}

// Compose is the checked form of Mul.
func (t Transformation) Compose(u Transformation) (Transformation, error) {
	if len(t.images) != len(u.images) {
		return Transformation{}, fmt.Errorf("%w: %d and %d", ErrDegreeMismatch, len(t.images), len(u.images))
	}

	return t.Mul(u), nil
}

// Product multiplies ts left to right. The empty product is Identity(degree).
// It panics if any factor has a degree other than degree.
func Product(degree int, ts ...Transformation) Transformation {
	acc := Identity(degree)
	for _, t := range ts {
		acc = acc.Mul(t)
	}

	return acc
}

// Equal reports pointwise equality. Transformations of different degree are never equal.
func (t Transformation) Equal(u Transformation) bool {
	if len(t.images) != len(u.images) {
		return false
	}
	for i := range t.images {
		if t.images[i] != u.images[i] {
			return false
		}
	}

	return true
}

// Commutes reports whether t.Mul(u) equals u.Mul(t).
// Transformations of different degree never commute.
func (t Transformation) Commutes(u Transformation) bool {
	if len(t.images) != len(u.images) {
		return false
	}
	for i := range t.images {
		if u.images[t.images[i]] != t.images[u.images[i]] {
			return false
		}
	}

	return true
}

// IsIdempotent reports whether t.Mul(t) equals t.
func (t Transformation) IsIdempotent() bool {
	for _, img := range t.images {
		if t.images[img] != img {
			return false
		}
	}

	return true
}

// IsIdentity reports whether t fixes every point.
func (t Transformation) IsIdentity() bool {
	for i, img := range t.images {
		if i != img {
			return false
		}
	}

	return true
}

// ImageSet returns the distinct images of t in increasing order.
func (t Transformation) ImageSet() []int {
	seen := make([]bool, len(t.images))
	for _, img := range t.images {
		seen[img] = true
	}
	out := make([]int, 0, len(t.images))
	for v, ok := range seen {
		if ok {
			out = append(out, v)
		}
	}

	return out
}

// Rank returns the number of distinct images.
func (t Transformation) Rank() int { return len(t.ImageSet()) }

// Key returns a canonical string for t, suitable as a map key.
// Two transformations have the same key iff they are Equal.
func (t Transformation) Key() string {
	var sb strings.Builder
	sb.Grow(len(t.images) * 3)
	for i, img := range t.images {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(img))
	}

	return sb.String()
}

// String renders t as "Transformation([1, 2, 0])".
func (t Transformation) String() string {
	parts := make([]string, len(t.images))
	for i, img := range t.images {
		parts[i] = strconv.Itoa(img)
	}

	return "Transformation([" + strings.Join(parts, ", ") + "])"
}
