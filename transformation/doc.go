// Package transformation implements finite transformations: total functions
// from the domain {0, 1, ..., n-1} to itself, where n is the degree.
//
// What:
//
//   - Transformation: an immutable image list, t[i] is the image of i.
//   - Mul / Compose: composition, "apply the receiver first, then the argument".
//     (t.Mul(u))[i] == u[t[i]]. Every package in this module uses this order,
//     including the factorisation replay in package membership.
//   - Commutes, IsIdempotent, IsIdentity, Rank, ImageSet: the small queries the
//     decision procedure needs.
//   - Parse / String: the boundary text form "Transformation([1, 2, 0])",
//     also accepting "[1,2,0]" and "1 2 0".
//   - ValidateGenerators: boundary validation of a generating set.
//   - FullTransformationMonoid, SymmetricGroup, CyclicGroup: standard
//     generating sets.
//
// Errors:
//
//   - ErrImageOutOfRange  an image value is negative or >= degree.
//   - ErrDegreeMismatch   two transformations of different degree were combined.
//   - ErrEmptyGenerators  a generating set is empty.
//   - ErrInvalidDegree    a standard generating set was requested for n < 1.
//   - ErrSyntax           Parse could not read its input.
//
// Complexity:
//
//   - New, Mul, Equal, Commutes: O(n).
//   - Key: O(n) time and memory; the result is a valid map key.
package transformation
