// Package quotient builds the orbit quotient of a domain under a set of
// transformations and moves transformations between the domain and the
// quotient.
//
// Given generators A of degree n, the functional graph of A has vertices
// {0..n-1} and an edge i → a(i) for every a in A. Its strongly connected
// components are the blocks of the quotient: Bar returns them as a
// Partition, each block a sorted list of points, the blocks in
// lexicographic order.
//
// A transformation f that commutes with every generator maps blocks into
// blocks: if y = w(x) for a product w of generators, then f(y) = w(f(x)).
// LiftOf records, for every block, the block containing the image of its
// least element, and reports through WellDefined whether the other elements
// agree. Hat goes the other way: it keeps f on a chosen set of blocks and is
// the identity elsewhere. Stabiliser and IntersectStabilisers select the
// generators whose lift fixes given blocks.
//
// Errors:
//
//   - ErrDegreeMismatch  a transformation's degree differs from the partition's;
//                        it wraps transformation.ErrDegreeMismatch.
//   - ErrLiftCount       generators and lifts have different lengths.
//   - ErrBlockOutOfRange a block index is not in {0..Len()-1}.
//   - ErrNotPartition    NewPartition was given overlapping or incomplete blocks.
package quotient
