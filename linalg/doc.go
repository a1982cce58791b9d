// Package linalg provides the dense-matrix utilities and the iterative solver
// used by penalized least-squares baseline fitting.
//
// The central entry points are:
//
//   - [DifferenceMatrix]: finite-difference operators D of shape (n-order, n)
//   - [Penalized]: assembles the system matrix W + lambda*Dᵀ*D
//   - [SolveCG]: capped conjugate-gradient solve for symmetric
//     positive-(semi)definite systems
//
// The solver is tuned for smoothing fits, not exact solves: iteration count is
// capped at min(n, 50) and the best iterate found is returned on
// non-convergence.
package linalg
