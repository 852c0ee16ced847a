// Package pivot classifies a retained simplex pivot against a freshly built
// set of linear constraints, producing one of HighlyStable,
// ModeratelyStable, GeometricallyUnstable, or Infeasible. The classification
// drives simplex's warm-start/cold-start/cross-validation dispatch.
//
// The signed-distance and norm computations are restated, over
// decimal.Decimal, from the teacher's matrix package's geometric kernels
// (impl_linear_algebra.go: norm/distance helpers behind the Gaussian
// elimination pivot loop).
package pivot
