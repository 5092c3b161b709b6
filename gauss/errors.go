package gauss

import "errors"

// Sentinel errors for gauss package.
var (
	// ErrNegativeVariance is returned when a variance (diagonal entry) is negative.
	ErrNegativeVariance = errors.New("gauss: negative variance")

	// ErrNotSymmetric is returned when cov[0][1] and cov[1][0] differ.
	ErrNotSymmetric = errors.New("gauss: covariance is not symmetric")

	// ErrNotPositiveSemiDefinite is returned when the covariance has a
	// negative eigenvalue.
	ErrNotPositiveSemiDefinite = errors.New("gauss: covariance is not positive semi-definite")

	// ErrNonFinite is returned when an input holds NaN or Inf.
	ErrNonFinite = errors.New("gauss: non-finite value")

	// ErrEigen is returned when the eigen-decomposition does not converge.
	ErrEigen = errors.New("gauss: eigen-decomposition failed")
)
