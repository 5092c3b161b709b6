// Package gauss holds the Gaussian arithmetic behind a two-parameter corner
// plot: per-parameter summaries and display windows, sample grids, normal
// densities, and the confidence ellipses of a 2x2 covariance matrix.
//
// Inputs are fixed-size arrays, so shape mismatches cannot occur. Domain
// violations (negative variances, asymmetric or indefinite covariances,
// non-finite values) are reported through the sentinel errors in this
// package and can be tested with errors.Is.
package gauss
