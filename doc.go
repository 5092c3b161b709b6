// Package corner draws corner plots of two-parameter Gaussian posteriors.
//
// # Overview
//
// A corner plot summarises a posterior over two parameters in a 2x2 grid
// whose cells touch:
//
//   - top-left: the marginal density of parameter 0
//   - bottom-left: the 1σ and 2σ confidence ellipses of the joint
//     distribution, crossed by the true parameter values
//   - bottom-right: the marginal density of parameter 1
//   - top-right: empty
//
// Each marginal panel carries a vertical line at the true value and a title
// of the form "label=mean±std".
//
// # Quick Start
//
//	import "github.com/gogpu/corner"
//
//	fig, err := corner.Plot(corner.Posterior{
//	    Mean:   [2]float64{1, 2},
//	    Cov:    [2][2]float64{{1, 0}, {0, 4}},
//	    Truth:  [2]float64{0.5, 2.5},
//	    Labels: [2]string{"a", "b"},
//	})
//	if err != nil {
//	    return err
//	}
//	defer fig.Close()
//	return fig.SavePNG("corner.png")
//
// # Drawing into an existing context
//
// Render draws into a caller-owned gg.Context instead of allocating one.
// It fills the whole context in device space and ignores the context's
// transform, so to put several plots on one canvas render each into its
// own context and draw the images with gg.Context.DrawImage.
//
// # Analysis
//
// Analyze computes the numbers behind a plot (standard deviations, axis
// windows of mean ± 3.5σ, density samples, ellipse geometry, titles)
// without drawing anything. The echart sub-package renders the same
// analysis as an interactive HTML page.
//
// # Errors
//
// Covariances must be symmetric positive semi-definite with non-zero
// variances. Violations are reported as errors wrapping ErrZeroVariance or
// the sentinel errors of package gauss.
package corner
