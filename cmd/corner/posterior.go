package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/gogpu/corner"
)

// ErrShape is returned when a posterior file does not hold two means, a 2x2
// covariance, two true values and two labels.
var ErrShape = errors.New("corner: posterior has wrong shape")

// posteriorFile mirrors corner.Posterior with slices so that wrong lengths
// can be reported instead of silently truncated.
type posteriorFile struct {
	Mean   []float64   `json:"mean"`
	Cov    [][]float64 `json:"cov"`
	Truth  []float64   `json:"truth"`
	Labels []string    `json:"labels"`
}

// loadPosterior reads a posterior from a JSON file.
func loadPosterior(path string) (corner.Posterior, error) {
	var p corner.Posterior
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("failed reading posterior file: %w", err)
	}
	var f posteriorFile
	if err := json.Unmarshal(data, &f); err != nil {
		return p, fmt.Errorf("failed parsing posterior file %s: %w", path, err)
	}

	switch {
	case len(f.Mean) != 2:
		return p, fmt.Errorf("%w: %d means", ErrShape, len(f.Mean))
	case len(f.Truth) != 2:
		return p, fmt.Errorf("%w: %d true values", ErrShape, len(f.Truth))
	case len(f.Labels) != 2:
		return p, fmt.Errorf("%w: %d labels", ErrShape, len(f.Labels))
	case len(f.Cov) != 2 || len(f.Cov[0]) != 2 || len(f.Cov[1]) != 2:
		return p, fmt.Errorf("%w: covariance is not 2x2", ErrShape)
	}
	copy(p.Mean[:], f.Mean)
	copy(p.Truth[:], f.Truth)
	copy(p.Labels[:], f.Labels)
	copy(p.Cov[0][:], f.Cov[0])
	copy(p.Cov[1][:], f.Cov[1])
	return p, nil
}

// posteriorArg loads the posterior named by the only command argument.
func posteriorArg(ctx *cli.Context) (corner.Posterior, error) {
	if ctx.Args().Len() != 1 {
		return corner.Posterior{}, fmt.Errorf("missing posterior file")
	}
	return loadPosterior(ctx.Args().Get(0))
}

// analysisOptions maps the shared analysis flags onto corner options.
func analysisOptions(ctx *cli.Context) []corner.Option {
	return []corner.Option{
		corner.WithWindow(ctx.Float64(WindowFlag.Name)),
		corner.WithSamples(ctx.Int(SamplesFlag.Name)),
		corner.WithSigmaLevels(ctx.Float64Slice(LevelsFlag.Name)...),
	}
}
