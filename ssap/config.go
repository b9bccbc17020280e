package ssap

import (
	"fmt"
	"math"
)

// ContextFormula selects which view-vector distance-to-score mapping the
// inner and outer dynamic programs use.
type ContextFormula int

const (
	// Classical is the SSAP formula score = A/(d2+B), d2 the squared
	// distance between two view vectors, zero beyond Cutoff2.
	Classical ContextFormula = iota

	// Linear decays score linearly from A at d2=0 to zero at Cutoff2.
	Linear
)

func (f ContextFormula) String() string {
	switch f {
	case Classical:
		return "classical"
	case Linear:
		return "linear"
	default:
		return fmt.Sprintf("ContextFormula(%d)", int(f))
	}
}

// Config holds the tunable constants of the two-level dynamic program. The
// zero value is not usable; start from DefaultConfig.
type Config struct {
	// Formula selects the context-score mapping.
	Formula ContextFormula

	// A, B and Cutoff2 parameterize Formula; Classical and Linear both read
	// them (see ContextScore).
	A, B, Cutoff2 float64

	// GapOpen and GapExtend are affine gap-penalty costs subtracted from the
	// alignment score; GapExtend applies to every gap residue after the
	// first in a run.
	GapOpen, GapExtend float64

	// AnchorAngleTolerance bounds how far apart, in radians, an outer anchor
	// pair's phi and psi may differ (after secondary-structure classes
	// already match) before the pair is skipped as incompatible. Residues
	// with undefined dihedrals (chain breaks) are compared on secondary
	// structure alone.
	AnchorAngleTolerance float64

	// MaxRefinementIterations caps the refine loop: a hard cap is required
	// since two-cycle detection alone is not guaranteed to terminate under
	// every residue-insertion sequence.
	MaxRefinementIterations int
}

// DefaultConfig returns the classical SSAP parameterization: A=500, B=10,
// Cutoff2=400 (i.e. a 20 Å view-vector distance cutoff), gap open 50 with
// no extension penalty, exact secondary-structure match at outer anchors,
// and a refinement cap of 20 iterations.
func DefaultConfig() Config {
	return Config{
		Formula:                 Classical,
		A:                       500,
		B:                       10,
		Cutoff2:                 400,
		GapOpen:                 50,
		GapExtend:               0,
		AnchorAngleTolerance:    math.Pi / 4,
		MaxRefinementIterations: 20,
	}
}

// Validate checks that cfg's numeric fields form a usable configuration.
func (cfg Config) Validate() error {
	if cfg.Cutoff2 <= 0 || cfg.GapOpen < 0 || cfg.GapExtend < 0 || cfg.MaxRefinementIterations <= 0 {
		return errBadConfig
	}
	if cfg.Formula != Classical && cfg.Formula != Linear {
		return errBadConfig
	}
	return nil
}
