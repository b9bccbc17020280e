package config

import (
	"fmt"
	"math"

	"github.com/katalvlaran/strucalign/criteria"
	"github.com/katalvlaran/strucalign/multialign"
	"github.com/katalvlaran/strucalign/scanindex"
	"github.com/katalvlaran/strucalign/ssap"
)

// Resolved is a RunConfig translated into the concrete typed configuration
// each package consumes.
type Resolved struct {
	SSAP                         ssap.Config
	GlueStyle                    multialign.GlueStyle
	Covering                     scanindex.Covering
	Criteria                     criteria.Criteria
	EnableExperimentalRefinement bool
}

// Resolve validates c and assembles a Resolved configuration. Unknown
// enum-valued fields fail with the package's own sentinel; numeric fields
// are validated by ssap.Config.Validate.
func (c RunConfig) Resolve() (Resolved, error) {
	var formula ssap.ContextFormula
	switch c.DistanceScoreFormula {
	case "classical", "":
		formula = ssap.Classical
	case "linear":
		formula = ssap.Linear
	default:
		return Resolved{}, fmt.Errorf("config.Resolve: %q: %w", c.DistanceScoreFormula, ErrUnknownFormula)
	}

	sc := ssap.Config{
		Formula:                 formula,
		A:                       c.ContextA,
		B:                       c.ContextB,
		Cutoff2:                 c.ContextCutoff2,
		GapOpen:                 c.GapOpen,
		GapExtend:               c.GapExtend,
		AnchorAngleTolerance:    c.AnchorAngleToleranceDeg * math.Pi / 180,
		MaxRefinementIterations: c.MaxRefinementIterations,
	}
	if err := sc.Validate(); err != nil {
		return Resolved{}, err
	}

	var style multialign.GlueStyle
	switch c.AlnGlueStyle {
	case "SIMPLY", "":
		style = multialign.Simply
	case "INCREMENTALLY_WITH_PAIR_REFINING":
		style = multialign.IncrementallyWithPairRefining
	case "WITH_HEAVY_REFINING":
		style = multialign.WithHeavyRefining
	default:
		return Resolved{}, fmt.Errorf("config.Resolve: %q: %w", c.AlnGlueStyle, ErrUnknownGlueStyle)
	}

	var covering scanindex.Covering
	switch c.OrientationCovering {
	case "octahedral48", "":
		covering = scanindex.Octahedral48()
	case "icosahedral120":
		covering = scanindex.Icosahedral120()
	default:
		return Resolved{}, fmt.Errorf("config.Resolve: %q: %w", c.OrientationCovering, ErrUnknownCovering)
	}

	crit, err := criteria.Parse(c.MatchCriteria)
	if err != nil {
		return Resolved{}, err
	}

	return Resolved{
		SSAP:                         sc,
		GlueStyle:                    style,
		Covering:                     covering,
		Criteria:                     crit,
		EnableExperimentalRefinement: c.EnableExperimentalRefinement,
	}, nil
}
