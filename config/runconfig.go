package config

// RunConfig is the YAML-serialisable set of tunables a host selects before
// starting a run: the SSAP context-score formula and its constants, gap
// costs, the multi-align glue style, the orientation-covering choice, the
// default match-criteria string, and the experimental-refinement switch,
// whose correct default is undetermined upstream.
type RunConfig struct {
	DistanceScoreFormula string `yaml:"distance_score_formula"`

	ContextA       float64 `yaml:"context_a"`
	ContextB       float64 `yaml:"context_b"`
	ContextCutoff2 float64 `yaml:"context_cutoff2"`

	GapOpen   float64 `yaml:"gap_open"`
	GapExtend float64 `yaml:"gap_extend"`

	// AnchorAngleToleranceDeg is in degrees in YAML; Resolve converts it to
	// the radians ssap.Config expects.
	AnchorAngleToleranceDeg float64 `yaml:"anchor_angle_tolerance_deg"`

	MaxRefinementIterations int `yaml:"max_refinement_iterations"`

	// EnableExperimentalRefinement gates refinement code paths that were
	// left commented out upstream; whether they should run is
	// undetermined, so it defaults to false.
	EnableExperimentalRefinement bool `yaml:"enable_experimental_refinement"`

	AlnGlueStyle string `yaml:"aln_glue_style"`

	// OrientationCovering selects the scanindex.Covering by name:
	// "octahedral48" or "icosahedral120".
	OrientationCovering string `yaml:"orientation_covering"`

	// MatchCriteria is a criteria.Parse string applied to the scan index;
	// empty means criteria.Default().
	MatchCriteria string `yaml:"match_criteria"`
}

// Default returns the same numeric defaults as ssap.DefaultConfig,
// multialign.Simply, scanindex.Octahedral48, and criteria.Default,
// expressed as YAML-shaped values.
func Default() RunConfig {
	return RunConfig{
		DistanceScoreFormula:         "classical",
		ContextA:                     500,
		ContextB:                     10,
		ContextCutoff2:               400,
		GapOpen:                      50,
		GapExtend:                    0,
		AnchorAngleToleranceDeg:      45,
		MaxRefinementIterations:      20,
		EnableExperimentalRefinement: false,
		AlnGlueStyle:                 "SIMPLY",
		OrientationCovering:          "octahedral48",
		MatchCriteria:                "",
	}
}
