package config

// Option overlays a single field of a RunConfig after it has been loaded
// from YAML, in the same functional-options construction style core.Graph
// uses.
type Option func(*RunConfig)

// WithDistanceScoreFormula overrides the context-score formula.
func WithDistanceScoreFormula(formula string) Option {
	return func(c *RunConfig) { c.DistanceScoreFormula = formula }
}

// WithGapCosts overrides the affine gap-penalty constants.
func WithGapCosts(open, extend float64) Option {
	return func(c *RunConfig) { c.GapOpen, c.GapExtend = open, extend }
}

// WithMaxRefinementIterations overrides the refinement iteration cap.
func WithMaxRefinementIterations(n int) Option {
	return func(c *RunConfig) { c.MaxRefinementIterations = n }
}

// WithExperimentalRefinement overrides the experimental-refinement switch.
func WithExperimentalRefinement(on bool) Option {
	return func(c *RunConfig) { c.EnableExperimentalRefinement = on }
}

// WithAlnGlueStyle overrides the multi-align glue style.
func WithAlnGlueStyle(style string) Option {
	return func(c *RunConfig) { c.AlnGlueStyle = style }
}

// WithOrientationCovering overrides the orientation covering selection.
func WithOrientationCovering(name string) Option {
	return func(c *RunConfig) { c.OrientationCovering = name }
}

// WithMatchCriteria overrides the match-criteria string.
func WithMatchCriteria(s string) Option {
	return func(c *RunConfig) { c.MatchCriteria = s }
}

// Apply returns c with every opt applied in order.
func (c RunConfig) Apply(opts ...Option) RunConfig {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
