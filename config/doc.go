// Package config loads and assembles a RunConfig: the YAML-driven set of
// tunables that select between the core's build-time-enum choices (the
// SSAP context-score formula, the refinement paths, the glue style, the
// orientation-covering radius) without hard-coding any one of them.
package config
