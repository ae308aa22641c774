// Package config defines the format-agnostic scenario model used by the
// gridbatch tool, along with the Loader interface that concrete formats
// implement.
//
// A scenario is an ordered list of jobs. Each job is either a square job
// (one map, given by path or inline) or a life job (board dimensions,
// generation count and pen commands). Concrete loaders for HCL and YAML
// live in separate packages and only translate their syntax into Model.
package config
