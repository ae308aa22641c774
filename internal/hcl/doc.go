// Package hcl provides the HCL implementation of config.Loader. It parses
// scenario files with hclparse, walks `square` and `life` blocks in source
// order and decodes their bodies with gohcl against an evaluation context
// that exposes a small set of cty string functions.
package hcl
