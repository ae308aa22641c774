// Package square finds the largest axis-aligned square of empty cells in a
// validated map.
//
// The solver fills a dynamic-programming table in one row-major sweep:
// every empty cell stores the side of the largest empty square whose
// bottom-right corner it is. The first maximum met in that sweep wins, so
// for maps with several equally large squares the topmost, then leftmost,
// bottom-right corner is reported.
package square
