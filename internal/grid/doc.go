// Package grid provides the rectangular cell store shared by the square
// solver and the life engine.
//
// A Grid keeps every cell in one flat slice indexed by row*cols+col, so a
// grid of any flavor (map symbols, DP side lengths, alive flags) is a
// single allocation with a fixed shape decided at construction time.
package grid
