// Package life runs Conway's Game of Life on a bounded board.
//
// A run has two phases. First a Pen consumes a stream of single-byte
// commands (w/a/s/d move, x toggles drawing) and marks the cells it visits
// while down. Then the board advances a fixed number of generations;
// cells beyond the edges are permanently dead and every generation is
// computed from an untouched snapshot of the previous one.
package life
