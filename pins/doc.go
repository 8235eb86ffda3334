// Package pins places string-art pins on a circle inscribed in an image.
//
// A PinSet is an ordered slice of integer pixel coordinates; index k is the
// stable identifier of pin k everywhere else in stringart (chords, wrap
// graphs, sequences).
//
// Layout:
//
//	center = (width/2, height/2)
//	radius = min(width/2, height/2) − 1
//	pin k  = round(center + radius·(cos θk, sin θk)),  θk = 2π·k/N
//
// Generate is pure and deterministic: identical inputs always produce the
// same PinSet. ThreadLength reports the physical length of a wound
// sequence in pixels; it is a measurement only, no algorithm optimizes it.
//
// Complexity: Generate is O(N); ThreadLength is O(L) for L segments.
package pins
