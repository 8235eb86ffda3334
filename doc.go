// Package stringart turns a grayscale image into string art: an ordered
// walk of straight thread segments between pins on a circle whose overlap
// approximates the image.
//
// What is inside?
//
//	pins/      — circular pin layout and thread length
//	chords/    — canonical chords, the chord catalog, segments and sequences
//	canvas/    — Bresenham rasterizer, accumulation canvas, line cache, images
//	strategy/  — the Strategy contract and its Event stream
//	greedy/    — greedy residual minimization (deterministic)
//	relax/     — NNLS relaxation, wrap counts and an Eulerian winding order
//	anneal/    — simulated annealing over fixed-length chains (seeded)
//	nnls/      — Lawson–Hanson non-negative least squares
//	wrapgraph/ — multigraph of wraps, parity repair, Hierholzer traversal
//
// Every strategy streams its progress as an iter.Seq[strategy.Event]:
// nothing is computed until the caller ranges over it, and breaking out
// of the loop or cancelling the context stops the run at the next event.
//
// Quick start:
//
//	set, _ := pins.Generate(150, img.Height, img.Width)
//	s, _ := stringart.New("greedy", stringart.Params{MaxLines: 1500})
//	events, _ := s.Run(ctx, img, set)
//	for ev := range events {
//		render(ev.Canvas)
//	}
//
// Logging is silent unless a logger is installed with SetLogger.
//
//	go install github.com/katalvlaran/stringart/cmd/stringart@latest
package stringart
