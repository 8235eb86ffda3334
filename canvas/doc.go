// Package canvas implements the raster model shared by every stringart
// strategy: grayscale images, the darkness accumulation buffer, the
// digital line rasterizer and the per-chord rasterization cache.
//
// Tone convention:
//
//	Gray holds ordinary intensities (0 = black, 255 = white). Synthesis
//	works on the tonal inverse, 255 − v, so that accumulated darkness
//	approaches dark regions of the target. Canvas.Display clips the
//	accumulator to [0,255] and inverts it back, so more string renders
//	darker.
//
// Saturation:
//
//	A Canvas created WithLimit(255) behaves like an 8-bit canvas: every
//	addition saturates at the limit. Without a limit the uint32 buffer
//	accumulates freely and only the derived views clip.
//
// Lines are rasterized with the integer Bresenham algorithm: both
// endpoints included, 8-connected, every pixel visited exactly once.
package canvas
