// Package viz provides the terminal live view of a running simulation.
//
// The view is a Bubble Tea program drawing bodies on a braille [Canvas]
// around a focused body:
//
//   - [Model]: ticks the simulator and renders the canvas and a status panel
//   - [Scene]: projection of bodies onto the canvas (focus, zoom, plane)
//   - [CanvasToSVG]: snapshot of the canvas as an SVG image
//
// # Key Bindings
//
//	P/Space - Pause/Resume simulation
//	←/→     - Cycle focus through the bodies
//	+/-     - Zoom in/out by 10%
//	[/]     - Halve/double frames per tick
//	H       - Toggle highlighting of bodies smaller than a dot
//	V       - Toggle x-y / x-z plane
//	S       - Save an SVG screenshot
//	Q       - Quit
package viz
