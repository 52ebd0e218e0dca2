// Package viz renders the ball world in a terminal with Bubble Tea.
//
// Bodies are drawn as filled discs on a braille [Canvas], two sub-pixels
// wide and four tall per cell, scaled to fit the viewport. A side panel
// shows the frame counters, the smoothed frame rate and a kinetic energy
// graph.
//
// # Key Bindings
//
//	Space - Pause/Resume
//	R     - Re-place the bodies
//	T     - Cycle colour themes
//	Q     - Quit
package viz
