// Package annotate draws detections onto images.
//
// Each detection becomes a class-colored rectangle outline with a filled label
// above its top edge reading "<class>: <confidence>". Drawing always happens
// on a copy; the source image is never modified.
//
// Labels are rendered with the fixed 7x13 bitmap face from
// golang.org/x/image/font/basicfont, so output is identical across platforms.
// Geometry that falls outside the canvas (for example a label above a box
// touching the top edge) is clipped by the drawing primitives.
package annotate
