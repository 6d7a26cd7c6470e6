// Package motion animates layout changes with the FLIP technique.
//
// Each layout-animatable element owns a Handle holding its committed layout
// box and any running interpolations. A transition is played in three
// steps: Capture every handle's visual box, commit the new layout boxes,
// then Play, which installs the transform mapping each new box back onto its
// captured box and eases it to identity. Numeric style fields are tweened in
// parallel with the same timing so they finish in lockstep.
//
// Capturing visual rather than layout boxes makes an interrupted transition
// continue from wherever the element is on screen.
package motion
