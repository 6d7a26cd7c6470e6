// Package layout computes pixel boxes for a small tree of flex containers.
//
// Geometry is float64 pixels with the origin at the top-left of the stage.
// A tree is sized bottom-up (intrinsic text sizes, fixed lengths, fill
// lengths resolved against the parent's content box) and then placed
// top-down, applying main-axis justification and cross-axis alignment.
// Absolutely positioned children are taken out of flow and anchored to a
// corner of their parent.
package layout
