// Package window shows a simulation in an ebiten window. Clicking toggles
// cells until Enter starts the run; the run advances one generation per interval.
//
// The package only builds with the ebiten tag.
package window
