// Package terminal renders the play area on a character terminal through tcell.
//
// The logical play area is scaled to the cell grid: each cell samples its center against
// the submitted shapes and is painted with the shape's color as background. Terminals send
// no key-release events, so a key counts as held for a short window after each press (key
// auto-repeat keeps it alive).
package terminal
