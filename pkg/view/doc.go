// Package view describes native views as an immutable tree.
//
// Each constructor mirrors one call into the native toolkit: wrapping
// constructors (Shadow, Opacity, Hidden, Sheet) return a new node holding
// the wrapped view as their only child and never touch the input. Nodes
// marshal to a deterministic JSON description; callbacks registered on a
// node (such as a sheet's dismiss handler) are not part of the description.
package view
