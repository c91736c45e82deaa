// Package color resolves the color tokens carried by markup attributes into
// RGBA values. Tokens are looked up in order: theme tokens, system color
// names, hex literals, then CSS/X11 color names.
package color
