// Package ui provides theme and color support for the application's user interface.
// It defines ANSI color schemes for diagnostics written to standard error and
// lipgloss palettes for the interactive terminal interface.
//
// Standard output of the sequence prompt is never colored; only presentation
// layers that own a terminal consult this package.
package ui
