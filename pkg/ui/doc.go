// Package ui renders user-facing output: script progress markers, the
// interactive menu, errors and markdown listings. Output to a pipe or a
// non-color terminal is plain text; NO_COLOR forces plain text.
package ui
