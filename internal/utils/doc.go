// Package utils provides small shared helpers: locating the enclosing
// git working tree, terminal detection, and display formatting.
package utils
