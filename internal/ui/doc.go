// Package ui provides semantic text formatting for CLI output.
//
// Formatters render appropriately based on terminal capabilities: when
// colors are available content is colorized, and when NO_COLOR is set
// or the terminal doesn't support colors, text decorations are used
// instead.
//
// The two formatters specific to Fidelius mirror the danger level of
// what they point at:
//
//	ui.Encrypted.Sprint("api.encrypted.json.asc") // safe to commit, green
//	ui.Decrypted.Sprint("api.decrypted.json")     // plaintext, red
package ui
