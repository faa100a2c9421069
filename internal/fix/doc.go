// Package fix applies the text edits attached to diagnostics.
package fix
