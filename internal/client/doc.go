// Package client implements passgen, the command line password generator.
//
// Passwords come from a [PasswordSource]: either the generator package
// linked into the binary or a running credential service reached through
// the adapter package. Output is styled with lipgloss and the first
// password can be put on the system clipboard.
package client
