// Package cli implements the interactive terminal client for the blog
// service: a REPL dispatching to one view per command (home, blogs, add,
// profile, login, register, about), with session, theme and notification
// state shared across them.
package cli
