// Package application wires the resolved version into the HTTP handlers,
// router and server so that the main package only parses flags and
// orchestrates startup and shutdown.
package application
