// Package app provides the command handlers of msstore-grabber.
// It wires the rg-adguard client into the store service, prints the
// resulting link table and renders download progress in the terminal.
package app
