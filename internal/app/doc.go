// Package app wires application dependencies for the CLI.
//
// It builds the concrete stores, the backend client and high-level services
// from Config, exposing them via the Wire struct for commands to use.
// Commands that talk to the backend on the parent's behalf first call
// Authenticate to open the stored credentials.
package app
