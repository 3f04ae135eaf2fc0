// Package commands defines the kembang CLI and wires dependencies for subcommands.
//
// Commands
//
//   - register      Create an account and log in with it
//   - login         Log in and seal the token under the passphrase
//   - logout        Revoke the token and forget local credentials
//   - whoami        Show the logged-in parent
//   - refresh       Rotate the stored token
//   - children ...  List, show, add, edit and remove children, or choose the active one
//   - asq3 ...      Show ASQ-3 domains, age intervals and questions
//   - screening ... List, start, cancel and show results of screenings
//   - growth ...    Record and list weight and height measurements
//   - pmt ...       Plan supplemental feeding, log meals and show compliance
//
// # Implementation
//
// The root command loads <home>/config.yaml and builds a dependency graph
// (stores, backend client, services) before any subcommand runs. Commands
// that act for the parent open the sealed credentials with the passphrase
// first.
package commands
