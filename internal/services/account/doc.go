// Package account logs the parent in and out.
//
// The bearer token returned by the backend is sealed under a local passphrase
// by the credential store; every other command reads it back from there.
package account
