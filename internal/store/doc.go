// Package store provides file-based persistence for kembang's local state.
//
// Only two things are kept on disk, both under the configured home
// directory:
//   - Credentials (CredentialFileStore): the bearer token and user profile,
//     sealed with a passphrase.
//   - Preferences (PreferenceFileStore): the active child id, as plain JSON.
//
// Screenings and answers are never stored locally; the backend is the system
// of record for them. All methods are concurrency-safe via internal locking,
// and every write goes through a temp file and rename.
package store
