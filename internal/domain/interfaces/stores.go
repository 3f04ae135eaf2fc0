package interfaces

import domaintypes "kembang/internal/domain/types"

// CredentialStore keeps the bearer token sealed under a passphrase.
type CredentialStore interface {
	SaveCredentials(passphrase string, creds domaintypes.Credentials) error
	LoadCredentials(passphrase string) (domaintypes.Credentials, error)
	ClearCredentials() error
}

// ActiveChild reports the child the parent last selected, if any.
type ActiveChild interface {
	ActiveChildID() (int64, bool, error)
}

// PreferenceStore persists user preferences such as the active child.
type PreferenceStore interface {
	ActiveChild
	SetActiveChildID(childID int64) error
	ClearActiveChildID() error
}
