package store

import (
	"encoding/json"
	"path/filepath"
	"sync"

	"kembang/internal/domain"
	"kembang/internal/util/memzero"
)

const credentialsFilename = "credentials.enc"

// CredentialFileStore keeps the login token sealed under a passphrase.
type CredentialFileStore struct {
	dir string
	kdf kdfParams
	mu  sync.Mutex
}

// NewCredentialFileStore returns a CredentialFileStore rooted at dir.
func NewCredentialFileStore(dir string) *CredentialFileStore {
	return &CredentialFileStore{dir: dir, kdf: defaultKDF}
}

func (s *CredentialFileStore) path() string { return filepath.Join(s.dir, credentialsFilename) }

// SaveCredentials seals creds with passphrase, replacing any earlier login.
func (s *CredentialFileStore) SaveCredentials(passphrase string, creds domain.Credentials) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(creds)
	if err != nil {
		return err
	}
	defer memzero.Zero(raw)
	b, err := seal(passphrase, raw, s.kdf)
	if err != nil {
		return err
	}
	return writeFile(s.path(), b, 0o600)
}

// LoadCredentials opens the stored credentials. It returns ErrNoCredentials
// when nothing is stored and ErrWrongPassphrase when opening fails.
func (s *CredentialFileStore) LoadCredentials(passphrase string) (domain.Credentials, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.path())
	if err != nil {
		return domain.Credentials{}, err
	}
	if b == nil {
		return domain.Credentials{}, ErrNoCredentials
	}
	raw, err := open(s.path(), passphrase, b)
	if err != nil {
		return domain.Credentials{}, err
	}
	defer memzero.Zero(raw)
	var creds domain.Credentials
	if err := json.Unmarshal(raw, &creds); err != nil {
		return domain.Credentials{}, err
	}
	return creds, nil
}

// ClearCredentials forgets the stored login.
func (s *CredentialFileStore) ClearCredentials() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return removeFile(s.path())
}

// Compile-time assertion that CredentialFileStore implements domain.CredentialStore.
var _ domain.CredentialStore = (*CredentialFileStore)(nil)
