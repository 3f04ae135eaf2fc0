package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"kembang/internal/domain"
	"kembang/internal/logging"
	"kembang/internal/store"
)

const (
	// minPassphraseLength is the minimum number of characters for the local passphrase.
	minPassphraseLength = 8
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the strength policy.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters and include a letter and a number)",
		minPassphraseLength,
	)

	// ErrNotLoggedIn is returned when no credentials are stored.
	ErrNotLoggedIn = errors.New("not logged in (run: kembang login)")
)

// AuthFor returns an AuthAPI that authenticates with token. An empty token
// gives an anonymous client.
type AuthFor func(token string) domain.AuthAPI

// Service manages the login session stored on this machine.
type Service struct {
	auth   AuthFor
	creds  domain.CredentialStore
	prefs  domain.PreferenceStore
	apiURL string
	now    func() time.Time
	log    *logging.Logger
}

// New returns an account service. prefs may be nil.
func New(
	auth AuthFor,
	creds domain.CredentialStore,
	prefs domain.PreferenceStore,
	apiURL string,
	log *logging.Logger,
) *Service {
	return &Service{auth: auth, creds: creds, prefs: prefs, apiURL: apiURL, now: time.Now, log: log}
}

// Login exchanges email and password for a token and seals it with passphrase.
func (s *Service) Login(ctx context.Context, passphrase, email, password string) (domain.User, error) {
	if !isSecurePassphrase(passphrase) {
		return domain.User{}, ErrWeakPassphrase
	}
	resp, err := s.auth("").Login(ctx, domain.LoginRequest{
		Email:    strings.TrimSpace(email),
		Password: password,
	})
	if err != nil {
		return domain.User{}, err
	}
	if err := s.keep(passphrase, resp); err != nil {
		return domain.User{}, err
	}
	s.log.Info("login", map[string]any{"user_id": resp.User.ID})
	return resp.User, nil
}

// Register creates an account and keeps its token like Login does.
func (s *Service) Register(ctx context.Context, passphrase string, req domain.RegisterRequest) (domain.User, error) {
	if !isSecurePassphrase(passphrase) {
		return domain.User{}, ErrWeakPassphrase
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	resp, err := s.auth("").Register(ctx, req)
	if err != nil {
		return domain.User{}, err
	}
	if err := s.keep(passphrase, resp); err != nil {
		return domain.User{}, err
	}
	s.log.Info("registered", map[string]any{"user_id": resp.User.ID})
	return resp.User, nil
}

func (s *Service) keep(passphrase string, resp domain.AuthResponse) error {
	creds := domain.Credentials{
		APIURL:   s.apiURL,
		Token:    resp.Token,
		User:     resp.User,
		IssuedAt: s.now().Unix(),
	}
	if err := s.creds.SaveCredentials(passphrase, creds); err != nil {
		return fmt.Errorf("account: save credentials: %w", err)
	}
	return nil
}

// Logout revokes the token on the server when possible and always forgets
// the local credentials and active child.
func (s *Service) Logout(ctx context.Context, passphrase string) error {
	creds, err := s.Credentials(passphrase)
	switch {
	case errors.Is(err, ErrNotLoggedIn):
		return err
	case err != nil:
		s.log.Warn("logout_unsealed", nil, err)
	default:
		if err := s.auth(creds.Token).Logout(ctx); err != nil {
			s.log.Warn("logout_remote", nil, err)
		}
	}
	if err := s.creds.ClearCredentials(); err != nil {
		return fmt.Errorf("account: clear credentials: %w", err)
	}
	if s.prefs != nil {
		if err := s.prefs.ClearActiveChildID(); err != nil {
			return fmt.Errorf("account: clear active child: %w", err)
		}
	}
	s.log.Info("logout", map[string]any{"user_id": creds.User.ID})
	return nil
}

// Whoami asks the backend who the stored token belongs to.
func (s *Service) Whoami(ctx context.Context, passphrase string) (domain.User, error) {
	creds, err := s.Credentials(passphrase)
	if err != nil {
		return domain.User{}, err
	}
	return s.auth(creds.Token).Me(ctx)
}

// Refresh rotates the stored token.
func (s *Service) Refresh(ctx context.Context, passphrase string) error {
	creds, err := s.Credentials(passphrase)
	if err != nil {
		return err
	}
	token, err := s.auth(creds.Token).RefreshToken(ctx)
	if err != nil {
		return err
	}
	creds.Token = token
	creds.IssuedAt = s.now().Unix()
	if err := s.creds.SaveCredentials(passphrase, creds); err != nil {
		return fmt.Errorf("account: save credentials: %w", err)
	}
	s.log.Info("token_refreshed", map[string]any{"user_id": creds.User.ID})
	return nil
}

// Credentials opens the stored credentials.
func (s *Service) Credentials(passphrase string) (domain.Credentials, error) {
	creds, err := s.creds.LoadCredentials(passphrase)
	if store.IsNoCredentials(err) {
		return domain.Credentials{}, ErrNotLoggedIn
	}
	return creds, err
}

// isSecurePassphrase enforces a basic strength policy.
func isSecurePassphrase(passphrase string) bool {
	var hasLetter, hasDigit bool
	if len([]rune(passphrase)) < minPassphraseLength {
		return false
	}
	for _, r := range passphrase {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

// Compile-time assertion that Service implements domain.AccountService.
var _ domain.AccountService = (*Service)(nil)
