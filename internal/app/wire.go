package app

import (
	"errors"
	"fmt"
	"net/http"

	"kembang/internal/api"
	"kembang/internal/domain"
	"kembang/internal/logging"
	accountsvc "kembang/internal/services/account"
	childrensvc "kembang/internal/services/children"
	growthsvc "kembang/internal/services/growth"
	pmtsvc "kembang/internal/services/pmt"
	screeningsvc "kembang/internal/services/screening"
	"kembang/internal/store"
)

// Wire bundles all stores, services, and clients for the CLI.
type Wire struct {
	Credentials *store.CredentialFileStore
	Preferences *store.PreferenceFileStore
	Account     *accountsvc.Service
	Client      *api.Client
	HTTP        *http.Client
	Log         *logging.Logger

	ownsLog bool
}

// Session is the authenticated part of the graph.
type Session struct {
	User      domain.User
	API       domain.BackendClient
	Children  *childrensvc.Service
	Growth    *growthsvc.Service
	Pmt       *pmtsvc.Service
	Screening *screeningsvc.Service
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	log, ownsLog := cfg.Log, false
	if log == nil {
		level, err := logging.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		if log, err = logging.Open(cfg.Home, "cli", level); err != nil {
			return nil, err
		}
		ownsLog = true
	}

	// File-based stores
	creds := store.NewCredentialFileStore(cfg.Home)
	prefs := store.NewPreferenceFileStore(cfg.Home)

	// Ensure an HTTP client is available for outbound calls
	httpClient := cfg.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	client := api.New(cfg.APIURL, httpClient)
	client.Log = log.With("api")

	authFor := func(token string) domain.AuthAPI { return client.WithToken(token) }
	account := accountsvc.New(authFor, creds, prefs, cfg.APIURL, log.With("account"))

	return &Wire{
		Credentials: creds,
		Preferences: prefs,
		Account:     account,
		Client:      client,
		HTTP:        httpClient,
		Log:         log,
		ownsLog:     ownsLog,
	}, nil
}

// Authenticate opens the stored credentials with passphrase and returns the
// services that need a bearer token.
func (w *Wire) Authenticate(passphrase string) (*Session, error) {
	if passphrase == "" {
		return nil, errors.New("passphrase required (-p or KEMBANG_PASSPHRASE)")
	}
	creds, err := w.Account.Credentials(passphrase)
	if err != nil {
		return nil, err
	}
	if creds.APIURL != "" && creds.APIURL != w.Client.Base {
		w.Log.Warn("api_url_changed", map[string]any{"stored": creds.APIURL, "configured": w.Client.Base}, nil)
	}
	client := w.Client.WithToken(creds.Token)
	kids := childrensvc.New(client, w.Preferences, w.Log.With("children"))
	return &Session{
		User:      creds.User,
		API:       client,
		Children:  kids,
		Growth:    growthsvc.New(client, kids, w.Log.With("growth")),
		Pmt:       pmtsvc.New(client, kids, w.Log.With("pmt")),
		Screening: screeningsvc.New(client, w.Preferences, w.Log.With("screening")),
	}, nil
}

// Close releases the log file when the wire opened it.
func (w *Wire) Close() error {
	if !w.ownsLog {
		return nil
	}
	if err := w.Log.Close(); err != nil {
		return fmt.Errorf("app: close log: %w", err)
	}
	return nil
}
