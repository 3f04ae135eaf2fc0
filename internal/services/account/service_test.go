package account_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kembang/internal/api"
	"kembang/internal/devserver"
	"kembang/internal/domain"
	"kembang/internal/services/account"
	"kembang/internal/store"
)

const pass = "rahasia-lokal-1"

type fixture struct {
	svc   *account.Service
	srv   *devserver.Server
	creds *store.CredentialFileStore
	prefs *store.PreferenceFileStore
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	srv := devserver.New(nil)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	base := ts.URL + "/api/v1"
	client := api.New(base, ts.Client())
	home := t.TempDir()
	creds := store.NewCredentialFileStore(home)
	prefs := store.NewPreferenceFileStore(home)
	auth := func(token string) domain.AuthAPI { return client.WithToken(token) }

	return fixture{
		svc:   account.New(auth, creds, prefs, base, nil),
		srv:   srv,
		creds: creds,
		prefs: prefs,
	}
}

func TestLoginStoresSealedToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.svc.Login(ctx, pass, " "+devserver.DemoEmail+" ", devserver.DemoPassword)
	require.NoError(t, err)
	assert.Equal(t, devserver.DemoUserID, user.ID)

	creds, err := f.creds.LoadCredentials(pass)
	require.NoError(t, err)
	assert.NotEmpty(t, creds.Token)
	assert.NotZero(t, creds.IssuedAt)

	me, err := f.svc.Whoami(ctx, pass)
	require.NoError(t, err)
	assert.Equal(t, devserver.DemoEmail, me.Email)
}

func TestLoginRejectsWeakPassphrase(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Login(context.Background(), "short", devserver.DemoEmail, devserver.DemoPassword)
	assert.ErrorIs(t, err, account.ErrWeakPassphrase)
	assert.Zero(t, f.srv.Hits("login"))
}

func TestLoginWithBadPasswordStoresNothing(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Login(context.Background(), pass, devserver.DemoEmail, "salah")
	apiErr, ok := api.AsError(err)
	require.True(t, ok)
	assert.True(t, apiErr.IsValidation())

	_, err = f.svc.Whoami(context.Background(), pass)
	assert.ErrorIs(t, err, account.ErrNotLoggedIn)
}

func TestLogoutRevokesAndClears(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.Login(ctx, pass, devserver.DemoEmail, devserver.DemoPassword)
	require.NoError(t, err)
	require.NoError(t, f.prefs.SetActiveChildID(devserver.DemoChildID))

	require.NoError(t, f.svc.Logout(ctx, pass))

	assert.Equal(t, 1, f.srv.Hits("logout"))
	_, err = f.svc.Credentials(pass)
	assert.ErrorIs(t, err, account.ErrNotLoggedIn)
	_, ok, err := f.prefs.ActiveChildID()
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = f.svc.Whoami(ctx, pass)
	assert.ErrorIs(t, err, account.ErrNotLoggedIn)
}

func TestLogoutClearsEvenWhenServerFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.Login(ctx, pass, devserver.DemoEmail, devserver.DemoPassword)
	require.NoError(t, err)

	f.srv.FailNext("logout", 500)
	require.NoError(t, f.svc.Logout(ctx, pass))

	_, err = f.svc.Credentials(pass)
	assert.True(t, errors.Is(err, account.ErrNotLoggedIn))
}

func TestLogoutWhenNotLoggedIn(t *testing.T) {
	f := newFixture(t)
	assert.ErrorIs(t, f.svc.Logout(context.Background(), pass), account.ErrNotLoggedIn)
}

func TestRefreshRotatesStoredToken(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.Login(ctx, pass, devserver.DemoEmail, devserver.DemoPassword)
	require.NoError(t, err)
	before, err := f.svc.Credentials(pass)
	require.NoError(t, err)

	require.NoError(t, f.svc.Refresh(ctx, pass))

	after, err := f.svc.Credentials(pass)
	require.NoError(t, err)
	assert.NotEqual(t, before.Token, after.Token)
	_, err = f.svc.Whoami(ctx, pass)
	assert.NoError(t, err)
}

func TestRegisterKeepsTokenAndCanLogInAgain(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user, err := f.svc.Register(ctx, pass, domain.RegisterRequest{
		Name:                 " Sari ",
		Email:                "sari@example.test",
		Password:             "sandi-baru-9",
		PasswordConfirmation: "sandi-baru-9",
	})
	require.NoError(t, err)
	assert.Equal(t, "Sari", user.Name)
	assert.NotEqual(t, devserver.DemoUserID, user.ID)

	me, err := f.svc.Whoami(ctx, pass)
	require.NoError(t, err)
	assert.Equal(t, user.ID, me.ID)

	require.NoError(t, f.svc.Logout(ctx, pass))
	again, err := f.svc.Login(ctx, pass, "sari@example.test", "sandi-baru-9")
	require.NoError(t, err)
	assert.Equal(t, user.ID, again.ID)
}

func TestRegisterDuplicateEmailStoresNothing(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Register(context.Background(), pass, domain.RegisterRequest{
		Name:                 "Dua",
		Email:                devserver.DemoEmail,
		Password:             "sandi-baru-9",
		PasswordConfirmation: "sandi-baru-9",
	})
	apiErr, ok := api.AsError(err)
	require.True(t, ok)
	assert.True(t, apiErr.IsValidation())
	assert.NotEmpty(t, apiErr.FieldError("email"))

	_, err = f.svc.Credentials(pass)
	assert.ErrorIs(t, err, account.ErrNotLoggedIn)
}

func TestRegisterRejectsWeakPassphrase(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.Register(context.Background(), "lemah", domain.RegisterRequest{Name: "X"})
	assert.ErrorIs(t, err, account.ErrWeakPassphrase)
	assert.Zero(t, f.srv.Hits("register"))
}
