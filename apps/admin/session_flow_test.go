package main

import (
	"context"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siakad-id/siakad/core"
	"github.com/siakad-id/siakad/core/session"
	"github.com/siakad-id/siakad/httpapi"
	"github.com/siakad-id/siakad/navigation"
	logsvc "github.com/siakad-id/siakad/services/logger"
	"github.com/siakad-id/siakad/storage/keyring"
)

func testLogger() core.Logger {
	l := logsvc.NewConsoleLogger(log.New(os.Stderr, "TEST : ", log.LstdFlags))
	l.Enable(false)
	return l
}

// remoteAPI fakes the subset of the auth API the flow needs.
func remoteAPI(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "success",
			"data": {
				"token": "tok123",
				"user": {"id": "u1", "name": "Admin", "email": "admin@test.id", "roles": ["admin"], "permissions": ["teacher.read"]}
			}
		}`))
	})
	mux.HandleFunc("/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok123", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"Logged out"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

// The full session arc: signed out, sign in, sign out again, with the
// guard's verdicts and credential persistence checked at every stage.
func TestSessionFlow(t *testing.T) {
	srv := remoteAPI(t)
	logger := testLogger()

	kr := keyring.NewMemory()
	store := session.NewStore(kr, logger)
	client := httpapi.NewClient(core.APIConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}, store.Token)
	svc := session.NewService(store, httpapi.NewAuthRepository(client), logger)
	guard := navigation.NewGuard(navigation.DefaultRoutes(), store, nil, nil, logger)

	ctx := context.Background()

	// signed out: protected screens bounce to login, signin is reachable
	rt, decision, err := guard.Navigate("/teacher")
	require.NoError(t, err)
	assert.Equal(t, navigation.RedirectToLogin, decision)
	assert.Equal(t, navigation.LoginPath, rt.Path)

	_, decision, err = guard.Navigate(navigation.LoginPath)
	require.NoError(t, err)
	assert.Equal(t, navigation.Proceed, decision)

	// sign in
	idt, err := svc.Login(ctx, session.Credentials{Email: "admin@test.id", Password: "pwd"})
	require.NoError(t, err)
	assert.Equal(t, "Admin", idt.Name)
	assert.True(t, store.IsAuthenticated())
	assert.True(t, store.HasPermission("teacher.read"))

	// the credential is durable: a fresh store over the same keyring
	// restores the session
	restored := session.NewStore(kr, logger)
	assert.True(t, restored.IsAuthenticated())
	assert.Equal(t, "tok123", restored.Token())

	// signed in: protected screens open, guest-only screens bounce home
	_, decision, err = guard.Navigate("/teacher")
	require.NoError(t, err)
	assert.Equal(t, navigation.Proceed, decision)

	rt, decision, err = guard.Navigate(navigation.LoginPath)
	require.NoError(t, err)
	assert.Equal(t, navigation.RedirectToHome, decision)
	assert.Equal(t, navigation.HomePath, rt.Path)

	// sign out: remote token revoked, local state gone
	svc.Logout(ctx)
	assert.False(t, store.IsAuthenticated())
	assert.Empty(t, store.Token())

	_, decision, err = guard.Navigate("/teacher")
	require.NoError(t, err)
	assert.Equal(t, navigation.RedirectToLogin, decision)
}
