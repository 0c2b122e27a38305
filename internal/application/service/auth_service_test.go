package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicehq/invoicer-client/internal/domain/enum"
	"github.com/invoicehq/invoicer-client/internal/domain/repository"
	"github.com/invoicehq/invoicer-client/pkg/apperror"
)

const testOrigin = "http://localhost:8080"

func signedInStatus() *repository.SessionStatus {
	return &repository.SessionStatus{
		Authenticated: true,
		Email:         "user@example.com",
		Name:          "Test User",
		AvatarURL:     "http://localhost:8080/avatar.png",
		Method:        "oauth2",
	}
}

func newTestAuth(gateway *fakeGateway, opener PopupOpener) *AuthService {
	s := NewAuthService(gateway, opener, testOrigin)
	s.pollInterval = 5 * time.Millisecond
	return s
}

func TestCheckSessionSignedIn(t *testing.T) {
	gateway := &fakeGateway{status: signedInStatus()}
	auth := newTestAuth(gateway, &fakeOpener{})

	status, err := auth.CheckSession(context.Background())
	require.NoError(t, err)
	assert.True(t, status.Authenticated)

	session := auth.Session()
	assert.True(t, session.IsAuthenticated)
	assert.Equal(t, "user@example.com", session.UserEmail)
	assert.Equal(t, "Test User", session.UserName)
	assert.Equal(t, enum.AuthMethodOAuth2, session.AuthMethod)
	assert.False(t, session.Loading)
}

func TestCheckSessionSignedOut(t *testing.T) {
	gateway := &fakeGateway{status: &repository.SessionStatus{Authenticated: false, Method: "none"}}
	auth := newTestAuth(gateway, &fakeOpener{})

	_, err := auth.CheckSession(context.Background())
	require.NoError(t, err)

	session := auth.Session()
	assert.False(t, session.IsAuthenticated)
	assert.Equal(t, enum.AuthMethodNone, session.AuthMethod)
	assert.False(t, session.Loading)
}

func TestCheckSessionAuthenticatedWithoutEmailIsNotSignedIn(t *testing.T) {
	gateway := &fakeGateway{status: &repository.SessionStatus{Authenticated: true, Method: "oauth2"}}
	auth := newTestAuth(gateway, &fakeOpener{})

	_, err := auth.CheckSession(context.Background())
	require.NoError(t, err)
	assert.False(t, auth.IsAuthenticated())
}

func TestCheckSessionFailureResetsState(t *testing.T) {
	gateway := &fakeGateway{status: signedInStatus()}
	auth := newTestAuth(gateway, &fakeOpener{})
	_, err := auth.CheckSession(context.Background())
	require.NoError(t, err)
	require.True(t, auth.IsAuthenticated())

	gateway.checkErr = errors.New("connection refused")
	_, err = auth.CheckSession(context.Background())

	var sessionErr *apperror.SessionError
	require.ErrorAs(t, err, &sessionErr)
	assert.Equal(t, "check", sessionErr.Op)
	assert.False(t, auth.IsAuthenticated())
	assert.False(t, auth.Session().Loading)
}

func TestLoginPopupBlocked(t *testing.T) {
	gateway := &fakeGateway{status: signedInStatus()}
	auth := newTestAuth(gateway, &fakeOpener{openErr: errors.New("no browser")})

	err := auth.LoginWithGoogle(context.Background())

	assert.ErrorIs(t, err, apperror.ErrPopupBlocked)
	assert.Equal(t, 0, gateway.checkCalls)
}

func TestLoginSuccessMessage(t *testing.T) {
	gateway := &fakeGateway{status: signedInStatus()}
	popup := newFakePopup()
	auth := newTestAuth(gateway, &fakeOpener{popup: popup})

	popup.messages <- PopupMessage{Type: MessageAuthSuccess, Origin: testOrigin}

	err := auth.LoginWithGoogle(context.Background())
	require.NoError(t, err)

	assert.True(t, auth.IsAuthenticated())
	assert.Equal(t, 1, gateway.checkCalls)
	assert.Equal(t, 1, popup.timesClosed())
}

func TestLoginIgnoresForeignMessages(t *testing.T) {
	gateway := &fakeGateway{status: signedInStatus()}
	popup := newFakePopup()
	auth := newTestAuth(gateway, &fakeOpener{popup: popup})

	// Wrong origin, then wrong type, then the real one. The first two must
	// leave the handshake pending.
	popup.messages <- PopupMessage{Type: MessageAuthSuccess, Origin: "http://evil.example"}
	popup.messages <- PopupMessage{Type: "AUTH_ERROR", Origin: testOrigin}
	popup.messages <- PopupMessage{Type: MessageAuthSuccess, Origin: testOrigin}

	err := auth.LoginWithGoogle(context.Background())
	require.NoError(t, err)
	assert.True(t, auth.IsAuthenticated())
}

func TestLoginCancelledByClosingPopup(t *testing.T) {
	gateway := &fakeGateway{status: signedInStatus()}
	popup := newFakePopup()
	auth := newTestAuth(gateway, &fakeOpener{popup: popup})

	popup.setClosed()

	err := auth.LoginWithGoogle(context.Background())

	assert.ErrorIs(t, err, apperror.ErrAuthCancelled)
	assert.False(t, auth.IsAuthenticated())
	// Cancellation never triggers a session check.
	assert.Equal(t, 0, gateway.checkCalls)
}

func TestLoginContextCancelled(t *testing.T) {
	gateway := &fakeGateway{status: signedInStatus()}
	popup := newFakePopup()
	auth := newTestAuth(gateway, &fakeOpener{popup: popup})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := auth.LoginWithGoogle(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLogoutPreservesAuthMethod(t *testing.T) {
	gateway := &fakeGateway{status: signedInStatus()}
	auth := newTestAuth(gateway, &fakeOpener{})
	_, err := auth.CheckSession(context.Background())
	require.NoError(t, err)

	require.NoError(t, auth.Logout(context.Background()))

	session := auth.Session()
	assert.False(t, session.IsAuthenticated)
	assert.Empty(t, session.UserEmail)
	assert.Equal(t, enum.AuthMethodOAuth2, session.AuthMethod)
}

func TestLogoutFailureKeepsState(t *testing.T) {
	gateway := &fakeGateway{status: signedInStatus()}
	auth := newTestAuth(gateway, &fakeOpener{})
	_, err := auth.CheckSession(context.Background())
	require.NoError(t, err)

	gateway.logoutErr = errors.New("backend down")
	err = auth.Logout(context.Background())

	var sessionErr *apperror.SessionError
	require.ErrorAs(t, err, &sessionErr)
	assert.Equal(t, "logout", sessionErr.Op)
	assert.True(t, auth.IsAuthenticated())
}
