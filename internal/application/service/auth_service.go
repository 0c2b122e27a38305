package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/invoicehq/invoicer-client/internal/domain/entity"
	"github.com/invoicehq/invoicer-client/internal/domain/enum"
	"github.com/invoicehq/invoicer-client/internal/domain/repository"
	"github.com/invoicehq/invoicer-client/internal/logger"
	"github.com/invoicehq/invoicer-client/pkg/apperror"
)

// MessageAuthSuccess marks the popup message that concludes a login handshake
const MessageAuthSuccess = "AUTH_SUCCESS"

// defaultPollInterval is how often the popup is checked for user closure
const defaultPollInterval = 500 * time.Millisecond

// PopupMessage is a message posted back from the login popup
type PopupMessage struct {
	Type   string
	Origin string
}

// PopupWindow is an open login popup. Messages delivers what the popup posts
// back; Closed reports whether the user dismissed it.
type PopupWindow interface {
	Messages() <-chan PopupMessage
	Closed() bool
	Close()
}

// PopupOpener opens the login popup at the given authorization URL. A nil
// window with an error means the popup could not be opened at all.
type PopupOpener interface {
	Open(ctx context.Context, url string) (PopupWindow, error)
}

// AuthService owns the mailer session state and the login handshake
type AuthService struct {
	gateway      repository.SessionGateway
	opener       PopupOpener
	origin       string
	pollInterval time.Duration
	log          zerolog.Logger

	mu      sync.Mutex
	session entity.AuthSession
}

// NewAuthService creates the session authenticator. origin is the
// application origin; popup messages from any other origin are ignored.
func NewAuthService(gateway repository.SessionGateway, opener PopupOpener, origin string) *AuthService {
	return &AuthService{
		gateway:      gateway,
		opener:       opener,
		origin:       origin,
		pollInterval: defaultPollInterval,
		log:          logger.WithComponent("auth"),
		session:      entity.NewAuthSession(),
	}
}

// Session returns a copy of the current session state
func (s *AuthService) Session() entity.AuthSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// CheckSession queries the collaborator and updates local state. A reported
// authenticated session with an email transitions to Authenticated; anything
// else, including a collaborator failure, transitions to Unauthenticated.
// The reported auth method is always recorded. Collaborator failures are
// returned to the caller after the state reset.
func (s *AuthService) CheckSession(ctx context.Context) (*repository.SessionStatus, error) {
	status, err := s.gateway.CheckSession(ctx)
	if err != nil {
		s.setUnauthenticated()
		return nil, apperror.NewSessionError("check", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if status.Authenticated && status.Email != "" {
		s.session.IsAuthenticated = true
		s.session.UserEmail = status.Email
		s.session.UserName = status.Name
		s.session.UserAvatarURL = status.AvatarURL
	} else {
		s.session.IsAuthenticated = false
		s.session.UserEmail = ""
		s.session.UserName = ""
		s.session.UserAvatarURL = ""
	}
	s.session.AuthMethod = enum.ParseAuthMethod(status.Method)
	s.session.Loading = false

	return status, nil
}

// LoginWithGoogle opens the authorization popup and blocks until the
// handshake settles. Two completion signals race: a success message posted by
// the popup, and a fixed-interval poll detecting that the user closed it.
// Whichever fires first tears the other down; the loser becomes a no-op.
func (s *AuthService) LoginWithGoogle(ctx context.Context) error {
	popup, err := s.opener.Open(ctx, s.gateway.AuthURL())
	if err != nil {
		// Nothing was armed; fail straight away.
		return apperror.ErrPopupBlocked
	}

	ticker := time.NewTicker(s.pollInterval)
	var once sync.Once
	teardown := func() {
		once.Do(func() {
			ticker.Stop()
			popup.Close()
		})
	}
	defer teardown()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case msg, ok := <-popup.Messages():
			if !ok {
				return apperror.ErrAuthCancelled
			}
			// Only same-origin success messages conclude the handshake;
			// everything else leaves it pending.
			if msg.Origin != s.origin || msg.Type != MessageAuthSuccess {
				s.log.Debug().Str("origin", msg.Origin).Str("type", msg.Type).Msg("ignoring popup message")
				continue
			}
			teardown()
			if _, err := s.CheckSession(ctx); err != nil {
				return err
			}
			return nil

		case <-ticker.C:
			if popup.Closed() {
				teardown()
				return apperror.ErrAuthCancelled
			}
		}
	}
}

// Logout clears the backend session, then resets local state. The auth
// method survives the reset so the login affordance stays stable. On
// collaborator failure local state is left untouched, consistent with the
// last server-confirmed session.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.gateway.Logout(ctx); err != nil {
		return apperror.NewSessionError("logout", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	method := s.session.AuthMethod
	s.session = entity.AuthSession{
		AuthMethod: method,
		Loading:    false,
	}
	return nil
}

// IsAuthenticated reports whether the last confirmed session is signed in
func (s *AuthService) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.IsAuthenticated
}

func (s *AuthService) setUnauthenticated() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.IsAuthenticated = false
	s.session.UserEmail = ""
	s.session.UserName = ""
	s.session.UserAvatarURL = ""
	s.session.Loading = false
}
