package enum

// AuthMethod represents how the backend mailer authenticates its user
type AuthMethod string

const (
	AuthMethodOAuth2  AuthMethod = "oauth2"
	AuthMethodPlain   AuthMethod = "plain"
	AuthMethodNone    AuthMethod = "none"
	AuthMethodUnknown AuthMethod = "unknown"
)

func (m AuthMethod) String() string {
	return string(m)
}

// ParseAuthMethod maps a wire value to an AuthMethod, falling back to unknown
func ParseAuthMethod(s string) AuthMethod {
	switch AuthMethod(s) {
	case AuthMethodOAuth2, AuthMethodPlain, AuthMethodNone:
		return AuthMethod(s)
	default:
		return AuthMethodUnknown
	}
}
