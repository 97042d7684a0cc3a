// Package authflow implements the login state machine: redirect-based
// sign-in against the external identity provider, the one-shot authorization
// code exchange, restoration of an existing session from a stored token, and
// the account sign-up sub-path.
package authflow

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/owl-lion/access-hub/internal/domain/session"
	"github.com/owl-lion/access-hub/internal/domain/shared"
	"github.com/owl-lion/access-hub/internal/infrastructure/external/platform"
	"github.com/owl-lion/access-hub/pkg/logger"
)

// State identifies where the auth machine currently is.
type State int

const (
	// StateUnauthenticated shows the sign-in / sign-up choice.
	StateUnauthenticated State = iota
	// StateCodeReceived holds an unconsumed authorization code.
	StateCodeReceived
	// StateVerifying is exchanging a code or checking a stored token.
	StateVerifying
	// StateAuthenticated holds an established session.
	StateAuthenticated
	// StateFailed is the dead-end after a failed exchange. No automatic
	// retry and no automatic redirect; a fresh machine restarts the cycle.
	StateFailed
)

// String returns the state name for logging.
func (s State) String() string {
	switch s {
	case StateUnauthenticated:
		return "unauthenticated"
	case StateCodeReceived:
		return "code-received"
	case StateVerifying:
		return "verifying"
	case StateAuthenticated:
		return "authenticated"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// BackendAuth is the slice of the platform client the controller needs.
type BackendAuth interface {
	Login(ctx context.Context, code, redirectURI string) (*platform.LoginResult, error)
	Me(ctx context.Context) (userID string, role session.Role, err error)
}

// ProviderConfig describes the external identity provider.
type ProviderConfig struct {
	// AuthorizeEndpoint is the provider's authorization URL.
	AuthorizeEndpoint string

	// ClientID identifies this application to the provider.
	ClientID string

	// Scope is the requested scope string.
	Scope string
}

// ControllerConfig contains the controller's collaborators.
type ControllerConfig struct {
	// Backend performs the code exchange and session verification.
	Backend BackendAuth

	// Session is the client session mutated on success.
	Session *session.Session

	// Provider describes the identity provider redirect.
	Provider ProviderConfig

	// Origin is the current page origin used as redirect_uri.
	Origin string

	// Logger for structured logging.
	Logger *slog.Logger
}

// Controller is the auth flow state machine. It is the single writer of the
// token store (besides logout) and of the session role.
type Controller struct {
	config ControllerConfig
	logger *slog.Logger

	state    State
	code     string
	consumed bool
}

// NewController creates a controller and derives its initial state from the
// callback URL and the token store: an authorization code in the URL starts
// the machine in CodeReceived, an already-stored token starts it in
// Verifying, and otherwise it starts Unauthenticated.
func NewController(config ControllerConfig, callbackURL string) *Controller {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	c := &Controller{
		config: config,
		logger: config.Logger,
		state:  StateUnauthenticated,
	}

	if code := extractCode(callbackURL); code != "" {
		c.code = code
		c.state = StateCodeReceived
	} else if _, ok := config.Session.Tokens().Get(); ok {
		c.state = StateVerifying
	}

	return c
}

// State returns the current machine state.
func (c *Controller) State() State { return c.state }

// extractCode pulls the authorization code query parameter out of the
// callback URL, if present.
func extractCode(callbackURL string) string {
	if callbackURL == "" {
		return ""
	}
	u, err := url.Parse(callbackURL)
	if err != nil {
		return ""
	}
	return u.Query().Get("code")
}

// SignInURL builds the identity-provider authorize URL with the current
// origin as the callback target. Navigating there is terminal for this
// process; the provider redirects back with a code parameter.
func (c *Controller) SignInURL() string {
	params := url.Values{}
	params.Set("client_id", c.config.Provider.ClientID)
	params.Set("response_type", "code")
	params.Set("scope", c.config.Provider.Scope)
	params.Set("redirect_uri", c.config.Origin)
	return c.config.Provider.AuthorizeEndpoint + "?" + params.Encode()
}

// Exchange consumes the authorization code: exactly one POST to the login
// endpoint, after which the code is discarded whether the exchange succeeded
// or not. Success stores the token, records identity and role on the
// session, and lands in Authenticated; failure lands in the Failed dead-end.
// Calling Exchange again on the same machine reports ErrCodeReused.
func (c *Controller) Exchange(ctx context.Context) error {
	if c.state != StateCodeReceived {
		if c.consumed {
			return shared.ErrCodeReused
		}
		return shared.WrapError("authflow", "Exchange", shared.ErrStateTransition,
			"no unconsumed authorization code", nil)
	}

	// Consume the code before the request goes out: even if the call fails,
	// this machine never issues a second exchange with the same code.
	code := c.code
	c.code = ""
	c.consumed = true
	c.state = StateVerifying

	result, err := c.config.Backend.Login(ctx, code, c.config.Origin)
	if err != nil {
		c.state = StateFailed
		c.logger.Warn("authorization code exchange failed", logger.Err(err))
		return shared.WrapError("authflow", "Exchange", shared.ErrUnauthorized,
			"authorization code exchange failed", err)
	}

	c.config.Session.Tokens().Set(result.AccessToken)
	if err := c.config.Session.SignIn(result.UserID, result.Role); err != nil {
		c.state = StateFailed
		return shared.WrapError("authflow", "Exchange", shared.ErrInvalidInput,
			"backend returned an unusable role", err)
	}

	c.state = StateAuthenticated
	c.logger.Info("signed in", logger.UserID(result.UserID), logger.RoleName(result.Role.String()))
	return nil
}

// Verify restores a session from an already-stored token via the who-am-I
// endpoint. Success lands in Authenticated; any failure clears the token
// store and returns to Unauthenticated so the user can sign in afresh.
func (c *Controller) Verify(ctx context.Context) error {
	if c.state != StateVerifying {
		return shared.WrapError("authflow", "Verify", shared.ErrStateTransition,
			"nothing to verify in state "+c.state.String(), nil)
	}

	userID, role, err := c.config.Backend.Me(ctx)
	if err != nil {
		c.config.Session.Tokens().Clear()
		c.state = StateUnauthenticated
		c.logger.Info("stored token rejected, signed out", logger.Err(err))
		return shared.WrapError("authflow", "Verify", shared.ErrUnauthorized,
			"stored token rejected by backend", err)
	}

	if err := c.config.Session.SignIn(userID, role); err != nil {
		c.config.Session.Tokens().Clear()
		c.state = StateUnauthenticated
		return shared.WrapError("authflow", "Verify", shared.ErrInvalidInput,
			"backend returned an unusable role", err)
	}

	c.state = StateAuthenticated
	return nil
}

// Run drives the machine from its initial state to a terminal one: a held
// code is exchanged, a stored token is verified, and anything else is left
// alone. Convenience for callers that don't care which path was taken.
func (c *Controller) Run(ctx context.Context) error {
	switch c.state {
	case StateCodeReceived:
		return c.Exchange(ctx)
	case StateVerifying:
		return c.Verify(ctx)
	default:
		return nil
	}
}

// Logout clears the token store and the session role. A fresh login cycle
// needs a new machine started from a clean callback URL.
func (c *Controller) Logout() {
	c.config.Session.SignOut()
	c.state = StateUnauthenticated
	c.logger.Info("signed out")
}
