// Package popup implements the login popup for a terminal-resident client:
// the system browser plays the popup window, and a loopback HTTP listener
// receives the server-driven redirect that concludes the handshake.
package popup

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"os/exec"
	"runtime"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/invoicehq/invoicer-client/internal/application/service"
	"github.com/invoicehq/invoicer-client/internal/logger"
)

// Opener opens browser-backed login popups
type Opener struct {
	// origin stamps messages whose redirect carries no referrer; it is the
	// application origin the auth service expects.
	origin      string
	openBrowser func(url string) error
	log         zerolog.Logger
}

// NewOpener creates a popup opener for the given application origin
func NewOpener(origin string) *Opener {
	return &Opener{
		origin:      origin,
		openBrowser: openBrowser,
		log:         logger.WithComponent("popup"),
	}
}

// Open starts the loopback listener and sends the user's browser to the
// authorization URL. Failing to open the browser is the popup-blocked case:
// the error is returned before any signal is armed.
func (o *Opener) Open(ctx context.Context, authURL string) (service.PopupWindow, error) {
	listener, err := net.Listen("tcp4", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("failed to start login listener: %w", err)
	}

	w := &window{
		messages: make(chan service.PopupMessage, 4),
		origin:   o.origin,
		log:      o.log,
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.GET("/auth/complete", w.handleComplete)
	w.server = &http.Server{Handler: engine}

	go func() {
		if err := w.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			o.log.Warn().Err(err).Msg("login listener stopped")
		}
	}()

	redirect := fmt.Sprintf("http://%s/auth/complete", listener.Addr().String())
	target := authURL
	if u, err := url.Parse(authURL); err == nil {
		q := u.Query()
		q.Set("redirect_uri", redirect)
		u.RawQuery = q.Encode()
		target = u.String()
	}

	if err := o.openBrowser(target); err != nil {
		w.Close()
		return nil, fmt.Errorf("failed to open browser: %w", err)
	}

	o.log.Info().Str("url", target).Msg("opened login popup")
	return w, nil
}

// window is one open login popup
type window struct {
	server   *http.Server
	messages chan service.PopupMessage
	origin   string
	log      zerolog.Logger

	mu     sync.Mutex
	closed bool
}

func (w *window) Messages() <-chan service.PopupMessage {
	return w.messages
}

func (w *window) Closed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

func (w *window) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	w.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := w.server.Shutdown(ctx); err != nil {
		w.log.Debug().Err(err).Msg("login listener shutdown")
	}
}

// handleComplete receives the redirect that ends the server-driven flow and
// turns it into a handshake message
func (w *window) handleComplete(c *gin.Context) {
	origin := w.origin
	if ref := c.Request.Referer(); ref != "" {
		if u, err := url.Parse(ref); err == nil && u.Scheme != "" && u.Host != "" {
			origin = u.Scheme + "://" + u.Host
		}
	}

	msgType := service.MessageAuthSuccess
	if c.Query("status") == "error" {
		msgType = "AUTH_ERROR"
	}

	select {
	case w.messages <- service.PopupMessage{Type: msgType, Origin: origin}:
	default:
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, completePage)
}

const completePage = `<!doctype html>
<html><body>
<p>Sign-in complete. You can close this window and return to the terminal.</p>
</body></html>`

// openBrowser asks the OS to open the URL in the default browser
func openBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}
