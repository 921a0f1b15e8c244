package auth

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/youtube/v3"

	"github.com/ytget/yt-liked-searcher/internal/apperrors"
)

// Defaults
const (
	DefaultClientSecretFileName = "client_secret.json"
	DefaultConsentTimeout       = 5 * time.Minute
	loopbackAddress             = "127.0.0.1:0"
)

// Scopes requested from the user
var Scopes = []string{youtube.YoutubeReadonlyScope}

// URLOpener opens the consent page for the user
type URLOpener func(url string) error

// LoadClientConfig reads a Google OAuth client secret file
func LoadClientConfig(path string) (*oauth2.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperrors.NewAuthenticationError(
				fmt.Sprintf("client secret file %s not found; download OAuth desktop credentials from the Google Cloud Console and save them there", path), err)
		}
		return nil, apperrors.NewAuthenticationError("cannot read client secret file "+path, err)
	}
	cfg, err := google.ConfigFromJSON(data, Scopes...)
	if err != nil {
		return nil, apperrors.NewAuthenticationError("invalid client secret file "+path, err)
	}
	return cfg, nil
}

// Flow resolves credentials from the token store or the browser consent flow
type Flow struct {
	config  *oauth2.Config
	tokens  *TokenStore
	open    URLOpener
	timeout time.Duration
	logger  *zap.Logger
}

// NewFlow creates a flow; open is called with the consent URL when the user
// has to sign in
func NewFlow(config *oauth2.Config, tokens *TokenStore, open URLOpener, logger *zap.Logger) *Flow {
	return &Flow{
		config:  config,
		tokens:  tokens,
		open:    open,
		timeout: DefaultConsentTimeout,
		logger:  logger,
	}
}

// HTTPClient returns a client that authorizes requests and keeps the saved
// token current
func (f *Flow) HTTPClient(ctx context.Context) (*http.Client, error) {
	tok, err := f.Token(ctx)
	if err != nil {
		return nil, err
	}
	ts := newSavingTokenSource(f.config.TokenSource(ctx, tok), f.tokens, tok, f.logger)
	return oauth2.NewClient(ctx, oauth2.ReuseTokenSource(tok, ts)), nil
}

// Token returns the saved token when it is usable, otherwise runs the consent flow
func (f *Flow) Token(ctx context.Context) (*oauth2.Token, error) {
	tok, err := f.tokens.Load()
	switch {
	case err == nil && (tok.Valid() || tok.RefreshToken != ""):
		f.logger.Debug("using saved token", zap.String("path", f.tokens.Path()), zap.Bool("expired", !tok.Valid()))
		return tok, nil
	case err == nil:
		f.logger.Info("saved token expired without refresh token, signing in again")
	case errors.Is(err, os.ErrNotExist):
		f.logger.Info("no saved token, signing in")
	default:
		f.logger.Warn("ignoring unreadable token file", zap.Error(err))
	}

	tok, err = f.authorize(ctx)
	if err != nil {
		return nil, err
	}
	if err := f.tokens.Save(tok); err != nil {
		f.logger.Warn("failed to save token", zap.String("path", f.tokens.Path()), zap.Error(err))
	}
	return tok, nil
}

// callbackResult is what the loopback redirect delivered
type callbackResult struct {
	code string
	err  error
}

// authorize runs the consent flow with a one-shot loopback redirect server
func (f *Flow) authorize(ctx context.Context) (*oauth2.Token, error) {
	ln, err := net.Listen("tcp", loopbackAddress)
	if err != nil {
		return nil, apperrors.NewAuthenticationError("cannot start local sign-in listener", err)
	}

	cfg := *f.config
	cfg.RedirectURL = fmt.Sprintf("http://%s/", ln.Addr().String())
	state := uuid.NewString()

	results := make(chan callbackResult, 1)
	srv := &http.Server{
		Handler:           callbackHandler(state, results),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			f.logger.Warn("sign-in listener stopped", zap.Error(err))
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	authURL := cfg.AuthCodeURL(state, oauth2.AccessTypeOffline)
	f.logger.Info("opening browser for sign-in", zap.String("redirect", cfg.RedirectURL))
	if err := f.open(authURL); err != nil {
		f.logger.Warn("failed to open browser, visit the URL manually", zap.String("url", authURL), zap.Error(err))
	}

	waitCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	var res callbackResult
	select {
	case res = <-results:
	case <-waitCtx.Done():
		return nil, apperrors.NewAuthenticationError("sign-in was not completed", waitCtx.Err())
	}
	if res.err != nil {
		return nil, apperrors.NewAuthenticationError("sign-in was rejected", res.err)
	}

	tok, err := cfg.Exchange(ctx, res.code)
	if err != nil {
		return nil, apperrors.NewAuthenticationError("cannot exchange authorization code", err)
	}
	f.logger.Info("signed in")
	return tok, nil
}

// callbackHandler accepts the first redirect carrying the expected state
func callbackHandler(state string, results chan<- callbackResult) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("state") != state {
			http.Error(w, "state mismatch", http.StatusBadRequest)
			return
		}

		res := callbackResult{code: q.Get("code")}
		switch {
		case q.Get("error") != "":
			res.err = errors.New(q.Get("error"))
		case res.code == "":
			res.err = errors.New("missing authorization code")
		}

		select {
		case results <- res:
		default:
			http.Error(w, "sign-in already completed", http.StatusConflict)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if res.err != nil {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprintf(w, "<p>Sign-in failed: %s</p>", html.EscapeString(res.err.Error()))
			return
		}
		fmt.Fprint(w, "<p>Sign-in complete. You can close this window and return to the application.</p>")
	})
}
