package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/ytget/yt-liked-searcher/internal/cache"
)

// DefaultTokenFileName is the file the OAuth token is persisted to
const DefaultTokenFileName = "token.json"

// TokenStore persists a single OAuth token as JSON
type TokenStore struct {
	path string
}

// NewTokenStore creates a token store backed by path
func NewTokenStore(path string) *TokenStore {
	return &TokenStore{path: path}
}

// Path returns the token file location
func (s *TokenStore) Path() string {
	return s.path
}

// Load reads the saved token. A missing file returns an error wrapping os.ErrNotExist.
func (s *TokenStore) Load() (*oauth2.Token, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse token file %s: %w", s.path, err)
	}
	if tok.AccessToken == "" && tok.RefreshToken == "" {
		return nil, fmt.Errorf("token file %s holds no credentials", s.path)
	}
	return &tok, nil
}

// Save writes tok, replacing any previous token
func (s *TokenStore) Save(tok *oauth2.Token) error {
	if tok == nil {
		return errors.New("nil token")
	}
	data, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}
	return cache.WriteFileAtomic(s.path, data)
}

// Remove deletes the saved token
func (s *TokenStore) Remove() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// savingTokenSource writes every newly issued token back to the store
type savingTokenSource struct {
	base   oauth2.TokenSource
	store  *TokenStore
	logger *zap.Logger

	mu   sync.Mutex
	last string
}

func newSavingTokenSource(base oauth2.TokenSource, store *TokenStore, current *oauth2.Token, logger *zap.Logger) *savingTokenSource {
	ts := &savingTokenSource{base: base, store: store, logger: logger}
	if current != nil {
		ts.last = current.AccessToken
	}
	return ts
}

// Token implements oauth2.TokenSource
func (s *savingTokenSource) Token() (*oauth2.Token, error) {
	tok, err := s.base.Token()
	if err != nil {
		if grantRejected(err) {
			// Forget the grant so the next attempt signs in again.
			if rmErr := s.store.Remove(); rmErr != nil {
				s.logger.Warn("failed to remove rejected token", zap.String("path", s.store.Path()), zap.Error(rmErr))
			}
		}
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if tok.AccessToken != s.last {
		s.last = tok.AccessToken
		if err := s.store.Save(tok); err != nil {
			s.logger.Warn("failed to save refreshed token", zap.String("path", s.store.Path()), zap.Error(err))
		} else {
			s.logger.Debug("refreshed token saved", zap.String("path", s.store.Path()))
		}
	}
	return tok, nil
}

// grantRejected reports whether the token endpoint refused the refresh
// token itself. Server errors and outages leave the grant usable.
func grantRejected(err error) bool {
	var retrieveErr *oauth2.RetrieveError
	if !errors.As(err, &retrieveErr) || retrieveErr.Response == nil {
		return false
	}
	switch retrieveErr.Response.StatusCode {
	case http.StatusBadRequest, http.StatusUnauthorized:
	default:
		return false
	}

	var body struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(retrieveErr.Body, &body) == nil {
		return body.Error == "invalid_grant"
	}
	// some endpoints answer form-encoded
	values, perr := url.ParseQuery(string(retrieveErr.Body))
	return perr == nil && values.Get("error") == "invalid_grant"
}
