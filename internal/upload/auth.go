// Package upload publishes composited recordings to YouTube.
package upload

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var oauthScopes = []string{
	"https://www.googleapis.com/auth/youtube.upload",
}

const tokenFileName = "youtube-token.json"

// Auth handles the YouTube OAuth2 flow and token persistence.
type Auth struct {
	config    *oauth2.Config
	configDir string
	token     *oauth2.Token
}

// NewAuth creates an authenticator storing its token under configDir.
func NewAuth(clientID, clientSecret, configDir string) *Auth {
	return &Auth{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Scopes:       oauthScopes,
			Endpoint:     google.Endpoint,
		},
		configDir: configDir,
	}
}

// IsAuthenticated returns true if a usable token is in memory or on disk.
func (a *Auth) IsAuthenticated() bool {
	if a.token != nil && a.token.Valid() {
		return true
	}
	token, err := a.loadToken()
	if err != nil {
		return false
	}
	a.token = token
	return token.Valid() || token.RefreshToken != ""
}

// Authenticate runs the browser consent flow: a loopback callback
// server receives the authorization code, which is exchanged for a
// token with a PKCE verifier.
func (a *Auth) Authenticate(ctx context.Context) error {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return fmt.Errorf("failed to start callback server: %w", err)
	}
	defer func() { _ = listener.Close() }()

	port := listener.Addr().(*net.TCPAddr).Port
	a.config.RedirectURL = fmt.Sprintf("http://127.0.0.1:%d/callback", port)

	verifier, err := randomToken(32)
	if err != nil {
		return fmt.Errorf("failed to generate code verifier: %w", err)
	}
	sum := sha256.Sum256([]byte(verifier))
	challenge := base64.RawURLEncoding.EncodeToString(sum[:])

	state, err := randomToken(16)
	if err != nil {
		return fmt.Errorf("failed to generate state: %w", err)
	}

	authURL := a.config.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("code_challenge", challenge),
		oauth2.SetAuthURLParam("code_challenge_method", "S256"),
	)

	codeChan := make(chan string, 1)
	errChan := make(chan error, 1)

	server := &http.Server{
		Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/callback" {
				http.NotFound(w, r)
				return
			}
			if r.URL.Query().Get("state") != state {
				errChan <- fmt.Errorf("invalid state parameter")
				http.Error(w, "Invalid state", http.StatusBadRequest)
				return
			}
			if errParam := r.URL.Query().Get("error"); errParam != "" {
				errChan <- fmt.Errorf("authorization error: %s", errParam)
				http.Error(w, errParam, http.StatusBadRequest)
				return
			}
			code := r.URL.Query().Get("code")
			if code == "" {
				errChan <- fmt.Errorf("no authorization code received")
				http.Error(w, "No code", http.StatusBadRequest)
				return
			}
			codeChan <- code
			_, _ = fmt.Fprint(w, "Authorization successful. You can close this window.")
		}),
	}

	go func() {
		if err := server.Serve(listener); err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	if err := openBrowser(authURL); err != nil {
		fmt.Printf("Open this URL to authorize: %s\n", authURL)
	}

	var code string
	select {
	case code = <-codeChan:
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(5 * time.Minute):
		return fmt.Errorf("authorization timeout")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = server.Shutdown(shutdownCtx)

	token, err := a.config.Exchange(ctx, code,
		oauth2.SetAuthURLParam("code_verifier", verifier),
	)
	if err != nil {
		return fmt.Errorf("failed to exchange code for token: %w", err)
	}

	a.token = token
	return a.saveToken(token)
}

// GetClient returns an HTTP client with auto-refreshing credentials.
func (a *Auth) GetClient(ctx context.Context) (*http.Client, error) {
	if a.token == nil {
		token, err := a.loadToken()
		if err != nil {
			return nil, fmt.Errorf("not authenticated: %w", err)
		}
		a.token = token
	}

	tokenSource := a.config.TokenSource(ctx, a.token)

	newToken, err := tokenSource.Token()
	if err != nil {
		return nil, fmt.Errorf("failed to get valid token: %w", err)
	}
	if newToken.AccessToken != a.token.AccessToken {
		a.token = newToken
		if err := a.saveToken(newToken); err != nil {
			fmt.Printf("Warning: failed to save refreshed token: %v\n", err)
		}
	}

	return oauth2.NewClient(ctx, tokenSource), nil
}

// Logout removes stored credentials.
func (a *Auth) Logout() error {
	a.token = nil
	return os.Remove(a.tokenPath())
}

func (a *Auth) tokenPath() string {
	return filepath.Join(a.configDir, tokenFileName)
}

func (a *Auth) loadToken() (*oauth2.Token, error) {
	data, err := os.ReadFile(a.tokenPath())
	if err != nil {
		return nil, err
	}
	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

func (a *Auth) saveToken(token *oauth2.Token) error {
	if err := os.MkdirAll(a.configDir, 0755); err != nil {
		return err
	}
	data, err := json.Marshal(token)
	if err != nil {
		return err
	}
	// Token grants channel access; keep it private.
	return os.WriteFile(a.tokenPath(), data, 0600)
}

func randomToken(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

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
