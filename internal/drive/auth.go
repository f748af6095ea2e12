package drive

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"
)

var requiredScopes = []string{
	"https://www.googleapis.com/auth/drive.file",
}

// oauth2Config returns the oauth2.Config for the Google Drive device code flow
func oauth2Config(clientID, clientSecret string) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		Scopes:       requiredScopes,
		Endpoint: oauth2.Endpoint{
			DeviceAuthURL: "https://oauth2.googleapis.com/device/code",
			TokenURL:      "https://oauth2.googleapis.com/token",
			AuthStyle:     oauth2.AuthStyleInParams,
		},
	}
}

// loadToken loads a previously saved token from disk. A missing file is not
// an error; it just means the user has to authenticate.
func loadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading token file: %w", err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("corrupt token file (delete %s to re-authenticate): %w", path, err)
	}
	return &tok, nil
}

// saveToken persists a token to disk
func saveToken(path string, tok *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating auth directory: %w", err)
	}
	data, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling token: %w", err)
	}
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("writing token file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("renaming token file: %w", err)
	}
	return nil
}

// authenticate runs the OAuth2 device code flow, prompting the user on stderr
// to visit the verification URL, and persists the granted token.
func authenticate(ctx context.Context, cfg *oauth2.Config, tokenPath string) (*oauth2.Token, error) {
	da, err := cfg.DeviceAuth(ctx)
	if err != nil {
		return nil, fmt.Errorf("device authorization request failed: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Visit %s and enter the code: %s\n", da.VerificationURI, da.UserCode)

	tok, err := cfg.DeviceAccessToken(ctx, da)
	if err != nil {
		return nil, fmt.Errorf("device token exchange failed: %w", err)
	}

	if err := saveToken(tokenPath, tok); err != nil {
		return nil, err
	}

	return tok, nil
}

// tokenSource returns an auto-refreshing token source, running the device
// flow when no usable stored token exists. Refreshed tokens are written back
// to disk so subsequent invocations skip the flow.
func tokenSource(ctx context.Context, cfg *oauth2.Config, tokenPath string) (oauth2.TokenSource, error) {
	tok, err := loadToken(tokenPath)
	if err != nil {
		return nil, err
	}

	if tok == nil {
		tok, err = authenticate(ctx, cfg, tokenPath)
		if err != nil {
			return nil, err
		}
	}

	return &persistingTokenSource{
		src:  cfg.TokenSource(ctx, tok),
		path: tokenPath,
		last: tok.AccessToken,
	}, nil
}

// persistingTokenSource writes refreshed tokens back to the token file
type persistingTokenSource struct {
	src  oauth2.TokenSource
	path string
	last string
}

func (p *persistingTokenSource) Token() (*oauth2.Token, error) {
	tok, err := p.src.Token()
	if err != nil {
		return nil, err
	}
	if tok.AccessToken != p.last {
		p.last = tok.AccessToken
		if err := saveToken(p.path, tok); err != nil {
			return nil, err
		}
	}
	return tok, nil
}
