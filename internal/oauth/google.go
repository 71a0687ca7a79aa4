package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"diary/internal/config"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const googleUserInfoURL = "https://openidconnect.googleapis.com/v1/userinfo"

type Google struct {
	conf        *oauth2.Config
	configured  bool
	userInfoURL string
}

type GoogleOption func(*Google)

// WithEndpoints points the token exchange and user info lookup elsewhere.
func WithEndpoints(tokenURL, userInfoURL string) GoogleOption {
	return func(g *Google) {
		g.conf.Endpoint.TokenURL = tokenURL
		g.userInfoURL = userInfoURL
	}
}

func NewGoogle(c config.GoogleConfig, opts ...GoogleOption) *Google {
	g := &Google{
		conf: &oauth2.Config{
			ClientID:     c.ClientID,
			ClientSecret: c.ClientSecret,
			RedirectURL:  c.RedirectURI,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		configured:  c.Complete(),
		userInfoURL: googleUserInfoURL,
	}
	for _, o := range opts {
		o(g)
	}
	return g
}

func (g *Google) AuthCodeURL(state string) (string, error) {
	if !g.configured {
		return "", ErrNotConfigured
	}
	return g.conf.AuthCodeURL(state, oauth2.AccessTypeOnline), nil
}

func (g *Google) Exchange(ctx context.Context, code string) (Identity, error) {
	if !g.configured {
		return Identity{}, ErrNotConfigured
	}

	tok, err := g.conf.Exchange(ctx, code)
	if err != nil {
		return Identity{}, tokenError(err)
	}
	if tok.AccessToken == "" {
		return Identity{}, ErrNoAccessToken
	}

	return g.userInfo(ctx, tok)
}

func (g *Google) userInfo(ctx context.Context, tok *oauth2.Token) (Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.userInfoURL, nil)
	if err != nil {
		return Identity{}, &UpstreamError{Op: "google userinfo", Detail: err.Error()}
	}

	resp, err := g.conf.Client(ctx, tok).Do(req)
	if err != nil {
		return Identity{}, &UpstreamError{Op: "google userinfo", Detail: err.Error()}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Identity{}, &UpstreamError{Op: "google userinfo", Detail: err.Error()}
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return Identity{}, ErrNoAccessToken
	case resp.StatusCode != http.StatusOK:
		return Identity{}, &UpstreamError{Op: "google userinfo", Status: resp.StatusCode, Detail: string(body)}
	}

	var info struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.Unmarshal(body, &info); err != nil {
		return Identity{}, &UpstreamError{Op: "google userinfo", Detail: "bad json: " + err.Error()}
	}
	info.Email = strings.TrimSpace(info.Email)
	if info.Email == "" {
		return Identity{}, ErrNoEmail
	}

	return Identity{Email: info.Email, Name: strings.TrimSpace(info.Name)}, nil
}

func tokenError(err error) error {
	var re *oauth2.RetrieveError
	if errors.As(err, &re) {
		if re.ErrorCode == "invalid_grant" {
			return ErrInvalidGrant
		}
		status := 0
		if re.Response != nil {
			status = re.Response.StatusCode
		}
		detail := re.ErrorDescription
		if detail == "" {
			detail = string(re.Body)
		}
		return &UpstreamError{Op: "google token", Status: status, Detail: detail}
	}
	// x/oauth2 rejects a successful response without access_token as a plain error
	if strings.Contains(err.Error(), "missing access_token") {
		return ErrNoAccessToken
	}
	return &UpstreamError{Op: "google token", Detail: err.Error()}
}
