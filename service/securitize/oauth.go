package securitize

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"tokenboard/core"
	"tokenboard/pkg/id"

	"github.com/go-resty/resty/v2"
)

const (
	accessTokenKey  = "access_token"
	refreshTokenKey = "refresh_token"

	defaultScope = "info"

	refreshTimeout = 30 * time.Second
)

// ErrNoRefreshToken refresh requested before any authorization
var ErrNoRefreshToken = errors.New("securitize: no refresh token")

func (s *service) AuthorizationURL(scope, state string) (string, string) {
	if scope == "" {
		scope = defaultScope
	}

	if state == "" {
		state = id.GenUUIDString()
	}

	params := url.Values{}
	params.Set("issuerId", s.cfg.IssuerID)
	params.Set("scope", scope)
	params.Set("redirectUrl", s.cfg.RedirectURL)
	params.Set("state", state)

	return strings.TrimSuffix(s.cfg.BaseURL, "/") + "/auth?" + params.Encode(), state
}

func (s *service) Authorize(ctx context.Context, code string) (*core.SecuritizeToken, error) {
	var token core.SecuritizeToken
	if err := s.do(ctx, resty.MethodPost, "/auth/v1/authorize", func(r *resty.Request) {
		r.SetBody(map[string]string{"code": code})
	}, &token); err != nil {
		return nil, fmt.Errorf("securitize: authorize: %w", err)
	}

	s.storeToken(&token)
	return &token, nil
}

// Refresh exchange the held refresh token, concurrent callers share one exchange.
// The exchange outlives the caller that started it, other waiters depend on it.
func (s *service) Refresh(ctx context.Context) (*core.SecuritizeToken, error) {
	v, err, _ := s.sf.Do(refreshTokenKey, func() (interface{}, error) {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), refreshTimeout)
		defer cancel()

		refresh, ok := s.refreshToken()
		if !ok {
			return nil, ErrNoRefreshToken
		}

		var token core.SecuritizeToken
		if err := s.do(ctx, resty.MethodPost, "/auth/v1/refresh", func(r *resty.Request) {
			r.SetBody(map[string]string{"refreshToken": refresh})
		}, &token); err != nil {
			return nil, fmt.Errorf("securitize: refresh: %w", err)
		}

		if token.RefreshToken == "" {
			token.RefreshToken = refresh
		}

		s.storeToken(&token)
		return &token, nil
	})

	if err != nil {
		return nil, err
	}

	return v.(*core.SecuritizeToken), nil
}

func (s *service) storeToken(token *core.SecuritizeToken) {
	if token.AccessToken != "" {
		if token.ExpiresIn > 0 {
			_ = s.tokens.SetWithExpire(accessTokenKey, token.AccessToken, time.Duration(token.ExpiresIn)*time.Second)
		} else {
			_ = s.tokens.Set(accessTokenKey, token.AccessToken)
		}
	}

	if token.RefreshToken != "" {
		_ = s.tokens.Set(refreshTokenKey, token.RefreshToken)
	}
}

func (s *service) accessToken() (string, bool) {
	return s.token(accessTokenKey)
}

func (s *service) refreshToken() (string, bool) {
	return s.token(refreshTokenKey)
}

func (s *service) token(key string) (string, bool) {
	v, err := s.tokens.Get(key)
	if err != nil {
		return "", false
	}

	token, ok := v.(string)
	return token, ok && token != ""
}
