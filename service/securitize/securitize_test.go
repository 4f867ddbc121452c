package securitize

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"tokenboard/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const securitiesFixture = `[
  {
    "id": "sec-1",
    "name": "Manhattan Office Building",
    "symbol": "MOB",
    "description": "Prime office space",
    "assetType": "real_estate",
    "contractAddress": "0x52908400098527886E0F7030069857D2E4169EE7",
    "blockchain": "ethereum",
    "totalSupply": 1000,
    "currentPrice": "1500.5",
    "marketCap": 1500500,
    "volume24h": 2000,
    "yield": 8.5,
    "issuer": "Midtown Realty",
    "complianceStatus": "not_required",
    "minInvestment": 50000,
    "imageUrl": "https://cdn.securitize.io/mob.png",
    "createdAt": "2024-01-15T10:00:00Z",
    "jurisdiction": "US",
    "regulatoryStatus": "Reg D"
  },
  {
    "id": 42,
    "name": "Treasury Fund",
    "symbol": "TF",
    "assetType": "fixed_income",
    "tokenStandard": "ERC-1400",
    "blockchain": "polygon",
    "totalSupply": 10,
    "currentPrice": 100,
    "complianceStatus": "approved",
    "minInvestment": 100,
    "createdAt": "2024-02-01T00:00:00Z",
    "updatedAt": "2024-03-01T00:00:00Z"
  },
  {
    "id": "sec-bad",
    "name": "Bad Address",
    "contractAddress": "not-an-address",
    "blockchain": "ethereum",
    "createdAt": "2024-01-15T10:00:00Z"
  },
  {
    "id": "",
    "name": "No Id",
    "createdAt": "2024-01-15T10:00:00Z"
  }
]`

type upstream struct {
	*httptest.Server

	mu      sync.Mutex
	token   string
	refresh int32
	headers http.Header
	queries url.Values
	bodies  []map[string]interface{}
}

func newUpstream(t *testing.T, securities string) *upstream {
	u := &upstream{token: "valid"}

	mux := http.NewServeMux()
	authed := func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			u.mu.Lock()
			u.headers = r.Header.Clone()
			u.queries = r.URL.Query()
			token := u.token
			u.mu.Unlock()

			if token != "" && r.Header.Get("Authorization") != "Bearer "+token {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			next(w, r)
		}
	}

	mux.HandleFunc("/securities", authed(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(securities))
	}))
	mux.HandleFunc("/securities/sec-1", authed(func(w http.ResponseWriter, r *http.Request) {
		var list []json.RawMessage
		require.Nil(t, json.Unmarshal([]byte(securitiesFixture), &list))
		w.Write(list[0])
	}))
	mux.HandleFunc("/securities/sec-1/market-data", authed(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"price":1500.5}`))
	}))
	mux.HandleFunc("/securities/sec-1/trading-history", authed(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"price":1500}]`))
	}))
	mux.HandleFunc("/investors/inv-1/wallets", authed(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"address":"0x1"}]`))
	}))
	mux.HandleFunc("/investors/inv-1/whitelisting", authed(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			var body map[string]interface{}
			require.Nil(t, json.NewDecoder(r.Body).Decode(&body))
			u.mu.Lock()
			u.bodies = append(u.bodies, body)
			u.mu.Unlock()
			w.Write([]byte(`{"status":"requested"}`))
			return
		}
		w.Write([]byte(`{"status":"whitelisted"}`))
	}))
	mux.HandleFunc("/config/v1/issuer-1", authed(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"appName":"tokenboard"}`))
	}))
	mux.HandleFunc("/auth/v1/authorize", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"accessToken":"valid","refreshToken":"refresh-1","expiresIn":3600}`))
	})
	mux.HandleFunc("/auth/v1/refresh", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&u.refresh, 1)
		time.Sleep(20 * time.Millisecond)
		u.mu.Lock()
		u.token = "rotated"
		u.mu.Unlock()
		w.Write([]byte(`{"accessToken":"rotated"}`))
	})

	u.Server = httptest.NewServer(mux)
	t.Cleanup(u.Close)
	return u
}

func newService(u *upstream) *service {
	cfg := core.Securitize{
		IssuerID:    "issuer-1",
		RedirectURL: "https://tokenboard.example/callback",
		BaseURL:     "https://id.sandbox.securitize.io",
		APIBaseURL:  u.URL,
	}

	app := core.App{RequestTimeout: time.Second, RetryWait: time.Millisecond}
	return New(cfg, app).(*service)
}

func authorized(t *testing.T, s *service) {
	_, err := s.Authorize(context.Background(), "code-1")
	require.Nil(t, err)
}

func TestListAssets(t *testing.T) {
	u := newUpstream(t, securitiesFixture)
	s := newService(u)
	authorized(t, s)

	result := s.ListAssets(context.Background())
	require.True(t, result.OK(), "%v", result.Err)
	require.Len(t, result.Value, 2)

	for _, asset := range result.Value {
		assert.Nil(t, core.ValidateAsset(asset))
		assert.Equal(t, core.PlatformSecuritize, asset.Platform)
	}

	mob := result.Value[0]
	assert.Equal(t, "sec-1", mob.ID)
	assert.Equal(t, core.AssetTypeRealEstate, mob.AssetType)
	assert.Equal(t, core.TokenStandardDSProtocol, mob.TokenStandard)
	assert.Equal(t, core.ComplianceNotRequired, mob.ComplianceStatus)
	assert.Equal(t, 1500.5, mob.CurrentPrice)
	assert.Equal(t, mob.CreatedAt, mob.UpdatedAt)
	require.NotNil(t, mob.Yield)
	assert.Equal(t, 8.5, *mob.Yield)
	require.NotNil(t, mob.RegulatoryStatus)
	assert.Equal(t, "Reg D", *mob.RegulatoryStatus)
	assert.True(t, mob.KYCRequired)

	fund := result.Value[1]
	assert.Equal(t, "42", fund.ID)
	assert.Equal(t, core.AssetTypeOther, fund.AssetType)
	assert.Equal(t, core.TokenStandardERC1400, fund.TokenStandard)
	assert.Equal(t, core.CompliancePending, fund.ComplianceStatus)
	assert.Equal(t, 1000.0, fund.MarketCap)
	assert.Nil(t, fund.Yield)

	u.mu.Lock()
	assert.Equal(t, "issuer-1", u.headers.Get("clientid"))
	u.mu.Unlock()
}

func TestListAssetsWrappedPayload(t *testing.T) {
	u := newUpstream(t, `{"securities":`+securitiesFixture+`}`)
	s := newService(u)
	authorized(t, s)

	result := s.ListAssets(context.Background())
	require.True(t, result.OK())
	assert.Len(t, result.Value, 2)
}

func TestListAssetsMalformed(t *testing.T) {
	for _, body := range []string{`{"data":[]}`, `{"securities":`, `"nope"`} {
		u := newUpstream(t, body)
		s := newService(u)
		authorized(t, s)

		result := s.ListAssets(context.Background())
		assert.False(t, result.OK(), body)
		assert.ErrorIs(t, result.Err, core.ErrMalformedResponse, body)
	}
}

func TestListAssetsUpstreamDown(t *testing.T) {
	u := newUpstream(t, securitiesFixture)
	s := newService(u)
	u.Close()

	result := s.ListAssets(context.Background())
	assert.ErrorIs(t, result.Err, core.ErrUpstreamUnavailable)
}

func TestGetAsset(t *testing.T) {
	u := newUpstream(t, securitiesFixture)
	s := newService(u)
	authorized(t, s)

	result := s.GetAsset(context.Background(), "sec-1")
	require.True(t, result.OK())
	require.NotNil(t, result.Value)
	assert.Equal(t, "Manhattan Office Building", result.Value.Name)

	result = s.GetAsset(context.Background(), "unknown")
	require.True(t, result.OK())
	assert.Nil(t, result.Value)
}

func TestRefreshOnUnauthorized(t *testing.T) {
	u := newUpstream(t, securitiesFixture)
	s := newService(u)
	authorized(t, s)

	u.mu.Lock()
	u.token = "rotated"
	u.mu.Unlock()

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result := s.ListAssets(context.Background())
			assert.True(t, result.OK(), "%v", result.Err)
		}()
	}
	wg.Wait()

	assert.LessOrEqual(t, atomic.LoadInt32(&u.refresh), int32(2))
	token, ok := s.accessToken()
	assert.True(t, ok)
	assert.Equal(t, "rotated", token)
	refresh, _ := s.refreshToken()
	assert.Equal(t, "refresh-1", refresh)
}

func TestRefreshOutlivesCancelledCaller(t *testing.T) {
	u := newUpstream(t, securitiesFixture)
	s := newService(u)
	authorized(t, s)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var wg sync.WaitGroup
	for _, c := range []context.Context{ctx, context.Background()} {
		wg.Add(1)
		go func(c context.Context) {
			defer wg.Done()
			token, err := s.Refresh(c)
			if assert.Nil(t, err) {
				assert.Equal(t, "rotated", token.AccessToken)
			}
		}(c)
	}
	wg.Wait()

	token, ok := s.accessToken()
	assert.True(t, ok)
	assert.Equal(t, "rotated", token)
}

func TestListAssetsDefaultsTimestamps(t *testing.T) {
	u := newUpstream(t, `[
  {"id": "sec-1", "name": "Undated Fund", "currentPrice": 10, "totalSupply": 5},
  {"id": "sec-2", "name": "Updated Only", "updatedAt": "2024-03-01T00:00:00Z"}
]`)
	s := newService(u)
	authorized(t, s)

	result := s.ListAssets(context.Background())
	require.True(t, result.OK(), "%v", result.Err)
	require.Len(t, result.Value, 2)

	undated := result.Value[0]
	assert.Nil(t, core.ValidateAsset(undated))
	assert.NotEmpty(t, undated.CreatedAt)
	assert.Equal(t, undated.CreatedAt, undated.UpdatedAt)

	assert.Equal(t, "2024-03-01T00:00:00Z", result.Value[1].CreatedAt)
}

func TestUnauthorizedWithoutRefreshToken(t *testing.T) {
	u := newUpstream(t, securitiesFixture)
	s := newService(u)

	result := s.ListAssets(context.Background())
	assert.ErrorIs(t, result.Err, core.ErrUpstreamUnavailable)
	assert.EqualValues(t, 0, atomic.LoadInt32(&u.refresh))

	_, err := s.Refresh(context.Background())
	assert.ErrorIs(t, err, ErrNoRefreshToken)
}

func TestAuthorizationURL(t *testing.T) {
	s := newService(newUpstream(t, securitiesFixture))

	link, state := s.AuthorizationURL("", "")
	assert.NotEmpty(t, state)

	parsed, err := url.Parse(link)
	require.Nil(t, err)
	assert.Equal(t, "id.sandbox.securitize.io", parsed.Host)
	assert.Equal(t, "/auth", parsed.Path)
	assert.Equal(t, "issuer-1", parsed.Query().Get("issuerId"))
	assert.Equal(t, "info", parsed.Query().Get("scope"))
	assert.Equal(t, "https://tokenboard.example/callback", parsed.Query().Get("redirectUrl"))
	assert.Equal(t, state, parsed.Query().Get("state"))

	_, state = s.AuthorizationURL("details", "fixed")
	assert.Equal(t, "fixed", state)
}

func TestPassThrough(t *testing.T) {
	u := newUpstream(t, securitiesFixture)
	s := newService(u)
	authorized(t, s)
	ctx := context.Background()

	data, err := s.GetMarketData(ctx, "sec-1")
	require.Nil(t, err)
	assert.JSONEq(t, `{"price":1500.5}`, string(data))

	data, err = s.GetTradingHistory(ctx, "sec-1", core.HistoryParams{StartDate: "2024-01-01", Limit: 10})
	require.Nil(t, err)
	assert.JSONEq(t, `[{"price":1500}]`, string(data))
	u.mu.Lock()
	assert.Equal(t, "2024-01-01", u.queries.Get("startDate"))
	assert.Equal(t, "10", u.queries.Get("limit"))
	assert.False(t, u.queries.Has("endDate"))
	u.mu.Unlock()

	_, err = s.GetMarketData(ctx, "missing")
	assert.ErrorIs(t, err, core.ErrUpstreamUnavailable)

	data, err = s.Configuration(ctx)
	require.Nil(t, err)
	assert.JSONEq(t, `{"appName":"tokenboard"}`, string(data))

	data, err = s.Investor(ctx, "inv-1", core.InvestorWallets)
	require.Nil(t, err)
	assert.JSONEq(t, `[{"address":"0x1"}]`, string(data))

	_, err = s.Investor(ctx, "inv-1", "passport")
	assert.ErrorIs(t, err, core.ErrInvalidFilter)

	data, err = s.WhitelistingStatus(ctx, "inv-1", "0xabc")
	require.Nil(t, err)
	assert.JSONEq(t, `{"status":"whitelisted"}`, string(data))
	u.mu.Lock()
	assert.Equal(t, "0xabc", u.queries.Get("tokenContract"))
	u.mu.Unlock()

	data, err = s.RequestWhitelisting(ctx, "inv-1", core.WhitelistingRequest{
		TokenContract: "0xabc",
		Blockchain:    "ethereum",
		WalletAddress: "0xdef",
	})
	require.Nil(t, err)
	assert.JSONEq(t, `{"status":"requested"}`, string(data))
	u.mu.Lock()
	require.Len(t, u.bodies, 1)
	assert.Equal(t, "0xdef", u.bodies[0]["walletAddress"])
	u.mu.Unlock()
}
