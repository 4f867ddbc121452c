package securitize

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"tokenboard/core"

	"github.com/go-resty/resty/v2"
)

func (s *service) Configuration(ctx context.Context) (json.RawMessage, error) {
	var data json.RawMessage
	if err := s.call(ctx, resty.MethodGet, "/config/v1/"+url.PathEscape(s.cfg.IssuerID), nil, &data); err != nil {
		return nil, fmt.Errorf("securitize: configuration: %w", err)
	}

	return data, nil
}

func (s *service) Investor(ctx context.Context, investorID string, kind core.InvestorInfoKind) (json.RawMessage, error) {
	path := "/investors/" + url.PathEscape(investorID)
	switch kind {
	case core.InvestorInfo, "":
	case core.InvestorDetails,
		core.InvestorVerification,
		core.InvestorDocuments,
		core.InvestorLegalSigners,
		core.InvestorVerificationDetails,
		core.InvestorWallets:
		path += "/" + string(kind)
	default:
		return nil, fmt.Errorf("%w: investor info type %q", core.ErrInvalidFilter, kind)
	}

	var data json.RawMessage
	if err := s.call(ctx, resty.MethodGet, path, nil, &data); err != nil {
		return nil, fmt.Errorf("securitize: investor %s %s: %w", investorID, kind, err)
	}

	return data, nil
}

func (s *service) WhitelistingStatus(ctx context.Context, investorID, tokenContract string) (json.RawMessage, error) {
	var data json.RawMessage
	if err := s.call(ctx, resty.MethodGet, "/investors/"+url.PathEscape(investorID)+"/whitelisting", func(r *resty.Request) {
		if tokenContract != "" {
			r.SetQueryParam("tokenContract", tokenContract)
		}
	}, &data); err != nil {
		return nil, fmt.Errorf("securitize: whitelisting status of %s: %w", investorID, err)
	}

	return data, nil
}

func (s *service) RequestWhitelisting(ctx context.Context, investorID string, req core.WhitelistingRequest) (json.RawMessage, error) {
	var data json.RawMessage
	if err := s.call(ctx, resty.MethodPost, "/investors/"+url.PathEscape(investorID)+"/whitelisting", func(r *resty.Request) {
		r.SetBody(req)
	}, &data); err != nil {
		return nil, fmt.Errorf("securitize: request whitelisting for %s: %w", investorID, err)
	}

	return data, nil
}
