package core

import (
	"context"
	"encoding/json"
)

// InvestorInfoKind investor sub-resource exposed by securitize connect
type InvestorInfoKind string

const (
	InvestorInfo                InvestorInfoKind = "info"
	InvestorDetails             InvestorInfoKind = "details"
	InvestorVerification        InvestorInfoKind = "verification"
	InvestorDocuments           InvestorInfoKind = "documents"
	InvestorLegalSigners        InvestorInfoKind = "legal-signers"
	InvestorVerificationDetails InvestorInfoKind = "verification-details"
	InvestorWallets             InvestorInfoKind = "wallets"
)

// InvestorInfoKinds all investor info kinds
var InvestorInfoKinds = []InvestorInfoKind{
	InvestorInfo,
	InvestorDetails,
	InvestorVerification,
	InvestorDocuments,
	InvestorLegalSigners,
	InvestorVerificationDetails,
	InvestorWallets,
}

// SecuritizeToken oauth token pair
type SecuritizeToken struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken,omitempty"`
	// seconds, 0 when the upstream does not say
	ExpiresIn int64 `json:"expiresIn,omitempty"`
}

// WhitelistingRequest ask securitize to whitelist a wallet for a token
type WhitelistingRequest struct {
	TokenContract string `json:"tokenContract" valid:"required"`
	Blockchain    string `json:"blockchain" valid:"required"`
	WalletAddress string `json:"walletAddress" valid:"required"`
}

// ISecuritizeService securitize connect adapter plus its investor facing api
type ISecuritizeService interface {
	IPlatformAdapter

	// AuthorizationURL returns the consent url and the state embedded in it,
	// a fresh state is generated when state is empty
	AuthorizationURL(scope, state string) (string, string)
	Authorize(ctx context.Context, code string) (*SecuritizeToken, error)
	Refresh(ctx context.Context) (*SecuritizeToken, error)
	Configuration(ctx context.Context) (json.RawMessage, error)
	Investor(ctx context.Context, investorID string, kind InvestorInfoKind) (json.RawMessage, error)
	WhitelistingStatus(ctx context.Context, investorID, tokenContract string) (json.RawMessage, error)
	RequestWhitelisting(ctx context.Context, investorID string, req WhitelistingRequest) (json.RawMessage, error)
}
