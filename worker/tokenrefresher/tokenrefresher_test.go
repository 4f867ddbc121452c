package tokenrefresher

import (
	"context"
	"fmt"
	"testing"

	"tokenboard/core"
	"tokenboard/service/securitize"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockSecuritize struct {
	core.ISecuritizeService
	mock.Mock
}

func (m *mockSecuritize) Refresh(ctx context.Context) (*core.SecuritizeToken, error) {
	args := m.Called(ctx)
	token, _ := args.Get(0).(*core.SecuritizeToken)
	return token, args.Error(1)
}

func TestOnWork(t *testing.T) {
	sec := &mockSecuritize{}
	sec.On("Refresh", mock.Anything).Return(nil, securitize.ErrNoRefreshToken).Once()
	sec.On("Refresh", mock.Anything).Return(nil, fmt.Errorf("securitize: refresh: %w", core.ErrUpstreamUnavailable)).Once()
	sec.On("Refresh", mock.Anything).Return(&core.SecuritizeToken{AccessToken: "at", ExpiresIn: 3600}, nil).Once()

	w, err := New("@every 1h", sec)
	require.Nil(t, err)

	ctx := context.Background()
	assert.Nil(t, w.onWork(ctx))
	assert.ErrorIs(t, w.onWork(ctx), core.ErrUpstreamUnavailable)
	assert.Nil(t, w.onWork(ctx))

	sec.AssertNumberOfCalls(t, "Refresh", 3)
}

func TestInvalidSchedule(t *testing.T) {
	_, err := New("every now and then", &mockSecuritize{})
	assert.NotNil(t, err)
}
