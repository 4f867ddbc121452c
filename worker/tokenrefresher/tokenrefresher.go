package tokenrefresher

import (
	"context"
	"errors"

	"tokenboard/core"
	"tokenboard/service/securitize"
	"tokenboard/worker"

	"github.com/fox-one/pkg/logger"
	"github.com/robfig/cron/v3"
)

// Refresher keep the securitize access token fresh between requests
type Refresher struct {
	worker.BaseJob
	securitize core.ISecuritizeService
}

// New new token refresh worker running on schedule, a cron spec such as "@every 10m"
func New(schedule string, securitizeSrv core.ISecuritizeService) (*Refresher, error) {
	refresher := Refresher{
		securitize: securitizeSrv,
	}

	refresher.Cron = cron.New()
	if _, err := refresher.Cron.AddFunc(schedule, refresher.Run); err != nil {
		return nil, err
	}

	refresher.OnWork = func() error {
		return refresher.onWork(context.Background())
	}

	return &refresher, nil
}

func (w *Refresher) onWork(ctx context.Context) error {
	log := logger.FromContext(ctx).WithField("worker", "tokenrefresher")

	token, err := w.securitize.Refresh(ctx)
	if errors.Is(err, securitize.ErrNoRefreshToken) {
		log.Debugln("not authorized yet, skip")
		return nil
	}

	if err != nil {
		log.WithError(err).Errorln("refresh securitize token")
		return err
	}

	log.Debugf("securitize token refreshed, expires in %ds", token.ExpiresIn)
	return nil
}
