package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"tokenboard/handler"
	"tokenboard/handler/hc"
	"tokenboard/worker/tokenrefresher"

	"github.com/drone/signal"
	"github.com/fox-one/pkg/logger"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "run tokenboard api server",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		securitizeSrv := provideSecuritizeService()
		aggregatorSrv := provideAggregatorService(provideAdapters(securitizeSrv))

		mux := chi.NewMux()
		mux.Use(middleware.Recoverer)
		mux.Use(middleware.StripSlashes)
		mux.Use(cors.AllowAll().Handler)
		mux.Use(logger.WithRequestID)
		mux.Use(middleware.Logger)
		mux.Use(middleware.NewCompressor(5).Handler)

		{
			//hc
			mux.Mount("/hc", hc.Handle(rootCmd.Version, aggregatorSrv))
		}

		{
			//restful api
			svr := handler.New(aggregatorSrv, securitizeSrv)
			mux.Mount("/api", svr.HandleRestAPI())
		}

		if securitizeSrv != nil {
			refresher, err := tokenrefresher.New(cfg.Securitize.RefreshSchedule, securitizeSrv)
			if err != nil {
				logrus.WithError(err).Fatal("invalid securitize refresh schedule")
			}

			_ = refresher.Start()
			defer refresher.Stop()
		}

		logrus.Infof("serving platforms %v", aggregatorSrv.SupportedPlatforms())

		port, _ := cmd.Flags().GetInt("port")
		addr := fmt.Sprintf(":%d", port)

		server := &http.Server{
			Addr:    addr,
			Handler: mux,
		}

		ctx, quit := context.WithCancel(ctx)
		done := make(chan struct{}, 1)
		signal.WithContextFunc(ctx, func() {
			quit()

			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()

			if err := server.Shutdown(ctx); err != nil {
				logrus.WithError(err).Error("graceful shutdown server failed")
			}

			close(done)
		})

		logrus.Infoln("serve at", addr)
		err := server.ListenAndServe()
		if err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("server aborted")
		}

		<-done
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
	serverCmd.Flags().IntP("port", "p", 9000, "server port")
}
