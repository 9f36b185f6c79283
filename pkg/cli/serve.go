package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/bussola-app/bussola/pkg/cli/config"
	httpctrl "github.com/bussola-app/bussola/pkg/controller/http"
	"github.com/bussola-app/bussola/pkg/service/copywriter"
	"github.com/bussola-app/bussola/pkg/usecase"
	"github.com/bussola-app/bussola/pkg/utils/logging"
	"github.com/bussola-app/bussola/pkg/utils/safe"
)

func cmdServe(version string) *cli.Command {
	var addr string
	var autoCaption bool
	var maxUploadSize int64
	var catalogCfg config.Catalog
	var locationCfg config.Location
	var repoCfg config.Repository
	var geminiCfg config.Gemini
	var storageCfg config.Storage
	var sentryCfg config.Sentry

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("BUSSOLA_ADDR"),
			Destination: &addr,
		},
		&cli.BoolFlag{
			Name:        "auto-caption",
			Usage:       "Draft a caption in the background for new feed actions without description",
			Sources:     cli.EnvVars("BUSSOLA_AUTO_CAPTION"),
			Destination: &autoCaption,
		},
		&cli.Int64Flag{
			Name:        "max-upload-size",
			Usage:       "Maximum size in bytes of an uploaded file",
			Value:       32 << 20,
			Sources:     cli.EnvVars("BUSSOLA_MAX_UPLOAD_SIZE"),
			Destination: &maxUploadSize,
		},
	}

	flags = append(flags, catalogCfg.Flags()...)
	flags = append(flags, locationCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, geminiCfg.Flags()...)
	flags = append(flags, storageCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			flush, err := sentryCfg.Configure(version)
			if err != nil {
				return err
			}
			defer flush()

			catalog, err := catalogCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load catalog")
			}
			loc, err := locationCfg.Configure()
			if err != nil {
				return err
			}

			repo, err := repoCfg.Configure(ctx, loc)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer safe.Close(ctx, repo)

			ucOpts := []usecase.Option{
				usecase.WithCatalog(catalog),
				usecase.WithClock(func() time.Time { return time.Now().In(loc) }),
				usecase.WithAutoCaption(autoCaption),
			}

			llm, err := geminiCfg.Configure(ctx)
			if err != nil {
				return err
			}
			if llm != nil {
				ucOpts = append(ucOpts, usecase.WithCopywriter(copywriter.New(llm)))
				logger.Info("Caption drafting enabled", "gemini", &geminiCfg)
			} else {
				logger.Info("Gemini project not configured, caption drafting is disabled")
			}

			gcs, err := storageCfg.Configure(ctx)
			if err != nil {
				return err
			}
			if gcs != nil {
				defer safe.Close(ctx, gcs)
				ucOpts = append(ucOpts, usecase.WithFileStorage(gcs))
				logger.Info("File uploads enabled", "storage", &storageCfg)
			} else {
				logger.Info("Storage bucket not configured, uploads are disabled")
			}

			uc := usecase.New(repo, ucOpts...)

			server := &http.Server{
				Addr: addr,
				Handler: httpctrl.New(uc,
					httpctrl.WithLocation(loc),
					httpctrl.WithMaxUploadSize(maxUploadSize),
				),
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			errCh := make(chan error, 1)
			go func() {
				logger.Info("Starting HTTP server",
					"addr", addr,
					"catalog", &catalogCfg,
					"timezone", loc.String(),
					"repository", &repoCfg,
					"sentry", &sentryCfg,
				)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logger.Info("Received shutdown signal", "signal", sig)

				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logger.Info("Server shutdown completed")
				return nil
			}
		},
	}
}
