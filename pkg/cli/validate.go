package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/bussola-app/bussola/pkg/cli/config"
	"github.com/bussola-app/bussola/pkg/usecase"
	"github.com/bussola-app/bussola/pkg/utils/logging"
	"github.com/bussola-app/bussola/pkg/utils/safe"
)

// ErrInconsistentRepository is returned by validate when stored actions disagree with the catalog
var ErrInconsistentRepository = goerr.New("repository consistency check failed")

func cmdValidate() *cli.Command {
	var catalogCfg config.Catalog
	var locationCfg config.Location
	var repoCfg config.Repository
	var checkDB bool

	var flags []cli.Flag
	flags = append(flags, catalogCfg.Flags()...)
	flags = append(flags, locationCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, &cli.BoolFlag{
		Name:        "check-db",
		Usage:       "Also check stored actions against the catalog",
		Destination: &checkDB,
	})

	return &cli.Command{
		Name:    "validate",
		Aliases: []string{"v"},
		Usage:   "Validate the catalog file and optionally check DB consistency",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			catalog, err := catalogCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "catalog validation failed")
			}
			logger.Info("Catalog validation passed",
				"catalog", &catalogCfg,
				"categories", len(catalog.Categories),
				"states", len(catalog.States),
				"priorities", len(catalog.Priorities),
				"week_start", catalog.WeekStart.String(),
			)

			if !checkDB {
				return nil
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

			uc := usecase.New(repo, usecase.WithCatalog(catalog))
			result, err := uc.View.Audit(ctx)
			if err != nil {
				return goerr.Wrap(err, "DB consistency check failed")
			}

			if result.HasIssues() {
				for _, issue := range result.Issues {
					logger.Warn("DB consistency issue found",
						slog.String("action_id", issue.ActionID.String()),
						slog.String("field", issue.Field),
						slog.String("value", issue.Value),
						slog.String("message", issue.Message),
					)
				}
				return goerr.Wrap(ErrInconsistentRepository, "stored actions disagree with the catalog",
					goerr.V("checked", result.Checked),
					goerr.V("issues", len(result.Issues)),
				)
			}

			logger.Info("DB consistency check passed", "checked", result.Checked)
			return nil
		},
	}
}
