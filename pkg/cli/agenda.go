package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/bussola-app/bussola/pkg/cli/config"
	"github.com/bussola-app/bussola/pkg/datefmt"
	"github.com/bussola-app/bussola/pkg/domain/model"
	"github.com/bussola-app/bussola/pkg/schedule"
	"github.com/bussola-app/bussola/pkg/usecase"
	"github.com/bussola-app/bussola/pkg/utils/safe"
)

func cmdAgenda() *cli.Command {
	var responsible string
	var catalogCfg config.Catalog
	var locationCfg config.Location
	var repoCfg config.Repository

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "responsible",
			Aliases:     []string{"u"},
			Usage:       "User ID whose agenda is printed",
			Required:    true,
			Sources:     cli.EnvVars("BUSSOLA_USER"),
			Destination: &responsible,
		},
	}
	flags = append(flags, catalogCfg.Flags()...)
	flags = append(flags, locationCfg.Flags()...)
	flags = append(flags, repoCfg.Flags()...)

	return &cli.Command{
		Name:    "agenda",
		Aliases: []string{"a"},
		Usage:   "Print delayed, today's and tomorrow's actions of a user",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
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

			uc := usecase.New(repo,
				usecase.WithCatalog(catalog),
				usecase.WithClock(func() time.Time { return time.Now().In(loc) }),
			)
			dashboard, err := uc.View.Dashboard(ctx, responsible)
			if err != nil {
				return goerr.Wrap(err, "failed to build agenda", goerr.V(usecase.UserIDKey, responsible))
			}

			return renderAgenda(c.Root().Writer, dashboard, catalog, uc.Now())
		},
	}
}

var (
	headerColor  = color.New(color.FgHiWhite, color.Bold)
	timeColor    = color.New(color.FgCyan)
	delayedColor = color.New(color.FgRed, color.Bold)
	mutedColor   = color.New(color.FgHiBlack)
)

func renderAgenda(w io.Writer, d *usecase.Dashboard, catalog *model.Catalog, now time.Time) error {
	sections := []struct {
		title   string
		actions []*model.Action
		withDay bool
	}{
		{"Atrasadas", d.Delayed, true},
		{"Hoje", d.Today, false},
		{"Amanhã", d.Tomorrow, false},
	}

	for i, section := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return goerr.Wrap(err, "failed to write agenda")
			}
		}
		if _, err := headerColor.Fprintf(w, "%s (%d)\n", section.title, len(section.actions)); err != nil {
			return goerr.Wrap(err, "failed to write agenda")
		}
		if len(section.actions) == 0 {
			if _, err := mutedColor.Fprintln(w, "  nenhuma ação"); err != nil {
				return goerr.Wrap(err, "failed to write agenda")
			}
			continue
		}

		tbl := uitable.New()
		tbl.Separator = "  "
		for _, a := range section.actions {
			row, err := agendaRow(a, catalog, now, section.withDay)
			if err != nil {
				return err
			}
			tbl.AddRow(row...)
		}
		if _, err := fmt.Fprintln(w, tbl); err != nil {
			return goerr.Wrap(err, "failed to write agenda")
		}
	}
	return nil
}

func agendaRow(a *model.Action, catalog *model.Catalog, now time.Time, withDay bool) ([]interface{}, error) {
	dateFormat := datefmt.DateNone
	if withDay {
		dateFormat = datefmt.DateShort
	}
	when, err := datefmt.Format(a.Date, now, datefmt.WithDateFormat(dateFormat), datefmt.WithTimeFormat(datefmt.TimeHour))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to format action date", goerr.V(usecase.ActionIDKey, a.ID))
	}

	printer := timeColor
	if schedule.IsActionDelayed(a, schedule.StateOf(catalog, a), now) {
		printer = delayedColor
	}

	return []interface{}{
		" " + printer.Sprint(when),
		fmt.Sprintf("[%s]", catalog.CategoryOrDefault(a.Category).Title),
		a.Title,
		mutedColor.Sprint(strings.Join(a.Partners, ", ")),
	}, nil
}
