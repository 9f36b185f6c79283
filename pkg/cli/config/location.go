package config

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Location holds the time zone in which days, weeks and months are computed
type Location struct {
	name string
}

// Flags returns CLI flags for the time zone
func (l *Location) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "timezone",
			Aliases:     []string{"tz"},
			Usage:       "IANA time zone of the agency (e.g. America/Sao_Paulo)",
			Value:       "America/Sao_Paulo",
			Sources:     cli.EnvVars("BUSSOLA_TIMEZONE"),
			Destination: &l.name,
		},
	}
}

// Configure loads the time zone
func (l *Location) Configure() (*time.Location, error) {
	if l.name == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(l.name)
	if err != nil {
		return nil, goerr.Wrap(ErrInvalidFlag, "unknown time zone", goerr.V(FlagKey, "timezone"), goerr.V(ValueKey, l.name))
	}
	return loc, nil
}
