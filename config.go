package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"
)

type config struct {
	Port             int           `validate:"min=1,max=65535"`
	StaticDir        string
	PositionURL      string        `validate:"required,url"`
	CrewURL          string        `validate:"required,url"`
	Craft            string        `validate:"required"`
	PositionInterval time.Duration `validate:"gte=1s"`
	CrewInterval     time.Duration `validate:"gte=1s"`
	FetchTimeout     time.Duration `validate:"gte=100ms"`
	ShutdownTimeout  time.Duration `validate:"gte=0"`
	ClockZone        string        `validate:"required"`
	ClockLabel       string        `validate:"required"`
	RegionsFile      string
	MarkerRadius     float64 `validate:"gt=0,lte=10"`
	LogLevel         string  `validate:"oneof=trace debug info warn error"`
	LogFormat        string  `validate:"oneof=console json"`
}

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:    "port",
			Value:   3000,
			Usage:   "HTTP port",
			EnvVars: []string{"PORT"},
		},
		&cli.StringFlag{
			Name:    "static-dir",
			Usage:   "serve assets from this directory instead of the embedded page",
			EnvVars: []string{"STATIC_DIR"},
		},
		&cli.StringFlag{
			Name:    "position-url",
			Value:   defaultPositionURL,
			Usage:   "ISS position endpoint",
			EnvVars: []string{"POSITION_URL"},
		},
		&cli.StringFlag{
			Name:    "crew-url",
			Value:   defaultCrewURL,
			Usage:   "people-in-space endpoint",
			EnvVars: []string{"CREW_URL"},
		},
		&cli.StringFlag{
			Name:    "craft",
			Value:   defaultCraft,
			Usage:   "only show crew aboard this craft",
			EnvVars: []string{"CRAFT"},
		},
		&cli.DurationFlag{
			Name:    "position-interval",
			Value:   5 * time.Second,
			Usage:   "position refresh interval",
			EnvVars: []string{"POSITION_INTERVAL"},
		},
		&cli.DurationFlag{
			Name:    "crew-interval",
			Value:   time.Minute,
			Usage:   "crew refresh interval",
			EnvVars: []string{"CREW_INTERVAL"},
		},
		&cli.DurationFlag{
			Name:    "fetch-timeout",
			Value:   10 * time.Second,
			Usage:   "timeout for a single upstream fetch",
			EnvVars: []string{"FETCH_TIMEOUT"},
		},
		&cli.DurationFlag{
			Name:  "shutdown-timeout",
			Value: 10 * time.Second,
			Usage: "HTTP server shutdown timeout",
		},
		&cli.StringFlag{
			Name:    "clock-zone",
			Value:   defaultClockZone,
			Usage:   "IANA zone of the on-screen clock",
			EnvVars: []string{"CLOCK_ZONE"},
		},
		&cli.StringFlag{
			Name:    "clock-label",
			Value:   defaultClockLabel,
			Usage:   "label shown before the clock",
			EnvVars: []string{"CLOCK_LABEL"},
		},
		&cli.StringFlag{
			Name:    "regions-file",
			Usage:   "YAML file of named bounding boxes to watch (default: India)",
			EnvVars: []string{"REGIONS_FILE"},
		},
		&cli.Float64Flag{
			Name:  "marker-radius",
			Value: defaultMarkerRadius,
			Usage: "radius in degrees of the crew marker ring",
		},
		&cli.StringFlag{
			Name:    "log-level",
			Value:   "info",
			EnvVars: []string{"LOG_LEVEL"},
		},
		&cli.StringFlag{
			Name:    "log-format",
			Value:   "console",
			Usage:   "console or json",
			EnvVars: []string{"LOG_FORMAT"},
		},
	}
}

func configFromCLI(c *cli.Context) (config, error) {
	cfg := config{
		Port:             c.Int("port"),
		StaticDir:        c.String("static-dir"),
		PositionURL:      c.String("position-url"),
		CrewURL:          c.String("crew-url"),
		Craft:            c.String("craft"),
		PositionInterval: c.Duration("position-interval"),
		CrewInterval:     c.Duration("crew-interval"),
		FetchTimeout:     c.Duration("fetch-timeout"),
		ShutdownTimeout:  c.Duration("shutdown-timeout"),
		ClockZone:        c.String("clock-zone"),
		ClockLabel:       c.String("clock-label"),
		RegionsFile:      c.String("regions-file"),
		MarkerRadius:     c.Float64("marker-radius"),
		LogLevel:         c.String("log-level"),
		LogFormat:        c.String("log-format"),
	}
	if err := validate.Struct(cfg); err != nil {
		return config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (cfg config) regions() (RegionSet, error) {
	if cfg.RegionsFile == "" {
		return DefaultRegions(), nil
	}
	return LoadRegions(cfg.RegionsFile)
}
