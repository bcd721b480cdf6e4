package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"

	"github.com/bithorded/bithorded/internal/config"
	"github.com/bithorded/bithorded/internal/router"
	"github.com/bithorded/bithorded/internal/telemetry"
	"github.com/bithorded/bithorded/server"
)

var gitCommitSHA = ""

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, syscall.SIGTERM, syscall.SIGINT)

		select {
		case <-interrupt:
			fmt.Println()
			klog.Info("received interrupt signal")
			cancel()
		case <-ctx.Done():
		}

		signal.Stop(interrupt)
	}()

	app := &cli.App{
		Name:        "bithorded",
		Version:     gitCommitSHA,
		Description: "peer-to-peer content-addressed asset server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "config",
				Aliases:  []string{"c"},
				Usage:    "path to a JSON or YAML config file",
				Required: true,
				EnvVars:  []string{"BITHORDED_CONFIG"},
			},
		},
		Commands: []*cli.Command{
			newCmd_Serve(),
			newCmd_Version(),
		},
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	sort.Sort(cli.CommandsByName(app.Commands))

	if err := app.RunContext(ctx, os.Args); err != nil {
		klog.Fatal(err)
	}
}

// errNoWireProtocol is returned by noWireDialer — bithorded's connection
// multiplexer to peers is out of scope (§1); any configured friend simply
// never connects until a real transport is wired in at this seam.
var errNoWireProtocol = errors.New("bithorded: no wire-protocol transport configured")

func noWireDialer(ctx context.Context, f router.FriendConfig) (router.Client, error) {
	return nil, errNoWireProtocol
}

func newCmd_Serve() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "load a config file and serve asset requests until interrupted",
		Action: func(c *cli.Context) error {
			cfg, err := config.Load(c.String("config"))
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			shutdownTelemetry, err := telemetry.Init(c.Context, "bithorded")
			if err != nil {
				return fmt.Errorf("initializing telemetry: %w", err)
			}
			defer shutdownTelemetry()

			srv, err := server.New(cfg, noWireDialer)
			if err != nil {
				return fmt.Errorf("starting server: %w", err)
			}
			defer srv.Close()

			cacheDesc := "disabled"
			if cfg.CacheEnabled() {
				cacheDesc = humanize.Bytes(uint64(cfg.CacheSizeBytes()))
			}
			klog.Infof("bithorded serving %d source(s), cache budget %s", len(cfg.Sources), cacheDesc)
			<-c.Context.Done()
			klog.Infof("shutting down, cache disk usage %s", humanize.Bytes(uint64(srv.DiskUsage())))
			return nil
		},
	}
}

func newCmd_Version() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "print the build version",
		Action: func(c *cli.Context) error {
			if gitCommitSHA == "" {
				fmt.Println("dev")
				return nil
			}
			fmt.Println(gitCommitSHA)
			return nil
		},
	}
}
