package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-coach-notes/internal/adapter"
	"github.com/MKhiriev/go-coach-notes/internal/client"
	"github.com/MKhiriev/go-coach-notes/internal/config"
	"github.com/MKhiriev/go-coach-notes/internal/logger"
	"github.com/MKhiriev/go-coach-notes/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fs := flag.NewFlagSet("coach-notes", flag.ExitOnError)
	address := fs.String("a", "", "server address, overrides ADAPTER_ADDRESS")
	token := fs.String("t", "", "bearer token, overrides ADAPTER_TOKEN")
	timeout := fs.Duration("timeout", 0, "request timeout, overrides ADAPTER_REQUEST_TIMEOUT")
	showBuild := fs.Bool("build-info", false, "print build information and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: %s [-a ADDRESS] [-t TOKEN] [-timeout D] COMMAND [ARGS]\n\n", fs.Name())
		fs.PrintDefaults()
		fmt.Fprintln(fs.Output(), client.Usage())
	}
	_ = fs.Parse(os.Args[1:])

	if *showBuild {
		fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return
	}

	log := logger.NewClientLogger("coach-notes-client")
	cfg, err := config.GetClientConfig(config.ClientAdapter{
		HTTPAddress:    *address,
		RequestTimeout: *timeout,
		Token:          *token,
	})
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	notes, err := adapter.NewHTTPNotesClient(cfg.Adapter, log)
	if err != nil {
		log.Error().Err(err).Msg("create notes client")
		fmt.Fprintf(os.Stderr, "client: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = client.NewApp(notes, os.Stdout, log).Run(ctx, fs.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if fs.NArg() == 0 {
			fs.Usage()
		}
		stop()
		os.Exit(1)
	}
}
