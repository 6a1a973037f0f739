package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/godbus/dbus/v5"

	"livespiff/internal/core/model"
	"livespiff/internal/metrics"
	"livespiff/internal/platform"
	"livespiff/internal/service"
	"livespiff/internal/storage"
)

var cli struct {
	Run         string `short:"r" help:"Run document to load at startup." type:"path"`
	MetricsAddr string `help:"Serve Prometheus metrics on this address (disabled when empty)." placeholder:"HOST:PORT"`
	Verbose     bool   `short:"v" help:"Enable verbose logging."`
}

func main() {
	kong.Parse(&cli,
		kong.Name("livespiffd"),
		kong.Description("LiveSpiff split timer daemon."))

	logLevel := slog.LevelInfo
	if cli.Verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		slog.Error("session bus unavailable", "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	guard, err := platform.AcquireSingleInstance(conn, service.BusName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			slog.Error("another livespiffd already owns the service name", "name", service.BusName)
		} else {
			slog.Error("bus name claim failed", "error", err)
		}
		os.Exit(1)
	}
	defer func() {
		_ = guard.Release()
	}()

	run := model.NewDefaultRun()
	if cli.Run != "" {
		loaded, err := storage.LoadRun(cli.Run)
		if err != nil {
			slog.Warn("startup run load failed, using default run", "path", cli.Run, "error", err)
		} else {
			run = loaded
			slog.Info("startup run loaded", "path", cli.Run, "segments", run.SegmentCount())
		}
	}

	var recorder metrics.Recorder = metrics.NopRecorder{}
	if cli.MetricsAddr != "" {
		prom := metrics.NewPrometheusRecorder()
		recorder = prom
		go func() {
			slog.Info("metrics endpoint listening", "addr", cli.MetricsAddr)
			if err := http.ListenAndServe(cli.MetricsAddr, prom.Handler()); err != nil {
				slog.Error("metrics endpoint failed", "error", err)
			}
		}()
	}

	svc := service.New(run, service.Options{
		Logger:   logger,
		Recorder: recorder,
	})
	svc.Start()
	defer svc.Stop()

	if err := svc.Export(conn); err != nil {
		slog.Error("control interface registration failed", "error", err)
		os.Exit(1)
	}

	slog.Info("control service online",
		"name", service.BusName,
		"path", string(service.ObjectPath),
		"interface", service.InterfaceName)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	<-signals
	slog.Info("shutting down")
}
