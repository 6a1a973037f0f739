package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"

	"livespiff/internal/client"
	"livespiff/internal/storage"
)

var cli struct {
	Status statusCmd `cmd:"" default:"1" help:"Show timer state, elapsed time and split progress."`
	Split  splitCmd  `cmd:"" help:"Start the timer, or advance one checkpoint while running."`
	Pause  pauseCmd  `cmd:"" help:"Pause or resume the timer."`
	Reset  resetCmd  `cmd:"" help:"Reset the timer to Idle."`
	Load   loadCmd   `cmd:"" help:"Load a run document into the daemon."`
	Save   saveCmd   `cmd:"" help:"Save the active run to disk."`
	JSON   jsonCmd   `cmd:"" name:"json" help:"Print the active run as JSON."`
	Watch  watchCmd  `cmd:"" help:"Continuously print the timer at the configured refresh cadence."`
}

func main() {
	ctx := kong.Parse(&cli,
		kong.Name("spiffctl"),
		kong.Description("Terminal front end for the LiveSpiff timer daemon."))
	ctx.FatalIfErrorf(ctx.Run())
}

func connect() (*client.Client, error) {
	daemon, err := client.Connect()
	if err != nil {
		return nil, fmt.Errorf("is livespiffd running? %w", err)
	}
	return daemon, nil
}

// formatElapsed renders milliseconds as HH:MM:SS.mmm.
func formatElapsed(ms int64) string {
	if ms < 0 {
		ms = 0
	}
	totalSec := ms / 1000
	return fmt.Sprintf("%02d:%02d:%02d.%03d",
		totalSec/3600,
		(totalSec/60)%60,
		totalSec%60,
		ms%1000)
}

func printStatus(daemon *client.Client) error {
	state, err := daemon.State()
	if err != nil {
		return err
	}
	elapsed, err := daemon.ElapsedMs()
	if err != nil {
		return err
	}
	current, err := daemon.CurrentSplit()
	if err != nil {
		return err
	}
	total, err := daemon.SplitCount()
	if err != nil {
		return err
	}
	fmt.Printf("%-8s  %s  split %d/%d\n", state, formatElapsed(elapsed), current, total)
	return nil
}

type statusCmd struct{}

func (statusCmd) Run() error {
	daemon, err := connect()
	if err != nil {
		return err
	}
	defer daemon.Close()
	return printStatus(daemon)
}

type splitCmd struct{}

func (splitCmd) Run() error {
	daemon, err := connect()
	if err != nil {
		return err
	}
	defer daemon.Close()
	if err := daemon.StartOrSplit(); err != nil {
		return err
	}
	return printStatus(daemon)
}

type pauseCmd struct{}

func (pauseCmd) Run() error {
	daemon, err := connect()
	if err != nil {
		return err
	}
	defer daemon.Close()
	if err := daemon.TogglePause(); err != nil {
		return err
	}
	return printStatus(daemon)
}

type resetCmd struct{}

func (resetCmd) Run() error {
	daemon, err := connect()
	if err != nil {
		return err
	}
	defer daemon.Close()
	return daemon.Reset()
}

type loadCmd struct {
	Path string `arg:"" help:"Run document to load." type:"path"`
}

func (cmd loadCmd) Run() error {
	daemon, err := connect()
	if err != nil {
		return err
	}
	defer daemon.Close()

	ok, message, err := daemon.LoadRun(cmd.Path)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s", message)
	}
	fmt.Println(message)
	return nil
}

type saveCmd struct {
	Path string `arg:"" optional:"" help:"Destination path (defaults to the per-user default run document)." type:"path"`
}

func (cmd saveCmd) Run() error {
	path := cmd.Path
	if path == "" {
		defaultPath, err := storage.DefaultRunPath()
		if err != nil {
			return err
		}
		path = defaultPath
	}

	daemon, err := connect()
	if err != nil {
		return err
	}
	defer daemon.Close()

	ok, message, err := daemon.SaveRun(path)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%s", message)
	}
	fmt.Printf("%s: %s\n", message, path)
	return nil
}

type jsonCmd struct{}

func (jsonCmd) Run() error {
	daemon, err := connect()
	if err != nil {
		return err
	}
	defer daemon.Close()

	text, err := daemon.RunJSON()
	if err != nil {
		return err
	}
	fmt.Println(text)
	return nil
}

type watchCmd struct{}

func (watchCmd) Run() error {
	settingsPath, err := storage.SettingsPath()
	if err != nil {
		return err
	}
	settings, err := storage.LoadSettings(settingsPath)
	if err != nil {
		return err
	}

	daemon, err := connect()
	if err != nil {
		return err
	}
	defer daemon.Close()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(settings.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-signals:
			fmt.Println()
			return nil
		case <-ticker.C:
			state, err := daemon.State()
			if err != nil {
				return err
			}
			elapsed, err := daemon.ElapsedMs()
			if err != nil {
				return err
			}
			current, err := daemon.CurrentSplit()
			if err != nil {
				return err
			}
			total, err := daemon.SplitCount()
			if err != nil {
				return err
			}
			fmt.Printf("\r%-8s  %s  split %d/%d ", state, formatElapsed(elapsed), current, total)
		}
	}
}
