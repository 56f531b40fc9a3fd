// Package entrypoint wires together settings, input devices, the
// server client and the relay loop into a runnable operation.
package entrypoint

import (
	"context"
	"fmt"
	"sync"

	"livesplit-hotkeys/pkg/config"
	"livesplit-hotkeys/pkg/input"
	"livesplit-hotkeys/pkg/relay"
	"livesplit-hotkeys/pkg/settings"
)

// Run executes the hotkey relay until the context is cancelled or a
// fatal error occurs.
func Run(ctx context.Context, cfg *config.Config) error {
	return run(ctx, cfg, realClientFactory(), settings.Load)
}

func run(parent context.Context, cfg *config.Config, newClient clientFactory, loadSettings settingsLoader) error {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	path, err := cfg.SettingsPath()
	if err != nil {
		return fmt.Errorf("resolving settings path: %s", err)
	}

	s, err := loadSettings(path, cfg.Profile)
	if err != nil {
		return fmt.Errorf("loading settings: %s", err)
	}

	readers, err := openDevices(cfg)
	if err != nil {
		return err
	}
	defer func() {
		for _, r := range readers {
			r.Close()
		}
	}()

	c := newClient(ctx, cfg)
	if err := c.Connect(); err != nil {
		return fmt.Errorf("connecting: %s", err)
	}
	var closeOnce sync.Once
	closeClient := func() { closeOnce.Do(func() { _ = c.Close() }) }
	defer closeClient()

	rl, err := relay.New(cfg, c, s)
	if err != nil {
		return fmt.Errorf("building relay: %s", err)
	}

	events := make(chan input.Event)
	errCh := make(chan error, len(readers)+1)

	// A device reaching EOF only ends its own reader. The run ends when
	// all readers are done and the relay has drained the channel.
	var readersWg sync.WaitGroup
	for _, r := range readers {
		r := r
		readersWg.Add(1)
		go func() {
			defer readersWg.Done()
			if err := r.Run(ctx, events); err != nil {
				errCh <- err
			}
		}()
	}
	go func() {
		readersWg.Wait()
		close(events)
	}()

	go func() {
		errCh <- rl.Run(ctx, events)
	}()

	select {
	case <-ctx.Done():
		closeClient()
		return nil
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("relaying: %s", err)
		}
		return nil
	}
}

// openDevices opens the configured devices, or all autodetected
// keyboards when none are configured. Devices that cannot be opened are
// skipped; only having none at all is an error.
func openDevices(cfg *config.Config) ([]*input.Reader, error) {
	paths := cfg.Devices
	if len(paths) == 0 {
		var err error

		if scan := config.GetDeviceScannerFunc(cfg.Deps); scan != nil {
			paths, err = scan()
		} else {
			paths, err = input.Discover()
		}
		if err != nil {
			return nil, fmt.Errorf("discovering keyboards: %s", err)
		}
	}

	open := input.Opener(config.GetDeviceOpenerFunc(cfg.Deps))

	var readers []*input.Reader
	for _, path := range paths {
		r, err := input.NewReader(path, open)
		if err != nil {
			cfg.Logger.VerboseMsg("Skipping device %s: %s\n", path, err)
			continue
		}
		cfg.Logger.InfoMsg("Listening on %s\n", path)
		readers = append(readers, r)
	}

	if len(readers) == 0 {
		return nil, fmt.Errorf("could not open any keyboard device")
	}

	return readers, nil
}
