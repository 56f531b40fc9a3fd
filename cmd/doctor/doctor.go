// Package doctor implements the doctor command: non-interactive
// diagnostics for the three things a relay run needs, keyboard access,
// a parseable settings file and a reachable server.
package doctor

import (
	"context"
	"fmt"
	"time"

	"github.com/urfave/cli/v3"

	"livesplit-hotkeys/cmd/shared"
	"livesplit-hotkeys/pkg/config"
	"livesplit-hotkeys/pkg/format"
	"livesplit-hotkeys/pkg/input"
	"livesplit-hotkeys/pkg/keys"
	"livesplit-hotkeys/pkg/settings"
	"livesplit-hotkeys/pkg/transport/tcp"
	"livesplit-hotkeys/pkg/transport/ws"
)

// GetCommand returns the CLI command running the diagnostics.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:  "doctor",
		Usage: "Check keyboard access, settings file and server reachability",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := shared.BuildConfig(cmd)
			if err != nil {
				return err
			}

			allPass := true
			if !checkKeyboards(cfg) {
				allPass = false
			}
			if !checkSettings(cfg) {
				allPass = false
			}
			if !checkServer(ctx, cfg) {
				allPass = false
			}

			fmt.Println()
			if !allPass {
				return fmt.Errorf("some checks failed")
			}
			fmt.Println("All checks passed")
			return nil
		},
		Flags: shared.GetCommonFlags(),
	}
}

func checkKeyboards(cfg *config.Config) bool {
	fmt.Println("[1/3] Keyboard devices")

	paths, err := input.Discover()
	if err != nil {
		fmt.Printf("  FAIL: %s\n", err)
		return false
	}

	opened := 0
	for _, path := range paths {
		r, err := input.NewReader(path, input.Opener(config.GetDeviceOpenerFunc(cfg.Deps)))
		if err != nil {
			fmt.Printf("  skipping %s: %s\n", path, err)
			continue
		}
		r.Close()
		opened++
	}

	if opened == 0 {
		fmt.Printf("  FAIL: found %d keyboard(s) but could not open any (run: sudo usermod -aG input $USER, then re-login)\n", len(paths))
		return false
	}

	fmt.Printf("  PASS: %d keyboard(s) found, %d openable\n", len(paths), opened)
	return true
}

func checkSettings(cfg *config.Config) bool {
	fmt.Println("[2/3] LiveSplit settings")

	path, err := cfg.SettingsPath()
	if err != nil {
		fmt.Printf("  FAIL: %s\n", err)
		return false
	}

	s, err := settings.Load(path, cfg.Profile)
	if err != nil {
		fmt.Printf("  FAIL: %s\n", err)
		return false
	}

	bound := 0
	for _, action := range settings.Actions {
		binding, ok := s.Bindings[action]
		if !ok || binding == "" {
			continue
		}
		if _, err := keys.ParseChord(binding); err != nil {
			fmt.Printf("  FAIL: binding %s: %s\n", action, err)
			return false
		}
		bound++
	}

	if bound == 0 {
		fmt.Printf("  FAIL: profile %q has no hotkey bindings\n", cfg.Profile)
		return false
	}

	fmt.Printf("  PASS: %s, profile %q, %d binding(s)\n", path, cfg.Profile, bound)
	return true
}

func checkServer(ctx context.Context, cfg *config.Config) bool {
	fmt.Println("[3/3] LiveSplit server")

	addr := format.Addr(cfg.Host, cfg.Port)

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	switch cfg.Protocol {
	case config.ProtoWS, config.ProtoWSS:
		conn, err := ws.NewDialer(addr, cfg.Protocol).Dial(ctx)
		if err != nil {
			fmt.Printf("  FAIL: %s\n", err)
			return false
		}
		conn.Close()
	default:
		d, err := tcp.NewDialer(addr, cfg.Deps)
		if err != nil {
			fmt.Printf("  FAIL: %s\n", err)
			return false
		}
		conn, err := d.Dial(ctx)
		if err != nil {
			fmt.Printf("  FAIL: %s\n", err)
			return false
		}
		conn.Close()
	}

	fmt.Printf("  PASS: %s://%s reachable\n", cfg.Protocol, addr)
	return true
}
