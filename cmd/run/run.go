// Package run implements the run command, the main operation: listen
// for hotkeys on the keyboard devices and relay timer commands to the
// LiveSplit server.
package run

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"livesplit-hotkeys/cmd/shared"
	"livesplit-hotkeys/pkg/entrypoint"
)

// GetCommand returns the CLI command for the relay operation.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Listen for hotkeys and relay them to the LiveSplit server",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := shared.BuildConfig(cmd)
			if err != nil {
				return err
			}

			cfg.Devices = cmd.StringSlice(shared.DeviceFlag)
			cfg.CommandLog = cmd.String(shared.LogFileFlag)

			if errors := cfg.Validate(); len(errors) > 0 {
				cfg.Logger.ErrorMsg("Argument validation errors:\n")
				for _, err := range errors {
					cfg.Logger.ErrorMsg(" - %s\n", err)
				}
				return fmt.Errorf("exiting")
			}

			ctx, cancel := context.WithCancel(ctx)
			defer cancel()
			shared.SetupSignalHandling(cancel)

			return entrypoint.Run(ctx, cfg)
		},
		Flags: getFlags(),
	}
}

const categoryRun = "run"

func getFlags() []cli.Flag {
	flags := []cli.Flag{
		&cli.StringSliceFlag{
			Name:     shared.DeviceFlag,
			Aliases:  []string{"d"},
			Usage:    "Keyboard device file to read from, repeatable, leave empty to autodetect",
			Category: categoryRun,
			Value:    []string{},
			Required: false,
		},
		&cli.StringFlag{
			Name:     shared.LogFileFlag,
			Aliases:  []string{"l"},
			Usage:    "File receiving a copy of all commands sent to the server",
			Category: categoryRun,
			Value:    "",
			Required: false,
		},
	}

	return append(flags, shared.GetCommonFlags()...)
}
