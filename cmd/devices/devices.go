// Package devices implements the devices command, which lists the
// keyboard devices the relay would read from.
package devices

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"livesplit-hotkeys/pkg/input"
)

// GetCommand returns the CLI command listing detected keyboards.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:  "devices",
		Usage: "List detected keyboard devices",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			paths, err := input.Discover()
			if err != nil {
				return fmt.Errorf("discovering keyboards: %s", err)
			}

			for _, path := range paths {
				name, err := input.Name(path)
				if err != nil {
					name = fmt.Sprintf("(unreadable: %s)", err)
				}
				fmt.Printf("%s\t%s\n", path, name)
			}

			return nil
		},
		Flags: []cli.Flag{},
	}
}
