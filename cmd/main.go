package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"livesplit-hotkeys/cmd/devices"
	"livesplit-hotkeys/cmd/doctor"
	"livesplit-hotkeys/cmd/run"
	"livesplit-hotkeys/cmd/version"
)

func main() {
	root := &cli.Command{
		Name:  "livesplit-hotkeys",
		Usage: "global hotkeys for LiveSplit over the network",
		Commands: []*cli.Command{
			run.GetCommand(),
			devices.GetCommand(),
			doctor.GetCommand(),
			version.GetCommand(),
		},
	}

	if err := root.Run(context.Background(), os.Args); err != nil {
		fmt.Printf("[!] Error: %s\n", err)
		os.Exit(1)
	}
}
