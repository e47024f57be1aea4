//go:build !(js && wasm)

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/voxelsplace/redlevel/config"
	"github.com/voxelsplace/redlevel/level"
	"github.com/voxelsplace/redlevel/logging"
	"github.com/voxelsplace/redlevel/utils"
)

func loadConfig(cmd *cli.Command) (config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return config.Config{}, err
	}
	logging.Configure(cfg.Log)
	return cfg, nil
}

// withConfig checks the positional argument count and hands the loaded
// config to fn.
func withConfig(nargs int, fn func(cfg config.Config, args []string) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		args := cmd.Args().Slice()
		if (nargs >= 0 && len(args) != nargs) || (nargs < 0 && len(args) < -nargs) {
			return cli.ShowSubcommandHelp(cmd)
		}
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return fn(cfg, args)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:        "redlevel",
		Usage:       "Inspect, back up and preview binary level files",
		Version:     "0.1.0",
		Description: "Decodes level files (magic tokens, sized strings, colour lists) using a TOML layout",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to the TOML tool config",
				Value:   "redlevel.toml",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "inspect",
				Usage:     "Decode a level file and print its fields",
				ArgsUsage: "<level>",
				Action: withConfig(1, func(cfg config.Config, args []string) error {
					return utils.RunInspect(cfg, args[0], os.Stdout)
				}),
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List level files in the level directory",
				Action: withConfig(0, func(cfg config.Config, _ []string) error {
					return utils.RunList(cfg, os.Stdout)
				}),
			},
			{
				Name:      "palette",
				Usage:     "Show a colour field as terminal swatches",
				ArgsUsage: "<level> <field>",
				Action: withConfig(2, func(cfg config.Config, args []string) error {
					return utils.RunPalette(cfg, args[0], args[1], os.Stdout)
				}),
			},
			{
				Name:      "palette2glb",
				Usage:     "Export a colour field as a .glb preview",
				ArgsUsage: "<level> <field> <output.glb>",
				Action: withConfig(3, func(cfg config.Config, args []string) error {
					return utils.RunPalette2GLB(cfg, args[0], args[1], args[2])
				}),
			},
			{
				Name:      "backup",
				Usage:     "Back up level files into the backup directory",
				ArgsUsage: "<level> [level ...]",
				Action: withConfig(-1, func(cfg config.Config, args []string) error {
					return utils.RunBackup(cfg, args, os.Stdout)
				}),
			},
			{
				Name:      "backups",
				Usage:     "List the backups of a level file",
				ArgsUsage: "<level>",
				Action: withConfig(1, func(cfg config.Config, args []string) error {
					return utils.RunListBackups(cfg, args[0], os.Stdout)
				}),
			},
			{
				Name:      "restore",
				Usage:     "Restore a backup to a level file",
				ArgsUsage: "<backup> <output>",
				Action: withConfig(2, func(cfg config.Config, args []string) error {
					return utils.RunRestore(cfg, args[0], args[1])
				}),
			},
		},
	}
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, level.ErrFatal) {
			log.Error().Err(err).Msg("cannot continue")
		} else {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
