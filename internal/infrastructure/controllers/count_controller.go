package controllers

import (
	"context"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/packagecount/config"
	"github.com/rios0rios0/packagecount/internal/domain/commands"
	"github.com/rios0rios0/packagecount/internal/domain/entities"
)

// CountController handles the root command (top-N dependency report).
type CountController struct {
	command commands.Count
}

// NewCountController creates a new CountController.
func NewCountController(command commands.Count) *CountController {
	return &CountController{command: command}
}

// GetBind returns the Cobra command metadata for the count controller.
func (it *CountController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "count",
		Short: "Report the installed packages with the most dependencies",
		Long: `Query the local pacman database for installed packages and their
direct dependency lists, then report the total installed package count
and the N packages with the most direct dependencies.

By default only explicitly installed packages (pacman -Qe) are reported;
use --all to include the whole database.`,
	}
}

// Execute runs the report with config defaults overridden by flags.
func (it *CountController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	opts, err := resolveOptions(cmd)
	if err != nil {
		return err
	}

	return it.command.Execute(ctx, opts)
}

// AddFlags adds the count-specific flags to the given Cobra command.
func (it *CountController) AddFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("number", "n", config.DefaultNumber,
		"Max number of packages to show")
	cmd.Flags().StringSlice("ignore", nil,
		"Packages to exclude from the report (repeatable)")
	cmd.Flags().Bool("all", false,
		"Include the whole database, not only explicitly installed packages")
	cmd.Flags().String("output", commands.OutputPlain,
		"Output format: plain or json")
}

// resolveOptions loads the optional config file and merges it with the
// command flags. An explicitly set flag always wins over the config value.
func resolveOptions(cmd *cobra.Command) (commands.CountOptions, error) {
	number, _ := cmd.Flags().GetInt("number")
	ignore, _ := cmd.Flags().GetStringSlice("ignore")
	all, _ := cmd.Flags().GetBool("all")
	output, _ := cmd.Flags().GetString("output")

	opts := commands.CountOptions{
		Number: number,
		Ignore: ignore,
		All:    all,
		Output: output,
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return commands.CountOptions{}, err
	}
	if cfg == nil {
		return opts, nil
	}

	if !cmd.Flags().Changed("number") {
		opts.Number = cfg.Number
	}
	if !cmd.Flags().Changed("all") {
		opts.All = cfg.All
	}
	opts.Ignore = append(cfg.Ignore, opts.Ignore...)

	return opts, nil
}

// loadConfig resolves the config file path and loads it. A missing file is
// only an error when the user asked for one explicitly with --config.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfgPath, _ := cmd.Flags().GetString("config")

	if cfgPath == "" {
		var findErr error
		cfgPath, findErr = config.FindConfigFile()
		if findErr != nil {
			logger.Debugf("No config file found, using defaults: %v", findErr)
			return nil, nil //nolint:nilnil // absent config means defaults
		}
	}

	logger.Debugf("Using config file: %s", cfgPath)

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
