package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/packagecount/internal/domain/commands"
	"github.com/rios0rios0/packagecount/internal/domain/entities"
)

// DepsController handles the "deps" subcommand (single-package listing).
type DepsController struct {
	command commands.Deps
}

// NewDepsController creates a new DepsController.
func NewDepsController(command commands.Deps) *DepsController {
	return &DepsController{command: command}
}

// GetBind returns the Cobra command metadata for the deps controller.
func (it *DepsController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "deps <package>",
		Short: "List the direct dependencies of one installed package",
		Long: `Query pacman for a single installed package and print its direct
dependencies, one per line, followed by a count summary.`,
	}
}

// Execute runs the dependency listing for the given package argument.
func (it *DepsController) Execute(_ *cobra.Command, args []string) error {
	ctx := context.Background()

	name := ""
	if len(args) > 0 {
		name = args[0]
	}

	return it.command.Execute(ctx, commands.DepsOptions{Package: name})
}
