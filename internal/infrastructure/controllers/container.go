package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/packagecount/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewCountController); err != nil {
		return err
	}
	if err := container.Provide(NewDepsController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all subcommand controllers for the AppInternal.
// The count controller is excluded because it is bound to the root command.
func NewControllers(
	depsController *DepsController,
) *[]entities.Controller {
	return &[]entities.Controller{
		depsController,
	}
}
