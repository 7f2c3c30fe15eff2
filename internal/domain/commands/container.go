package commands

import (
	"io"
	"os"

	"go.uber.org/dig"

	"github.com/rios0rios0/packagecount/internal/domain/repositories"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors (reports go to stdout)
	if err := container.Provide(func(repository repositories.PackageRepository) *CountCommand {
		return NewCountCommand(repository, io.Writer(os.Stdout))
	}); err != nil {
		return err
	}
	if err := container.Provide(func(repository repositories.PackageRepository) *DepsCommand {
		return NewDepsCommand(repository, io.Writer(os.Stdout))
	}); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *CountCommand) Count {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *DepsCommand) Deps {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
