package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/rios0rios0/packagecount/internal/domain/repositories"
	"github.com/rios0rios0/packagecount/internal/infrastructure/repositories/pacman"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	if err := container.Provide(pacman.NewPackageRepository); err != nil {
		return err
	}

	// Bind the interface to the pacman implementation
	if err := container.Provide(func(impl *pacman.Repository) domainRepos.PackageRepository {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
