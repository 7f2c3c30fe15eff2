package repositories

import (
	"context"

	"github.com/rios0rios0/packagecount/internal/domain/entities"
)

// PackageRepository abstracts the system package manager's query interface.
// Implementations are expected to shell out to the package manager and parse
// its output; they must not mutate the package database.
type PackageRepository interface {
	// ListInstalled enumerates installed packages together with their direct
	// dependency lists. When explicitOnly is true, only packages the user
	// installed explicitly are returned (pacman -Qe), otherwise the whole
	// database (pacman -Q).
	ListInstalled(ctx context.Context, explicitOnly bool) ([]entities.PackageRecord, error)

	// Dependencies returns the direct dependencies of a single package, in
	// the order the package manager declares them.
	Dependencies(ctx context.Context, name string) ([]string, error)
}
