package commands

import (
	"context"
	"fmt"
	"io"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/packagecount/internal/domain/entities"
	"github.com/rios0rios0/packagecount/internal/domain/repositories"
)

// Deps is the interface for the single-package dependency listing.
type Deps interface {
	Execute(ctx context.Context, opts DepsOptions) error
}

// DepsOptions holds runtime options for a single deps run.
type DepsOptions struct {
	Package string // Package to inspect
}

// DepsCommand prints the direct dependencies of one installed package.
type DepsCommand struct {
	repository repositories.PackageRepository
	out        io.Writer
}

// NewDepsCommand creates a new DepsCommand writing its output to out.
func NewDepsCommand(repository repositories.PackageRepository, out io.Writer) *DepsCommand {
	return &DepsCommand{repository: repository, out: out}
}

// Execute queries and prints the dependency list in declaration order.
func (it *DepsCommand) Execute(ctx context.Context, opts DepsOptions) error {
	if opts.Package == "" {
		return &entities.InputError{
			Field:  "package",
			Value:  opts.Package,
			Reason: "a package name is required",
		}
	}

	logger.Debugf("Querying dependencies of %q...", opts.Package)

	dependencies, err := it.repository.Dependencies(ctx, opts.Package)
	if err != nil {
		return fmt.Errorf("failed to query dependencies of %q: %w", opts.Package, err)
	}

	for _, dependency := range dependencies {
		if _, writeErr := fmt.Fprintln(it.out, dependency); writeErr != nil {
			return writeErr
		}
	}

	_, err = fmt.Fprintf(it.out, "%s: %d direct dependencies\n", opts.Package, len(dependencies))
	return err
}
