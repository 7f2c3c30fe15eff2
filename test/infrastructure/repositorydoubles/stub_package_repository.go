//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations — no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"

	"github.com/rios0rios0/packagecount/internal/domain/entities"
	"github.com/rios0rios0/packagecount/internal/domain/repositories"
)

// SpyPackageRepository implements repositories.PackageRepository as a configurable spy.
type SpyPackageRepository struct {
	// --- ListInstalled ---
	Records []entities.PackageRecord
	ListErr error
	// spy: explicitOnly values received
	ListCalls []bool

	// --- Dependencies ---
	DepsByName map[string][]string // package name -> dependencies
	DepsErr    error
	// spy: package names queried
	DepsCalls []string
}

var _ repositories.PackageRepository = (*SpyPackageRepository)(nil)

func (p *SpyPackageRepository) ListInstalled(
	_ context.Context,
	explicitOnly bool,
) ([]entities.PackageRecord, error) {
	p.ListCalls = append(p.ListCalls, explicitOnly)
	return p.Records, p.ListErr
}

func (p *SpyPackageRepository) Dependencies(
	_ context.Context,
	name string,
) ([]string, error) {
	p.DepsCalls = append(p.DepsCalls, name)
	if p.DepsErr != nil {
		return nil, p.DepsErr
	}
	if p.DepsByName != nil {
		if deps, ok := p.DepsByName[name]; ok {
			return deps, nil
		}
	}
	return nil, fmt.Errorf("package not found: %s", name)
}

// DummyPackageRepository is a no-op implementation of repositories.PackageRepository.
// Use it only for interface compliance tests or as a placeholder.
type DummyPackageRepository struct{}

var _ repositories.PackageRepository = (*DummyPackageRepository)(nil)

func (d *DummyPackageRepository) ListInstalled(
	_ context.Context,
	_ bool,
) ([]entities.PackageRecord, error) {
	return nil, nil
}

func (d *DummyPackageRepository) Dependencies(
	_ context.Context,
	_ string,
) ([]string, error) {
	return nil, nil
}
