//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"fmt"

	"github.com/rios0rios0/packagecount/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// PackageRecordBuilder helps create test package records with a fluent interface.
type PackageRecordBuilder struct {
	*testkit.BaseBuilder
	name         string
	dependencies []string
}

// NewPackageRecordBuilder creates a new package record builder with sensible defaults.
func NewPackageRecordBuilder() *PackageRecordBuilder {
	return &PackageRecordBuilder{
		BaseBuilder:  testkit.NewBaseBuilder(),
		name:         "test-package",
		dependencies: []string{"glibc"},
	}
}

// WithName sets the package name.
func (b *PackageRecordBuilder) WithName(name string) *PackageRecordBuilder {
	b.name = name
	return b
}

// WithDependencies sets the dependency list.
func (b *PackageRecordBuilder) WithDependencies(dependencies ...string) *PackageRecordBuilder {
	b.dependencies = dependencies
	return b
}

// WithDependencyCount sets count synthetic dependencies named dep-01..dep-NN.
func (b *PackageRecordBuilder) WithDependencyCount(count int) *PackageRecordBuilder {
	deps := make([]string, 0, count)
	for i := range count {
		deps = append(deps, fmt.Sprintf("dep-%02d", i+1))
	}
	b.dependencies = deps
	return b
}

// Build creates the package record (satisfies testkit.Builder interface).
func (b *PackageRecordBuilder) Build() interface{} {
	return b.BuildPackageRecord()
}

// BuildPackageRecord creates the package record with a concrete return type.
func (b *PackageRecordBuilder) BuildPackageRecord() entities.PackageRecord {
	return entities.PackageRecord{
		Name:         b.name,
		Dependencies: b.dependencies,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *PackageRecordBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.name = "test-package"
	b.dependencies = []string{"glibc"}
	return b
}

// Clone creates a deep copy of the PackageRecordBuilder.
func (b *PackageRecordBuilder) Clone() testkit.Builder {
	dependencies := make([]string, len(b.dependencies))
	copy(dependencies, b.dependencies)
	return &PackageRecordBuilder{
		BaseBuilder:  b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:         b.name,
		dependencies: dependencies,
	}
}
