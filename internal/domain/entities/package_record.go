package entities

import "sort"

// PackageRecord represents a single installed package and its direct
// dependencies as declared in the package database.
type PackageRecord struct {
	Name         string   // Package name as reported by the package manager
	Dependencies []string // Direct dependencies ("Depends On" entries)
}

// DependencyCount returns the number of direct dependencies.
func (r PackageRecord) DependencyCount() int {
	return len(r.Dependencies)
}

// SortByDependencyCount orders records by dependency count descending.
// Ties are broken by name ascending so the report is deterministic.
func SortByDependencyCount(records []PackageRecord) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].DependencyCount() != records[j].DependencyCount() {
			return records[i].DependencyCount() > records[j].DependencyCount()
		}
		return records[i].Name < records[j].Name
	})
}
