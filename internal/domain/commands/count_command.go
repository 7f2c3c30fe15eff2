package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/packagecount/internal/domain/entities"
	"github.com/rios0rios0/packagecount/internal/domain/repositories"
)

const (
	// OutputPlain prints the report as "name: count" lines.
	OutputPlain = "plain"
	// OutputJSON prints the report as a single JSON document.
	OutputJSON = "json"
)

// Count is the interface for the top-N dependency report.
type Count interface {
	Execute(ctx context.Context, opts CountOptions) error
}

// CountOptions holds runtime options for a single report run.
type CountOptions struct {
	Number int      // How many packages to show
	Ignore []string // Package names excluded from the report
	All    bool     // Include the whole database, not only explicit installs
	Output string   // "plain" (default) or "json"
}

// CountCommand enumerates installed packages, counts their direct
// dependencies, and reports the heaviest ones.
type CountCommand struct {
	repository repositories.PackageRepository
	out        io.Writer
}

// NewCountCommand creates a new CountCommand writing its report to out.
func NewCountCommand(repository repositories.PackageRepository, out io.Writer) *CountCommand {
	return &CountCommand{repository: repository, out: out}
}

// jsonReport is the document printed with --output json.
type jsonReport struct {
	Total    int       `json:"total"`
	Packages []jsonRow `json:"packages"`
}

type jsonRow struct {
	Name         string `json:"name"`
	Dependencies int    `json:"dependencies"`
}

// Execute runs the full report: enumerate, filter, sort, print.
func (it *CountCommand) Execute(ctx context.Context, opts CountOptions) error {
	if opts.Number < 1 {
		return &entities.InputError{
			Field:  "number",
			Value:  strconv.Itoa(opts.Number),
			Reason: "must be a positive integer",
		}
	}

	output := opts.Output
	if output == "" {
		output = OutputPlain
	}
	if output != OutputPlain && output != OutputJSON {
		return &entities.InputError{
			Field:  "output",
			Value:  output,
			Reason: "must be \"plain\" or \"json\"",
		}
	}

	logger.Debugf("Querying installed packages (explicit only: %v)...", !opts.All)

	records, err := it.repository.ListInstalled(ctx, !opts.All)
	if err != nil {
		return fmt.Errorf("failed to enumerate installed packages: %w", err)
	}

	records = dropIgnored(records, opts.Ignore)
	entities.SortByDependencyCount(records)

	logger.Debugf("Enumerated %d packages", len(records))

	limit := opts.Number
	if limit > len(records) {
		limit = len(records)
	}

	if output == OutputJSON {
		return it.printJSON(records, limit)
	}
	return it.printPlain(records, opts.Number, limit)
}

func (it *CountCommand) printPlain(records []entities.PackageRecord, number, limit int) error {
	if _, err := fmt.Fprintf(it.out, "total installed packages: %d\n", len(records)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(it.out, "top %d packages:\n", number); err != nil {
		return err
	}
	for _, record := range records[:limit] {
		if _, err := fmt.Fprintf(it.out, "  %s: %d\n", record.Name, record.DependencyCount()); err != nil {
			return err
		}
	}
	return nil
}

func (it *CountCommand) printJSON(records []entities.PackageRecord, limit int) error {
	report := jsonReport{
		Total:    len(records),
		Packages: make([]jsonRow, 0, limit),
	}
	for _, record := range records[:limit] {
		report.Packages = append(report.Packages, jsonRow{
			Name:         record.Name,
			Dependencies: record.DependencyCount(),
		})
	}

	encoder := json.NewEncoder(it.out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report)
}

// dropIgnored removes ignored packages from the record set and ignored names
// from every remaining dependency list, so they count nowhere.
func dropIgnored(records []entities.PackageRecord, ignore []string) []entities.PackageRecord {
	if len(ignore) == 0 {
		return records
	}

	ignored := make(map[string]bool, len(ignore))
	for _, name := range ignore {
		ignored[name] = true
	}

	kept := records[:0]
	for _, record := range records {
		if ignored[record.Name] {
			continue
		}
		deps := make([]string, 0, len(record.Dependencies))
		for _, dep := range record.Dependencies {
			if !ignored[dep] {
				deps = append(deps, dep)
			}
		}
		record.Dependencies = deps
		kept = append(kept, record)
	}
	return kept
}
