// Package pacman implements the PackageRepository interface on top of the
// pacman query interface (-Q, -Qe, -Qi). Output is parsed as plain text;
// the package database is never modified.
package pacman

import (
	"bufio"
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/rios0rios0/packagecount/internal/domain/entities"
)

const defaultBinary = "pacman"

// runnerFunc executes a command and returns its standard output.
type runnerFunc func(ctx context.Context, binary string, args ...string) ([]byte, error)

// Repository queries the local pacman database via subprocess calls.
type Repository struct {
	binary string
	run    runnerFunc
}

// NewPackageRepository creates a Repository using the pacman binary from PATH.
func NewPackageRepository() *Repository {
	return &Repository{binary: defaultBinary, run: runCommand}
}

// ListInstalled enumerates installed packages (pacman -Q / -Qe) and joins
// them with the dependency lists from a single pacman -Qi pass over the
// whole database.
func (it *Repository) ListInstalled(
	ctx context.Context,
	explicitOnly bool,
) ([]entities.PackageRecord, error) {
	queryArg := "-Q"
	if explicitOnly {
		queryArg = "-Qe"
	}

	queryOut, err := it.run(ctx, it.binary, queryArg)
	if err != nil {
		return nil, err
	}
	names := parseQuery(queryOut)

	infoOut, err := it.run(ctx, it.binary, "-Qi")
	if err != nil {
		return nil, err
	}

	dependencies := make(map[string][]string)
	for _, record := range parseInfo(infoOut) {
		dependencies[record.Name] = record.Dependencies
	}

	records := make([]entities.PackageRecord, 0, len(names))
	for _, name := range names {
		records = append(records, entities.PackageRecord{
			Name:         name,
			Dependencies: dependencies[name],
		})
	}
	return records, nil
}

// Dependencies returns the direct dependencies of a single package
// (pacman -Qi <name>). Unknown packages surface as an ExecutionError
// because pacman exits non-zero for them.
func (it *Repository) Dependencies(ctx context.Context, name string) ([]string, error) {
	infoOut, err := it.run(ctx, it.binary, "-Qi", name)
	if err != nil {
		return nil, err
	}

	records := parseInfo(infoOut)
	if len(records) == 0 {
		return nil, nil
	}
	// pacman resolves provision aliases, so trust the first stanza rather
	// than matching the queried name.
	return records[0].Dependencies, nil
}

// runCommand is the production runnerFunc built on exec.CommandContext.
func runCommand(ctx context.Context, binary string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, &entities.ExecutionError{
			Command: strings.Join(append([]string{binary}, args...), " "),
			Stderr:  strings.TrimSpace(stderr.String()),
			Err:     err,
		}
	}
	return stdout.Bytes(), nil
}

// parseQuery extracts package names from "name version" lines (pacman -Q).
func parseQuery(output []byte) []string {
	var names []string

	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) > 0 {
			names = append(names, fields[0])
		}
	}
	return names
}

// parseInfo extracts package records from pacman -Qi stanzas. Stanzas are
// blank-line separated "Key : value" blocks; long "Depends On" values wrap
// onto continuation lines that start with whitespace.
func parseInfo(output []byte) []entities.PackageRecord {
	var (
		records    []entities.PackageRecord
		collecting bool // currently inside a wrapped "Depends On" value
	)

	scanner := bufio.NewScanner(bytes.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()

		if strings.TrimSpace(line) == "" {
			collecting = false
			continue
		}

		if line[0] == ' ' || line[0] == '\t' {
			if collecting && len(records) > 0 {
				last := &records[len(records)-1]
				last.Dependencies = append(last.Dependencies, splitDependencyList(line)...)
			}
			continue
		}

		collecting = false
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		switch key {
		case "name":
			records = append(records, entities.PackageRecord{Name: value})
		case "depends on":
			if len(records) > 0 {
				records[len(records)-1].Dependencies = splitDependencyList(value)
				collecting = true
			}
		}
	}
	return records
}

// splitDependencyList splits a "Depends On" value into dependency tokens.
// pacman prints "None" for packages without dependencies.
func splitDependencyList(value string) []string {
	value = strings.TrimSpace(value)
	if value == "" || value == "None" {
		return nil
	}
	return strings.Fields(value)
}
