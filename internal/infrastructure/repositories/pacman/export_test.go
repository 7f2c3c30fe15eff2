package pacman

// ParseQuery exports parseQuery for testing.
var ParseQuery = parseQuery //nolint:gochecknoglobals // test export

// ParseInfo exports parseInfo for testing.
var ParseInfo = parseInfo //nolint:gochecknoglobals // test export

// NewTestRepository creates a Repository backed by the given runner instead
// of a real pacman subprocess.
func NewTestRepository(run runnerFunc) *Repository {
	return &Repository{binary: defaultBinary, run: run}
}
