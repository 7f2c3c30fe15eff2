//go:build unit

package pacman_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/packagecount/internal/domain/entities"
	"github.com/rios0rios0/packagecount/internal/infrastructure/repositories/pacman"
)

const queryOutput = `audacity 1:3.4.2-2
glibc 2.39-1
vlc 3.0.20-4
`

const infoOutput = `Name            : audacity
Version         : 1:3.4.2-2
Description     : A multitrack audio editor
Depends On      : gcc-libs  glibc  gtk3  libid3tag
                  libmad  portaudio
Optional Deps   : ffmpeg: additional import/export formats
Installed Size  : 48.23 MiB

Name            : glibc
Version         : 2.39-1
Description     : GNU C Library
Depends On      : None
Installed Size  : 47.62 MiB

Name            : vlc
Version         : 3.0.20-4
Description     : Multi-platform MPEG, VCD/DVD, and DivX player
Depends On      : abseil-cpp  aribb24  qt5-base>=5.15
Installed Size  : 57.04 MiB
`

func TestParseQuery(t *testing.T) {
	t.Parallel()

	t.Run("should extract the package name from each line", func(t *testing.T) {
		t.Parallel()

		// when
		names := pacman.ParseQuery([]byte(queryOutput))

		// then
		assert.Equal(t, []string{"audacity", "glibc", "vlc"}, names)
	})

	t.Run("should skip blank lines", func(t *testing.T) {
		t.Parallel()

		// when
		names := pacman.ParseQuery([]byte("git 2.45.0-1\n\n\nvim 9.1-1\n"))

		// then
		assert.Equal(t, []string{"git", "vim"}, names)
	})

	t.Run("should return nothing for empty output", func(t *testing.T) {
		t.Parallel()

		// when
		names := pacman.ParseQuery(nil)

		// then
		assert.Empty(t, names)
	})
}

func TestParseInfo(t *testing.T) {
	t.Parallel()

	t.Run("should parse one record per stanza", func(t *testing.T) {
		t.Parallel()

		// when
		records := pacman.ParseInfo([]byte(infoOutput))

		// then
		require.Len(t, records, 3)
		assert.Equal(t, "audacity", records[0].Name)
		assert.Equal(t, "glibc", records[1].Name)
		assert.Equal(t, "vlc", records[2].Name)
	})

	t.Run("should join wrapped Depends On continuation lines", func(t *testing.T) {
		t.Parallel()

		// when
		records := pacman.ParseInfo([]byte(infoOutput))

		// then
		require.Len(t, records, 3)
		assert.Equal(t,
			[]string{"gcc-libs", "glibc", "gtk3", "libid3tag", "libmad", "portaudio"},
			records[0].Dependencies)
	})

	t.Run("should treat None as zero dependencies", func(t *testing.T) {
		t.Parallel()

		// when
		records := pacman.ParseInfo([]byte(infoOutput))

		// then
		require.Len(t, records, 3)
		assert.Empty(t, records[1].Dependencies)
	})

	t.Run("should keep version constraints attached to the dependency token", func(t *testing.T) {
		t.Parallel()

		// when
		records := pacman.ParseInfo([]byte(infoOutput))

		// then
		require.Len(t, records, 3)
		assert.Contains(t, records[2].Dependencies, "qt5-base>=5.15")
	})

	t.Run("should not treat Optional Deps continuations as dependencies", func(t *testing.T) {
		t.Parallel()

		// given
		output := `Name            : wine
Depends On      : glibc
Optional Deps   : cups: for printing
                  samba: for win32 shares
`

		// when
		records := pacman.ParseInfo([]byte(output))

		// then
		require.Len(t, records, 1)
		assert.Equal(t, []string{"glibc"}, records[0].Dependencies)
	})
}

func TestRepositoryListInstalled(t *testing.T) {
	t.Parallel()

	t.Run("should join query names with info dependency lists", func(t *testing.T) {
		t.Parallel()

		// given
		var calls [][]string
		repo := pacman.NewTestRepository(func(_ context.Context, binary string, args ...string) ([]byte, error) {
			calls = append(calls, append([]string{binary}, args...))
			if args[0] == "-Qe" {
				return []byte(queryOutput), nil
			}
			return []byte(infoOutput), nil
		})

		// when
		records, err := repo.ListInstalled(context.Background(), true)

		// then
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, "audacity", records[0].Name)
		assert.Equal(t, 6, records[0].DependencyCount())
		assert.Equal(t, "glibc", records[1].Name)
		assert.Zero(t, records[1].DependencyCount())
		require.Len(t, calls, 2)
		assert.Equal(t, []string{"pacman", "-Qe"}, calls[0])
		assert.Equal(t, []string{"pacman", "-Qi"}, calls[1])
	})

	t.Run("should query the whole database when explicitOnly is off", func(t *testing.T) {
		t.Parallel()

		// given
		var firstArgs []string
		repo := pacman.NewTestRepository(func(_ context.Context, _ string, args ...string) ([]byte, error) {
			if firstArgs == nil {
				firstArgs = args
			}
			return nil, nil
		})

		// when
		_, err := repo.ListInstalled(context.Background(), false)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"-Q"}, firstArgs)
	})

	t.Run("should surface runner failures as ExecutionError", func(t *testing.T) {
		t.Parallel()

		// given
		repo := pacman.NewTestRepository(func(_ context.Context, _ string, _ ...string) ([]byte, error) {
			return nil, &entities.ExecutionError{
				Command: "pacman -Qe",
				Err:     errors.New("executable file not found in $PATH"),
			}
		})

		// when
		_, err := repo.ListInstalled(context.Background(), true)

		// then
		var execErr *entities.ExecutionError
		require.ErrorAs(t, err, &execErr)
		assert.Equal(t, "pacman -Qe", execErr.Command)
	})
}

func TestRepositoryDependencies(t *testing.T) {
	t.Parallel()

	t.Run("should return the first stanza's dependency list", func(t *testing.T) {
		t.Parallel()

		// given
		repo := pacman.NewTestRepository(func(_ context.Context, _ string, args ...string) ([]byte, error) {
			assert.Equal(t, []string{"-Qi", "vlc"}, args)
			return []byte(`Name            : vlc
Depends On      : abseil-cpp  aribb24
`), nil
		})

		// when
		deps, err := repo.Dependencies(context.Background(), "vlc")

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"abseil-cpp", "aribb24"}, deps)
	})

	t.Run("should propagate the runner error for unknown packages", func(t *testing.T) {
		t.Parallel()

		// given
		repo := pacman.NewTestRepository(func(_ context.Context, _ string, _ ...string) ([]byte, error) {
			return nil, &entities.ExecutionError{
				Command: "pacman -Qi nope",
				Stderr:  "error: package 'nope' was not found",
				Err:     errors.New("exit status 1"),
			}
		})

		// when
		_, err := repo.Dependencies(context.Background(), "nope")

		// then
		var execErr *entities.ExecutionError
		require.ErrorAs(t, err, &execErr)
		assert.Contains(t, execErr.Stderr, "was not found")
	})
}
