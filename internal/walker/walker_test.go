package walker

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "fantasybasket.io/replace-errors/internal/pkg/errors"
)

func touch(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func collect(t *testing.T, root string) ([]string, []error) {
	t.Helper()
	var paths []string
	var errs []error
	for path, err := range Candidates(root) {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		rel, relErr := filepath.Rel(root, path)
		require.NoError(t, relErr)
		paths = append(paths, filepath.ToSlash(rel))
	}
	return paths, errs
}

func TestIsCandidate(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"FooHandler.cs", true},
		{"Handler.cs", true},
		{"GetMyRosterHandler.cs", true},
		{"Foohandler.cs", false},
		{"FooHandler.CS", false},
		{"FooHandler.cs.bak", false},
		{"BarService.cs", false},
		{"FooHandler.go", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsCandidate(tt.name))
		})
	}
}

func TestCandidates_SelectsRecursively(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "FooHandler.cs")
	touch(t, root, "BarService.cs")
	touch(t, root, "Features/Team/ReleasePlayer/ReleasePlayerHandler.cs")
	touch(t, root, "Features/Team/ReleasePlayer/ReleasePlayerCommand.cs")
	touch(t, root, "bin/Debug/CachedHandler.cs")
	touch(t, root, "node_modules/pkg/VendorHandler.cs")
	touch(t, root, "Features/lowerhandler.cs")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "DirHandler.cs"), 0o755))

	paths, errs := collect(t, root)
	require.Empty(t, errs)
	require.ElementsMatch(t, []string{
		"FooHandler.cs",
		"Features/Team/ReleasePlayer/ReleasePlayerHandler.cs",
		"bin/Debug/CachedHandler.cs",
		"node_modules/pkg/VendorHandler.cs",
	}, paths)
}

func TestCandidates_NoMatches(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "Program.cs")
	touch(t, root, "Services/TradeService.cs")

	paths, errs := collect(t, root)
	require.Empty(t, errs)
	require.Empty(t, paths)
}

func TestCandidates_MissingRoot(t *testing.T) {
	paths, errs := collect(t, filepath.Join(t.TempDir(), "missing"))
	require.Empty(t, paths)
	require.Len(t, errs, 1)
	require.True(t, apperrors.HasCode(errs[0], apperrors.CodeWalk))
}

func TestCandidates_UnreadableSubtreeContinues(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced")
	}

	root := t.TempDir()
	touch(t, root, "a/LockedHandler.cs")
	touch(t, root, "b/OpenHandler.cs")

	locked := filepath.Join(root, "a")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	paths, errs := collect(t, root)
	require.Equal(t, []string{"b/OpenHandler.cs"}, paths)
	require.Len(t, errs, 1)
}

func TestCandidates_StopEarly(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "AHandler.cs")
	touch(t, root, "BHandler.cs")
	touch(t, root, "CHandler.cs")

	n := 0
	for _, err := range Candidates(root) {
		require.NoError(t, err)
		n++
		break
	}
	require.Equal(t, 1, n)
}

func TestCandidates_SymlinkToDirectorySkipped(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need extra privileges")
	}

	root := t.TempDir()
	touch(t, root, "real/InnerHandler.cs")
	touch(t, root, "FileHandler.cs")
	require.NoError(t, os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "LinkedHandler.cs")))
	require.NoError(t, os.Symlink(filepath.Join(root, "FileHandler.cs"), filepath.Join(root, "AliasHandler.cs")))

	paths, errs := collect(t, root)
	require.Empty(t, errs)
	require.ElementsMatch(t, []string{
		"AliasHandler.cs",
		"FileHandler.cs",
		"real/InnerHandler.cs",
	}, paths)
}
