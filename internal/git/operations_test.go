package git

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCall struct {
	dir  string
	name string
	args []string
}

// mockRunner is a test double for Runner returning canned responses.
type mockRunner struct {
	calls   []mockCall
	outputs [][]byte
	errs    []error
	index   int
}

func (m *mockRunner) addResponse(output []byte, err error) {
	m.outputs = append(m.outputs, output)
	m.errs = append(m.errs, err)
}

func (m *mockRunner) Run(dir string, name string, args ...string) ([]byte, error) {
	m.calls = append(m.calls, mockCall{dir: dir, name: name, args: args})
	idx := m.index
	m.index++
	if idx < len(m.outputs) {
		return m.outputs[idx], m.errs[idx]
	}
	return nil, nil
}

func TestConflictedFiles(t *testing.T) {
	runner := &mockRunner{}
	runner.addResponse([]byte(
		"UU binary/proto/scan_result.proto\n"+
			"AA binary/proto/secret.go\n"+
			"M  cmd/root.go\n"+
			"?? scratch.txt\n"), nil)

	repo := NewWithRunner("/repo", runner)
	files, err := repo.ConflictedFiles()
	require.NoError(t, err)

	assert.Equal(t, []string{"binary/proto/scan_result.proto", "binary/proto/secret.go"}, files)
	require.Len(t, runner.calls, 1)
	assert.Equal(t, "/repo", runner.calls[0].dir)
	assert.Equal(t, []string{"status", "--porcelain"}, runner.calls[0].args)
}

func TestConflictedFiles_QuotedPath(t *testing.T) {
	runner := &mockRunner{}
	runner.addResponse([]byte("UU \"path with spaces.txt\"\n"), nil)

	repo := NewWithRunner("/repo", runner)
	files, err := repo.ConflictedFiles()
	require.NoError(t, err)
	assert.Equal(t, []string{"path with spaces.txt"}, files)
}

func TestConflictedFiles_None(t *testing.T) {
	runner := &mockRunner{}
	runner.addResponse([]byte(""), nil)

	repo := NewWithRunner("/repo", runner)
	files, err := repo.ConflictedFiles()
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestConflictedFiles_CommandFailure(t *testing.T) {
	runner := &mockRunner{}
	runner.addResponse([]byte("fatal: not a git repository"), errors.New("exit status 128"))

	repo := NewWithRunner("/repo", runner)
	_, err := repo.ConflictedFiles()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status failed")
	assert.Contains(t, err.Error(), "not a git repository")
}

func TestAddFiles(t *testing.T) {
	runner := &mockRunner{}
	repo := NewWithRunner("/repo", runner)

	err := repo.AddFiles([]string{"a.proto", "b.go"})
	require.NoError(t, err)

	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{"add", "a.proto", "b.go"}, runner.calls[0].args)
}

func TestAddFiles_EmptyIsNoop(t *testing.T) {
	runner := &mockRunner{}
	repo := NewWithRunner("/repo", runner)

	require.NoError(t, repo.AddFiles(nil))
	assert.Empty(t, runner.calls)
}

func TestGetCurrentBranch(t *testing.T) {
	runner := &mockRunner{}
	runner.addResponse([]byte("feature/add-extractor\n"), nil)

	repo := NewWithRunner("/repo", runner)
	branch, err := repo.GetCurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, "feature/add-extractor", branch)
}

func TestIsRepoAndMergeInProgress(t *testing.T) {
	dir := t.TempDir()
	repo := New(dir)

	assert.False(t, repo.IsRepo())
	assert.False(t, repo.MergeInProgress())

	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0755))
	assert.True(t, repo.IsRepo())
	assert.False(t, repo.MergeInProgress())

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".git", "MERGE_HEAD"), []byte("abc123\n"), 0644))
	assert.True(t, repo.MergeInProgress())
}
