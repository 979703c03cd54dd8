package git

import (
	"fmt"
	"os"
	"path/filepath"
)

// ReadWorktreeFile reads a file relative to the repository work dir.
func (repo *GitRepo) ReadWorktreeFile(path string) (string, error) {
	data, err := os.ReadFile(filepath.Join(repo.WorkDir, path))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// Backup renames path to path.backup and returns the backup path. Any
// previous backup for the same file is overwritten.
func (repo *GitRepo) Backup(path string) (string, error) {
	abs := filepath.Join(repo.WorkDir, path)
	backup := abs + ".backup"

	if err := os.Rename(abs, backup); err != nil {
		return "", fmt.Errorf("backup %s: %w", path, err)
	}
	return backup, nil
}

// WriteResolved replaces a worktree file with resolved content, moving
// the original aside first so a bad merge is recoverable. If the write
// fails the backup is moved back.
func (repo *GitRepo) WriteResolved(path, content string) (string, error) {
	backup, err := repo.Backup(path)
	if err != nil {
		return "", err
	}

	abs := filepath.Join(repo.WorkDir, path)
	if err := os.WriteFile(abs, []byte(content), 0644); err != nil {
		_ = os.Rename(backup, abs)
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	return backup, nil
}
