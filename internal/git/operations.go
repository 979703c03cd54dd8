package git

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Runner executes a command in a directory and returns its combined
// output. The indirection exists so tests can run without a git binary.
type Runner interface {
	Run(dir string, name string, args ...string) ([]byte, error)
}

type execRunner struct{}

func (execRunner) Run(dir string, name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	err := cmd.Run()
	return out.Bytes(), err
}

type GitRepo struct {
	WorkDir string
	runner  Runner
}

func New(workDir string) *GitRepo {
	return &GitRepo{WorkDir: workDir, runner: execRunner{}}
}

// NewWithRunner creates a GitRepo backed by a custom runner, for tests.
func NewWithRunner(workDir string, runner Runner) *GitRepo {
	return &GitRepo{WorkDir: workDir, runner: runner}
}

func commandError(operation string, err error, output []byte) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s failed: %v\nOutput: %s", operation, err, output)
}

// IsRepo reports whether the work dir is inside a git repository.
func (repo *GitRepo) IsRepo() bool {
	_, err := os.Stat(filepath.Join(repo.WorkDir, ".git"))
	return err == nil
}

func (repo *GitRepo) GetCurrentBranch() (string, error) {
	output, err := repo.runner.Run(repo.WorkDir, "git", "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", commandError("get current branch", err, output)
	}
	return strings.TrimSpace(string(output)), nil
}

func (repo *GitRepo) AddFiles(files []string) error {
	if len(files) == 0 {
		return nil
	}

	args := append([]string{"add"}, files...)
	output, err := repo.runner.Run(repo.WorkDir, "git", args...)
	return commandError("add files", err, output)
}
