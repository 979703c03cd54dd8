// Package protogen rebuilds the generated protobuf code after the schema
// definition changes.
package protogen

import (
	"bytes"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// Runner mirrors the git package's command indirection so tests can
// stub out protoc.
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

// Generator runs protoc for a single schema file.
type Generator struct {
	// SchemaPath is the proto file, relative to the repository root.
	SchemaPath string
	RepoPath   string
	runner     Runner
}

func New(repoPath, schemaPath string) *Generator {
	return &Generator{RepoPath: repoPath, SchemaPath: schemaPath, runner: execRunner{}}
}

func NewWithRunner(repoPath, schemaPath string, runner Runner) *Generator {
	return &Generator{RepoPath: repoPath, SchemaPath: schemaPath, runner: runner}
}

// Regenerate invokes protoc in the schema's directory so the generated
// .pb.go lands next to its source.
func (g *Generator) Regenerate() error {
	protoDir := filepath.Join(g.RepoPath, filepath.Dir(g.SchemaPath))

	output, err := g.runner.Run(protoDir, "protoc",
		"--go_out=.",
		"--go_opt=paths=source_relative",
		filepath.Base(g.SchemaPath))
	if err != nil {
		msg := string(output)
		if strings.Contains(msg, "not found") || strings.Contains(err.Error(), "not found") {
			return fmt.Errorf("regenerate %s: %v\n%s\nInstall protoc: apt-get install protobuf-compiler (Ubuntu) or brew install protobuf (macOS)",
				g.SchemaPath, err, msg)
		}
		return fmt.Errorf("regenerate %s: %v\n%s", g.SchemaPath, err, msg)
	}

	return nil
}
