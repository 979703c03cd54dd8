package cmd

import (
	"fmt"
	"os"

	"github.com/corpeningc/cmerge/internal/git"
	"github.com/corpeningc/cmerge/internal/logging"
	"github.com/corpeningc/cmerge/internal/protogen"
	"github.com/corpeningc/cmerge/internal/resolve"
	"github.com/corpeningc/cmerge/internal/ui"
	"github.com/spf13/cobra"
)

var (
	dryRun     bool
	skipPrompt bool
	pickFiles  bool
	noRegen    bool
	verbose    bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Resolve merge conflicts in the working tree",
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runResolve())
	},
}

func init() {
	resolveCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Show what would be done without making changes")
	resolveCmd.Flags().BoolVarP(&skipPrompt, "yes", "y", false, "Skip the confirmation prompt")
	resolveCmd.Flags().BoolVar(&pickFiles, "pick", false, "Interactively pick which conflicted files to resolve")
	resolveCmd.Flags().BoolVar(&noRegen, "no-regen", false, "Skip protoc regeneration after a schema merge")
	resolveCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every merge decision")
}

// logReporter forwards merge decisions to the structured log.
type logReporter struct {
	log *logging.Logger
}

func (r logReporter) FieldAdded(name, fieldType string, number int) {
	r.log.Info("adding field", "name", name, "type", fieldType, "number", number)
}

func (r logReporter) FieldSuperseded(name string) {
	r.log.Debug("incoming declaration wins", "name", name)
}

func (r logReporter) ImportMissing(path string) {
	r.log.Warn("import must be added manually", "import", path)
}

func (r logReporter) CaseAppended(typeTag string) {
	r.log.Info("appending dispatch case", "type", typeTag)
}

func runResolve() int {
	log := logging.New(os.Stderr, verbose)

	repo := git.New(repoPath)
	if !repo.IsRepo() {
		fmt.Fprintf(os.Stderr, "Not a git repository: %s\n", repoPath)
		return 1
	}

	files, err := repo.ConflictedFiles()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error checking git status: %v\n", err)
		return 1
	}

	if len(files) == 0 {
		fmt.Println("No merge conflicts found.")
		return 0
	}

	if pickFiles && !dryRun {
		files, err = ui.PickFiles(files)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error selecting files: %v\n", err)
			return 1
		}
		if len(files) == 0 {
			fmt.Println("No files selected.")
			return 0
		}
	}

	config := resolve.Config{SchemaPath: protoFile, CompanionPath: secretFile}
	orch := resolve.NewOrchestrator(config, logReporter{log: log})

	var candidates []resolve.Candidate
	readFailed := false
	for _, file := range files {
		buffer, err := repo.ReadWorktreeFile(file)
		if err != nil {
			// A bad file should not stop the rest of the batch.
			log.Error("skipping unreadable file", "path", file, "err", err)
			readFailed = true
			continue
		}
		candidates = append(candidates, resolve.Candidate{Path: file, Buffer: buffer})
	}

	summary := orch.Run(candidates)
	fmt.Print(ui.RenderSummary(summary, dryRun))

	failed := readFailed || len(summary.Unresolved) > 0

	if dryRun {
		if summary.SchemaResolved && !noRegen {
			fmt.Println("Would regenerate generated protobuf code.")
		}
		if failed {
			return 1
		}
		return 0
	}

	if !skipPrompt && len(summary.Resolved) > 0 {
		ok, err := ui.ConfirmWrite(len(summary.Resolved))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading confirmation: %v\n", err)
			return 1
		}
		if !ok {
			fmt.Println("Aborted, nothing written.")
			return 1
		}
	}

	var written []string
	for _, outcome := range summary.Resolved {
		if !outcome.Changed {
			// Listed as conflicted but had no markers; stage as-is.
			written = append(written, outcome.Path)
			continue
		}
		backup, err := repo.WriteResolved(outcome.Path, outcome.Merged)
		if err != nil {
			log.Error("failed to write resolved file", "path", outcome.Path, "err", err)
			failed = true
			continue
		}
		log.Debug("wrote resolved file", "path", outcome.Path, "backup", backup)
		written = append(written, outcome.Path)
	}

	if summary.SchemaResolved && !noRegen {
		gen := protogen.New(repoPath, protoFile)
		if err := gen.Regenerate(); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			return 1
		}
		fmt.Println("Regenerated protobuf code.")
	}

	if len(written) > 0 {
		if err := repo.AddFiles(written); err != nil {
			fmt.Fprintf(os.Stderr, "Error staging resolved files: %v\n", err)
			return 1
		}
		fmt.Printf("Staged %d resolved file(s).\n", len(written))
	}

	if failed {
		fmt.Println("Some files still contain conflict markers and need manual resolution.")
		return 1
	}

	fmt.Println(ui.RenderNextSteps())
	return 0
}
