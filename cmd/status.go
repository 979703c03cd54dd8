package cmd

import (
	"fmt"
	"os"

	"github.com/corpeningc/cmerge/internal/git"
	"github.com/corpeningc/cmerge/internal/resolve"
	"github.com/corpeningc/cmerge/internal/ui"
	"github.com/spf13/cobra"
)

var viewConflicts bool

var statusCmd = &cobra.Command{
	Use:   "status [file]",
	Short: "List conflicted files and the strategy each would get",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		repo := git.New(repoPath)
		if !repo.IsRepo() {
			fmt.Fprintf(os.Stderr, "Not a git repository: %s\n", repoPath)
			os.Exit(1)
		}

		files, err := repo.ConflictedFiles()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error checking git status: %v\n", err)
			os.Exit(1)
		}

		if len(files) == 0 {
			if repo.MergeInProgress() {
				fmt.Println("Merge in progress, but no unmerged files remain.")
			} else {
				fmt.Println("No merge conflicts found.")
			}
			return
		}

		config := resolve.Config{SchemaPath: protoFile, CompanionPath: secretFile}

		if viewConflicts {
			target := files[0]
			if len(args) == 1 {
				target = args[0]
			}
			content, err := repo.ReadWorktreeFile(target)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", target, err)
				os.Exit(1)
			}
			if err := ui.ViewConflicts(target, content); err != nil {
				fmt.Fprintf(os.Stderr, "Error showing conflicts: %v\n", err)
				os.Exit(1)
			}
			return
		}

		fmt.Printf("Found %d conflicted file(s):\n", len(files))
		for _, file := range files {
			fmt.Printf("  - %s (%s)\n", file, config.Classify(file))
		}
	},
}

func init() {
	statusCmd.Flags().BoolVar(&viewConflicts, "view", false, "Open a pager showing the conflict blocks")
}
