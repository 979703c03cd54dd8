package cmd

import (
	"github.com/corpeningc/cmerge/internal/resolve"
	"github.com/spf13/cobra"
)

var (
	repoPath   string
	protoFile  string
	secretFile string
)

var rootCmd = &cobra.Command{
	Use:   "cmerge",
	Short: "Format-aware merge conflict resolver",
	Long: "Resolves git merge conflicts in proto schema and generated-code companion files\n" +
		"by taking incoming changes as the base and folding in current-branch additions\n" +
		"with fresh field numbers.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&repoPath, "repo-path", ".", "Path to the repository")
	rootCmd.PersistentFlags().StringVar(&protoFile, "proto-file", resolve.DefaultConfig().SchemaPath, "Schema file that gets field renumbering")
	rootCmd.PersistentFlags().StringVar(&secretFile, "secret-file", resolve.DefaultConfig().CompanionPath, "Companion file that gets import/case merging")

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(shellCmd)
}
