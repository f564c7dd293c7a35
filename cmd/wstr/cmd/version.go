package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/wstring/core/wstring"
	"github.com/msto63/wstring/pkg/core/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Shows the version",
	Run: func(cmd *cobra.Command, args []string) {
		info := version.Current()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "wstr v%s (wstring v%s)\n", info.CLI, info.Library)
		fmt.Fprintf(out, "  Git Commit:   %s\n", info.GitCommit)
		fmt.Fprintf(out, "  Build Date:   %s\n", info.BuildDate)
		fmt.Fprintf(out, "  Go Version:   %s\n", info.GoVersion)
		fmt.Fprintf(out, "  OS/Arch:      %s\n", info.Platform)
		fmt.Fprintf(out, "  SSO Capacity: %d\n", wstring.SSOCapacity)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
