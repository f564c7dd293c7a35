package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/wstring/core/wstring"
)

var (
	searchLast       bool
	searchFrom       int
	searchIgnoreCase bool
)

var searchCmd = &cobra.Command{
	Use:   "search <text> <needle>",
	Short: "Finds a needle in a string",
	Long: `Prints the index of the first (or with --last the last) occurrence of
needle in text, or -1 when it does not occur.

--from starts a forward search at that index; a backward search only accepts
matches starting at or before it.`,
	Args: cobra.ExactArgs(2),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchLast, "last", false, "search backwards")
	searchCmd.Flags().IntVar(&searchFrom, "from", -1, "start index (default: whole string)")
	searchCmd.Flags().BoolVarP(&searchIgnoreCase, "ignore-case", "i", false, "fold ASCII letters")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	haystack := wstring.FromString(args[0])
	needle := wstring.FromString(args[1])
	defer haystack.Release()
	defer needle.Release()
	if haystack.IsNull() || needle.IsNull() {
		return allocationError("search", haystack)
	}

	if searchIgnoreCase {
		haystack.ToLowerCase()
		needle.ToLowerCase()
	}

	fmt.Fprintln(cmd.OutOrStdout(), search(haystack, needle.String(), searchLast, searchFrom))
	return nil
}

func search(s *wstring.String, needle string, last bool, from int) int {
	var opt []int
	if from >= 0 {
		opt = []int{from}
	}
	if last {
		return s.LastIndexOf(needle, opt...)
	}
	return s.IndexOf(needle, opt...)
}
