package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/msto63/wstring/core/alloc"
	"github.com/msto63/wstring/core/wstring"
)

var inspectNull bool

var inspectCmd = &cobra.Command{
	Use:   "inspect [text]",
	Short: "Shows how a value is stored",
	Long: `Builds a string from the argument and shows its storage mode, length,
capacity and raw bytes including the terminator.

Without an argument (or with --null) the null value is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectNull, "null", false, "inspect the null value")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	s := wstring.New()
	if len(args) > 0 && !inspectNull {
		if !s.SetString(args[0]) {
			return allocationError("inspect", s)
		}
	}
	defer s.Release()

	fmt.Fprintln(cmd.OutOrStdout(), renderInspect(s, wstring.Allocator()))
	return nil
}

func renderInspect(s *wstring.String, a alloc.Allocator) string {
	mode := "heap"
	switch {
	case s.IsNull():
		mode = "null"
	case s.IsInline():
		mode = "inline"
	}

	validity := okStyle.Render("valid")
	if !s.Valid() {
		validity = failStyle.Render("null")
	}

	rows := [][2]string{
		{"value", strconv.Quote(s.String())},
		{"state", validity},
		{"mode", mode},
		{"length", strconv.Itoa(s.Len())},
		{"capacity", strconv.Itoa(s.Cap())},
		{"bytes", hexBytes(s.CString())},
	}
	if r, ok := a.(alloc.Reporter); ok {
		st := r.Stats()
		rows = append(rows, [2]string{"heap", fmt.Sprintf("%d in use, %d peak, %d failures", st.InUse, st.Peak, st.Failures)})
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, titleStyle.Render("wstring"))
	for _, row := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(row[0]), valueStyle.Render(row[1])))
	}
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func hexBytes(b []byte) string {
	parts := make([]string, len(b))
	for i, c := range b {
		parts[i] = fmt.Sprintf("%02x", c)
	}
	return strings.Join(parts, " ")
}
