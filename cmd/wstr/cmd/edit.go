package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/wstring/core/error"
	mdwlog "github.com/msto63/wstring/core/log"
	"github.com/msto63/wstring/core/wstring"
)

// editOptions holds the edit flags
type editOptions struct {
	trim     bool
	trimSet  string
	upper    bool
	lower    bool
	padLeft  int
	padRight int
	padChar  string
	replace  []string
	remove   []string
}

var editOpts editOptions

var editCmd = &cobra.Command{
	Use:   "edit <text>",
	Short: "Applies in-place edits to a string",
	Long: `Applies edits to the text and prints the result.

Edits run in this order: trim, remove, replace, upper, lower, pad-left,
pad-right. --replace and --remove may be repeated.

Examples:
  wstr edit "  hello  " --trim --upper
  wstr edit hello --replace l=LL
  wstr edit 42 --pad-left 5 --pad-char 0
  wstr edit "hello world" --remove 5:6`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	f := editCmd.Flags()
	f.BoolVar(&editOpts.trim, "trim", false, "trim whitespace at both ends")
	f.StringVar(&editOpts.trimSet, "trim-set", "", "bytes to trim instead of whitespace")
	f.BoolVar(&editOpts.upper, "upper", false, "convert ASCII letters to upper case")
	f.BoolVar(&editOpts.lower, "lower", false, "convert ASCII letters to lower case")
	f.IntVar(&editOpts.padLeft, "pad-left", 0, "pad at the start to this width")
	f.IntVar(&editOpts.padRight, "pad-right", 0, "pad at the end to this width")
	f.StringVar(&editOpts.padChar, "pad-char", " ", "fill byte for padding")
	f.StringArrayVar(&editOpts.replace, "replace", nil, "replace find=repl")
	f.StringArrayVar(&editOpts.remove, "remove", nil, "remove index[:count]")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	s := wstring.FromString(args[0])
	defer s.Release()
	if s.IsNull() {
		return allocationError("edit", s)
	}

	if err := applyEdits(s, editOpts); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), s.String())
	return nil
}

func applyEdits(s *wstring.String, opts editOptions) error {
	logger := mdwlog.GetDefault().WithName("edit")

	if opts.trim || opts.trimSet != "" {
		if opts.trimSet != "" {
			s.Trim(opts.trimSet)
		} else {
			s.Trim()
		}
	}

	for _, arg := range opts.remove {
		index, count, err := parseRemove(arg)
		if err != nil {
			return err
		}
		if count < 0 {
			s.Remove(index)
		} else {
			s.Remove(index, count)
		}
	}

	for _, arg := range opts.replace {
		find, repl, ok := strings.Cut(arg, "=")
		if !ok {
			return invalidFlag("replace", arg, "expected find=repl")
		}
		if !s.Replace(find, repl) {
			return allocationError("replace", s)
		}
		logger.Debug("replaced", mdwlog.Fields{"find": find, "replace": repl, "length": s.Len()})
	}

	if opts.upper {
		s.ToUpperCase()
	}
	if opts.lower {
		s.ToLowerCase()
	}

	if opts.padLeft > 0 || opts.padRight > 0 {
		if len(opts.padChar) != 1 {
			return invalidFlag("pad-char", opts.padChar, "expected a single byte")
		}
		c := opts.padChar[0]
		if opts.padLeft > 0 && s.PadLeft(opts.padLeft, c).Len() < opts.padLeft {
			return allocationError("pad-left", s)
		}
		if opts.padRight > 0 && s.PadRight(opts.padRight, c).Len() < opts.padRight {
			return allocationError("pad-right", s)
		}
	}
	return nil
}

// parseRemove parses "index" or "index:count"; count is -1 when omitted
func parseRemove(arg string) (int, int, error) {
	first, rest, hasCount := strings.Cut(arg, ":")
	index, err := strconv.Atoi(first)
	if err != nil {
		return 0, 0, invalidFlag("remove", arg, "index is not a number")
	}
	if !hasCount {
		return index, -1, nil
	}
	count, err := strconv.Atoi(rest)
	if err != nil || count < 0 {
		return 0, 0, invalidFlag("remove", arg, "count is not a non-negative number")
	}
	return index, count, nil
}

func invalidFlag(flag, value, reason string) error {
	return mdwerror.Newf("invalid --%s %q: %s", flag, value, reason).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("wstr.edit").
		WithDetail("flag", flag)
}
