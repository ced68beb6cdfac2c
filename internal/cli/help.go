package cli

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cobra"
)

var (
	// Matches section headers like "Usage:", "Flags:"
	sectionHeaderRe = regexp.MustCompile(`^[A-Z][A-Za-z ]+:$`)
	// Matches flag lines: "  -u, --user string   description"
	flagLineRe = regexp.MustCompile(`^( +)(-.+?)( {2,}.*)$`)
)

// colorizedHelpFunc returns a help function that prints the command summary
// followed by Cobra's usage text. Colors are only applied on a terminal.
func colorizedHelpFunc() func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()

		var buf strings.Builder
		if cmd.Short != "" {
			buf.WriteString(cmd.Short)
			buf.WriteString("\n\n")
		}
		buf.WriteString(cmd.UsageString())

		raw := strings.TrimRight(buf.String(), "\n") + "\n"
		if !isTerminal(out) {
			_, _ = fmt.Fprint(out, raw)
			return
		}

		var result strings.Builder
		for _, line := range strings.Split(strings.TrimSuffix(raw, "\n"), "\n") {
			result.WriteString(colorizeLine(line))
			result.WriteString("\n")
		}
		_, _ = fmt.Fprint(out, result.String())
	}
}

// colorizeLine applies color rules to a single line of help output.
func colorizeLine(line string) string {
	if sectionHeaderRe.MatchString(strings.TrimSpace(line)) {
		return Info(line)
	}

	if m := flagLineRe.FindStringSubmatch(line); m != nil {
		return m[1] + Primary(m[2]) + Silent(m[3])
	}

	return Text(line)
}
