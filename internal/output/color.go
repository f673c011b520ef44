package output

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// Color modes accepted by the --color flag.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ResolveColorMode determines whether styling is enabled from the --color
// flag and the detected TTY state. Unknown values behave like "auto".
func ResolveColorMode(colorMode string, isTTY bool) bool {
	switch colorMode {
	case ColorNever:
		return false
	case ColorAlways:
		return true
	default:
		return isTTY
	}
}

// IsTTY checks if a writer is a terminal.
// Returns true only for os.File that is a terminal.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// ForCommand builds a Printer from the command's persistent --json and
// --color flags. Errors and warnings go to the command's stderr.
func ForCommand(cmd *cobra.Command) *Printer {
	jsonMode := flagValue(cmd, "json") == "true"
	styled := ResolveColorMode(flagValue(cmd, "color"), IsTTY(cmd.OutOrStdout()))
	return NewPrinter(cmd.OutOrStdout(), jsonMode, styled).WithStderr(cmd.ErrOrStderr())
}

// flagValue looks a flag up on the command, then on the root's persistent flags.
func flagValue(cmd *cobra.Command, name string) string {
	flag := cmd.Flags().Lookup(name)
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup(name)
	}
	if flag == nil {
		return ""
	}
	return flag.Value.String()
}
