package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/domrep/pkg/errors"
	"github.com/matzehuels/domrep/pkg/observability"
)

// Run executes the domrep CLI with args (without the program name).
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level, including one line per encoded image
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
//
// Example:
//
//	func main() {
//	    if err := cli.Run(ctx, os.Args[1:]); err != nil {
//	        cli.ReportError(os.Stderr, err)
//	        os.Exit(1)
//	    }
//	}
func Run(ctx context.Context, args []string) error {
	var verbose bool

	c := New(os.Stderr, LogInfo)
	root := c.RootCommand()
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		level := LogInfo
		if verbose {
			level = LogDebug
		}
		c.SetLogLevel(level)
		observability.SetEncodeHooks(encodeLogHooks{logger: c.Logger})
		cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	}
	defer observability.Reset()

	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// ReportError prints err for humans: the message of a structured error
// without its code, prefixed by the error icon.
func ReportError(w io.Writer, err error) {
	msg := errors.UserMessage(err)
	if code := errors.GetCode(err); code != "" {
		msg += " " + StyleDim.Render("("+string(code)+")")
	}
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+msg)
}
