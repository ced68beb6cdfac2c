package cli

import (
	"errors"
	"fmt"

	"github.com/greeting-cli/greeting/internal/greeting"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the greeting command. Every call returns a fresh command
// so parsed flag values never leak from one run into the next.
func NewRootCmd() *cobra.Command {
	cmd := LeafCommand{
		Use:   "greeting",
		Short: "A simple greeting application",
		Args:  noArgs,
		StrFlags: []StringFlag{
			{Name: "user", Shorthand: "u", Usage: "name to greet", Default: greeting.DefaultUserName},
		},
		BoolFlags: []BoolFlag{
			{Name: "json", Usage: "print the greeting as JSON"},
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := configFromFlags(cmd)
			if err != nil {
				return err
			}
			return runGreeting(cmd, cfg)
		},
	}.Build()

	cmd.Version = versionString()
	cmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &ArgumentError{Err: err}
	})
	cmd.SetHelpFunc(colorizedHelpFunc())
	return cmd
}

func noArgs(_ *cobra.Command, args []string) error {
	if len(args) > 0 {
		return newArgumentError("unexpected argument %q", args[0])
	}
	return nil
}

func configFromFlags(cmd *cobra.Command) (greeting.Config, error) {
	cfg := greeting.DefaultConfig()

	name, err := cmd.Flags().GetString("user")
	if err != nil {
		return cfg, err
	}
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return cfg, err
	}

	cfg.UserName = name
	cfg.JSON = asJSON
	return cfg, nil
}

func runGreeting(cmd *cobra.Command, cfg greeting.Config) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), greeting.Render(cfg))
	return err
}

// Execute parses args (without the program name) and runs the command.
// Diagnostics are written to stderr; use ExitCode to turn the returned
// error into a process status.
func Execute(args []string) error {
	return execute(NewRootCmd(), args)
}

func execute(cmd *cobra.Command, args []string) error {
	if args == nil {
		// cobra falls back to os.Args when given nil
		args = []string{}
	}
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err != nil {
		reportError(cmd, err)
	}
	return err
}

func reportError(cmd *cobra.Command, err error) {
	w := cmd.ErrOrStderr()

	msg := "error: " + err.Error()
	if isTerminal(w) {
		msg = Error(msg)
	}
	_, _ = fmt.Fprintln(w, msg)

	var argErr *ArgumentError
	if errors.As(err, &argErr) {
		_, _ = fmt.Fprint(w, cmd.UsageString())
	}
}
