package cmd

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vkcom/vk-cli/internal/api"
	"github.com/vkcom/vk-cli/internal/config"
	"github.com/vkcom/vk-cli/internal/debug"
	"github.com/vkcom/vk-cli/internal/dryrun"
	"github.com/vkcom/vk-cli/internal/iocontext"
	"github.com/vkcom/vk-cli/internal/outfmt"
	"github.com/vkcom/vk-cli/internal/resolve"
)

// envOutput selects the default output format.
const envOutput = "VK_OUTPUT"

// rootFlags holds global CLI flags
type rootFlags struct {
	Output     string
	JSON       bool
	Query      string
	JQ         string
	Template   string
	Compact    bool
	Debug      bool
	DryRun     bool
	Quiet      bool
	Profile    string
	Token      string
	APIVersion string
	Lang       string
	RPS        float64
	EnvFile    string
}

// flags holds the global command flags. It is package-level mutable state
// and MUST be reset at the start of every Execute() call; tests rely on it.
var flags = defaultFlags()

func defaultFlags() rootFlags {
	return rootFlags{
		Output: defaultOutput(),
		RPS:    api.UserTokenRPS,
	}
}

func defaultOutput() string {
	value := strings.TrimSpace(os.Getenv(envOutput))
	if value == "ndjson" {
		return "jsonl"
	}
	if value != "" {
		return value
	}
	return "text"
}

//go:embed help.txt
var helpText string

// Execute runs the root command
func Execute(ctx context.Context, args []string) error {
	// Variables already exported win over the .env file, so this runs
	// before the defaults below read the environment.
	config.LoadDefaultEnv()

	flags = defaultFlags()

	root := &cobra.Command{
		Use:                "vk",
		Short:              "Command-line client for the VK API",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true, // enhanceUnknownError provides did-you-mean
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if flags.EnvFile != "" {
				applied, err := config.LoadEnvFile(flags.EnvFile)
				if err != nil {
					return err
				}
				if flags.Debug {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "loaded %d variable(s) from %s\n", len(applied), flags.EnvFile)
				}
			}

			if flags.Output == "ndjson" {
				flags.Output = "jsonl"
			}
			if flags.JSON {
				if flagOrAliasChanged(cmd, "output") && flags.Output != "json" {
					return fmt.Errorf("--json conflicts with --output %s", flags.Output)
				}
				flags.Output = "json"
			}
			needsJSON := flags.Query != "" || flags.JQ != ""
			if needsJSON && flags.Output != "json" && flags.Output != "jsonl" {
				if flagOrAliasChanged(cmd, "output") {
					return fmt.Errorf("--jq/--query require --output json or jsonl (or --json)")
				}
				flags.Output = "json"
			}

			mode, err := outfmt.Parse(flags.Output)
			if err != nil {
				return err
			}
			ctx = outfmt.WithMode(ctx, mode)
			ctx = outfmt.WithCompact(ctx, flags.Compact)

			ioStreams := iocontext.DefaultIO()
			if flags.Quiet {
				ioStreams.ErrOut = io.Discard
				if mode == outfmt.Text {
					ioStreams.Out = io.Discard
				}
			}
			ctx = iocontext.WithIO(ctx, ioStreams)
			cmd.SetOut(ioStreams.Out)
			cmd.SetErr(ioStreams.ErrOut)

			debug.SetupLogger(ioStreams.ErrOut, flags.Debug)
			ctx = debug.WithDebug(ctx, flags.Debug)

			ctx = dryrun.WithDryRun(ctx, flags.DryRun)

			if query := getJQQuery(); query != "" {
				ctx = outfmt.WithQuery(ctx, query)
			}
			if flags.Template != "" {
				tmpl, err := loadTemplate(flags.Template)
				if err != nil {
					return err
				}
				ctx = outfmt.WithTemplate(ctx, tmpl)
			}

			if flags.RPS < 0 {
				return fmt.Errorf("--rps must be >= 0")
			}

			cmd.SetContext(ctx)
			return nil
		},
	}

	root.SetContext(ctx)
	root.SetArgs(args)
	defaultHelp := root.HelpFunc()
	root.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		if cmd.Name() == root.Name() && !cmd.HasParent() {
			_, _ = fmt.Fprint(cmd.OutOrStdout(), helpText)
			return
		}
		defaultHelp(cmd, args)
	})

	pf := root.PersistentFlags()
	pf.StringVarP(&flags.Output, "output", "o", flags.Output, "Output format: text|json|jsonl (env VK_OUTPUT)")
	pf.BoolVarP(&flags.JSON, "json", "j", false, "Shorthand for --output json")
	pf.StringVarP(&flags.Query, "query", "q", "", "JQ expression to filter JSON output")
	pf.StringVar(&flags.JQ, "jq", "", "Alias for --query")
	pf.StringVar(&flags.Template, "template", "", "Go template string (or @path) to render output")
	pf.BoolVar(&flags.Compact, "compact-json", false, "Compact JSON output (no indentation)")
	pf.BoolVar(&flags.Debug, "debug", false, "Enable debug logging")
	pf.BoolVar(&flags.DryRun, "dry-run", false, "Print the request instead of sending it")
	pf.BoolVarP(&flags.Quiet, "quiet", "Q", false, "Suppress non-essential output")
	pf.StringVar(&flags.Profile, "profile", "", "Credential profile to use (env VK_PROFILE)")
	pf.StringVar(&flags.Token, "token", "", "Access token (overrides profile and VK_ACCESS_TOKEN)")
	pf.StringVar(&flags.APIVersion, "api-version", "", "API version sent with requests (default "+api.DefaultAPIVersion+")")
	pf.StringVar(&flags.Lang, "lang", "", "Language of localized response fields (ru, en, ...)")
	pf.Float64Var(&flags.RPS, "rps", flags.RPS, "Max API requests per second (0 disables pacing)")
	pf.StringVar(&flags.EnvFile, "env-file", "", "Load VK_* variables from a .env file")

	flagAlias(pf, "dry-run", "dr")
	flagAlias(pf, "compact-json", "cj")
	flagAlias(pf, "template", "tpl")
	flagAlias(pf, "debug", "dbg")
	flagAlias(pf, "output", "out")

	root.AddCommand(newAuthCmd())
	root.AddCommand(newCallCmd())
	root.AddCommand(newMethodsCmd())
	root.AddCommand(newUploadCmd())
	root.AddCommand(newBatchCmd())
	root.AddCommand(newVersionCmd())
	for _, c := range newNamespaceCmds() {
		root.AddCommand(c)
	}

	targetCmd, err := root.ExecuteC()
	if err != nil {
		if !errors.Is(err, errAlreadyHandled) {
			_, _ = fmt.Fprintln(root.ErrOrStderr(), enhanceUnknownError(err, root, targetCmd))
		}
		return err
	}
	return nil
}

// enhanceUnknownError adds "did you mean?" suggestions to unknown command/flag errors.
// targetCmd is the command Cobra resolved before the error (may be root itself).
func enhanceUnknownError(err error, root *cobra.Command, targetCmd *cobra.Command) string {
	msg := err.Error()

	if strings.Contains(msg, "unknown command") {
		if unknown := extractQuoted(msg); unknown != "" {
			var names []string
			for _, c := range root.Commands() {
				if c.IsAvailableCommand() || c.Name() == "help" {
					names = append(names, c.Name())
					names = append(names, c.Aliases...)
				}
			}
			if suggestion := resolve.Closest(unknown, names); suggestion != "" {
				return fmt.Sprintf("%s\n\nDid you mean %q?", msg, suggestion)
			}
		}
	}

	if strings.Contains(msg, "unknown flag") || strings.Contains(msg, "unknown shorthand flag") {
		if unknown := extractFlag(msg); unknown != "" {
			seen := make(map[string]bool)
			var flagNames []string
			addFlags := func(fs *pflag.FlagSet) {
				fs.VisitAll(func(f *pflag.Flag) {
					for _, name := range []string{"--" + f.Name, "-" + f.Shorthand} {
						if name != "-" && !seen[name] {
							seen[name] = true
							flagNames = append(flagNames, name)
						}
					}
				})
			}
			helpCmd := "vk --help"
			if targetCmd != nil {
				addFlags(targetCmd.Flags())
				addFlags(targetCmd.InheritedFlags())
				helpCmd = targetCmd.CommandPath() + " --help"
			} else {
				addFlags(root.PersistentFlags())
			}
			if suggestion := resolve.Closest(unknown, flagNames); suggestion != "" {
				return fmt.Sprintf("%s\n\nDid you mean %q?\nRun %q to see supported flags.", msg, suggestion, helpCmd)
			}
			return fmt.Sprintf("%s\n\nRun %q to see supported flags.", msg, helpCmd)
		}
	}

	return msg
}

// extractQuoted extracts the first double-quoted substring from s.
func extractQuoted(s string) string {
	start := strings.IndexByte(s, '"')
	if start < 0 {
		return ""
	}
	end := strings.IndexByte(s[start+1:], '"')
	if end < 0 {
		return ""
	}
	return s[start+1 : start+1+end]
}

// extractFlag extracts a flag name (e.g., "--foo") from an error message.
func extractFlag(s string) string {
	idx := strings.Index(s, "--")
	if idx < 0 {
		// "unknown shorthand flag: 'a' in -a"
		idx = strings.LastIndex(s, " -")
		if idx < 0 {
			return ""
		}
		rest := strings.TrimSpace(s[idx+1:])
		if end := strings.IndexByte(rest, ' '); end >= 0 {
			rest = rest[:end]
		}
		rest = strings.TrimRight(rest, ".,;:!?\"'")
		if strings.HasPrefix(rest, "-") && len(rest) > 1 {
			return rest
		}
		return ""
	}
	rest := s[idx:]
	end := strings.IndexByte(rest, ' ')
	if end < 0 {
		end = len(rest)
	}
	return strings.TrimRight(rest[:end], ".,;:!?\"'")
}

func loadTemplate(value string) (string, error) {
	if path, ok := strings.CutPrefix(value, "@"); ok {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read template file: %w", err)
		}
		return string(data), nil
	}
	return value, nil
}
