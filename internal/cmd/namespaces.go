package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vkcom/vk-cli/internal/actions"
	"github.com/vkcom/vk-cli/internal/iocontext"
)

// reservedFlags cannot be reused for method parameters; such parameters are
// passed with -f instead.
var reservedFlags = map[string]bool{
	"output": true, "json": true, "query": true, "jq": true, "template": true,
	"compact-json": true, "debug": true, "dry-run": true, "quiet": true,
	"profile": true, "token": true, "api-version": true, "lang": true,
	"rps": true, "env-file": true, "field": true, "raw-field": true,
	"data": true, "help": true,
}

// newNamespaceCmds builds one command per method namespace, with a
// subcommand per catalogued method.
func newNamespaceCmds() []*cobra.Command {
	var cmds []*cobra.Command
	for _, namespace := range actions.Namespaces() {
		cmds = append(cmds, newNamespaceCmd(namespace))
	}
	return cmds
}

func newNamespaceCmd(namespace string) *cobra.Command {
	var params paramFlags

	cmd := &cobra.Command{
		Use:   namespace + " <operation>",
		Short: fmt.Sprintf("Call %s.* methods", namespace),
		Long: strings.TrimSpace(fmt.Sprintf(`
Call a method of the %[1]s namespace. Each operation has typed flags for
its documented parameters; -f/-F/-d add any other parameter.

Operation names are matched case-insensitively; run 'vk methods %[1]s' for
the list.
`, namespace)),
		Args: cobra.ArbitraryArgs,
		// Operations that are not subcommands (different case, typos) land
		// here and go through the namespace lookup.
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			values, err := params.build(iocontext.GetIO(cmd.Context()).In)
			if err != nil {
				return err
			}
			return callOperation(cmd, namespace, args[0], values)
		}),
	}
	params.register(cmd)

	for _, m := range actions.Methods(namespace) {
		cmd.AddCommand(newMethodCmd(m))
	}
	return cmd
}

func newMethodCmd(m actions.Method) *cobra.Command {
	var params paramFlags
	typed := make(map[string]*string, len(m.Params))

	cmd := &cobra.Command{
		Use:   m.Name,
		Short: m.Summary,
		Long:  methodLong(m),
		Args:  cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			values, err := params.build(iocontext.GetIO(cmd.Context()).In)
			if err != nil {
				return err
			}
			for name, raw := range typed {
				if !flagOrAliasChanged(cmd, name) {
					continue
				}
				p, _ := m.Param(name)
				value, err := p.Coerce(*raw)
				if err != nil {
					return err
				}
				values[name] = value
			}
			return callOperation(cmd, m.Namespace, m.Name, values)
		}),
	}

	for _, p := range m.Params {
		if reservedFlags[p.Name] {
			continue
		}
		raw := new(string)
		typed[p.Name] = raw
		cmd.Flags().StringVar(raw, p.Name, "", paramUsage(p))
		if len(p.Values) > 0 {
			_ = cmd.RegisterFlagCompletionFunc(p.Name, cobra.FixedCompletions(p.Values, cobra.ShellCompDirectiveNoFileComp))
		}
		if dashed := strings.ReplaceAll(p.Name, "_", "-"); dashed != p.Name && !reservedFlags[dashed] {
			flagAlias(cmd.Flags(), p.Name, dashed)
		}
	}
	params.register(cmd)
	return cmd
}

// callOperation dispatches one namespace operation through the actions
// table and prints the result.
func callOperation(cmd *cobra.Command, namespace, operation string, values map[string]any) error {
	m, found := actions.Lookup(namespace, operation)
	if !found {
		return &actions.UnknownMethodError{
			Namespace:   namespace,
			Name:        operation,
			Suggestions: actions.Suggest(namespace, operation),
		}
	}

	client, token, err := newClientFactory().authedAPI()
	if err != nil {
		return err
	}
	ns, ok := actions.New(client).Namespace(namespace)
	if !ok {
		return fmt.Errorf("unknown namespace %q", namespace)
	}
	if handled, err := maybeDryRun(cmd, requestPreview(client, m.Remote, token, values)); handled {
		return err
	}

	resp, err := ns.Call(cmdContext(cmd), operation, token, values)
	if err != nil {
		return err
	}
	return printResponse(cmd, resp)
}

func paramUsage(p actions.Param) string {
	usage := p.Description
	if usage == "" {
		usage = p.Name
	}
	switch p.Type {
	case actions.ParamEnum:
		return fmt.Sprintf("%s (one of: %s)", usage, strings.Join(p.Values, ", "))
	case actions.ParamArray:
		return usage + " (comma-separated)"
	case "":
		return usage
	default:
		return fmt.Sprintf("%s (%s)", usage, p.Type)
	}
}

func methodLong(m actions.Method) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\nRemote method: %s", m.Summary, m.Remote)
	var shadowed []string
	for _, p := range m.Params {
		if reservedFlags[p.Name] {
			shadowed = append(shadowed, p.Name)
		}
	}
	if len(shadowed) > 0 {
		fmt.Fprintf(&b, "\n\nPass %s with -f (the flag names are global).", strings.Join(shadowed, ", "))
	}
	return b.String()
}
