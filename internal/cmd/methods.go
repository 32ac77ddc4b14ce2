package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vkcom/vk-cli/internal/actions"
	"github.com/vkcom/vk-cli/internal/iocontext"
	"github.com/vkcom/vk-cli/internal/resolve"
)

type methodInfo struct {
	Method    string      `json:"method"`
	Namespace string      `json:"namespace"`
	Name      string      `json:"name"`
	Summary   string      `json:"summary"`
	Params    []paramInfo `json:"params,omitempty"`
}

type paramInfo struct {
	Name        string   `json:"name"`
	Type        string   `json:"type,omitempty"`
	Values      []string `json:"values,omitempty"`
	Description string   `json:"description,omitempty"`
}

func newMethodInfo(m actions.Method, withParams bool) methodInfo {
	info := methodInfo{Method: m.Remote, Namespace: m.Namespace, Name: m.Name, Summary: m.Summary}
	if withParams {
		for _, p := range m.Params {
			info.Params = append(info.Params, paramInfo{
				Name:        p.Name,
				Type:        string(p.Type),
				Values:      p.Values,
				Description: p.Description,
			})
		}
	}
	return info
}

func newMethodsCmd() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "methods [namespace|method]",
		Short: "List catalogued methods",
		Long:  "List the methods available as typed commands, or describe one method and its parameters.",
		Example: strings.TrimSpace(`
  vk methods
  vk methods wall
  vk methods wall.post
  vk methods --search getcom
`),
		Args: cobra.MaximumNArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && strings.Contains(args[0], ".") {
				m, ok := actions.LookupRemote(args[0])
				if !ok {
					return unknownRemote(args[0])
				}
				return describeMethod(cmd, m)
			}

			list := actions.All()
			if len(args) == 1 {
				namespace, err := resolve.FuzzyMatch(args[0], actions.Namespaces())
				if err != nil {
					return fmt.Errorf("unknown namespace: %w", err)
				}
				list = actions.Methods(namespace)
			}
			if search != "" {
				list = searchMethods(list, search)
			}

			infos := make([]methodInfo, 0, len(list))
			for _, m := range list {
				infos = append(infos, newMethodInfo(m, false))
			}

			f := newFormatter(cmd)
			if handled, err := f.Output(infos); handled {
				return err
			}
			if len(infos) == 0 {
				f.Empty("No methods found")
				return nil
			}
			f.StartTable([]string{"METHOD", "SUMMARY"})
			for _, info := range infos {
				f.Row(info.Method, truncate(info.Summary, 80))
			}
			return f.EndTable()
		}),
	}

	cmd.Flags().StringVarP(&search, "search", "s", "", "Fuzzy-match method names")
	return cmd
}

// searchMethods ranks list by fuzzy match of query against remote names.
func searchMethods(list []actions.Method, query string) []actions.Method {
	names := make([]string, len(list))
	byName := make(map[string]actions.Method, len(list))
	for i, m := range list {
		names[i] = m.Remote
		byName[m.Remote] = m
	}
	var out []actions.Method
	for _, match := range resolve.FuzzyMatchAll(query, names, len(names)) {
		out = append(out, byName[match.Name])
	}
	return out
}

func describeMethod(cmd *cobra.Command, m actions.Method) error {
	info := newMethodInfo(m, true)
	f := newFormatter(cmd)
	if handled, err := f.Output(info); handled {
		return err
	}

	out := iocontext.GetIO(cmd.Context()).Out
	_, _ = fmt.Fprintf(out, "%s\n  %s\n\nUsage: vk %s %s [flags]\n", info.Method, info.Summary, m.Namespace, m.Name)
	if len(info.Params) == 0 {
		return nil
	}
	_, _ = fmt.Fprintln(out, "\nParameters:")
	f.StartTable([]string{"NAME", "TYPE", "DESCRIPTION"})
	for _, p := range info.Params {
		typ := p.Type
		if len(p.Values) > 0 {
			typ += " (" + strings.Join(p.Values, "|") + ")"
		}
		f.Row(p.Name, typ, truncate(p.Description, 70))
	}
	return f.EndTable()
}

func unknownRemote(remote string) error {
	namespace, name, _ := strings.Cut(remote, ".")
	if !slices.Contains(actions.Namespaces(), namespace) {
		return fmt.Errorf("unknown method %q", remote)
	}
	return &actions.UnknownMethodError{
		Namespace:   namespace,
		Name:        name,
		Suggestions: actions.Suggest(namespace, name),
	}
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}
