package cmd

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vkcom/vk-cli/internal/api"
	"github.com/vkcom/vk-cli/internal/dryrun"
	"github.com/vkcom/vk-cli/internal/iocontext"
	"github.com/vkcom/vk-cli/internal/validation"
)

func newCallCmd() *cobra.Command {
	var params paramFlags

	cmd := &cobra.Command{
		Use:     "call <method>",
		Aliases: []string{"api"},
		Short:   "Call any API method",
		Long: strings.TrimSpace(`
Call an API method by name and print the "response" member of the reply.

Parameters come from --data (a JSON object), then -f key=value string
fields, then -F key=<json> typed fields; later sources overwrite earlier
ones. Arrays are sent comma-joined and booleans as 1/0.
`),
		Example: strings.TrimSpace(`
  vk call users.get -f user_ids=1,210700286 -f fields=photo_100
  vk call wall.post -F owner_id=-1 -f message=hello --dry-run
  vk call execute -f code='return API.users.get({"user_ids": 1});'
  echo '{"count": 5}' | vk call newsfeed.get -d -
`),
		Args: cobra.ExactArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			method := args[0]
			if err := validation.ValidateMethodName(method); err != nil {
				return err
			}
			values, err := params.build(iocontext.GetIO(cmd.Context()).In)
			if err != nil {
				return err
			}

			client, token, err := newClientFactory().authedAPI()
			if err != nil {
				return err
			}
			if handled, err := maybeDryRun(cmd, requestPreview(client, method, token, values)); handled {
				return err
			}

			resp, err := client.Request(cmdContext(cmd), method, token, values)
			if err != nil {
				return err
			}
			return printResponse(cmd, resp)
		}),
	}

	params.register(cmd)
	return cmd
}

func requestPreview(client *api.Client, method, token string, params map[string]any) *dryrun.Preview {
	return dryrun.NewPreview("POST", client.Endpoint(method), client.Fields(token, params).Values())
}

// printResponse writes the response body. Per-call failures reported by
// execute go to stderr so the body stays machine-readable.
func printResponse(cmd *cobra.Command, resp *api.Response) error {
	for _, e := range resp.ExecuteErrors {
		slog.Warn("execute error", "method", e.Method, "code", e.Code, "message", e.Message)
	}

	value, err := resp.Value()
	if err != nil {
		return err
	}
	return printJSON(cmd, value)
}
