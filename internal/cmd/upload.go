package cmd

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vkcom/vk-cli/internal/dryrun"
	"github.com/vkcom/vk-cli/internal/iocontext"
	"github.com/vkcom/vk-cli/internal/validation"
)

const defaultUploadField = "file"

func newUploadCmd() *cobra.Command {
	var (
		field string
		raw   bool
	)

	cmd := &cobra.Command{
		Use:   "upload <upload-url> <file>",
		Short: "Send a file to an upload server",
		Long: strings.TrimSpace(`
Post a file as multipart/form-data to an upload URL obtained from a
*.getUploadServer method and print the server's reply. Pass the reply
fields to the matching *.save method.

With --raw the status code, headers and body are printed as received.
`),
		Example: strings.TrimSpace(`
  url=$(vk call photos.getWallUploadServer -q .upload_url)
  vk upload "$url" cat.jpg --field photo
`),
		Args: cobra.ExactArgs(2),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			uploadURL, path := args[0], args[1]
			if err := validation.ValidateUploadURL(uploadURL); err != nil {
				return err
			}
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("cannot read %s: %w", path, err)
			}
			if strings.TrimSpace(field) == "" {
				return fmt.Errorf("--field must not be empty")
			}

			preview := dryrun.NewPreview("POST", uploadURL, url.Values{field: {"@" + path}})
			if handled, err := maybeDryRun(cmd, preview); handled {
				return err
			}

			factory := newClientFactory()
			if raw {
				resp, err := factory.transport().Upload(cmdContext(cmd), uploadURL, field, path)
				if err != nil {
					return err
				}
				result := map[string]any{
					"status":  resp.StatusCode(),
					"headers": resp.Headers(),
					"body":    decodeMaybeJSON(resp.Body()),
				}
				if isJSON(cmd) {
					return printJSON(cmd, result)
				}
				out := iocontext.GetIO(cmd.Context()).Out
				_, _ = fmt.Fprintf(out, "Status: %d\n", resp.StatusCode())
				headers := resp.Headers()
				for _, name := range sortedKeys(headers) {
					_, _ = fmt.Fprintf(out, "%s: %s\n", name, headers[name])
				}
				_, _ = fmt.Fprintf(out, "\n%s\n", resp.Body())
				return nil
			}

			cfg, err := factory.config()
			if err != nil {
				return err
			}
			client, err := factory.api(cfg)
			if err != nil {
				return err
			}
			reply, err := client.UploadFile(cmdContext(cmd), uploadURL, field, path)
			if err != nil {
				return err
			}
			return printJSON(cmd, reply)
		}),
	}

	cmd.Flags().StringVar(&field, "field", defaultUploadField, "Multipart field name (photo, file, video_file, ...)")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print status, headers and body instead of the decoded reply")
	return cmd
}

// decodeMaybeJSON returns the decoded body when it is JSON, otherwise the
// text as is.
func decodeMaybeJSON(body string) any {
	var v any
	if err := json.Unmarshal([]byte(body), &v); err != nil {
		return body
	}
	return v
}
