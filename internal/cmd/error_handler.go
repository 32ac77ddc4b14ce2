package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vkcom/vk-cli/internal/actions"
	"github.com/vkcom/vk-cli/internal/api"
	"github.com/vkcom/vk-cli/internal/config"
	"github.com/vkcom/vk-cli/internal/oauth"
	"github.com/vkcom/vk-cli/internal/transport"
)

// HandleError processes an error and returns a user-friendly message with suggestions
func HandleError(err error) string {
	if err == nil {
		return ""
	}

	var msg strings.Builder

	var apiErr *api.Error
	var clientErr *api.ClientError
	var oauthErr *oauth.OAuthError
	var oauthClientErr *oauth.ClientError
	var transportErr *transport.Error
	var unknownMethod *actions.UnknownMethodError

	switch {
	case errors.Is(err, config.ErrNotConfigured):
		fmt.Fprintf(&msg, "Not authenticated: %s\n\n", err.Error())
		msg.WriteString("Suggestions:\n")
		msg.WriteString("  - Run: vk auth login --client-id <id> --client-secret <secret>\n")
		fmt.Fprintf(&msg, "  - Or export %s / pass --token\n", config.EnvAccessToken)

	case errors.As(err, &unknownMethod):
		fmt.Fprintf(&msg, "Unknown method: %s.%s\n\n", unknownMethod.Namespace, unknownMethod.Name)
		msg.WriteString("Suggestions:\n")
		for _, s := range unknownMethod.Suggestions {
			fmt.Fprintf(&msg, "  - vk %s %s\n", unknownMethod.Namespace, s)
		}
		fmt.Fprintf(&msg, "  - Run: vk methods %s\n", unknownMethod.Namespace)

	case errors.As(err, &apiErr):
		fmt.Fprintf(&msg, "API error %d (%s): %s\n\n", apiErr.Code, apiErr.Title, apiErr.Message)
		msg.WriteString(suggestionsForAPIError(apiErr))

	case errors.As(err, &oauthErr):
		fmt.Fprintf(&msg, "Authorization failed: %s\n\n", oauthErr.Error())
		msg.WriteString("Suggestions:\n")
		msg.WriteString("  - Check the client ID, client secret and redirect URI of your app\n")
		msg.WriteString("  - Authorization codes are single-use; run: vk auth login\n")

	case errors.As(err, &transportErr):
		if transportErr.Timeout {
			msg.WriteString("Connection timed out.\n\n")
		} else {
			fmt.Fprintf(&msg, "Connection failed: %s\n\n", transportErr.Message)
		}
		msg.WriteString("Suggestions:\n")
		msg.WriteString("  - Check your network connection\n")
		fmt.Fprintf(&msg, "  - Verify %s / %s if you override endpoints\n", config.EnvAPIURL, config.EnvOAuthURL)

	case errors.As(err, &clientErr) && clientErr.StatusCode != 0:
		fmt.Fprintf(&msg, "HTTP %d from the API: %s\n\n", clientErr.StatusCode, clientErr.Message)
		msg.WriteString(suggestionsForStatusCode(clientErr.StatusCode))

	case errors.As(err, &oauthClientErr) && oauthClientErr.StatusCode != 0:
		fmt.Fprintf(&msg, "HTTP %d from the OAuth server: %s\n\n", oauthClientErr.StatusCode, oauthClientErr.Message)
		msg.WriteString(suggestionsForStatusCode(oauthClientErr.StatusCode))

	default:
		fmt.Fprintf(&msg, "Error: %s\n", err.Error())
	}

	return msg.String()
}

func suggestionsForAPIError(apiErr *api.Error) string {
	var suggestions strings.Builder
	suggestions.WriteString("Suggestions:\n")

	code := api.ErrorCodeFromAPICode(apiErr.Code)
	switch {
	case apiErr.CaptchaSID != "":
		fmt.Fprintf(&suggestions, "  - Solve the captcha: %s\n", apiErr.CaptchaImg)
		fmt.Fprintf(&suggestions, "  - Repeat with -f captcha_sid=%s -f captcha_key=<text>\n", apiErr.CaptchaSID)
	case apiErr.RedirectURI != "":
		fmt.Fprintf(&suggestions, "  - Confirm the action in the browser: %s\n", apiErr.RedirectURI)
	case apiErr.ConfirmationText != "":
		fmt.Fprintf(&suggestions, "  - %s\n", apiErr.ConfirmationText)
		suggestions.WriteString("  - Repeat with -f confirm=1\n")
	case code.Suggestion() != "":
		fmt.Fprintf(&suggestions, "  - %s\n", code.Suggestion())
	default:
		suggestions.WriteString("  - Use --debug for more details\n")
	}
	return suggestions.String()
}

func suggestionsForStatusCode(code int) string {
	var suggestions strings.Builder
	suggestions.WriteString("Suggestions:\n")

	switch {
	case code == 404:
		suggestions.WriteString("  - Check the endpoint URL\n")
	case code == 429:
		suggestions.WriteString("  - Too many requests; lower --rps and retry\n")
	case code >= 500:
		suggestions.WriteString("  - Server error - not your fault\n")
		suggestions.WriteString("  - Wait and retry\n")
	default:
		suggestions.WriteString("  - Use --debug for more details\n")
	}
	return suggestions.String()
}
