package cmd

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vkcom/vk-cli/internal/auth"
	"github.com/vkcom/vk-cli/internal/config"
	"github.com/vkcom/vk-cli/internal/debug"
	"github.com/vkcom/vk-cli/internal/dryrun"
	"github.com/vkcom/vk-cli/internal/iocontext"
	"github.com/vkcom/vk-cli/internal/oauth"
	"github.com/vkcom/vk-cli/internal/validation"
)

const (
	// blankRedirectURI is the standard redirect page for standalone apps.
	blankRedirectURI = "https://oauth.vk.com/blank.html"
	// loopbackRedirectURI is where auth login listens unless told otherwise.
	loopbackRedirectURI = "http://127.0.0.1:8765/callback"

	defaultLoginTimeout = 5 * time.Minute
)

// newAuthCmd returns the auth command with subcommands
func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "auth",
		Aliases: []string{"au"},
		Short:   "Authorize and manage stored tokens",
		Long:    "Obtain VK access tokens through OAuth and keep them in named profiles in your OS keychain.",
	}

	cmd.AddCommand(newAuthURLCmd())
	cmd.AddCommand(newAuthAuthorizeCmd())
	cmd.AddCommand(newAuthLoginCmd())
	cmd.AddCommand(newAuthExchangeCmd())
	cmd.AddCommand(newAuthStatusCmd())
	cmd.AddCommand(newAuthLogoutCmd())
	cmd.AddCommand(newAuthProfilesCmd())
	cmd.AddCommand(newAuthUseCmd())

	return cmd
}

// authorizeFlags are the parameters of an authorization request.
type authorizeFlags struct {
	clientID     string
	redirectURI  string
	scope        string
	groupScope   string
	display      string
	state        string
	responseType string
}

func (a *authorizeFlags) register(cmd *cobra.Command, withState bool) {
	cmd.Flags().StringVar(&a.clientID, "client-id", "", "Application ID (env VK_CLIENT_ID)")
	cmd.Flags().StringVar(&a.redirectURI, "redirect-uri", "", "Redirect URI registered for the app (env VK_REDIRECT_URI)")
	cmd.Flags().StringVar(&a.scope, "scope", "", "User scopes: names (friends,wall) or a numeric mask")
	cmd.Flags().StringVar(&a.groupScope, "group-scope", "", "Community scopes: names (messages,manage)")
	cmd.Flags().StringVar(&a.display, "display", "", "Authorization page layout: page|popup|mobile")
	if withState {
		cmd.Flags().StringVar(&a.state, "state", "", "Opaque value echoed back to the redirect URI")
		cmd.Flags().StringVar(&a.responseType, "response-type", string(oauth.DefaultResponseType), "Flow: code|token")
	}
	flagAlias(cmd.Flags(), "client-id", "app-id")
}

// request builds the authorization request. Flags win over cfg; fallback is
// used as the redirect URI when neither names one.
func (a *authorizeFlags) request(cfg config.ClientConfig, fallback string) (oauth.AuthorizeRequest, error) {
	req := oauth.AuthorizeRequest{
		ClientID:    firstNonEmpty(a.clientID, cfg.ClientID),
		RedirectURI: firstNonEmpty(a.redirectURI, cfg.RedirectURI, fallback),
		State:       a.state,
	}
	if req.ClientID == "" {
		return req, fmt.Errorf("--client-id is required (or set %s)", config.EnvClientID)
	}
	if err := validation.ValidateRedirectURI(req.RedirectURI); err != nil {
		return req, fmt.Errorf("invalid --redirect-uri: %w", err)
	}

	if a.scope != "" && a.groupScope != "" {
		return req, fmt.Errorf("--scope and --group-scope cannot be used together")
	}
	var err error
	switch {
	case a.scope != "":
		req.Scopes, err = oauth.ParseUserScopes(a.scope)
	case a.groupScope != "":
		req.Scopes, err = oauth.ParseGroupScopes(a.groupScope)
	}
	if err != nil {
		return req, err
	}

	if a.display != "" {
		if req.Display, err = oauth.ParseDisplay(a.display); err != nil {
			return req, err
		}
	}
	if a.responseType != "" {
		if req.ResponseType, err = oauth.ParseResponseType(a.responseType); err != nil {
			return req, err
		}
	}
	return req, nil
}

func newAuthURLCmd() *cobra.Command {
	var opts authorizeFlags

	cmd := &cobra.Command{
		Use:   "url",
		Short: "Print the authorization URL",
		Long:  "Print the URL a user opens to grant your app access. Nothing is sent.",
		Example: strings.TrimSpace(`
  vk auth url --client-id 51234567 --scope friends,wall,offline
  vk auth url --client-id 51234567 --group-scope messages --display popup
`),
		Args: cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			factory := newClientFactory()
			cfg, err := factory.config()
			if err != nil {
				return err
			}
			req, err := opts.request(cfg, blankRedirectURI)
			if err != nil {
				return err
			}
			client, err := factory.oauth(cfg)
			if err != nil {
				return err
			}

			authURL := client.AuthorizeURL(req)
			if isJSON(cmd) {
				return printJSON(cmd, map[string]any{
					"url":   authURL,
					"scope": oauth.ScopeValue(req.Scopes...),
				})
			}
			_, _ = fmt.Fprintln(iocontext.GetIO(cmd.Context()).Out, authURL)
			return nil
		}),
	}

	opts.register(cmd, true)
	return cmd
}

func newAuthAuthorizeCmd() *cobra.Command {
	var opts authorizeFlags

	cmd := &cobra.Command{
		Use:   "authorize",
		Short: "Submit an authorization request",
		Long:  "Send the authorization request to the OAuth server and report whether it was accepted.",
		Args:  cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			factory := newClientFactory()
			cfg, err := factory.config()
			if err != nil {
				return err
			}
			req, err := opts.request(cfg, blankRedirectURI)
			if err != nil {
				return err
			}
			client, err := factory.oauth(cfg)
			if err != nil {
				return err
			}

			if handled, err := maybeDryRun(cmd, urlPreview("POST", client.AuthorizeURL(req))); handled {
				return err
			}

			if err := client.Authorize(cmdContext(cmd), req); err != nil {
				return err
			}
			if isJSON(cmd) {
				return printJSON(cmd, map[string]any{"accepted": true})
			}
			printIfNotQuiet(cmd, "Authorization request accepted\n")
			return nil
		}),
	}

	opts.register(cmd, true)
	return cmd
}

func newAuthLoginCmd() *cobra.Command {
	var (
		opts         authorizeFlags
		clientSecret string
		timeout      time.Duration
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authorize in the browser and store the token",
		Long: strings.TrimSpace(`
Open the authorization page in your browser, receive the code on a local
callback server, exchange it for an access token and store the token in the
OS keychain under the selected profile (--profile, default "default").

The redirect URI must be an http loopback URL with a port, registered in
the app settings. Default: ` + loopbackRedirectURI + `
`),
		Example: strings.TrimSpace(`
  vk auth login --client-id 51234567 --client-secret s3cr3t --scope wall,offline
  vk auth login --profile work --redirect-uri http://localhost:9000/vk
`),
		Args: cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			factory := newClientFactory()
			cfg, err := factory.config()
			if err != nil {
				return err
			}
			opts.responseType = string(oauth.ResponseTypeCode)
			req, err := opts.request(cfg, loopbackRedirectURI)
			if err != nil {
				return err
			}
			secret := firstNonEmpty(clientSecret, cfg.ClientSecret)
			if secret == "" {
				return fmt.Errorf("--client-secret is required (or set %s)", config.EnvClientSecret)
			}

			server, err := auth.NewCallbackServer(req.RedirectURI)
			if err != nil {
				return fmt.Errorf("invalid --redirect-uri for login: %w", err)
			}
			req.State = server.State()

			client, err := factory.oauth(cfg)
			if err != nil {
				return err
			}
			authURL := client.AuthorizeURL(req)

			if handled, err := maybeDryRun(cmd, urlPreview("GET", authURL)); handled {
				return err
			}

			ctx, cancel := context.WithTimeout(cmdContext(cmd), timeout)
			defer cancel()

			result, err := server.Start(ctx, authURL, iocontext.GetIO(cmd.Context()).ErrOut)
			if err != nil {
				return fmt.Errorf("login did not complete: %w", err)
			}
			if err := result.Err(); err != nil {
				return err
			}

			token, err := client.AccessToken(ctx, req.ClientID, secret, req.RedirectURI, result.Code)
			if err != nil {
				return err
			}
			return saveToken(cmd, cfg, credentials{
				clientID:     req.ClientID,
				clientSecret: secret,
				redirectURI:  req.RedirectURI,
				scope:        oauth.ScopeValue(req.Scopes...),
			}, token)
		}),
	}

	opts.register(cmd, false)
	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "Application secret key (env VK_CLIENT_SECRET)")
	cmd.Flags().DurationVar(&timeout, "timeout", defaultLoginTimeout, "How long to wait for the browser callback")
	return cmd
}

func newAuthExchangeCmd() *cobra.Command {
	var (
		code         string
		clientID     string
		clientSecret string
		redirectURI  string
	)

	cmd := &cobra.Command{
		Use:   "exchange",
		Short: "Exchange an authorization code for a token",
		Long:  "Exchange a code obtained from the redirect URI for an access token and store it.",
		Example: strings.TrimSpace(`
  vk auth exchange --code 7a6fa4dff77a228eeda56603b8f53806c883f011c40b72630bb50df056f6479e52a
`),
		Args: cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(code) == "" {
				return fmt.Errorf("--code is required")
			}

			factory := newClientFactory()
			cfg, err := factory.config()
			if err != nil {
				return err
			}
			creds := credentials{
				clientID:     firstNonEmpty(clientID, cfg.ClientID),
				clientSecret: firstNonEmpty(clientSecret, cfg.ClientSecret),
				redirectURI:  firstNonEmpty(redirectURI, cfg.RedirectURI, blankRedirectURI),
			}
			if creds.clientID == "" {
				return fmt.Errorf("--client-id is required (or set %s)", config.EnvClientID)
			}
			if creds.clientSecret == "" {
				return fmt.Errorf("--client-secret is required (or set %s)", config.EnvClientSecret)
			}

			_, tokenURL, err := oauthEndpoints(cfg)
			if err != nil {
				return err
			}
			preview := dryrun.NewPreview("POST", tokenURL, url.Values{
				"client_id":     {creds.clientID},
				"client_secret": {creds.clientSecret},
				"redirect_uri":  {creds.redirectURI},
				"code":          {code},
			})
			if handled, err := maybeDryRun(cmd, preview); handled {
				return err
			}

			client, err := factory.oauth(cfg)
			if err != nil {
				return err
			}
			token, err := client.AccessToken(cmdContext(cmd), creds.clientID, creds.clientSecret, creds.redirectURI, code)
			if err != nil {
				return err
			}
			return saveToken(cmd, cfg, creds, token)
		}),
	}

	cmd.Flags().StringVar(&code, "code", "", "Authorization code (required)")
	cmd.Flags().StringVar(&clientID, "client-id", "", "Application ID (env VK_CLIENT_ID)")
	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "Application secret key (env VK_CLIENT_SECRET)")
	cmd.Flags().StringVar(&redirectURI, "redirect-uri", "", "Redirect URI used for the authorization request")
	flagAlias(cmd.Flags(), "client-id", "app-id")
	return cmd
}

// credentials are the app settings stored with a token.
type credentials struct {
	clientID     string
	clientSecret string
	redirectURI  string
	scope        int
}

func saveToken(cmd *cobra.Command, cfg config.ClientConfig, creds credentials, token *oauth.TokenResult) error {
	if !token.HasToken() {
		return fmt.Errorf("token endpoint returned no access_token (fields: %s)", strings.Join(sortedKeys(token.Fields), ", "))
	}

	profile := config.Profile{
		ClientID:     creds.clientID,
		ClientSecret: creds.clientSecret,
		RedirectURI:  creds.redirectURI,
		AccessToken:  token.AccessToken,
		Email:        token.Email(),
		Scope:        creds.scope,
		APIVersion:   cfg.APIVersion,
	}
	if id := token.UserID(); id != 0 {
		profile.UserID = strconv.FormatInt(id, 10)
	}
	if d := token.ExpiresIn(); d > 0 {
		profile.ExpiresAt = time.Now().Add(d).UTC().Truncate(time.Second)
	}

	name := firstNonEmpty(flags.Profile, cfg.Profile)
	if err := config.SaveProfile(name, profile); err != nil {
		return err
	}

	if isJSON(cmd) {
		payload := map[string]any{
			"profile": name,
			"user_id": profile.UserID,
		}
		if profile.Email != "" {
			payload["email"] = profile.Email
		}
		if !profile.ExpiresAt.IsZero() {
			payload["expires_at"] = profile.ExpiresAt
		}
		return printJSON(cmd, payload)
	}
	printIfNotQuiet(cmd, "Logged in as user %s (profile %q)\n", firstNonEmpty(profile.UserID, "unknown"), name)
	return nil
}

func newAuthStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the active profile",
		Args:  cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			cfg, err := newClientFactory().config()
			if err != nil {
				return err
			}
			if err := cfg.RequireToken(); err != nil {
				return err
			}

			status := map[string]any{
				"profile":      cfg.Profile,
				"access_token": debug.Redact(cfg.AccessToken),
				"client_id":    cfg.ClientID,
			}
			profile, err := config.LoadProfile(cfg.Profile)
			stored := err == nil && profile.AccessToken == cfg.AccessToken
			status["stored"] = stored
			if stored {
				status["user_id"] = profile.UserID
				if profile.Email != "" {
					status["email"] = profile.Email
				}
				if profile.Scope != 0 {
					status["scope"] = oauth.DescribeUserScope(profile.Scope)
				}
				if !profile.ExpiresAt.IsZero() {
					status["expires_at"] = profile.ExpiresAt
					status["expired"] = profile.Expired(time.Now())
				}
			}

			if isJSON(cmd) {
				return printJSON(cmd, status)
			}

			out := iocontext.GetIO(cmd.Context()).Out
			_, _ = fmt.Fprintf(out, "Profile:  %s\n", cfg.Profile)
			_, _ = fmt.Fprintf(out, "Token:    %s\n", debug.Redact(cfg.AccessToken))
			if !stored {
				_, _ = fmt.Fprintln(out, "Source:   environment or --token")
				return nil
			}
			if profile.UserID != "" {
				_, _ = fmt.Fprintf(out, "User ID:  %s\n", profile.UserID)
			}
			if profile.Email != "" {
				_, _ = fmt.Fprintf(out, "Email:    %s\n", profile.Email)
			}
			if profile.Scope != 0 {
				_, _ = fmt.Fprintf(out, "Scope:    %s\n", strings.Join(oauth.DescribeUserScope(profile.Scope), ", "))
			}
			switch {
			case profile.ExpiresAt.IsZero():
				_, _ = fmt.Fprintln(out, "Expires:  never")
			case profile.Expired(time.Now()):
				_, _ = fmt.Fprintf(out, "Expires:  %s (expired)\n", profile.ExpiresAt.Format(time.RFC3339))
			default:
				_, _ = fmt.Fprintf(out, "Expires:  %s\n", profile.ExpiresAt.Format(time.RFC3339))
			}
			return nil
		}),
	}
}

func newAuthLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove a stored profile",
		Args:  cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			name := flags.Profile
			if name == "" {
				current, err := config.CurrentProfile()
				if err != nil {
					return err
				}
				name = current
			}
			if err := config.DeleteProfile(name); err != nil {
				return err
			}
			if isJSON(cmd) {
				return printJSON(cmd, map[string]any{"removed": name})
			}
			printIfNotQuiet(cmd, "Removed profile %q\n", name)
			return nil
		}),
	}
}

func newAuthProfilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "profiles",
		Aliases: []string{"ls"},
		Short:   "List stored profiles",
		Args:    cobra.NoArgs,
		RunE: RunE(func(cmd *cobra.Command, _ []string) error {
			names, err := config.ListProfiles()
			if err != nil {
				return err
			}
			current, err := config.CurrentProfile()
			if err != nil {
				return err
			}

			type profileRow struct {
				Name    string `json:"name"`
				Current bool   `json:"current"`
			}
			rows := make([]profileRow, 0, len(names))
			for _, name := range names {
				rows = append(rows, profileRow{Name: name, Current: name == current})
			}

			f := newFormatter(cmd)
			if handled, err := f.Output(rows); handled {
				return err
			}
			if len(rows) == 0 {
				f.Empty("No profiles stored. Run: vk auth login")
				return nil
			}
			f.StartTable([]string{"CURRENT", "NAME"})
			for _, row := range rows {
				marker := ""
				if row.Current {
					marker = "*"
				}
				f.Row(marker, row.Name)
			}
			return f.EndTable()
		}),
	}
}

func newAuthUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use <profile>",
		Short: "Switch the active profile",
		Args:  cobra.ExactArgs(1),
		RunE: RunE(func(cmd *cobra.Command, args []string) error {
			if err := config.SetCurrentProfile(args[0]); err != nil {
				return err
			}
			if isJSON(cmd) {
				return printJSON(cmd, map[string]any{"current": args[0]})
			}
			printIfNotQuiet(cmd, "Switched to profile %q\n", args[0])
			return nil
		}),
	}
}

// urlPreview builds a dry-run preview from a URL carrying its parameters in
// the query string.
func urlPreview(operation, rawURL string) *dryrun.Preview {
	u, err := url.Parse(rawURL)
	if err != nil {
		return dryrun.NewPreview(operation, rawURL, nil)
	}
	query := u.Query()
	u.RawQuery = ""
	return dryrun.NewPreview(operation, u.String(), query)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
