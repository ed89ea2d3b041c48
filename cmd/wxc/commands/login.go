package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/fivetwenty-io/wxc/internal/auth"
	"github.com/fivetwenty-io/wxc/internal/constants"
	"github.com/fivetwenty-io/wxc/pkg/wxcclient"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		clientID     string
		clientSecret string
		refreshToken string
		noVerify     bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store Webex credentials",
		Long: `Store an access token, or an integration's client id, secret and refresh
token, in the config file. Without --token or --refresh-token the access token
is read from the terminal.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			config := loadConfig()

			var token string
			if cmd.Flags().Changed("token") {
				token = config.Token
			}

			if refreshToken != "" {
				if clientID == "" {
					clientID = config.ClientID
				}

				if clientSecret == "" {
					clientSecret = config.ClientSecret
				}

				source := auth.NewRefreshTokenSource(ctx, &auth.OAuth2Config{
					ClientID:     clientID,
					ClientSecret: clientSecret,
					RefreshToken: refreshToken,
				})

				refreshed, err := source.Token()
				if err != nil {
					return fmt.Errorf("failed to exchange refresh token: %w", err)
				}

				config.ClientID = clientID
				config.ClientSecret = clientSecret
				config.RefreshToken = valueOr(refreshed.RefreshToken, refreshToken)
				token = refreshed.AccessToken

				if !refreshed.Expiry.IsZero() {
					config.TokenExpiresAt = &refreshed.Expiry
				}
			}

			if token == "" {
				_, _ = fmt.Fprint(cmd.ErrOrStderr(), "Access token: ")

				byteToken, err := term.ReadPassword(int(os.Stdin.Fd()))
				if err != nil {
					return fmt.Errorf("failed to read token: %w", err)
				}

				_, _ = fmt.Fprintln(cmd.ErrOrStderr())
				token = strings.TrimSpace(string(byteToken))
			}

			if token == "" {
				return constants.ErrEmptyToken
			}

			if refreshToken == "" {
				config.TokenExpiresAt = nil
			}

			config.Token = token

			if !noVerify {
				name, err := verifyToken(ctx, config.API, token)
				if err != nil {
					return err
				}

				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Authenticated as %s\n", name)
			}

			err := saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Credentials saved")

			return nil
		},
	}

	cmd.Flags().StringVar(&clientID, "client-id", "", "integration client id")
	cmd.Flags().StringVar(&clientSecret, "client-secret", "", "integration client secret")
	cmd.Flags().StringVar(&refreshToken, "refresh-token", "", "integration refresh token")
	cmd.Flags().BoolVar(&noVerify, "no-verify", false, "skip checking the token against /people/me")

	return cmd
}

// verifyToken calls /people/me and returns the display name.
func verifyToken(ctx context.Context, api, token string) (string, error) {
	client, err := wxcclient.NewWithToken(api, token)
	if err != nil {
		return "", fmt.Errorf("failed to create client: %w", err)
	}

	result, err := client.Invoke(ctx, "people.me", nil)
	if err != nil {
		return "", fmt.Errorf("failed to verify token: %w", err)
	}

	person, _ := result.(map[string]any)

	for _, key := range []string{"displayName", "emails", "id"} {
		if value, ok := person[key]; ok {
			return fmt.Sprint(value), nil
		}
	}

	return constants.NotAvailable, nil
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove stored credentials",
		Long:  "Remove the access token, refresh token and client secret from the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			config.Token = ""
			config.TokenExpiresAt = nil
			config.RefreshToken = ""
			config.ClientSecret = ""

			err := saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Logged out")

			return nil
		},
	}
}
