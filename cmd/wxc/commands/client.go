package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/viper"

	"github.com/fivetwenty-io/wxc/internal/auth"
	"github.com/fivetwenty-io/wxc/internal/client"
	"github.com/fivetwenty-io/wxc/internal/constants"
	"github.com/fivetwenty-io/wxc/pkg/webex"
	"github.com/fivetwenty-io/wxc/pkg/wxcclient"
)

// clientFactory builds the API client for a command. Tests replace it.
var clientFactory = createClient

// createClient builds a client from the merged flag, environment and file
// configuration. Integrations with a refresh token get a token manager that
// writes refreshed tokens back to the config file.
func createClient(ctx context.Context) (webex.Client, error) {
	config := loadConfig()
	webexConfig := newWebexConfig(config, viper.GetBool("verbose"), os.Stderr)

	if config.RefreshToken != "" && config.ClientID != "" {
		oauthConfig := &auth.OAuth2Config{
			ClientID:     config.ClientID,
			ClientSecret: config.ClientSecret,
			RefreshToken: config.RefreshToken,
			AccessToken:  config.Token,
		}

		if config.TokenExpiresAt != nil {
			oauthConfig.ExpiresAt = *config.TokenExpiresAt
		}

		source := auth.NewRefreshTokenSource(ctx, oauthConfig)
		tokenManager := auth.NewConfigTokenManager(source, NewConfigPersister(), config.Token)

		webexConfig.APIEndpoint = valueOr(webexConfig.APIEndpoint, constants.DefaultAPIEndpoint)

		c, err := client.NewWithTokenManager(webexConfig, tokenManager)
		if err != nil {
			return nil, fmt.Errorf("failed to create client with token manager: %w", err)
		}

		return c, nil
	}

	if config.Token == "" {
		return nil, constants.ErrNoTokenConfigured
	}

	c, err := wxcclient.New(webexConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return c, nil
}

// newWebexConfig maps the CLI configuration onto client options. Verbose
// runs log every call with its TrackingID, and every retry, to logOut.
func newWebexConfig(config *Config, verbose bool, logOut io.Writer) *webex.Config {
	webexConfig := &webex.Config{
		APIEndpoint: config.API,
		AccessToken: config.Token,
		UserAgent:   constants.DefaultUserAgent,
	}

	if verbose {
		logger := newLogger(logOut)

		webexConfig.Logger = logger
		webexConfig.Interceptors = webex.NewInterceptorChain().
			AddRequestInterceptor(webex.LoggingInterceptor(logger)).
			AddResponseInterceptor(webex.LoggingResponseInterceptor(logger))
	}

	return webexConfig
}

// orgID returns the organization selected with --org-id, WXC_ORG_ID or the
// config file.
func orgID() string {
	return viper.GetString("org_id")
}
