package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/wxc/internal/constants"
)

// Config is the persisted CLI configuration.
type Config struct {
	API            string     `json:"api,omitempty"              yaml:"api,omitempty"`
	Token          string     `json:"token,omitempty"            yaml:"token,omitempty"`
	TokenExpiresAt *time.Time `json:"token_expires_at,omitempty" yaml:"token_expires_at,omitempty"`
	RefreshToken   string     `json:"refresh_token,omitempty"    yaml:"refresh_token,omitempty"`
	ClientID       string     `json:"client_id,omitempty"        yaml:"client_id,omitempty"`
	ClientSecret   string     `json:"client_secret,omitempty"    yaml:"client_secret,omitempty"`
	OrgID          string     `json:"org_id,omitempty"           yaml:"org_id,omitempty"`
	Output         string     `json:"output,omitempty"           yaml:"output,omitempty"`
}

// configKeys are the keys accepted by config set and config unset.
var configKeys = []string{"api", "token", "refresh_token", "client_id", "client_secret", "org_id", "output"}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "View and modify the wxc configuration stored in $HOME/.wxc/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show configuration",
		Long:  "Display the current configuration with secrets masked",
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()
			masked := *config
			masked.Token = maskToken(config.Token)
			masked.RefreshToken = maskToken(config.RefreshToken)
			masked.ClientSecret = maskToken(config.ClientSecret)

			switch outputFormat() {
			case constants.FormatJSON:
				return renderJSON(cmd.OutOrStdout(), masked)
			case constants.FormatYAML:
				return renderYAML(cmd.OutOrStdout(), masked)
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Property", "Value")

			_ = table.Append("API", valueOr(masked.API, constants.DefaultAPIEndpoint))
			_ = table.Append("Token", valueOr(masked.Token, constants.NotAvailable))

			expires := constants.NotAvailable
			if masked.TokenExpiresAt != nil {
				expires = masked.TokenExpiresAt.Format(time.RFC3339)
			}

			_ = table.Append("Token Expires", expires)
			_ = table.Append("Refresh Token", valueOr(masked.RefreshToken, constants.NotAvailable))
			_ = table.Append("Client ID", valueOr(masked.ClientID, constants.NotAvailable))
			_ = table.Append("Org ID", valueOr(masked.OrgID, constants.NotAvailable))
			_ = table.Append("Output", valueOr(masked.Output, constants.FormatTable))

			err := table.Render()
			if err != nil {
				return fmt.Errorf("failed to render table: %w", err)
			}

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  fmt.Sprintf("Set a configuration value. Keys: %v", configKeys),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigValue(config, args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Remove a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig()

			err := setConfigValue(config, args[0], "")
			if err != nil {
				return err
			}

			if args[0] == "token" {
				config.TokenExpiresAt = nil
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", args[0])

			return nil
		},
	}
}

// setConfigValue assigns key. An empty value clears it.
func setConfigValue(config *Config, key, value string) error {
	switch key {
	case "api":
		config.API = value
	case "token":
		config.Token = value
	case "refresh_token":
		config.RefreshToken = value
	case "client_id":
		config.ClientID = value
	case "client_secret":
		config.ClientSecret = value
	case "org_id":
		config.OrgID = value
	case "output":
		if value != "" && !validOutputFormat(value) {
			return fmt.Errorf("%w: %q", constants.ErrInvalidOutputFormat, value)
		}

		config.Output = value
	default:
		return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
	}

	return nil
}

// loadConfig reads the configuration from viper, so flags and WXC_*
// environment variables take precedence over the file.
func loadConfig() *Config {
	config := &Config{
		API:          viper.GetString("api"),
		Token:        viper.GetString("token"),
		RefreshToken: viper.GetString("refresh_token"),
		ClientID:     viper.GetString("client_id"),
		ClientSecret: viper.GetString("client_secret"),
		OrgID:        viper.GetString("org_id"),
		Output:       viper.GetString("output"),
	}

	if expires := viper.GetTime("token_expires_at"); !expires.IsZero() {
		config.TokenExpiresAt = &expires
	}

	return config
}

// configFilePath returns the file the configuration is written to.
func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ".wxc", "config.yml"), nil
}

// saveConfigStruct writes config and makes viper see the new values.
func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	viper.SetConfigFile(configFile)

	err = viper.ReadInConfig()
	if err != nil {
		return fmt.Errorf("failed to reload config: %w", err)
	}

	return nil
}

func maskToken(token string) string {
	if token == "" {
		return ""
	}

	if len(token) < constants.MinimumTokenLength {
		return constants.MaskedSecret
	}

	return token[:constants.RevealedTokenChars] + constants.MaskedSecret + token[len(token)-constants.RevealedTokenChars:]
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}
