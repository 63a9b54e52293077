package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/AltairMartinez/wikitude-cloud-recognition/internal/constants"
)

const tokenMask = "***"

var configKeys = []string{"api", "api_version", "poll_interval", "poll_timeout", "output"}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and change the configuration stored in ~/.crs/config.yml",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigSetTokenCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the resolved configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings := map[string]string{
				"api":         viper.GetString("api"),
				"api_version": viper.GetString("api_version"),
				"output":      viper.GetString("output"),
			}

			if viper.GetString("token") != "" {
				settings["token"] = tokenMask
			}

			for key, value := range settings {
				if value != "" {
					fmt.Printf("%s: %s\n", key, value)
				}
			}

			return nil
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := strings.ToLower(args[0])

			known := false

			for _, candidate := range configKeys {
				if key == candidate {
					known = true

					break
				}
			}

			if !known {
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, key)
			}

			viper.Set(key, args[1])

			return writeConfig()
		},
	}
}

func newConfigSetTokenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-token",
		Short: "Store the API token",
		Long:  "Prompt for the API token without echoing it and store it in the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Print("API token: ")

			byteToken, err := term.ReadPassword(int(syscall.Stdin))
			if err != nil {
				return fmt.Errorf("failed to read token: %w", err)
			}

			fmt.Println()

			viper.Set("token", strings.TrimSpace(string(byteToken)))

			return writeConfig()
		},
	}
}

func writeConfig() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	configDir := filepath.Join(home, ".crs")

	err = os.MkdirAll(configDir, constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	configFile := filepath.Join(configDir, "config.yml")

	err = viper.WriteConfigAs(configFile)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	err = os.Chmod(configFile, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("restricting config file permissions: %w", err)
	}

	return nil
}
