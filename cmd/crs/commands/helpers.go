package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/AltairMartinez/wikitude-cloud-recognition/internal/constants"
	"github.com/AltairMartinez/wikitude-cloud-recognition/pkg/crs"
	"github.com/AltairMartinez/wikitude-cloud-recognition/pkg/crsclient"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

const jsonIndent = "  "

// CreateClient builds a crs.Client from the resolved configuration
// (flags, environment, config file).
func CreateClient() (crs.Client, error) {
	endpoint := viper.GetString("api")
	if endpoint == "" {
		return nil, constants.ErrNoAPIEndpoint
	}

	token := viper.GetString("token")
	if token == "" {
		return nil, constants.ErrNoToken
	}

	config := &crs.Config{
		APIEndpoint:  endpoint,
		Token:        token,
		Version:      viper.GetString("api_version"),
		PollInterval: viper.GetDuration("poll_interval"),
		PollTimeout:  viper.GetDuration("poll_timeout"),
	}

	client, err := crsclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// outputJSON writes a value to stdout as indented JSON.
func outputJSON(value interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", jsonIndent)

	err := encoder.Encode(value)
	if err != nil {
		return fmt.Errorf("failed to encode as JSON: %w", err)
	}

	return nil
}

// outputYAML writes a value to stdout as YAML.
func outputYAML(value interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	err := encoder.Encode(value)
	if err != nil {
		return fmt.Errorf("failed to encode as YAML: %w", err)
	}

	return encoder.Close()
}
