package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/iofinance-io/iof-client/internal/constants"
	"github.com/iofinance-io/iof-client/pkg/iof"
	"github.com/iofinance-io/iof-client/pkg/iofclient"
)

// CreateClient builds a client from the effective configuration (flags, env,
// config file).
func CreateClient() (iof.Client, error) {
	endpoint := viper.GetString("api")
	if endpoint == "" {
		return nil, iof.ErrBaseURLRequired
	}

	apiKey := viper.GetString("api-key")
	token := viper.GetString("token")

	if apiKey == "" && token == "" {
		return nil, fmt.Errorf("%w (use --api-key, --token or 'iof login')", iof.ErrCredentialsRequired)
	}

	config := &iof.Config{
		BaseURL:     endpoint,
		APIKey:      apiKey,
		AccessToken: token,
		TenantID:    viper.GetString("tenant"),
		Debug:       viper.GetBool("verbose"),
	}

	client, err := iofclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// renderJSON writes data to stdout as indented JSON.
func renderJSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encoding to JSON: %w", err)
	}

	return nil
}

// renderYAML writes data to stdout as YAML.
func renderYAML(data interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("encoding to YAML: %w", err)
	}

	return nil
}

// renderOutput dispatches on the configured output format, falling back to
// the table renderer.
func renderOutput(data interface{}, renderTable func() error) error {
	switch viper.GetString("output") {
	case constants.FormatJSON:
		return renderJSON(data)
	case constants.FormatYAML:
		return renderYAML(data)
	default:
		return renderTable()
	}
}

// cliConfig is the shape of ~/.iof/config.yml.
type cliConfig struct {
	API    string `yaml:"api,omitempty"`
	APIKey string `yaml:"api-key,omitempty"`
	Tenant string `yaml:"tenant,omitempty"`
}

// saveCLIConfig persists the CLI configuration file with restrictive
// permissions, since it may carry an API key.
func saveCLIConfig(config *cliConfig) error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	configDir := filepath.Join(home, ".iof")
	if err := os.MkdirAll(configDir, constants.ConfigDirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yml")
	if err := os.WriteFile(configPath, data, constants.ConfigFilePerm); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
