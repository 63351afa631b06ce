package entities

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultGitHubAPIURL    = "https://api.github.com/"
	DefaultRegistryURL     = "https://unpkg.com"
	DefaultRegistryTimeout = 15 * time.Second
	DefaultWhitelistFile   = "list.csv"
	DefaultVendorKey       = "dhis2ComponentSearch"
	DefaultKeyword         = "dhis2-component-search"
	DefaultRepoDir         = "./repo-dir"
)

// Settings is the full runtime configuration of a verification run.
type Settings struct {
	GitHub        GitHubSettings   `yaml:"github"`
	Registry      RegistrySettings `yaml:"registry"`
	WhitelistFile string           `yaml:"whitelist_file"`
	VendorKey     string           `yaml:"vendor_key"`
	Keyword       string           `yaml:"keyword"`
	RepoDir       string           `yaml:"repo_dir"`
	Audit         AuditSettings    `yaml:"audit"`
}

// GitHubSettings configures access to the GitHub REST API.
type GitHubSettings struct {
	APIURL string `yaml:"api_url"`
	Token  string `yaml:"token"` // Inline, ${ENV_VAR}, or file path
}

// RegistrySettings configures the package registry manifests are fetched from.
type RegistrySettings struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

// AuditSettings toggles the steps run inside a cloned repository.
type AuditSettings struct {
	Install  bool `yaml:"install"`
	Lint     bool `yaml:"lint"`
	NPMAudit bool `yaml:"npm_audit"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the settings used when no config file is present.
func DefaultSettings() *Settings {
	return &Settings{
		GitHub:        GitHubSettings{APIURL: DefaultGitHubAPIURL},
		Registry:      RegistrySettings{URL: DefaultRegistryURL, Timeout: DefaultRegistryTimeout},
		WhitelistFile: DefaultWhitelistFile,
		VendorKey:     DefaultVendorKey,
		Keyword:       DefaultKeyword,
		RepoDir:       DefaultRepoDir,
		Audit:         AuditSettings{Install: true},
	}
}

// NewSettings reads a YAML config file on top of the defaults, expanding
// environment variables and resolving token file paths.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.GitHub.Token = resolveToken(settings.GitHub.Token)
	settings.ApplyEnvironment()

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}
	return settings, nil
}

// LoadSettings loads the given config file, the first one found in the default
// locations, or the defaults when there is none.
func LoadSettings(path string) (*Settings, error) {
	if path != "" {
		return NewSettings(path)
	}

	found, err := FindConfigFile()
	if err != nil {
		logger.Debugf("No config file found, using defaults: %v", err)
		settings := DefaultSettings()
		settings.ApplyEnvironment()
		return settings, nil
	}

	logger.Infof("Using config file: %s", found)
	return NewSettings(found)
}

// FindConfigFile searches for a configuration file in standard locations.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".scp-cli.yaml",
		".scp-cli.yml",
		"scp-cli.yaml",
		"scp-cli.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// ApplyEnvironment fills the GitHub token from GITHUB_TOKEN or GH_TOKEN when unset.
func (s *Settings) ApplyEnvironment() {
	if s.GitHub.Token != "" {
		return
	}
	if t := os.Getenv("GITHUB_TOKEN"); t != "" {
		s.GitHub.Token = t
		return
	}
	s.GitHub.Token = os.Getenv("GH_TOKEN")
}

// Validate checks for required configuration values.
func (s *Settings) Validate() error {
	if s.WhitelistFile == "" {
		return errors.New("whitelist_file is required")
	}
	if s.VendorKey == "" {
		return errors.New("vendor_key is required")
	}
	if s.Keyword == "" {
		return errors.New("keyword is required")
	}
	if s.RepoDir == "" {
		return errors.New("repo_dir is required")
	}
	if s.Registry.Timeout <= 0 {
		return fmt.Errorf("registry.timeout must be positive, got %s", s.Registry.Timeout)
	}
	if err := requireAbsoluteURL("registry.url", s.Registry.URL); err != nil {
		return err
	}
	return requireAbsoluteURL("github.api_url", s.GitHub.APIURL)
}

func requireAbsoluteURL(field, value string) error {
	parsed, err := url.Parse(value)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("%s must be an absolute URL, got %q", field, value)
	}
	return nil
}

// resolveToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the token from the file.
func resolveToken(raw string) string {
	if raw == "" {
		return raw
	}

	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	if _, statErr := os.Stat(resolved); statErr == nil {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Infof("Read token from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}
