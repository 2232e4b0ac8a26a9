package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"

	"github.com/yacobolo/classcomplete"
	"github.com/yacobolo/classcomplete/internal/cssclass"
)

const (
	defaultConfigPath = ".classcomplete.yaml"
	envPrefix         = "CLASSCOMPLETE_"
)

// configKeys are the keys read from config files. Their names contain both
// "." and "-", which an env var name cannot tell apart, so env vars are
// matched against this list before falling back to "_" -> ".".
var configKeys = []string{
	"root",
	"global-css",
	"module-search-paths",
	"scanner",
	"cache.size",
	"cache.remember-missing",
	"limits.max-depth",
	"limits.max-files",
	"log.level",
	"log.format",
	"color",
	"verbose",
	"quiet",
}

var envNameReplacer = strings.NewReplacer(".", "_", "-", "_")

// listKeys hold comma-separated lists when set from the environment
var listKeys = map[string]bool{
	"global-css":          true,
	"module-search-paths": true,
}

var k = koanf.New(".")

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// 3. CLI flags (only explicitly set flags override existing keys)
	if err := k.Load(posflag.Provider(cmd.Flags(), ".", k), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	// 1. Config file (lowest precedence among providers)
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// 2. Environment variables (CLASSCOMPLETE_* prefix)
	if err := k.Load(env.ProviderWithValue(envPrefix, ".", envKeyValue), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// envKeyValue maps an env var to its config key:
// CLASSCOMPLETE_CACHE_SIZE -> cache.size,
// CLASSCOMPLETE_LIMITS_MAX_DEPTH -> limits.max-depth,
// CLASSCOMPLETE_GLOBAL_CSS=a.css,b.css -> global-css: [a.css b.css].
func envKeyValue(name, value string) (string, any) {
	name = strings.ToLower(strings.TrimPrefix(name, envPrefix))

	for _, key := range configKeys {
		if envNameReplacer.Replace(key) != name {
			continue
		}
		if listKeys[key] {
			return key, splitList(value)
		}
		return key, value
	}

	return strings.ReplaceAll(name, "_", "."), value
}

// splitList splits a comma-separated env value, dropping empty items
func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// buildProviderConfig constructs the library's Config struct from koanf state.
// The logger is attached by the caller.
func buildProviderConfig() (classcomplete.Config, error) {
	limits := cssclass.DefaultLimits()

	config := classcomplete.Config{
		Root:              getString("root", "."),
		GlobalCSS:         k.Strings("global-css"),
		ModuleSearchPaths: k.Strings("module-search-paths"),
		Scanner:           getString("scanner", classcomplete.ScannerLexical),
		CacheSize:         getInt("cache.size", cssclass.DefaultCacheSize),
		RememberMissing:   getBool("cache.remember-missing", false),
		MaxDepth:          getInt("limits.max-depth", limits.MaxDepth),
		MaxFiles:          getInt("limits.max-files", limits.MaxFiles),
	}

	switch config.Scanner {
	case classcomplete.ScannerLexical, classcomplete.ScannerSyntax:
	default:
		return config, fmt.Errorf("%w: unknown scanner %q (want lexical or syntax)", classcomplete.ErrInvalidConfig, config.Scanner)
	}
	if config.CacheSize < 0 {
		return config, fmt.Errorf("%w: cache.size must not be negative, got %d", classcomplete.ErrInvalidConfig, config.CacheSize)
	}
	if config.MaxDepth < 0 || config.MaxFiles < 0 {
		return config, fmt.Errorf("%w: limits must not be negative", classcomplete.ErrInvalidConfig)
	}

	return config, nil
}

// buildLoggerConfig maps --verbose and the log.* keys to a logger config
func buildLoggerConfig() classcomplete.LoggerConfig {
	config := classcomplete.DefaultLoggerConfig()
	config.Level = classcomplete.LogLevel(getString("log.level", string(config.Level)))
	config.Format = classcomplete.LogFormat(getString("log.format", string(config.Format)))
	if getBool("verbose", false) {
		config.Level = classcomplete.LevelDebug
	}
	return config
}

// newProvider builds a provider from the loaded configuration
func newProvider() (*classcomplete.Provider, error) {
	config, err := buildProviderConfig()
	if err != nil {
		return nil, err
	}
	config.Logger = classcomplete.NewLogger(buildLoggerConfig())

	provider, err := classcomplete.New(config)
	if err != nil {
		return nil, fmt.Errorf("create provider: %w", err)
	}
	return provider, nil
}

// useColors reports whether terminal output should be styled
func useColors() bool {
	return cssclass.ShouldUseColors(getBool("color", false))
}

// Flags share their names with top-level config keys, so a single lookup
// covers both: posflag only overrides a key when the flag was set.

// getString returns the value at key, or defaultVal when unset or empty.
func getString(key, defaultVal string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return defaultVal
}

// getBool returns the value at key, or defaultVal when unset.
func getBool(key string, defaultVal bool) bool {
	if k.Exists(key) {
		return k.Bool(key)
	}
	return defaultVal
}

// getInt returns the value at key, or defaultVal when unset.
func getInt(key string, defaultVal int) int {
	if k.Exists(key) {
		return k.Int(key)
	}
	return defaultVal
}
