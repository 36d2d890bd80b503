package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"
	defaultSheetsTimeout      = 30 * time.Second
)

// Sheet backends.
const (
	BackendGoogle = "google"
	BackendXLSX   = "xlsx"
)

// Column owners accepted by sheets.ownership.
const (
	OwnerClient  = "client"
	OwnerFormula = "formula"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port" validate:"min=0,max=65535"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Sheets SheetsConfig `json:"sheets" yaml:"sheets"`

	Auth AuthConfig `json:"auth" yaml:"auth"`

	// Snapshot configures the workbook export. Disabled when BucketURL is empty.
	Snapshot SnapshotConfig `json:"snapshot" yaml:"snapshot"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

// SheetsConfig selects and configures the spreadsheet backend.
type SheetsConfig struct {
	Backend       string        `json:"backend" yaml:"backend" validate:"oneof=google xlsx"`
	SpreadsheetID string        `json:"spreadsheetId" yaml:"spreadsheetId" validate:"required_if=Backend google"`
	Endpoint      string        `json:"endpoint" yaml:"endpoint" validate:"omitempty,url"`
	WorkbookPath  string        `json:"workbookPath" yaml:"workbookPath" validate:"required_if=Backend xlsx"`
	Timeout       time.Duration `json:"timeout" yaml:"timeout"`

	// CredentialsFile and AccessToken supply the token outside HTTP requests
	// (CLI). The server uses the caller's bearer token instead.
	CredentialsFile string `json:"credentialsFile" yaml:"credentialsFile"`
	AccessToken     string `json:"accessToken" yaml:"accessToken"`

	Names     SheetNamesConfig `json:"names" yaml:"names"`
	Ownership OwnershipConfig  `json:"ownership" yaml:"ownership"`
}

// SheetNamesConfig overrides the tab names; empty values keep the defaults.
type SheetNamesConfig struct {
	Ingredients string `json:"ingredients" yaml:"ingredients"`
	Recipes     string `json:"recipes" yaml:"recipes"`
	Journal     string `json:"journal" yaml:"journal"`
	Profile     string `json:"profile" yaml:"profile"`
	Menus       string `json:"menus" yaml:"menus"`
}

// OwnershipConfig says who writes the computed columns: "client" or
// "formula". Empty means formula.
type OwnershipConfig struct {
	IngredientDerived string `json:"ingredientDerived" yaml:"ingredientDerived" validate:"omitempty,oneof=client formula"`
	RecipeTotals      string `json:"recipeTotals" yaml:"recipeTotals" validate:"omitempty,oneof=client formula"`
}

// AuthConfig configures the identity lookups.
type AuthConfig struct {
	UserInfoEndpoint string `json:"userInfoEndpoint" yaml:"userInfoEndpoint" validate:"omitempty,url"`
}

// SnapshotConfig configures the blob bucket receiving workbook exports.
type SnapshotConfig struct {
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
	KeyPrefix string `json:"keyPrefix" yaml:"keyPrefix"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			if !filepath.IsAbs(path) {
				path = filepath.Join(pwd, path)
			}
			searchPaths = append(searchPaths, path)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: SHEETS_SPREADSHEETID -> sheets.spreadsheetId (not sheets.spreadsheetid)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := cfg.finish(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// finish applies defaults and validates the loaded values.
func (cfg *Config) finish() error {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Sheets.Backend == "" {
		cfg.Sheets.Backend = BackendGoogle
	}
	if cfg.Sheets.Timeout <= 0 {
		cfg.Sheets.Timeout = defaultSheetsTimeout
	}

	if err := validator.New().Struct(cfg); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
