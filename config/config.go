package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	// StorageDriverPostgres selects the PostgreSQL/PostGIS repositories.
	StorageDriverPostgres = "postgres"
	// StorageDriverMongo selects the MongoDB repositories.
	StorageDriverMongo = "mongo"

	// PubSubProviderLocal pushes catalog events to a local HTTP endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes catalog events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"

	// EnvLocal marks a developer machine. Push requests are not authenticated there.
	EnvLocal = "local"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Storage selects the persistence driver backing the catalog
	Storage StorageConfig `json:"storage" yaml:"storage"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Mongo configuration, only read when storage.driver is "mongo"
	Mongo *MongoConfig `json:"mongo" yaml:"mongo"`

	// Catalog tunes the listing, search, proximity and ranking queries
	Catalog *CatalogConfig `json:"catalog" yaml:"catalog"`

	// Share configures the QR codes linking to store pages
	Share *ShareConfig `json:"share" yaml:"share"`

	// PubSub configuration for catalog event publishing, disabled when absent
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// Worker configures the catalog event worker receiving Pub/Sub pushes
	Worker *WorkerConfig `json:"worker" yaml:"worker"`
}

// StorageConfig defines which persistence driver is used and how it is prepared
type StorageConfig struct {
	Driver      string `json:"driver" yaml:"driver"`
	AutoMigrate bool   `json:"autoMigrate" yaml:"autoMigrate"`

	// Queries slower than this are logged at Warn, zero keeps the default
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`
}

// MongoConfig defines the MongoDB connection
type MongoConfig struct {
	URI            string        `json:"uri" yaml:"uri"`
	Database       string        `json:"database" yaml:"database"`
	ConnectTimeout time.Duration `json:"connectTimeout" yaml:"connectTimeout"`
}

// CatalogConfig defines result caps and defaults of the catalog queries
type CatalogConfig struct {
	// Stores per page on the paginated listing
	PageSize int `json:"pageSize" yaml:"pageSize"`

	// Maximum number of full-text search results
	SearchLimit int `json:"searchLimit" yaml:"searchLimit"`

	// Maximum number of proximity results
	NearLimit int `json:"nearLimit" yaml:"nearLimit"`

	// Default proximity radius in meters
	NearMaxDistance float64 `json:"nearMaxDistance" yaml:"nearMaxDistance"`

	// Upper bound for a caller-supplied proximity radius in meters
	NearRadiusCeiling float64 `json:"nearRadiusCeiling" yaml:"nearRadiusCeiling"`

	// Minimum number of reviews for a store to be ranked
	TopMinReviews int `json:"topMinReviews" yaml:"topMinReviews"`

	// Maximum number of ranked stores
	TopLimit int `json:"topLimit" yaml:"topLimit"`
}

// ShareConfig defines QR code generation for store pages
type ShareConfig struct {
	// Public origin the store pages are served from, e.g. https://example.com
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// WorkerConfig defines the catalog event worker
type WorkerConfig struct {
	Port int `json:"port" yaml:"port"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DefaultCatalogConfig returns the catalog defaults used when the section is absent
func DefaultCatalogConfig() *CatalogConfig {
	return &CatalogConfig{
		PageSize:          4,
		SearchLimit:       5,
		NearLimit:         10,
		NearMaxDistance:   10000,
		NearRadiusCeiling: 50000,
		TopMinReviews:     2,
		TopLimit:          10,
	}
}

// DefaultShareConfig returns the QR code defaults used when the section is absent
func DefaultShareConfig() *ShareConfig {
	return &ShareConfig{
		BaseURL:              "http://localhost:7777",
		Size:                 256,
		ErrorCorrectionLevel: "M",
	}
}

// DefaultWorkerConfig returns the worker defaults used when the section is absent
func DefaultWorkerConfig() *WorkerConfig {
	return &WorkerConfig{
		Port: 8081,
	}
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
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
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
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
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

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills the optional sections and rejects unknown storage drivers.
func (cfg *Config) applyDefaults() error {
	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
	if cfg.Storage.Driver == "" {
		cfg.Storage.Driver = StorageDriverPostgres
	}

	switch cfg.Storage.Driver {
	case StorageDriverPostgres:
		if cfg.Postgres == nil {
			return errors.New("postgres configuration is required for the postgres storage driver")
		}
	case StorageDriverMongo:
		if cfg.Mongo == nil || cfg.Mongo.URI == "" {
			return errors.New("mongo.uri is required for the mongo storage driver")
		}
	default:
		return errors.Errorf("unknown storage driver: %s", cfg.Storage.Driver)
	}

	cfg.applyCatalogDefaults()
	cfg.applyShareDefaults()
	cfg.applyWorkerDefaults()

	return cfg.applyPubSubDefaults()
}

func (cfg *Config) applyCatalogDefaults() {
	defaults := DefaultCatalogConfig()
	if cfg.Catalog == nil {
		cfg.Catalog = defaults

		return
	}

	if cfg.Catalog.PageSize <= 0 {
		cfg.Catalog.PageSize = defaults.PageSize
	}
	if cfg.Catalog.SearchLimit <= 0 {
		cfg.Catalog.SearchLimit = defaults.SearchLimit
	}
	if cfg.Catalog.NearLimit <= 0 {
		cfg.Catalog.NearLimit = defaults.NearLimit
	}
	if cfg.Catalog.NearMaxDistance <= 0 {
		cfg.Catalog.NearMaxDistance = defaults.NearMaxDistance
	}
	if cfg.Catalog.NearRadiusCeiling < cfg.Catalog.NearMaxDistance {
		cfg.Catalog.NearRadiusCeiling = max(defaults.NearRadiusCeiling, cfg.Catalog.NearMaxDistance)
	}
	if cfg.Catalog.TopMinReviews <= 0 {
		cfg.Catalog.TopMinReviews = defaults.TopMinReviews
	}
	if cfg.Catalog.TopLimit <= 0 {
		cfg.Catalog.TopLimit = defaults.TopLimit
	}
}

func (cfg *Config) applyShareDefaults() {
	defaults := DefaultShareConfig()
	if cfg.Share == nil {
		cfg.Share = defaults

		return
	}

	cfg.Share.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.Share.BaseURL), "/")
	if cfg.Share.BaseURL == "" {
		cfg.Share.BaseURL = defaults.BaseURL
	}
	if cfg.Share.Size <= 0 {
		cfg.Share.Size = defaults.Size
	}
	if cfg.Share.ErrorCorrectionLevel == "" {
		cfg.Share.ErrorCorrectionLevel = defaults.ErrorCorrectionLevel
	}
}

func (cfg *Config) applyWorkerDefaults() {
	if cfg.Worker == nil {
		cfg.Worker = DefaultWorkerConfig()

		return
	}

	if cfg.Worker.Port <= 0 {
		cfg.Worker.Port = DefaultWorkerConfig().Port
	}
}

// applyPubSubDefaults validates the provider settings. A local provider
// without an endpoint pushes to the event worker on this host.
func (cfg *Config) applyPubSubDefaults() error {
	if cfg.PubSub == nil {
		return nil
	}

	cfg.PubSub.Provider = strings.ToLower(strings.TrimSpace(cfg.PubSub.Provider))

	switch cfg.PubSub.Provider {
	case "":
		// Publishing disabled
	case PubSubProviderLocal:
		if cfg.PubSub.LocalEndpoint == "" {
			cfg.PubSub.LocalEndpoint = "http://localhost:" + strconv.Itoa(cfg.Worker.Port) + "/push"
		}
	case PubSubProviderGoogle:
		if cfg.PubSub.ProjectID == "" {
			return errors.New("pubsub.projectId is required for the google provider")
		}
		if cfg.PubSub.TopicID == "" {
			return errors.New("pubsub.topicId is required for the google provider")
		}
	default:
		return errors.Errorf("unknown pubsub provider: %s", cfg.PubSub.Provider)
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
