package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

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
)

// Icon failure policies
const (
	IconFailureSkip     = "skip"
	IconFailureFallback = "fallback"
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

	// Firebase configuration for the document store and ID token verification
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// MapView configuration for marker, cluster and viewport behaviour
	MapView *MapViewConfig `json:"mapView" yaml:"mapView"`

	// ImageProxy configuration for thumbnail fetching
	ImageProxy *ImageProxyConfig `json:"imageProxy" yaml:"imageProxy"`

	// PubSub configuration for bookmark event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for offer share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// Basemap configuration for PMTiles vector tiles
	Basemap *BasemapConfig `json:"basemap" yaml:"basemap"`

	Tracing *TracingConfig `json:"tracing" yaml:"tracing"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines the Firebase project used for Firestore and Auth
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// AuthConfig defines identity verification settings.
// DevSecret enables HS256 tokens for local development when Firebase is not configured.
type AuthConfig struct {
	DevSecret string `json:"devSecret" yaml:"devSecret"`
}

// MapViewConfig defines the marker lifecycle and viewport parameters
type MapViewConfig struct {
	ClusterRadiusPx  float64 `json:"clusterRadiusPx" yaml:"clusterRadiusPx"`
	ClusterMaxZoom   float64 `json:"clusterMaxZoom" yaml:"clusterMaxZoom"`
	InitialZoom      float64 `json:"initialZoom" yaml:"initialZoom"`
	UserZoom         float64 `json:"userZoom" yaml:"userZoom"`
	RecenterZoom     float64 `json:"recenterZoom" yaml:"recenterZoom"`
	DetailZoom       float64 `json:"detailZoom" yaml:"detailZoom"`
	FallbackZoom     float64 `json:"fallbackZoom" yaml:"fallbackZoom"`
	DefaultLatitude  float64 `json:"defaultLatitude" yaml:"defaultLatitude"`
	DefaultLongitude float64 `json:"defaultLongitude" yaml:"defaultLongitude"`

	// Viewport size in pixels, used when fitting bounds
	ViewportWidth  int `json:"viewportWidth" yaml:"viewportWidth"`
	ViewportHeight int `json:"viewportHeight" yaml:"viewportHeight"`

	// Number of concurrent icon fetches during a reconciliation
	FetchConcurrency int `json:"fetchConcurrency" yaml:"fetchConcurrency"`

	// IconFailurePolicy is "skip" (no marker) or "fallback" (frame and label only)
	IconFailurePolicy string `json:"iconFailurePolicy" yaml:"iconFailurePolicy"`

	CategoryDocumentID string        `json:"categoryDocumentId" yaml:"categoryDocumentId"`
	SessionTTL         time.Duration `json:"sessionTtl" yaml:"sessionTtl"`
}

// ImageProxyConfig defines the thumbnail proxy endpoint and its upstream client
type ImageProxyConfig struct {
	// BaseURL of a remote proxy; empty means the in-process proxy is used
	BaseURL  string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
	MaxBytes int64         `json:"maxBytes" yaml:"maxBytes"`

	// CacheBucket is a gocloud.dev blob URL, e.g. mem:// or file:///var/cache/waffer
	CacheBucket string `json:"cacheBucket" yaml:"cacheBucket"`
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

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// BasemapConfig defines the PMTiles archive served as the map basemap
type BasemapConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`

	// PMTiles source URL (local file path, HTTP URL, or cloud bucket URL)
	Source string `json:"source" yaml:"source"`

	CacheSize int `json:"cacheSize" yaml:"cacheSize"`
}

// TracingConfig toggles span recording for reconciliations
type TracingConfig struct {
	Enabled bool `json:"enabled" yaml:"enabled"`
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
			// Example: MAPVIEW_CLUSTERMAXZOOM -> mapView.clusterMaxZoom (not mapview.clustermaxzoom)
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

	if cfg.MapView == nil {
		cfg.MapView = &MapViewConfig{}
	}
	cfg.MapView.applyDefaults()

	if cfg.ImageProxy == nil {
		cfg.ImageProxy = &ImageProxyConfig{}
	}
	cfg.ImageProxy.applyDefaults()

	return cfg, nil
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

// applyDefaults fills every zero value with the behaviour of the web map
func (c *MapViewConfig) applyDefaults() {
	setDefault(&c.ClusterRadiusPx, 100)
	setDefault(&c.ClusterMaxZoom, 15)
	setDefault(&c.InitialZoom, 6)
	setDefault(&c.UserZoom, 12)
	setDefault(&c.RecenterZoom, 13)
	setDefault(&c.DetailZoom, 14)
	setDefault(&c.FallbackZoom, 7)
	setDefault(&c.DefaultLatitude, 36.8065)
	setDefault(&c.DefaultLongitude, 10.1815)
	setDefault(&c.ViewportWidth, 390)
	setDefault(&c.ViewportHeight, 844)
	setDefault(&c.FetchConcurrency, 8)
	setDefault(&c.SessionTTL, 30*time.Minute)

	if c.IconFailurePolicy == "" {
		c.IconFailurePolicy = IconFailureSkip
	}
	if c.CategoryDocumentID == "" {
		c.CategoryDocumentID = "6mTU8aEAcAxdIdhsXA9L"
	}
}

func (c *ImageProxyConfig) applyDefaults() {
	setDefault(&c.Timeout, 10*time.Second)
	setDefault(&c.MaxBytes, 5<<20)

	if c.CacheBucket == "" {
		c.CacheBucket = "mem://"
	}
}

func setDefault[T int | int64 | float64 | time.Duration](field *T, value T) {
	if *field == 0 {
		*field = value
	}
}
