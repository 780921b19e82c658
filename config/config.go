package config

import (
	"os"
	"path/filepath"
	"regexp"
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
	defaultISPName            = "WebPortal"
	defaultMPWAServerURL      = "https://wa.parabolaku.id/send-message"
	defaultFonnteServerURL    = "https://api.fonnte.com/send"
	defaultOTPMessage         = "Kode OTP Anda untuk login WebPortal: {{otp}}. Kode ini berlaku selama {{expiry}} menit."
	defaultOTPLength          = 6
	defaultOTPExpiry          = 5 * time.Minute
	defaultSessionTTL         = 24 * time.Hour
	defaultRefreshConcurrency = 10
	defaultACSTimeout         = 15 * time.Second
	defaultRouterPort         = 8728
	defaultRouterTimeout      = 10 * time.Second
)

// Gateway names accepted by whatsapp.active.
const (
	GatewayFonnte = "fonnte"
	GatewayWablas = "wablas"
	GatewayMPWA   = "mpwa"
)

// OTP store backends accepted by otp.store.
const (
	OTPStoreMemory = "memory"
	OTPStoreRedis  = "redis"
)

var ispNamePattern = regexp.MustCompile(`([A-Za-z0-9-]+)\s*$`)

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

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Session SessionConfig `json:"session" yaml:"session"`

	// ACS is the GenieACS northbound REST endpoint.
	ACS ACSConfig `json:"acs" yaml:"acs"`

	// Router is the MikroTik RouterOS API endpoint used by admin commands.
	Router RouterConfig `json:"router" yaml:"router"`

	WhatsApp WhatsAppConfig `json:"whatsapp" yaml:"whatsapp"`

	Branding BrandingConfig `json:"branding" yaml:"branding"`

	OTP OTPConfig `json:"otp" yaml:"otp"`

	// Admin holds the portal administrator and technician credentials.
	Admin AdminConfig `json:"admin" yaml:"admin"`

	Refresh struct {
		Concurrency int `json:"concurrency" yaml:"concurrency"`
	} `json:"refresh" yaml:"refresh"`

	Webhook WebhookConfig `json:"webhook" yaml:"webhook"`

	// QRCode configuration for WiFi join codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

type SessionConfig struct {
	TTL time.Duration `json:"ttl" yaml:"ttl"`
}

type ACSConfig struct {
	URL      string        `json:"url" yaml:"url"`
	Username string        `json:"username" yaml:"username"`
	Password string        `json:"password" yaml:"password"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
}

type RouterConfig struct {
	Host     string        `json:"host" yaml:"host"`
	Port     int           `json:"port" yaml:"port"`
	Username string        `json:"username" yaml:"username"`
	Password string        `json:"password" yaml:"password"`
	Timeout  time.Duration `json:"timeout" yaml:"timeout"`
}

// WhatsAppConfig selects the outbound gateway and carries the admin routing numbers.
type WhatsAppConfig struct {
	Active      string `json:"active" yaml:"active"`
	AdminNumber string `json:"adminNumber" yaml:"adminNumber"`
	GroupID     string `json:"groupId" yaml:"groupId"`

	Gateways struct {
		Fonnte GatewayConfig `json:"fonnte" yaml:"fonnte"`
		Wablas GatewayConfig `json:"wablas" yaml:"wablas"`
		MPWA   GatewayConfig `json:"mpwa" yaml:"mpwa"`
	} `json:"gateways" yaml:"gateways"`
}

type GatewayConfig struct {
	Enabled   bool   `json:"enabled" yaml:"enabled"`
	Token     string `json:"token" yaml:"token"`
	Sender    string `json:"sender" yaml:"sender"`
	ServerURL string `json:"serverUrl" yaml:"serverUrl"`
	Footer    string `json:"footer" yaml:"footer"`
}

// Gateway returns the configuration block for a gateway name.
func (w WhatsAppConfig) Gateway(name string) (GatewayConfig, bool) {
	switch strings.ToLower(name) {
	case GatewayFonnte:
		return w.Gateways.Fonnte, true
	case GatewayWablas:
		return w.Gateways.Wablas, true
	case GatewayMPWA:
		return w.Gateways.MPWA, true
	default:
		return GatewayConfig{}, false
	}
}

// AcceptsInbound reports whether webhooks from the named gateway should be processed.
func (w WhatsAppConfig) AcceptsInbound(name string) bool {
	gw, ok := w.Gateway(name)
	if !ok {
		return false
	}

	return gw.Enabled || strings.EqualFold(w.Active, name)
}

type BrandingConfig struct {
	ISPName        string `json:"ispName" yaml:"ispName"`
	SupportContact string `json:"supportContact" yaml:"supportContact"`
}

type OTPConfig struct {
	Enabled bool          `json:"enabled" yaml:"enabled"`
	Length  int           `json:"length" yaml:"length"`
	Expiry  time.Duration `json:"expiry" yaml:"expiry"`
	Message string        `json:"message" yaml:"message"`
	Store   string        `json:"store" yaml:"store"`
	Redis   RedisConfig   `json:"redis" yaml:"redis"`
}

type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
	Prefix   string `json:"prefix" yaml:"prefix"`
}

type AdminConfig struct {
	Username           string `json:"username" yaml:"username"`
	Password           string `json:"password" yaml:"password"`
	TechnicianUsername string `json:"technicianUsername" yaml:"technicianUsername"`
	TechnicianPassword string `json:"technicianPassword" yaml:"technicianPassword"`
}

// WebhookConfig throttles inbound gateway callbacks and extends the anti-loop signatures.
type WebhookConfig struct {
	RatePerSecond float64  `json:"ratePerSecond" yaml:"ratePerSecond"`
	Burst         int      `json:"burst" yaml:"burst"`
	Signatures    []string `json:"signatures" yaml:"signatures"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	configFile, found := findConfigFile(searchPaths, currEnv)
	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// WHATSAPP_GATEWAYS_MPWA_SERVERURL -> whatsapp.gateways.mpwa.serverUrl
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			return canonicalizeEnvKey(k, existingConfigMap), v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func findConfigFile(searchPaths []string, currEnv string) (string, bool) {
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
	}

	return "", false
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}
	if cfg.Session.TTL <= 0 {
		cfg.Session.TTL = defaultSessionTTL
	}
	if cfg.ACS.Timeout <= 0 {
		cfg.ACS.Timeout = defaultACSTimeout
	}
	if cfg.Router.Port == 0 {
		cfg.Router.Port = defaultRouterPort
	}
	if cfg.Router.Timeout <= 0 {
		cfg.Router.Timeout = defaultRouterTimeout
	}
	if cfg.WhatsApp.Gateways.MPWA.ServerURL == "" {
		cfg.WhatsApp.Gateways.MPWA.ServerURL = defaultMPWAServerURL
	}
	if cfg.WhatsApp.Gateways.Fonnte.ServerURL == "" {
		cfg.WhatsApp.Gateways.Fonnte.ServerURL = defaultFonnteServerURL
	}
	if cfg.OTP.Length <= 0 {
		cfg.OTP.Length = defaultOTPLength
	}
	if cfg.OTP.Expiry <= 0 {
		cfg.OTP.Expiry = defaultOTPExpiry
	}
	if strings.TrimSpace(cfg.OTP.Message) == "" {
		cfg.OTP.Message = defaultOTPMessage
	}
	if cfg.OTP.Store == "" {
		cfg.OTP.Store = OTPStoreMemory
	}
	if cfg.Refresh.Concurrency <= 0 {
		cfg.Refresh.Concurrency = defaultRefreshConcurrency
	}
	if strings.TrimSpace(cfg.Branding.ISPName) == "" {
		cfg.Branding.ISPName = ISPNameFromTemplate(cfg.OTP.Message)
	}
	if strings.TrimSpace(cfg.Branding.SupportContact) == "" {
		cfg.Branding.SupportContact = cfg.WhatsApp.AdminNumber
	}
}

// ISPNameFromTemplate takes the trailing word of the OTP template as the brand
// name, falling back to WebPortal when the template ends in punctuation.
func ISPNameFromTemplate(template string) string {
	match := ispNamePattern.FindStringSubmatch(strings.TrimSpace(template))
	if len(match) < 2 {
		return defaultISPName
	}

	return match[1]
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
