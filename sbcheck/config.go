package sbcheck

import "os"

const (
	DefaultEndpoint = "https://sb-ssl.google.com/safebrowsing/api/lookup"
	DefaultClient   = "safebrowsing"
	AppVer          = "1.0"
	PVer            = "3.0"
	DefaultKeyFile  = "categorization.key"
)

// Config holds everything a lookup needs besides the key and the target.
type Config struct {
	Endpoint string
	Client   string
	AppVer   string
	PVer     string
	KeyFile  string
}

func DefaultConfig() Config {
	return Config{
		Endpoint: DefaultEndpoint,
		Client:   DefaultClient,
		AppVer:   AppVer,
		PVer:     PVer,
		KeyFile:  DefaultKeyFile,
	}
}

// ConfigFromEnv returns the default config with SB_ENDPOINT, SB_CLIENT and
// SB_KEY_FILE applied on top when they are set.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("SB_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("SB_CLIENT"); v != "" {
		cfg.Client = v
	}
	if v := os.Getenv("SB_KEY_FILE"); v != "" {
		cfg.KeyFile = v
	}

	return cfg
}
