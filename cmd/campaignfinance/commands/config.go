package commands

import (
	"campaignfinance/lib/configutil"
	"campaignfinance/lib/financestore"
	"campaignfinance/lib/platforms/efk"
	"campaignfinance/lib/restyutil"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

type ApiConfig struct {
	BaseUrl        string `json:"base_url"`
	UserAgent      string `json:"user_agent"`
	TimeoutSeconds int    `json:"timeout_seconds"`
}

type Config struct {
	Api     ApiConfig           `json:"api"`
	Output  string              `json:"output"`
	History financestore.Config `json:"history"`
	// when set and running with --verbose, every http exchange is
	// dumped into this directory
	DebugHttpDir string `json:"debug_http_dir"`
}

func defaultConfig() Config {
	return Config{
		Api: ApiConfig{
			BaseUrl: efk.DefaultBaseUrl,
		},
		Output: "data.json",
	}
}

// reads the config file and applies the flags that were explicitly set
func loadConfig(cmd *cobra.Command) (Config, error) {
	cfg, err := configutil.ReadConfigWithDefaults(*configPath, defaultConfig())
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", *configPath, err)
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output, _ = flags.GetString("output")
	}
	if flags.Changed("history") {
		cfg.History.File, _ = flags.GetString("history")
	}
	if flags.Changed("base-url") {
		cfg.Api.BaseUrl, _ = flags.GetString("base-url")
	}
	return cfg, nil
}

func newEfkClient(cfg Config) (*efk.Client, error) {
	opts := efk.ClientOptions{
		BaseUrl:   cfg.Api.BaseUrl,
		UserAgent: cfg.Api.UserAgent,
		Timeout:   time.Duration(cfg.Api.TimeoutSeconds) * time.Second,
	}
	if cfg.DebugHttpDir != "" && *verbose {
		out, err := restyutil.NewFilesystemOutput(cfg.DebugHttpDir)
		if err != nil {
			return nil, err
		}
		opts.InstrumentOutput = out
	}
	return efk.NewClient(opts)
}
