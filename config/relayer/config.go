package relayer

import (
	"fmt"
	"time"

	"github.com/creasty/defaults"
	"github.com/imdario/mergo"
	"github.com/rs/zerolog"
)

type CoinmarketcapConfig struct {
	Url    string `mapstructure:"url" json:"url" default:"https://pro-api.coinmarketcap.com"`
	ApiKey string `mapstructure:"apiKey" json:"apiKey"`
}

type RelayerConfig struct {
	LogLevel  zerolog.Level
	LogFormat string
	Env       string

	HealthPort uint16
	ApiAddr    string

	IndexURL            string
	AttestationURL      string
	AttestationRPS      float64
	CoinmarketcapConfig CoinmarketcapConfig

	PollInterval         time.Duration
	RecheckInterval      time.Duration
	QueueCapacity        int
	QueueDrainThreshold  int
	PriceRefreshInterval time.Duration
	PriceStaleTolerance  time.Duration
	MaxGasLimit          uint64
	MaxTransferAge       time.Duration
	SupervisorInterval   time.Duration
	SubmitTimeout        time.Duration
	AllowTokenOnly       bool

	LedgerPath    string
	TelemetryPath string
}

type RawRelayerConfig struct {
	LogLevel  string `mapstructure:"logLevel" json:"logLevel" default:"info"`
	LogFormat string `mapstructure:"logFormat" json:"logFormat" default:"json"`
	Env       string `mapstructure:"env" json:"env" default:"mainnet"`

	HealthPort uint16 `mapstructure:"healthPort" json:"healthPort" default:"9001"`
	ApiAddr    string `mapstructure:"apiAddr" json:"apiAddr" default:":3000"`

	IndexURL            string              `mapstructure:"indexUrl" json:"indexUrl"`
	AttestationURL      string              `mapstructure:"attestationUrl" json:"attestationUrl"`
	AttestationRPS      float64             `mapstructure:"attestationRps" json:"attestationRps" default:"10"`
	CoinmarketcapConfig CoinmarketcapConfig `mapstructure:"coinmarketcap" json:"coinmarketcap"`

	PollInterval         time.Duration `mapstructure:"pollInterval" json:"pollInterval" default:"30s"`
	RecheckInterval      time.Duration `mapstructure:"recheckInterval" json:"recheckInterval" default:"10m"`
	QueueCapacity        int           `mapstructure:"queueCapacity" json:"queueCapacity" default:"1024"`
	QueueDrainThreshold  int           `mapstructure:"queueDrainThreshold" json:"queueDrainThreshold" default:"1000"`
	PriceRefreshInterval time.Duration `mapstructure:"priceRefreshInterval" json:"priceRefreshInterval" default:"3m"`
	PriceStaleTolerance  time.Duration `mapstructure:"priceStaleTolerance" json:"priceStaleTolerance" default:"15m"`
	MaxGasLimit          uint64        `mapstructure:"maxGasLimit" json:"maxGasLimit" default:"10000000"`
	MaxTransferAge       time.Duration `mapstructure:"maxTransferAge" json:"maxTransferAge" default:"168h"`
	SupervisorInterval   time.Duration `mapstructure:"supervisorInterval" json:"supervisorInterval" default:"10m"`
	SubmitTimeout        time.Duration `mapstructure:"submitTimeout" json:"submitTimeout" default:"5m"`
	AllowTokenOnly       bool          `mapstructure:"allowTokenOnly" json:"allowTokenOnly"`

	LedgerPath    string `mapstructure:"ledgerPath" json:"ledgerPath" default:"./ledger"`
	TelemetryPath string `mapstructure:"telemetryPath" json:"telemetryPath" default:"./telemetry.db"`
}

func (c *RawRelayerConfig) Validate() error {
	if c.Env != MAINNET && c.Env != TESTNET {
		return fmt.Errorf("unsupported env %s", c.Env)
	}
	if c.QueueCapacity <= 0 {
		return fmt.Errorf("queue capacity has to be positive")
	}
	if c.QueueDrainThreshold <= 0 || c.QueueDrainThreshold > c.QueueCapacity {
		return fmt.Errorf("queue drain threshold has to be between 1 and queue capacity")
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll interval has to be positive")
	}
	if c.PriceStaleTolerance < c.PriceRefreshInterval {
		return fmt.Errorf("price stale tolerance shorter than refresh interval")
	}
	if c.MaxGasLimit == 0 {
		return fmt.Errorf("max gas limit has to be positive")
	}
	return nil
}

// NewRelayerConfig applies defaults and network settings to the raw config and validates it.
func NewRelayerConfig(raw RawRelayerConfig) (RelayerConfig, error) {
	err := defaults.Set(&raw)
	if err != nil {
		return RelayerConfig{}, err
	}

	network, err := NetworkDefaults(raw.Env)
	if err != nil {
		return RelayerConfig{}, err
	}
	err = mergo.Merge(&raw, network)
	if err != nil {
		return RelayerConfig{}, err
	}

	err = raw.Validate()
	if err != nil {
		return RelayerConfig{}, err
	}

	logLevel, err := zerolog.ParseLevel(raw.LogLevel)
	if err != nil {
		return RelayerConfig{}, fmt.Errorf("unknown log level %s: %w", raw.LogLevel, err)
	}

	return RelayerConfig{
		LogLevel:             logLevel,
		LogFormat:            raw.LogFormat,
		Env:                  raw.Env,
		HealthPort:           raw.HealthPort,
		ApiAddr:              raw.ApiAddr,
		IndexURL:             raw.IndexURL,
		AttestationURL:       raw.AttestationURL,
		AttestationRPS:       raw.AttestationRPS,
		CoinmarketcapConfig:  raw.CoinmarketcapConfig,
		PollInterval:         raw.PollInterval,
		RecheckInterval:      raw.RecheckInterval,
		QueueCapacity:        raw.QueueCapacity,
		QueueDrainThreshold:  raw.QueueDrainThreshold,
		PriceRefreshInterval: raw.PriceRefreshInterval,
		PriceStaleTolerance:  raw.PriceStaleTolerance,
		MaxGasLimit:          raw.MaxGasLimit,
		MaxTransferAge:       raw.MaxTransferAge,
		SupervisorInterval:   raw.SupervisorInterval,
		SubmitTimeout:        raw.SubmitTimeout,
		AllowTokenOnly:       raw.AllowTokenOnly,
		LedgerPath:           raw.LedgerPath,
		TelemetryPath:        raw.TelemetryPath,
	}, nil
}
