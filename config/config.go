package config

import (
	"os"

	redis_wrapper "github.com/roisan13/orderbook/pkg/infra/redis"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type EngineConfig struct {
	Symbol   string `yaml:"symbol"`
	TickSize string `yaml:"tick_size"` // decimal string, e.g. "0.01"
}

type RiskConfig struct {
	PriceFloor   int32  `yaml:"price_floor"`
	PriceCeil    int32  `yaml:"price_ceil"`
	TickRuleFile string `yaml:"tick_rule_file"`
}

type FeedConfig struct {
	ListenAddr   string `yaml:"listen_addr"`
	RedisChannel string `yaml:"redis_channel"`
}

type AppConfig struct {
	ServiceName string                     `yaml:"service_name"`
	LogLevel    string                     `yaml:"log_level"`
	Engine      *EngineConfig              `yaml:"engine"`
	Risk        *RiskConfig                `yaml:"risk"`
	Feed        *FeedConfig                `yaml:"feed"`
	Redis       *redis_wrapper.RedisConfig `yaml:"redis"`
}

// Load load config from file and environment variables.
func Load(filePath string) (*AppConfig, error) {
	if len(filePath) == 0 {
		filePath = os.Getenv("CONFIG_FILE")
	}

	fields := []interface{}{
		"func",
		"config.Load",
		"filePath",
		filePath,
	}

	sugar := zap.S().With(fields...)

	sugar.Debug("Load config...")
	zap.S().Debugf("CONFIG_FILE=%v", filePath)

	configBytes, err := os.ReadFile(filePath)
	if err != nil {
		sugar.Error("Failed to load config file")
		return nil, err
	}
	configBytes = []byte(os.ExpandEnv(string(configBytes)))

	cfg := &AppConfig{}

	err = yaml.Unmarshal(configBytes, cfg)
	if err != nil {
		sugar.Error("Failed to parse config file")
		return nil, err
	}

	zap.S().Debugf("config: %+v", cfg)

	return cfg, nil
}
