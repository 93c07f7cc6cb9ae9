// Package params loads the toml configuration of the command line tool.
package params

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/anyswap/xrpl-codec/addresscodec"
	"github.com/anyswap/xrpl-codec/binarycodec/definitions"
	"github.com/anyswap/xrpl-codec/common"
	"github.com/anyswap/xrpl-codec/log"
)

var (
	codecConfig       *Config
	loadConfigStarter sync.Once
)

// Config config items (decode from toml file)
type Config struct {
	Log      *LogConfig      `toml:",omitempty" json:",omitempty"`
	Codec    *CodecConfig    `toml:",omitempty" json:",omitempty"`
	Keypairs *KeypairsConfig `toml:",omitempty" json:",omitempty"`
}

// LogConfig log file config
type LogConfig struct {
	File          string
	RotationHours uint64 `toml:",omitempty" json:",omitempty"`
	MaxAgeHours   uint64 `toml:",omitempty" json:",omitempty"`
}

// CodecConfig binary codec config
type CodecConfig struct {
	// DefinitionsFile replaces the embedded definitions.json.
	DefinitionsFile string `toml:",omitempty" json:",omitempty"`
}

// KeypairsConfig key generation defaults
type KeypairsConfig struct {
	Algorithm string // secp256k1 or ed25519
	TestNet   bool   // x-addresses for test networks
}

// GetConfig get config, never nil
func GetConfig() *Config {
	if codecConfig == nil {
		return &Config{}
	}
	return codecConfig
}

// SetConfig set config
func SetConfig(config *Config) {
	codecConfig = config
}

// GetCryptoAlgorithm returns the configured default seed algorithm.
func GetCryptoAlgorithm() addresscodec.CryptoAlgorithm {
	cfg := GetConfig().Keypairs
	if cfg == nil || cfg.Algorithm == "" {
		return addresscodec.SECP256K1
	}
	algo, _ := addresscodec.ParseCryptoAlgorithm(cfg.Algorithm)
	return algo
}

// IsTestNet reports whether x-addresses should use the test network prefix.
func IsTestNet() bool {
	cfg := GetConfig().Keypairs
	return cfg != nil && cfg.TestNet
}

// DecodeConfig decodes and checks a config file, and applies its
// definitions override.
func DecodeConfig(configFile string) (*Config, error) {
	if !common.FileExist(configFile) {
		return nil, fmt.Errorf("config file %v not exist", configFile)
	}
	config := &Config{}
	if _, err := toml.DecodeFile(configFile, config); err != nil {
		return nil, fmt.Errorf("toml DecodeFile: %w", err)
	}
	if err := config.CheckConfig(); err != nil {
		return nil, err
	}
	if config.Codec != nil && config.Codec.DefinitionsFile != "" {
		data, err := os.ReadFile(config.Codec.DefinitionsFile)
		if err != nil {
			return nil, err
		}
		if err := definitions.Configure(data); err != nil {
			return nil, fmt.Errorf("definitions file %v: %w", config.Codec.DefinitionsFile, err)
		}
	}
	return config, nil
}

// LoadConfig load config once, exit on error
func LoadConfig(configFile string) *Config {
	loadConfigStarter.Do(func() {
		if configFile == "" {
			SetConfig(&Config{})
			return
		}
		log.Println("Config file is", configFile)
		config, err := DecodeConfig(configFile)
		if err != nil {
			log.Fatalf("LoadConfig error: %v", err)
		}
		SetConfig(config)

		var bs []byte
		if log.JSONFormat {
			bs, _ = json.Marshal(config)
		} else {
			bs, _ = json.MarshalIndent(config, "", "  ")
		}
		log.Println("LoadConfig finished.", string(bs))

		if config.Log != nil {
			if err := log.SetLogFile(config.Log.File, config.Log.RotationHours, config.Log.MaxAgeHours); err != nil {
				log.Fatalf("set log file failed: %v", err)
			}
		}
		log.Info("Check config success", "configFile", configFile)
	})
	return codecConfig
}
