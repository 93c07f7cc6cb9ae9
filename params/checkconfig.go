package params

import (
	"errors"
	"fmt"

	"github.com/anyswap/xrpl-codec/addresscodec"
	"github.com/anyswap/xrpl-codec/common"
)

// CheckConfig check config
func (c *Config) CheckConfig() error {
	if c.Log != nil {
		if err := c.Log.CheckConfig(); err != nil {
			return err
		}
	}
	if c.Codec != nil {
		if err := c.Codec.CheckConfig(); err != nil {
			return err
		}
	}
	if c.Keypairs != nil {
		if err := c.Keypairs.CheckConfig(); err != nil {
			return err
		}
	}
	return nil
}

// CheckConfig check log config
func (c *LogConfig) CheckConfig() error {
	if c.File == "" {
		return errors.New("log config must have non empty 'File'")
	}
	if c.MaxAgeHours != 0 && c.MaxAgeHours < c.RotationHours {
		return fmt.Errorf("log 'MaxAgeHours' %v is less than 'RotationHours' %v", c.MaxAgeHours, c.RotationHours)
	}
	return nil
}

// CheckConfig check codec config
func (c *CodecConfig) CheckConfig() error {
	if c.DefinitionsFile != "" && !common.FileExist(c.DefinitionsFile) {
		return fmt.Errorf("definitions file %v not exist", c.DefinitionsFile)
	}
	return nil
}

// CheckConfig check keypairs config
func (c *KeypairsConfig) CheckConfig() error {
	if c.Algorithm == "" {
		return nil
	}
	if _, err := addresscodec.ParseCryptoAlgorithm(c.Algorithm); err != nil {
		return fmt.Errorf("keypairs 'Algorithm': %w", err)
	}
	return nil
}
