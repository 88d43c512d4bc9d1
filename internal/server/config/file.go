package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/messagely/internal/flagx"
	"github.com/dmitrijs2005/messagely/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is the on-disk shape of the configuration, shared by the JSON
// and YAML decoders. Pointer fields distinguish "absent" from "zero" so a
// partial file only overrides what it mentions.
type FileConfig struct {
	EndpointAddrHTTP            *string         `json:"endpoint_addr_http" yaml:"endpoint_addr_http"`
	EndpointAddrGRPC            *string         `json:"endpoint_addr_grpc" yaml:"endpoint_addr_grpc"`
	DatabaseDSN                 *string         `json:"database_dsn" yaml:"database_dsn"`
	SecretKey                   *string         `json:"secret_key" yaml:"secret_key"`
	BcryptWorkFactor            *int            `json:"bcrypt_work_factor" yaml:"bcrypt_work_factor"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration" yaml:"access_token_validity_duration"`
	LogLevel                    *string         `json:"log_level" yaml:"log_level"`
}

// parseFile loads the file named by -c / -config into config. Files ending
// in .yaml or .yml are decoded as YAML, anything else as JSON. Without the
// flag nothing happens; an unreadable or malformed file panics.
func parseFile(config *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &FileConfig{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, c)
	default:
		err = json.Unmarshal(data, c)
	}
	if err != nil {
		panic(err)
	}

	c.apply(config)
}

func (c *FileConfig) apply(config *Config) {
	if c.EndpointAddrHTTP != nil {
		config.EndpointAddrHTTP = *c.EndpointAddrHTTP
	}
	if c.EndpointAddrGRPC != nil {
		config.EndpointAddrGRPC = *c.EndpointAddrGRPC
	}
	if c.DatabaseDSN != nil {
		config.DatabaseDSN = *c.DatabaseDSN
	}
	if c.SecretKey != nil {
		config.SecretKey = *c.SecretKey
	}
	if c.BcryptWorkFactor != nil {
		config.BcryptWorkFactor = *c.BcryptWorkFactor
	}
	if c.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.LogLevel != nil {
		config.LogLevel = *c.LogLevel
	}
}
