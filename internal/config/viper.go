package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the complete application configuration.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Webservice struct {
		BaseURL  string `mapstructure:"base_url" yaml:"base_url"`
		Username string `mapstructure:"username" yaml:"username"`
		Password string `mapstructure:"password" yaml:"-"` // never serialize credentials
	} `mapstructure:"webservice" yaml:"webservice"`

	Sheets struct {
		FueraSistemaPENURL   string `mapstructure:"fuera_sistema_pen_url" yaml:"fuera_sistema_pen_url"`
		FueraSistemaUSDURL   string `mapstructure:"fuera_sistema_usd_url" yaml:"fuera_sistema_usd_url"`
		SectorPagadoresURL   string `mapstructure:"sector_pagadores_url" yaml:"sector_pagadores_url"`
		FondoCrecerURL       string `mapstructure:"fondo_crecer_url" yaml:"fondo_crecer_url"`
		FondoPromocionalURL  string `mapstructure:"fondo_promocional_url" yaml:"fondo_promocional_url"`
		ReferidosURL         string `mapstructure:"referidos_url" yaml:"referidos_url"`
	} `mapstructure:"sheets" yaml:"sheets"`

	HTTP struct {
		TimeoutSeconds int `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
		MaxAttempts    int `mapstructure:"max_attempts" yaml:"max_attempts"`
	} `mapstructure:"http" yaml:"http"`

	Database struct {
		DSN       string `mapstructure:"dsn" yaml:"-"` // never serialize credentials
		ChunkSize int    `mapstructure:"chunk_size" yaml:"chunk_size"`
	} `mapstructure:"database" yaml:"database"`

	ETL struct {
		// TipoCambioFallback is used when no exchange-rate rows are available.
		TipoCambioFallback float64 `mapstructure:"tipo_cambio_fallback" yaml:"tipo_cambio_fallback"`
		CodigosFile        string  `mapstructure:"codigos_file" yaml:"codigos_file"`
		EjecutivosFile     string  `mapstructure:"ejecutivos_file" yaml:"ejecutivos_file"`
	} `mapstructure:"etl" yaml:"etl"`
}

// InitializeConfig loads configuration with hierarchical precedence:
// defaults, then a YAML config file, then CXC_-prefixed env variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.cxc-etl")
	v.AddConfigPath("config")
	v.AddConfigPath(".")

	v.SetEnvPrefix("CXC")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; anything else is not.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("http.timeout_seconds", 120)
	v.SetDefault("http.max_attempts", 3)

	v.SetDefault("database.chunk_size", 1000)

	v.SetDefault("etl.tipo_cambio_fallback", 3.8)
	v.SetDefault("etl.codigos_file", "config/codigos.yaml")
	v.SetDefault("etl.ejecutivos_file", "config/ejecutivos.yaml")
}
