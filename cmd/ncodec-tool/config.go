package main

import (
	"flag"
	"fmt"
)

type appConfig struct {
	mimeType    string
	modelName   string
	logFormat   string
	logLevel    string
	metricsAddr string
}

func parseFlags() (*appConfig, bool) {
	cfg := &appConfig{}
	mimeType := flag.String("mime-type", "interface=stream;type=can;schema=fbs", "Codec configuration string (interface=stream;type=can|pdu;schema=fbs;...)")
	modelName := flag.String("model-name", "ncodec-tool", "Model name reported to the simulation driver")
	logFormat := flag.String("log-format", "text", "Log format: text|json")
	logLevel := flag.String("log-level", "info", "Log level: debug|info|warn|error")
	metricsAddr := flag.String("metrics-addr", "", "Metrics HTTP listen address (e.g., :9100); empty disables")
	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.Parse()

	cfg.mimeType = *mimeType
	cfg.modelName = *modelName
	cfg.logFormat = *logFormat
	cfg.logLevel = *logLevel
	cfg.metricsAddr = *metricsAddr

	if err := cfg.validate(); err != nil {
		fmt.Printf("configuration error: %v\n", err)
		return nil, *showVersion
	}
	return cfg, *showVersion
}

func (c *appConfig) validate() error {
	switch c.logLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.logLevel)
	}
	switch c.logFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format: %s", c.logFormat)
	}
	return nil
}
