package core

import (
	"fmt"
	"strings"
)

type Config struct {
	ServiceName string `koanf:"service_name" mapstructure:"service_name"`
	// SupportEmail is included in owner notifications about
	// misconfigured integrations.
	SupportEmail string `koanf:"support_email" mapstructure:"support_email"`
	// VerifySignatures toggles webhook signature enforcement for every
	// verifier built from this configuration.
	VerifySignatures bool `koanf:"verify_signatures" mapstructure:"verify_signatures"`
}

func DefaultConfig() Config {
	return Config{
		ServiceName:      "webhooks",
		VerifySignatures: true,
	}
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.ServiceName) == "" {
		return fmt.Errorf("core: service_name is required")
	}
	return nil
}
