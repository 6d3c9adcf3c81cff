// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

const (
	DefaultAPIURL          = "https://diadoc-api.kontur.ru"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultStorageDSN      = "diadoc-journal.db"
	DefaultSandboxAddress  = "localhost:8080"
	DefaultPowerOfAttorney = "none"
	DefaultLogLevel        = "info"
)

// StructuredConfig is the top-level configuration of the samples.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	// API holds the service endpoint and the integrator client id.
	API API `envPrefix:"DIADOC_API_"`
	// Auth holds login/password credentials used to obtain a token.
	Auth Auth `envPrefix:"DIADOC_AUTH_"`
	// Boxes holds sender and recipient mailbox ids.
	Boxes Boxes `envPrefix:"DIADOC_BOXES_"`
	// Signer points at the key material used to sign titles.
	Signer Signer `envPrefix:"DIADOC_SIGNER_"`
	// PowerOfAttorney selects how the signer's authority is confirmed.
	PowerOfAttorney PowerOfAttorney `envPrefix:"DIADOC_POA_"`
	// Storage configures the local submission journal.
	Storage Storage `envPrefix:"DIADOC_STORAGE_"`
	// Sandbox configures the local stand-in server.
	Sandbox Sandbox `envPrefix:"DIADOC_SANDBOX_"`
	// Log configures logging.
	Log Log `envPrefix:"DIADOC_LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file,
	// set with DIADOC_CONFIG or -c / -config.
	JSONFilePath string `env:"DIADOC_CONFIG"`
}

type API struct {
	URL            string        `env:"URL"`
	ClientID       string        `env:"CLIENT_ID"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

type Auth struct {
	Login    string `env:"LOGIN"`
	Password string `env:"PASSWORD"`
}

type Boxes struct {
	FromBoxID string `env:"FROM"`
	ToBoxID   string `env:"TO"`
}

// Signer describes where the signing key lives. Either a PEM key/certificate
// pair or a PKCS#12 bundle is expected.
type Signer struct {
	CertificatePath string `env:"CERTIFICATE_PATH"`
	KeyPath         string `env:"KEY_PATH"`
	PKCS12Path      string `env:"PKCS12_PATH"`
	PKCS12Password  string `env:"PKCS12_PASSWORD"`
	// VerifyBeforeSend makes the pipeline check the signature locally
	// before submitting.
	VerifyBeforeSend bool `env:"VERIFY"`
}

// PowerOfAttorney selects the power-of-attorney mode: "none", "file-as-meta"
// or "in-content". File paths are used by file-as-meta, the registry ids by
// in-content.
type PowerOfAttorney struct {
	Mode               string `env:"MODE"`
	ContentPath        string `env:"CONTENT_PATH"`
	SignaturePath      string `env:"SIGNATURE_PATH"`
	IssuerInn          string `env:"ISSUER_INN"`
	RegistrationNumber string `env:"REGISTRATION_NUMBER"`
}

type Storage struct {
	// DSN is a SQLite file path or a postgres:// URL.
	DSN string `env:"DSN"`
}

type Sandbox struct {
	Address string `env:"ADDRESS"`
}

type Log struct {
	Level string `env:"LEVEL"`
}

// GetConfig builds the configuration from the environment, args and the
// optional JSON file. It returns the positional arguments left after flag
// parsing.
func GetConfig(args []string) (*StructuredConfig, []string, error) {
	b := newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults()

	cfg, err := b.build()
	return cfg, b.args, err
}

func defaults() *StructuredConfig {
	return &StructuredConfig{
		API:             API{URL: DefaultAPIURL, RequestTimeout: DefaultRequestTimeout},
		PowerOfAttorney: PowerOfAttorney{Mode: DefaultPowerOfAttorney},
		Storage:         Storage{DSN: DefaultStorageDSN},
		Sandbox:         Sandbox{Address: DefaultSandboxAddress},
		Log:             Log{Level: DefaultLogLevel},
	}
}
