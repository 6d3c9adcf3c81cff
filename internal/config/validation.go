package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-diadoc/utd970"
)

// ValidateAPI checks what every API call needs.
func (cfg *StructuredConfig) ValidateAPI() error {
	if cfg.API.ClientID == "" {
		return fmt.Errorf("%w: client id is required", ErrInvalidAPIConfigs)
	}
	if cfg.API.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive", ErrInvalidAPIConfigs)
	}
	u, err := url.Parse(cfg.API.URL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%w: api url %q must include scheme and host", ErrInvalidAPIConfigs, cfg.API.URL)
	}
	return nil
}

// ValidatePosting checks what the document-sending pipeline needs on top of
// ValidateAPI. All violations are reported together.
func (cfg *StructuredConfig) ValidatePosting() error {
	var errs []error

	if err := cfg.ValidateAPI(); err != nil {
		errs = append(errs, err)
	}
	if cfg.Auth.Login == "" || cfg.Auth.Password == "" {
		errs = append(errs, fmt.Errorf("%w: login and password are required", ErrInvalidAuthConfigs))
	}
	if cfg.Boxes.FromBoxID == "" || cfg.Boxes.ToBoxID == "" {
		errs = append(errs, fmt.Errorf("%w: sender and recipient boxes are required", ErrInvalidBoxesConfigs))
	}

	pemPair := cfg.Signer.CertificatePath != "" && cfg.Signer.KeyPath != ""
	bundle := cfg.Signer.PKCS12Path != ""
	if pemPair == bundle {
		errs = append(errs, fmt.Errorf("%w: set either cert and key or a pkcs12 bundle", ErrInvalidSignerConfigs))
	}

	kind, err := cfg.PowerOfAttorney.Kind()
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidPowerOfAttorneyConfigs, err))
	case kind == utd970.KindFileAsMeta:
		if cfg.PowerOfAttorney.ContentPath == "" || cfg.PowerOfAttorney.SignaturePath == "" {
			errs = append(errs, fmt.Errorf("%w: file-as-meta needs file and signature paths", ErrInvalidPowerOfAttorneyConfigs))
		}
	case kind == utd970.KindInContent:
		if cfg.PowerOfAttorney.IssuerInn == "" || cfg.PowerOfAttorney.RegistrationNumber == "" {
			errs = append(errs, fmt.Errorf("%w: in-content needs issuer inn and registration number", ErrInvalidPowerOfAttorneyConfigs))
		}
	}

	return errors.Join(errs...)
}

// ValidateStorage checks the journal configuration.
func (cfg *StructuredConfig) ValidateStorage() error {
	if strings.TrimSpace(cfg.Storage.DSN) == "" {
		return ErrInvalidStorageConfigs
	}
	return nil
}

// Kind parses Mode, ignoring case and surrounding spaces. An empty mode is
// utd970.KindNone.
func (p PowerOfAttorney) Kind() (utd970.PowerOfAttorneyKind, error) {
	mode := strings.ToLower(strings.TrimSpace(p.Mode))
	if mode == "" {
		return utd970.KindNone, nil
	}
	return utd970.ParsePowerOfAttorneyKind(mode)
}
