package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors StructuredConfig for the JSON file, with
// durations accepted as strings like "30s".
type StructuredJSONConfig struct {
	API struct {
		URL            string   `json:"url"`
		ClientID       string   `json:"client_id"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"api,omitempty"`

	Auth struct {
		Login    string `json:"login"`
		Password string `json:"password"`
	} `json:"auth,omitempty"`

	Boxes struct {
		FromBoxID string `json:"from"`
		ToBoxID   string `json:"to"`
	} `json:"boxes,omitempty"`

	Signer struct {
		CertificatePath  string `json:"certificate_path"`
		KeyPath          string `json:"key_path"`
		PKCS12Path       string `json:"pkcs12_path"`
		PKCS12Password   string `json:"pkcs12_password"`
		VerifyBeforeSend bool   `json:"verify"`
	} `json:"signer,omitempty"`

	PowerOfAttorney struct {
		Mode               string `json:"mode"`
		ContentPath        string `json:"content_path"`
		SignaturePath      string `json:"signature_path"`
		IssuerInn          string `json:"issuer_inn"`
		RegistrationNumber string `json:"registration_number"`
	} `json:"power_of_attorney,omitempty"`

	Storage struct {
		DSN string `json:"dsn"`
	} `json:"storage,omitempty"`

	Sandbox struct {
		Address string `json:"address"`
	} `json:"sandbox,omitempty"`

	Log struct {
		Level string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		API: API{
			URL:            jsonCfg.API.URL,
			ClientID:       jsonCfg.API.ClientID,
			RequestTimeout: time.Duration(jsonCfg.API.RequestTimeout),
		},
		Auth: Auth{
			Login:    jsonCfg.Auth.Login,
			Password: jsonCfg.Auth.Password,
		},
		Boxes: Boxes{
			FromBoxID: jsonCfg.Boxes.FromBoxID,
			ToBoxID:   jsonCfg.Boxes.ToBoxID,
		},
		Signer: Signer{
			CertificatePath:  jsonCfg.Signer.CertificatePath,
			KeyPath:          jsonCfg.Signer.KeyPath,
			PKCS12Path:       jsonCfg.Signer.PKCS12Path,
			PKCS12Password:   jsonCfg.Signer.PKCS12Password,
			VerifyBeforeSend: jsonCfg.Signer.VerifyBeforeSend,
		},
		PowerOfAttorney: PowerOfAttorney{
			Mode:               jsonCfg.PowerOfAttorney.Mode,
			ContentPath:        jsonCfg.PowerOfAttorney.ContentPath,
			SignaturePath:      jsonCfg.PowerOfAttorney.SignaturePath,
			IssuerInn:          jsonCfg.PowerOfAttorney.IssuerInn,
			RegistrationNumber: jsonCfg.PowerOfAttorney.RegistrationNumber,
		},
		Storage: Storage{DSN: jsonCfg.Storage.DSN},
		Sandbox: Sandbox{Address: jsonCfg.Sandbox.Address},
		Log:     Log{Level: jsonCfg.Log.Level},
	}

	return cfg, nil
}

// Duration is a time.Duration that unmarshals from strings like "1h" or "30s"
// as well as from plain nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
