package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	jsonBody := `{
		"api": {"url": "https://diadoc-api.example", "client_id": "client", "request_timeout": "1m"},
		"auth": {"login": "login", "password": "password"},
		"boxes": {"from": "from", "to": "to"},
		"signer": {"certificate_path": "/c.pem", "key_path": "/k.pem", "verify": true},
		"power_of_attorney": {"mode": "in-content", "issuer_inn": "7750370238", "registration_number": "reg"},
		"storage": {"dsn": "journal.db"},
		"sandbox": {"address": "localhost:8081"},
		"log": {"level": "warn"}
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)

	assert.Equal(t, "https://diadoc-api.example", cfg.API.URL)
	assert.Equal(t, "client", cfg.API.ClientID)
	assert.Equal(t, time.Minute, cfg.API.RequestTimeout)
	assert.Equal(t, "login", cfg.Auth.Login)
	assert.Equal(t, "password", cfg.Auth.Password)
	assert.Equal(t, "from", cfg.Boxes.FromBoxID)
	assert.Equal(t, "to", cfg.Boxes.ToBoxID)
	assert.Equal(t, "/c.pem", cfg.Signer.CertificatePath)
	assert.Equal(t, "/k.pem", cfg.Signer.KeyPath)
	assert.True(t, cfg.Signer.VerifyBeforeSend)
	assert.Equal(t, "in-content", cfg.PowerOfAttorney.Mode)
	assert.Equal(t, "7750370238", cfg.PowerOfAttorney.IssuerInn)
	assert.Equal(t, "reg", cfg.PowerOfAttorney.RegistrationNumber)
	assert.Equal(t, "journal.db", cfg.Storage.DSN)
	assert.Equal(t, "localhost:8081", cfg.Sandbox.Address)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_Malformed(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte("{not valid json"), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"30s"`, want: 30 * time.Second},
		{name: "combined string", input: `"1h30m"`, want: 90 * time.Minute},
		{name: "nanoseconds", input: `1000000000`, want: time.Second},
		{name: "bad string", input: `"soon"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(b))
}
