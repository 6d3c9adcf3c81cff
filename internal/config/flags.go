package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress is a host:port flag value.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses args into a partial configuration and returns the
// positional arguments that follow the flags. A fresh FlagSet is used on every
// call so the function can run more than once per process.
func ParseFlags(args []string) (*StructuredConfig, []string, error) {
	fs := flag.NewFlagSet("diadoc-samples", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		sandboxAddress NetAddress
		cfg            StructuredConfig
		requestTimeout time.Duration
	)

	fs.StringVar(&cfg.API.URL, "api-url", "", "Diadoc API base URL")
	fs.StringVar(&cfg.API.ClientID, "client-id", "", "Integrator client id")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	fs.StringVar(&cfg.Auth.Login, "login", "", "Diadoc login")
	fs.StringVar(&cfg.Auth.Password, "password", "", "Diadoc password")

	fs.StringVar(&cfg.Boxes.FromBoxID, "from-box", "", "Sender box id")
	fs.StringVar(&cfg.Boxes.ToBoxID, "to-box", "", "Recipient box id")

	fs.StringVar(&cfg.Signer.CertificatePath, "cert", "", "Signer certificate path (PEM or DER)")
	fs.StringVar(&cfg.Signer.KeyPath, "key", "", "Signer private key path (PEM)")
	fs.StringVar(&cfg.Signer.PKCS12Path, "pfx", "", "Signer PKCS#12 bundle path")
	fs.StringVar(&cfg.Signer.PKCS12Password, "pfx-password", "", "PKCS#12 bundle password")
	fs.BoolVar(&cfg.Signer.VerifyBeforeSend, "verify", false, "Verify the signature locally before sending")

	fs.StringVar(&cfg.PowerOfAttorney.Mode, "poa", "", "Power of attorney mode: none, file-as-meta, in-content")
	fs.StringVar(&cfg.PowerOfAttorney.ContentPath, "poa-file", "", "Power of attorney file path")
	fs.StringVar(&cfg.PowerOfAttorney.SignaturePath, "poa-signature", "", "Power of attorney signature path")
	fs.StringVar(&cfg.PowerOfAttorney.IssuerInn, "poa-issuer-inn", "", "Power of attorney issuer INN")
	fs.StringVar(&cfg.PowerOfAttorney.RegistrationNumber, "poa-number", "", "Power of attorney registration number")

	fs.StringVar(&cfg.Storage.DSN, "d", "", "Journal DSN (SQLite path or postgres URL)")
	fs.Var(&sandboxAddress, "sandbox-address", "Sandbox listen address host:port")
	fs.StringVar(&cfg.Log.Level, "log-level", "", "Log level")

	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg.API.RequestTimeout = requestTimeout
	cfg.Sandbox.Address = sandboxAddress.String()

	return &cfg, fs.Args(), nil
}

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return a.Host + ":" + strconv.Itoa(a.Port)
}

func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}
	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
