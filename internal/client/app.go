package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-diadoc/api"
	"github.com/MKhiriev/go-diadoc/internal/app"
	"github.com/MKhiriev/go-diadoc/internal/config"
	"github.com/MKhiriev/go-diadoc/internal/crypto"
	"github.com/MKhiriev/go-diadoc/internal/logger"
	"github.com/MKhiriev/go-diadoc/internal/store"
)

const (
	cmdPostUTD970   = "post-utd970"
	cmdParseAddress = "parse-address"
	cmdHistory      = "history"
	cmdSandbox      = "sandbox"
	cmdVersion      = "version"
)

var ErrUnknownCommand = errors.New("unknown command")

// JournalOpener opens the submission journal. The returned closer releases
// the database.
type JournalOpener func(ctx context.Context, cfg config.Storage, log *logger.Logger) (store.Journal, io.Closer, error)

type App struct {
	cfg   *config.StructuredConfig
	build app.BuildInfo
	out   io.Writer

	newClient   func(cfg config.API, log *logger.Logger) (api.Client, error)
	newSigner   func(cfg config.Signer) (CertificateSigner, error)
	openJournal JournalOpener

	logger *logger.Logger
}

// Option customizes an App. Tests use them to replace the network, the key
// material and the database.
type Option func(*App)

func WithOutput(w io.Writer) Option {
	return func(a *App) { a.out = w }
}

func WithAPIClient(c api.Client) Option {
	return func(a *App) {
		a.newClient = func(config.API, *logger.Logger) (api.Client, error) { return c, nil }
	}
}

func WithSigner(s CertificateSigner) Option {
	return func(a *App) {
		a.newSigner = func(config.Signer) (CertificateSigner, error) { return s, nil }
	}
}

func WithJournalOpener(open JournalOpener) Option {
	return func(a *App) { a.openJournal = open }
}

func NewApp(cfg *config.StructuredConfig, build app.BuildInfo, logger *logger.Logger, opts ...Option) *App {
	a := &App{
		cfg:         cfg,
		build:       build,
		out:         os.Stdout,
		newClient:   newAPIClient,
		newSigner:   loadSigner,
		openJournal: openSQLJournal,
		logger:      logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: expected one of %s", ErrUnknownCommand, strings.Join(commands(), ", "))
	}

	cmd, rest := args[0], args[1:]
	a.logger.Debug().Str("command", cmd).Strs("args", rest).Msg("running command")

	switch cmd {
	case cmdPostUTD970:
		return a.postUTD970(ctx)
	case cmdParseAddress:
		return a.parseAddress(ctx, rest)
	case cmdHistory:
		return a.history(ctx, rest)
	case cmdSandbox:
		return a.serveSandbox(ctx)
	case cmdVersion:
		_, err := io.WriteString(a.out, a.build.String())
		return err
	default:
		return fmt.Errorf("%w %q: expected one of %s", ErrUnknownCommand, cmd, strings.Join(commands(), ", "))
	}
}

func commands() []string {
	return []string{cmdPostUTD970, cmdParseAddress, cmdHistory, cmdSandbox, cmdVersion}
}

func newAPIClient(cfg config.API, log *logger.Logger) (api.Client, error) {
	return api.NewHTTPClient(api.Config{
		BaseURL:  cfg.URL,
		ClientID: cfg.ClientID,
		Timeout:  cfg.RequestTimeout,
	}, log.Logger)
}

func loadSigner(cfg config.Signer) (CertificateSigner, error) {
	if cfg.PKCS12Path != "" {
		return crypto.LoadPKCS12(cfg.PKCS12Path, cfg.PKCS12Password)
	}
	return crypto.LoadPEM(cfg.CertificatePath, cfg.KeyPath)
}

func openSQLJournal(ctx context.Context, cfg config.Storage, log *logger.Logger) (store.Journal, io.Closer, error) {
	db, err := store.Open(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, nil, err
	}
	return store.NewJournal(db, log), db, nil
}
