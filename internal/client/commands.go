// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/MKhiriev/go-diadoc/api"
	"github.com/MKhiriev/go-diadoc/internal/config"
	handler "github.com/MKhiriev/go-diadoc/internal/handler/http"
	"github.com/MKhiriev/go-diadoc/internal/sandbox"
	"github.com/MKhiriev/go-diadoc/internal/server"
	"github.com/MKhiriev/go-diadoc/internal/service"
	"github.com/MKhiriev/go-diadoc/internal/utils"
	"github.com/MKhiriev/go-diadoc/models"
	"github.com/MKhiriev/go-diadoc/utd970"
)

const defaultHistoryLimit = 20

// postUTD970 authenticates, sends the sample UTD and records it.
func (a *App) postUTD970(ctx context.Context) error {
	if err := errors.Join(a.cfg.ValidatePosting(), a.cfg.ValidateStorage()); err != nil {
		return err
	}

	mode, err := powerOfAttorneyMode(a.cfg.PowerOfAttorney)
	if err != nil {
		return err
	}

	signer, err := a.newSigner(a.cfg.Signer)
	if err != nil {
		return fmt.Errorf("load signer: %w", err)
	}

	client, err := a.newClient(a.cfg.API, a.logger)
	if err != nil {
		return fmt.Errorf("create api client: %w", err)
	}

	journal, closer, err := a.openJournal(ctx, a.cfg.Storage, a.logger)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer closer.Close()

	token, err := client.Authenticate(ctx, a.cfg.Auth.Login, a.cfg.Auth.Password)
	if err != nil {
		return err
	}

	services := service.NewServices(client, signer, journal, utils.NewUUIDGenerator(), *a.cfg, a.logger)
	result, err := services.DocumentService.SendUniversalTransferDocument(ctx, service.SendRequest{
		Token:           token,
		FromBoxID:       a.cfg.Boxes.FromBoxID,
		ToBoxID:         a.cfg.Boxes.ToBoxID,
		Certificate:     signer.Certificate(),
		PowerOfAttorney: mode,
	})
	if result.Message.MessageId != "" {
		fmt.Fprintf(a.out, "Message id: %s\nEntity id: %s\nTitle: %s\nCustom document id: %s\n",
			result.Message.MessageId,
			result.Document.EntityId,
			result.Submission.Title,
			result.Submission.CustomDocumentID,
		)
	}
	return err
}

// powerOfAttorneyMode turns the configuration into a mode, reading the
// power of attorney files for file-as-meta.
func powerOfAttorneyMode(cfg config.PowerOfAttorney) (utd970.PowerOfAttorneyMode, error) {
	kind, err := cfg.Kind()
	if err != nil {
		return nil, err
	}

	switch kind {
	case utd970.KindFileAsMeta:
		content, err := os.ReadFile(cfg.ContentPath)
		if err != nil {
			return nil, fmt.Errorf("read power of attorney: %w", err)
		}
		signature, err := os.ReadFile(cfg.SignaturePath)
		if err != nil {
			return nil, fmt.Errorf("read power of attorney signature: %w", err)
		}
		return utd970.PowerOfAttorneyAsFile{Content: content, Signature: signature}, nil
	case utd970.KindInContent:
		return utd970.PowerOfAttorneyInContent{
			IssuerInn:          cfg.IssuerInn,
			RegistrationNumber: cfg.RegistrationNumber,
		}, nil
	default:
		return utd970.NoPowerOfAttorney{}, nil
	}
}

// parseAddress parses every positional argument. With -async all requests
// are started first and awaited afterwards.
func (a *App) parseAddress(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet(cmdParseAddress, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	async := fs.Bool("async", false, "start all requests before waiting for any")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%s: %w", cmdParseAddress, err)
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("%s: at least one address is required", cmdParseAddress)
	}
	if err := a.cfg.ValidateAPI(); err != nil {
		return err
	}

	client, err := a.newClient(a.cfg.API, a.logger)
	if err != nil {
		return fmt.Errorf("create api client: %w", err)
	}
	addresses := service.NewAddressService(client, a.logger)

	results := make([]models.RussianAddress, fs.NArg())
	if *async {
		futures := make([]*api.Future[models.RussianAddress], fs.NArg())
		for i, address := range fs.Args() {
			futures[i] = addresses.ParseAsync(ctx, address)
		}
		for i, future := range futures {
			if results[i], err = future.Wait(ctx); err != nil {
				return fmt.Errorf("parse %q: %w", fs.Arg(i), err)
			}
		}
	} else {
		for i, address := range fs.Args() {
			if results[i], err = addresses.Parse(ctx, address); err != nil {
				return fmt.Errorf("parse %q: %w", address, err)
			}
		}
	}

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	for _, parsed := range results {
		if err = enc.Encode(parsed); err != nil {
			return err
		}
	}
	return nil
}

// history prints the latest journal entries, newest first.
func (a *App) history(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet(cmdHistory, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	limit := fs.Int("limit", defaultHistoryLimit, "number of entries, 0 for all")
	messageID := fs.String("message", "", "show a single message")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%s: %w", cmdHistory, err)
	}
	if err := a.cfg.ValidateStorage(); err != nil {
		return err
	}

	journal, closer, err := a.openJournal(ctx, a.cfg.Storage, a.logger)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer closer.Close()

	var submissions []models.Submission
	if *messageID != "" {
		submission, err := journal.GetByMessageID(ctx, *messageID)
		if err != nil {
			return err
		}
		submissions = append(submissions, submission)
	} else if submissions, err = journal.List(ctx, *limit); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "CREATED\tMESSAGE\tENTITY\tTITLE\tPOA\tTO BOX")
	for _, s := range submissions {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			s.CreatedAt.Format(time.DateTime), s.MessageID, s.EntityID, s.Title, s.PowerOfAttorney, s.ToBoxID)
	}
	return tw.Flush()
}

// serveSandbox runs the local stand-in server until ctx is cancelled. The
// configured client id and credentials are the ones the sandbox accepts.
func (a *App) serveSandbox(ctx context.Context) error {
	if a.cfg.API.ClientID == "" {
		return fmt.Errorf("%s: client id is required", cmdSandbox)
	}

	var accounts map[string]string
	if a.cfg.Auth.Login != "" {
		accounts = map[string]string{a.cfg.Auth.Login: a.cfg.Auth.Password}
	}
	sb := sandbox.New(sandbox.Options{ClientID: a.cfg.API.ClientID, Accounts: accounts}, a.logger)

	srv, err := server.NewServer(handler.NewHandler(sb, a.logger).Init(), a.cfg.Sandbox, a.logger)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Sandbox listening on http://%s\n", srv.Addr())
	return srv.Run(ctx)
}
