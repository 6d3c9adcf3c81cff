// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package sandbox

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-diadoc/internal/logger"
	"github.com/MKhiriev/go-diadoc/models"
)

// Options configures a Sandbox.
type Options struct {
	// ClientID is the integrator key every request must carry.
	ClientID string
	// Accounts maps logins to passwords. When empty, any non-empty pair is
	// accepted.
	Accounts map[string]string
}

// Sandbox holds issued tokens and posted messages. It is safe for
// concurrent use.
type Sandbox struct {
	clientID string
	accounts map[string]string

	mu       sync.RWMutex
	tokens   map[string]string
	messages map[string]models.Message

	newID  func() string
	logger *logger.Logger
}

func New(opts Options, logger *logger.Logger) *Sandbox {
	accounts := make(map[string]string, len(opts.Accounts))
	for login, password := range opts.Accounts {
		accounts[login] = password
	}

	return &Sandbox{
		clientID: opts.ClientID,
		accounts: accounts,
		tokens:   make(map[string]string),
		messages: make(map[string]models.Message),
		newID:    newID,
		logger:   logger,
	}
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// ClientID returns the integrator key requests are checked against.
func (s *Sandbox) ClientID() string {
	return s.clientID
}

// Authenticate issues a token for a known login/password pair.
func (s *Sandbox) Authenticate(login, password string) (string, error) {
	if login == "" || password == "" {
		return "", ErrInvalidCredentials
	}
	if len(s.accounts) > 0 {
		if expected, ok := s.accounts[login]; !ok || expected != password {
			return "", ErrInvalidCredentials
		}
	}

	token := s.newID()

	s.mu.Lock()
	s.tokens[token] = login
	s.mu.Unlock()

	s.logger.Debug().Str("login", login).Msg("token issued")
	return token, nil
}

// CheckToken returns the login the token was issued to.
func (s *Sandbox) CheckToken(token string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	login, ok := s.tokens[token]
	if !ok {
		return "", ErrUnknownToken
	}
	return login, nil
}

// Message returns a previously posted message.
func (s *Sandbox) Message(id string) (models.Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msg, ok := s.messages[id]
	return msg, ok
}

// PostMessage stores msg and returns it with the identifiers assigned to the
// message and its entities. Each attachment yields a document entity and a
// signature entity pointing at it.
func (s *Sandbox) PostMessage(msg models.MessageToPost) (models.Message, error) {
	if err := validateMessage(msg); err != nil {
		return models.Message{}, err
	}

	posted := models.Message{
		MessageId: s.newID(),
		FromBoxId: msg.FromBoxId,
		ToBoxId:   msg.ToBoxId,
	}
	for _, att := range msg.DocumentAttachments {
		info := describeTitle(att)
		documentID := s.newID()
		posted.Entities = append(posted.Entities,
			models.Entity{
				EntityType:   "Attachment",
				EntityId:     documentID,
				FileName:     info.fileName,
				DocumentInfo: &info.DocumentInfo,
			},
			models.Entity{
				EntityType:     "Signature",
				EntityId:       s.newID(),
				ParentEntityId: documentID,
			},
		)
	}

	s.mu.Lock()
	s.messages[posted.MessageId] = posted
	s.mu.Unlock()

	s.logger.Info().
		Str("message_id", posted.MessageId).
		Int("attachments", len(msg.DocumentAttachments)).
		Msg("message posted")
	return posted, nil
}

func validateMessage(msg models.MessageToPost) error {
	if msg.FromBoxId == "" || msg.ToBoxId == "" {
		return fmt.Errorf("%w: both boxes are required", ErrInvalidMessage)
	}
	if len(msg.DocumentAttachments) == 0 {
		return fmt.Errorf("%w: no document attachments", ErrInvalidMessage)
	}
	for i, att := range msg.DocumentAttachments {
		if att.TypeNamedId == "" {
			return fmt.Errorf("%w: attachment %d has no type", ErrInvalidMessage, i)
		}
		if len(att.SignedContent.Content) == 0 {
			return fmt.Errorf("%w: attachment %d has no content", ErrInvalidMessage, i)
		}
		if len(att.SignedContent.Signature) == 0 {
			return fmt.Errorf("%w: attachment %d is not signed", ErrInvalidMessage, i)
		}
		if err := validatePowerOfAttorney(att.SignedContent.PowerOfAttorney); err != nil {
			return fmt.Errorf("attachment %d: %w", i, err)
		}
	}
	return nil
}

// validatePowerOfAttorney accepts at most one way of referencing the power
// of attorney.
func validatePowerOfAttorney(poa *models.PowerOfAttorneyToPost) error {
	if poa == nil {
		return nil
	}

	forms := 0
	if poa.UseDefault {
		forms++
	}
	if poa.UseDocumentContent {
		forms++
	}
	if poa.FullId != nil {
		forms++
	}
	if len(poa.Contents) > 0 {
		forms++
	}
	if forms != 1 {
		return fmt.Errorf("%w: expected exactly one reference form, got %d", ErrInvalidPowerOfAttorney, forms)
	}

	for i, c := range poa.Contents {
		if len(c.Content.Content) == 0 || len(c.Signature.Content) == 0 {
			return fmt.Errorf("%w: file %d needs content and signature", ErrInvalidPowerOfAttorney, i)
		}
	}
	return nil
}
