package service

import (
	"errors"
	"fmt"
)

var (
	ErrNoDocumentEntity   = errors.New("posted message has no document entity")
	ErrMissingBoxes       = errors.New("sender and recipient boxes are required")
	ErrMissingCertificate = errors.New("signer certificate is required")
)

// Send pipeline steps, in order.
const (
	StepBuild     = "build user contract"
	StepSerialize = "serialize user contract"
	StepTitle     = "generate title"
	StepSign      = "sign title"
	StepVerify    = "verify signature"
	StepPost      = "post message"
	StepEntity    = "find document entity"
	StepRecord    = "record submission"
)

// StepError reports which pipeline step failed.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

func stepError(step string, err error) error {
	return &StepError{Step: step, Err: err}
}
