package payment

import "ortomat-backend/internal/pkg/errs"

var ErrInvalidStatus = errs.New("invalid payment status")

// Status mirrors the acquirer invoice lifecycle.
type Status string

const (
	StatusCreated    Status = "created"
	StatusProcessing Status = "processing"
	StatusHold       Status = "hold"
	StatusSuccess    Status = "success"
	StatusFailure    Status = "failure"
	StatusReversed   Status = "reversed"
	StatusExpired    Status = "expired"
)

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

func (s Status) IsValid() bool {
	switch s {
	case StatusCreated, StatusProcessing, StatusHold,
		StatusSuccess, StatusFailure, StatusReversed, StatusExpired:
		return true
	default:
		return false
	}
}

func (s Status) IsSuccess() bool {
	return s == StatusSuccess
}

func (s Status) IsFailure() bool {
	return s == StatusFailure || s == StatusExpired || s == StatusReversed
}

func (s Status) IsTerminal() bool {
	return s.IsSuccess() || s.IsFailure()
}

func (s Status) String() string {
	return string(s)
}
