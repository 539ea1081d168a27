package domain

import "errors"

var (
	ErrClientNotFound      = errors.New("client not found")
	ErrSlotNotFound        = errors.New("slot not found")
	ErrGroupNotFound       = errors.New("group training not found")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrReferralNotFound    = errors.New("referral not found")
)

var (
	ErrSlotUnavailable       = errors.New("slot is not available")
	ErrCapacityExceeded      = errors.New("group training capacity exceeded")
	ErrGroupClosed           = errors.New("group training is not open for booking")
	ErrInsufficientFunds     = errors.New("insufficient wallet balance")
	ErrTransactionNotPending = errors.New("transaction is not pending")
	ErrBookingNotActive      = errors.New("booking is not active")
	ErrBookingExists         = errors.New("booking for this transaction already exists")
	ErrAlreadyReferred       = errors.New("client already has a referrer")
)

var (
	ErrInvalidSignature       = errors.New("invalid payment provider signature")
	ErrVerificationKeyMissing = errors.New("payment provider verification key is not configured")
	ErrMalformedPayload       = errors.New("malformed payment payload")
	ErrUnknownTransaction     = errors.New("unknown transaction")
	ErrUnknownProvider        = errors.New("unknown payment provider")
	ErrAmountMismatch         = errors.New("payment amount does not match transaction")
	ErrIgnoredEvent           = errors.New("payment provider event is not handled")
)

var (
	ErrValidation = errors.New("validation error")
)
