package session

import "errors"

var (
	// ErrNotSignedIn is returned by every operation once the session has
	// been signed out.
	ErrNotSignedIn = errors.New("not signed in")

	// ErrPartnerNotFound is returned by LinkPartner when the candidate has
	// no document.
	ErrPartnerNotFound = errors.New("partner not found")

	// ErrNoPartner is returned by operations addressed to a partner when
	// none is linked.
	ErrNoPartner = errors.New("no partner linked")

	// ErrRemoteUnavailable wraps store failures surfaced to the caller.
	ErrRemoteUnavailable = errors.New("remote unavailable")

	ErrRecordNotFound = errors.New("record not found")
	ErrInvalidInput   = errors.New("invalid input")
)
