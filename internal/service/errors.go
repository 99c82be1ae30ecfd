package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrNoFileToFingerprint = errors.New("no file to fingerprint")
	ErrFingerprinting      = errors.New("error computing file fingerprint")
	ErrLookingUpHash       = errors.New("error looking up file hash")

	ErrNoSessionKey  = errors.New("no session key")
	ErrStoringReason = errors.New("error storing rejection reason")
	ErrIntakeFailed  = errors.New("intake failed to store the upload")
	ErrLoadingMedia  = errors.New("error loading stored media")
	ErrCompensating  = errors.New("error deleting provisional submission")
	ErrFinalizing    = errors.New("error finalizing submission")
	ErrNoUniqueName  = errors.New("no unique media name available")
)
