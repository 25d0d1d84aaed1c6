package errors

import "fmt"

var (
	ErrWorkerPanic         = fmt.Errorf("worker panic")
	ErrMissingIdentity     = fmt.Errorf("missing user id or display name")
	ErrTokenIssuance       = fmt.Errorf("failed to issue calling token")
	ErrInvalidTokenRequest = fmt.Errorf("invalid token request")
	ErrSessionNotReady     = fmt.Errorf("calling session is not ready")
	ErrSessionClosed       = fmt.Errorf("calling session is closed")
	ErrNoParticipants      = fmt.Errorf("no participant to call")
	ErrInvitationFailed    = fmt.Errorf("call invitation failed")
	ErrInvalidOwner        = fmt.Errorf("invalid call log owner")
	ErrInvalidConfig       = fmt.Errorf("invalid configuration")
)
