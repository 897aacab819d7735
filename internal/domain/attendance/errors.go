package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadySignedIn  = errors.New("already signed in today")
	ErrAlreadySignedOut = errors.New("already signed out")
	ErrNoSignIn         = errors.New("sign-in required")
	ErrRecordNotFound   = errors.New("attendance record not found")
)
