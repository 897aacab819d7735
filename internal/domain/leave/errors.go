package leave

import "errors"

var (
	ErrInvalidRange        = errors.New("end date cannot be before start date")
	ErrOverlappingLeave    = errors.New("overlapping leave already exists")
	ErrInsufficientBalance = errors.New("insufficient leave balance")
	ErrInvalidDecision     = errors.New("decision must be APPROVED or REJECTED")
	ErrRequestNotFound     = errors.New("leave request not found")
	ErrAlreadyDecided      = errors.New("leave request already decided")
)
