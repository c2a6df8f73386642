package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exist")
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrGroupNotFound     = errors.New("group doesn't exist")
	ErrSlugTaken         = errors.New("group slug already taken")
	ErrInviteCodeInvalid = errors.New("invalid invite code")
	ErrAlreadyMember     = errors.New("user is already a member")
	ErrNotMember         = errors.New("user is not a member of this group")
	ErrNotAdmin          = errors.New("admin role required")
	ErrMemberNotFound    = errors.New("member not found")
	ErrCannotKickSelf    = errors.New("cannot kick yourself")

	ErrOutsideRamadan = errors.New("ramadan has not started or has ended")
	ErrDayLocked      = errors.New("day is locked by an admin")
	ErrLogNotFound    = errors.New("daily log not found")
)
