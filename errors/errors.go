package errors

import "fmt"

var (
	ErrInvalidNick        = fmt.Errorf("invalid nickname")
	ErrNickInUse          = fmt.Errorf("nickname is already in use")
	ErrSessionExists      = fmt.Errorf("session id is already in use")
	ErrUnknownSession     = fmt.Errorf("no such session")
	ErrUnknownChannel     = fmt.Errorf("no such channel")
	ErrNotOnChannel       = fmt.Errorf("session is not on that channel")
	ErrChannelExists      = fmt.Errorf("channel already exists")
	ErrInvalidChannelName = fmt.Errorf("channel name must start with '#' or '&'")
	ErrInvalidCaseMapping = fmt.Errorf("unsupported case mapping")
	ErrUnknownCommand     = fmt.Errorf("unknown command")
	ErrTooManyParams      = fmt.Errorf("too many parameters")
)
