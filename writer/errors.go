package writer

import "errors"

var (
	ErrUsage = errors.New("expected exactly two arguments: MESSAGE OUTPUT")
)
