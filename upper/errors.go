package upper

import "errors"

var (
	ErrUsage = errors.New("expected exactly two arguments: INPUT OUTPUT")
)
