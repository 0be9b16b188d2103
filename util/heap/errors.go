package heap

import "github.com/pkg/errors"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrEmptyStructure  = errors.New("cannot retrieve highest-priority item: structure is empty")
)
