package errors

import (
	"github.com/cockroachdb/errors"
)

var (
	New           = errors.New
	Newf          = errors.Newf
	Errorf        = errors.Errorf
	Wrap          = errors.Wrap
	Wrapf         = errors.Wrapf
	WithStack     = errors.WithStack
	WithHint      = errors.WithHint
	GetAllHints   = errors.GetAllHints
	Is            = errors.Is
	As            = errors.As
	Unwrap        = errors.Unwrap
	UnwrapAll     = errors.UnwrapAll
	CombineErrors = errors.CombineErrors
)
