package errno

import (
	"errors"

	"github.com/rotisserie/eris"
)

var ErrIllegalArgument = errors.New("illegal argument")
var ErrFileAlreadyExists = errors.New("file already exists")

func NilIterator() error {
	return eris.Wrap(ErrIllegalArgument, "nil iterator")
}

func FileAlreadyExists(key string) error {
	return eris.Wrap(ErrFileAlreadyExists, key)
}
