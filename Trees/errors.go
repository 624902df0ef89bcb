package Trees

import "github.com/pkg/errors"

// error base
type GenericError string

// to allow for different classes of errors
type EmptyError GenericError
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError

// common errors - keep in alphabetic order
var (
	ErrDuplicate       = ExistsError("tree does not allow duplicate items")
	ErrEmptyTree       = EmptyError("tree is empty")
	ErrInvalidArgument = InvalidError("invalid argument")
	ErrInvalidDegree   = InvalidError("minimum degree must be at least 2")
	ErrNoNeighbour     = NotFoundError("no neighbour in that direction")
	ErrNotFound        = NotFoundError("item not found")
	ErrOutOfRange      = InvalidError("rank is out of range")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e EmptyError) Error() string    { return string(e) }
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }

// determine the class of an error, looking through wrapping
func IsErrEmpty(e error) bool    { var t EmptyError; return errors.As(e, &t) }
func IsErrExists(e error) bool   { var t ExistsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool  { var t InvalidError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool { var t NotFoundError; return errors.As(e, &t) }
