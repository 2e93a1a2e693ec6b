package ecs

import "github.com/rotisserie/eris"

var (
	ErrEntityCapacity        = eris.New("maximum number of entities reached")
	ErrInvalidResourceHandle = eris.New("invalid resource handle")
	ErrEntityNotFound        = eris.New("entity does not exist")
	ErrDuplicateEntity       = eris.New("entity id is already live")

	ErrNilComponent       = eris.New("cannot use a nil component")
	ErrDuplicateComponent = eris.New("component type already exists on entity")
	ErrComponentAttached  = eris.New("component is already attached to an entity")
	ErrComponentNotFound  = eris.New("component type does not exist on entity")

	ErrNilSystem               = eris.New("cannot use a nil system")
	ErrSystemAlreadyRegistered = eris.New("system is already registered")
	ErrSystemNotFound          = eris.New("system is not registered")
)

// ErrorKind groups the recoverable registry failures.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindCapacity
	KindNotFound
	KindDuplicate
	KindInvalidArgument
)

func (k ErrorKind) String() string {
	switch k {
	case KindCapacity:
		return "capacity"
	case KindNotFound:
		return "not_found"
	case KindDuplicate:
		return "duplicate"
	case KindInvalidArgument:
		return "invalid_argument"
	default:
		return "unknown"
	}
}

// Kind classifies err into one of the registry error kinds.
func Kind(err error) ErrorKind {
	switch {
	case err == nil:
		return KindUnknown
	case eris.Is(err, ErrEntityCapacity):
		return KindCapacity
	case eris.Is(err, ErrEntityNotFound),
		eris.Is(err, ErrComponentNotFound),
		eris.Is(err, ErrSystemNotFound):
		return KindNotFound
	case eris.Is(err, ErrDuplicateEntity),
		eris.Is(err, ErrDuplicateComponent),
		eris.Is(err, ErrComponentAttached),
		eris.Is(err, ErrSystemAlreadyRegistered):
		return KindDuplicate
	case eris.Is(err, ErrNilComponent),
		eris.Is(err, ErrNilSystem),
		eris.Is(err, ErrInvalidResourceHandle):
		return KindInvalidArgument
	default:
		return KindUnknown
	}
}
