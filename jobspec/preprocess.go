// Package jobspec loads media-generation job specifications and provides
// helpers for preprocessing the arguments of operations that consume them.
package jobspec

import (
	"github.com/clipsmith/clipsmith/fsutil"
)

// Public types (alphabetical)

// Operation is a callable that receives its arguments as a slice. It is
// the shape wrapped by the argument-preprocessing helpers in this
// package.
type Operation[T any] func(args []T) error

// Transform rewrites a single argument value before the wrapped
// operation runs.
type Transform[T any] func(value T) (T, error)

// Private functions (alphabetical)
// None currently defined

// Public functions (alphabetical)

// EnsureSerializable wraps an operation so that the arguments at the
// given positions are checked for JSON serializability before the
// operation runs. A non-encodable argument fails the call with a
// descriptive error and the operation is never invoked.
func EnsureSerializable(next Operation[any], positions ...int) Operation[any] {
	check := func(value any) (any, error) {
		if err := CheckSerializable(value); err != nil {
			return value, err
		}
		return value, nil
	}
	return Wrap(next, check, positions...)
}

// SanitizeDirArgs wraps an operation so that the directory-path
// arguments at the given positions are normalized to carry exactly one
// trailing path separator before the operation runs.
func SanitizeDirArgs(next Operation[string], positions ...int) Operation[string] {
	sanitize := func(dir string) (string, error) {
		return fsutil.SanitizeDirName(dir), nil
	}
	return Wrap(next, sanitize, positions...)
}

// TransformArgs returns a copy of args with transform applied to the
// values at the given positions. Positions outside the bounds of args
// are ignored, so a wrapper declared for an optional trailing argument
// stays valid when that argument is omitted.
func TransformArgs[T any](args []T, transform Transform[T], positions ...int) ([]T, error) {
	transformed := make([]T, len(args))
	copy(transformed, args)

	for _, pos := range positions {
		if pos < 0 || pos >= len(transformed) {
			continue
		}
		value, err := transform(transformed[pos])
		if err != nil {
			return nil, err
		}
		transformed[pos] = value
	}

	return transformed, nil
}

// Wrap returns an operation that applies transform to the arguments at
// the given positions and then invokes next with the transformed
// arguments. Arguments at all other positions are passed through
// untouched. A transform failure is returned immediately and next is not
// invoked.
func Wrap[T any](next Operation[T], transform Transform[T], positions ...int) Operation[T] {
	return func(args []T) error {
		transformed, err := TransformArgs(args, transform, positions...)
		if err != nil {
			return err
		}
		return next(transformed)
	}
}
