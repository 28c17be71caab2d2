package blocks

import (
	"errors"
	"fmt"

	"github.com/forwardblock/go-forwardblock/common/types"
)

var (
	// ErrDecode matches every block decode failure.
	ErrDecode = errors.New("block decode")
	// ErrIncomplete matches structural and semantic violations found while parsing.
	ErrIncomplete = fmt.Errorf("%w: incomplete", ErrDecode)
	// ErrTooLarge is returned before parsing for buffers above the maximum block size.
	ErrTooLarge = fmt.Errorf("%w: block too large", ErrDecode)
	// ErrUnsupportedVersion is wrapped by IncompleteError for unknown block versions.
	ErrUnsupportedVersion = errors.New("unsupported block version")

	// ErrForge is returned when a forge precondition is violated.
	ErrForge = errors.New("block forge")
	// ErrSealed is returned when a sealed forge is mutated.
	ErrSealed = fmt.Errorf("%w: sealed", ErrForge)
)

// IncompleteError reports the step at which a block failed to decode. Hash is the
// hash256 of the whole input, so the failing block can be referenced.
type IncompleteError struct {
	Hash   types.Hash32
	Step   string
	Detail string
	// Err is an optional protocol error (never a collaborator error).
	Err error
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("block %s incomplete at %s: %s", e.Hash.ShortString(), e.Step, e.Detail)
}

// Is matches ErrIncomplete and ErrDecode.
func (e *IncompleteError) Is(target error) bool {
	return target == ErrIncomplete || target == ErrDecode
}

func (e *IncompleteError) Unwrap() error {
	return e.Err
}
