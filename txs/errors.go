package txs

import "fmt"

// Code classifies why a transaction failed the checks.
type Code uint8

// Check failure codes.
const (
	InsufficientSignatures  Code = 0x0b
	ReceiptGenerationFailed Code = 0x0c
	FlagDisabled            Code = 0x0d
)

func (c Code) String() string {
	switch c {
	case InsufficientSignatures:
		return "insufficient signatures"
	case ReceiptGenerationFailed:
		return "receipt generation failed"
	case FlagDisabled:
		return "flag disabled"
	default:
		return fmt.Sprintf("code 0x%02x", uint8(c))
	}
}

// CheckTxError is returned by Check. It carries only the code; the collaborator
// error that caused it is never exposed.
type CheckTxError struct {
	Code Code
}

func (e *CheckTxError) Error() string {
	return fmt.Sprintf("check tx: %s", e.Code)
}

// Is matches any CheckTxError with the same code.
func (e *CheckTxError) Is(target error) bool {
	t, ok := target.(*CheckTxError)
	return ok && t.Code == e.Code
}

var (
	ErrInsufficientSignatures  = &CheckTxError{Code: InsufficientSignatures}
	ErrReceiptGenerationFailed = &CheckTxError{Code: ReceiptGenerationFailed}
	ErrFlagDisabled            = &CheckTxError{Code: FlagDisabled}
)
