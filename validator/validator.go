// Package validator contains the format checks shared by the codecs and the handlers.
package validator

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/cosmos/btcutil/base58"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

var (
	// ErrMemoLength is returned when a memo is longer than the configured maximum.
	ErrMemoLength = errors.New("memo exceeds maximum length")
	// ErrMemoCharset is returned when a memo contains a character outside the allowed set.
	ErrMemoCharset = errors.New("memo contains an illegal character")
	// ErrPublicKeyLength is returned for a public key of unexpected length.
	ErrPublicKeyLength = errors.New("invalid public key length")
	// ErrPublicKeyPrefix is returned for a public key with an unexpected prefix byte.
	ErrPublicKeyPrefix = errors.New("invalid public key prefix")
	// ErrPublicKeyPoint is returned when a public key is not a point on the curve.
	ErrPublicKeyPoint = errors.New("public key is not on the curve")
)

// WIFLength is the length of a base58 encoded compressed private key.
const WIFLength = 52

var (
	txFlagNameRe  = regexp.MustCompile(`(?i)^[a-z][a-z0-9]+(_[a-z0-9]+)*$`)
	chainIDRe     = regexp.MustCompile(`(?i)^[a-f0-9]{64}$`)
	assetIDRe     = regexp.MustCompile(`(?i)^[a-z][a-z0-9]{1,3}-[a-z]{2}[0-9]$`)
	assetTickerRe = regexp.MustCompile(`(?i)^[a-z][a-z0-9]{1,5}$`)
	assetNameRe   = regexp.MustCompile(`^\w+(\s\w+)*$`)
	memoRe        = regexp.MustCompile(`(?i)^[a-z0-9\s\-_.@%:;()\[\]"']+$`)
	base16Re      = regexp.MustCompile(`(?i)^[a-f0-9]+$`)
)

// IsValidTxFlagName checks a transaction flag name, e.g. "transfer" or "register_asset".
func IsValidTxFlagName(name string) bool {
	return txFlagNameRe.MatchString(name)
}

// IsValidChainID checks for exactly 64 hex characters.
func IsValidChainID(id string) bool {
	return chainIDRe.MatchString(id)
}

// IsValidAssetID checks the "<ticker>-<xxN>" asset id format.
func IsValidAssetID(id string) bool {
	return assetIDRe.MatchString(id)
}

// IsValidAssetTicker checks a 2 to 6 character alphanumeric ticker.
func IsValidAssetTicker(ticker string) bool {
	return assetTickerRe.MatchString(ticker)
}

// IsValidAssetName checks a human readable asset name of less than 32 bytes.
func IsValidAssetName(name string) bool {
	return len(name) > 0 && len(name) < 32 && assetNameRe.MatchString(name)
}

// IsValidWIF checks that s is a base58 string of the given length. Zero means WIFLength.
func IsValidWIF(s string, length int) bool {
	if length == 0 {
		length = WIFLength
	}
	if len(s) != length {
		return false
	}
	return len(base58.Decode(s)) > 0
}

// IsValidEpoch checks a unix timestamp that fits the 4-byte wire field.
func IsValidEpoch(ts int64) bool {
	return ts > 0 && ts < 0xffffffff
}

// ValidatedMemo trims surrounding whitespace and checks length and charset.
// An empty memo is valid.
func ValidatedMemo(memo string, maxLen int) (string, error) {
	memo = strings.TrimSpace(memo)
	if memo == "" {
		return "", nil
	}
	if len(memo) > maxLen {
		return "", fmt.Errorf("%w: %d > %d", ErrMemoLength, len(memo), maxLen)
	}
	if !memoRe.MatchString(memo) {
		return "", ErrMemoCharset
	}
	return memo, nil
}

// IsValidUsername accepts names that are valid memos without any normalisation.
func IsValidUsername(name string, maxLen int) bool {
	v, err := ValidatedMemo(name, maxLen)
	return err == nil && v != "" && v == name
}

// CheckPublicKey validates the length and prefix of a serialized public key.
// compressed selects the expected form; nil accepts both.
func CheckPublicKey(pub []byte, compressed *bool) error {
	prefixes := []byte{0x02, 0x03, 0x04}
	lengths := []int{secp256k1.PubKeyBytesLenCompressed, secp256k1.PubKeyBytesLenUncompressed}
	kind := ""
	if compressed != nil {
		if *compressed {
			prefixes, lengths, kind = []byte{0x02, 0x03}, []int{secp256k1.PubKeyBytesLenCompressed}, "compressed "
		} else {
			prefixes, lengths, kind = []byte{0x04}, []int{secp256k1.PubKeyBytesLenUncompressed}, "uncompressed "
		}
	}
	if !slices.Contains(lengths, len(pub)) {
		return fmt.Errorf("%w: %sgot %d bytes", ErrPublicKeyLength, kind, len(pub))
	}
	if !slices.Contains(prefixes, pub[0]) {
		return fmt.Errorf("%w: %s0x%02x", ErrPublicKeyPrefix, kind, pub[0])
	}
	if _, err := secp256k1.ParsePubKey(pub); err != nil {
		return fmt.Errorf("%w: %w", ErrPublicKeyPoint, err)
	}
	return nil
}

// IsBase16Int checks for exactly size bytes of hex.
func IsBase16Int(s string, size int) bool {
	return len(s) == 2*size && base16Re.MatchString(s)
}
