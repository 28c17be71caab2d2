package types

import (
	"bytes"
	"fmt"
)

// AssetIDLength is the fixed wire width of an asset id.
const AssetIDLength = 8

// AssetID names a non-native asset. The empty AssetID is the native asset.
type AssetID string

// NativeAsset is the chain's own token.
const NativeAsset AssetID = ""

// IsNative returns true for the native asset.
func (a AssetID) IsNative() bool { return a == NativeAsset }

// String implements fmt.Stringer.
func (a AssetID) String() string {
	if a.IsNative() {
		return "native"
	}
	return string(a)
}

// LeftPadded returns the asset id left-padded with NUL bytes, as encoded in transfers.
func (a AssetID) LeftPadded() ([AssetIDLength]byte, error) {
	var out [AssetIDLength]byte
	if len(a) > AssetIDLength {
		return out, fmt.Errorf("asset id %q exceeds %d bytes", string(a), AssetIDLength)
	}
	copy(out[AssetIDLength-len(a):], a)
	return out, nil
}

// SpacePadded returns the asset id right-padded with spaces, as encoded in ledger entries.
// The native asset encodes as eight spaces.
func (a AssetID) SpacePadded() ([AssetIDLength]byte, error) {
	out := [AssetIDLength]byte{' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '}
	if len(a) > AssetIDLength {
		return out, fmt.Errorf("asset id %q exceeds %d bytes", string(a), AssetIDLength)
	}
	copy(out[:], a)
	return out, nil
}

// AssetIDFromPadded strips NUL and space padding from an 8-byte asset field.
func AssetIDFromPadded(b []byte) AssetID {
	return AssetID(bytes.Trim(b, "\x00 "))
}
