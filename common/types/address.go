package types

import (
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/cosmos/btcutil/bech32"

	"github.com/forwardblock/go-forwardblock/hash"
)

// AddressLength is the expected length of the address.
const AddressLength = Hash20Length

var (
	// ErrWrongAddressLength is returned when the length of the address is not correct.
	ErrWrongAddressLength = errors.New("wrong address length")
	// ErrUnsupportedNetwork is returned when a network is not supported.
	ErrUnsupportedNetwork = errors.New("unsupported network")
	// ErrDecodeBech32 is returned when an error occurs during decoding bech32.
	ErrDecodeBech32 = errors.New("error decoding bech32")
)

var networkHrp = "fb"

// SetAddressHRP updates the human readable part used when rendering addresses.
func SetAddressHRP(update string) {
	networkHrp = update
}

// Address is the hash160 of an account (or forger) public key.
type Address [AddressLength]byte

// GenerateAddress derives the address of a serialized public key.
func GenerateAddress(publicKey []byte) Address {
	return Address(hash.Hash160(publicKey))
}

// StringToAddress parses an address rendered by Address.String.
func StringToAddress(src string) (Address, error) {
	var addr Address
	hrp, data, err := bech32.DecodeNoLimit(src)
	if err != nil {
		return addr, fmt.Errorf("%w: %w", ErrDecodeBech32, err)
	}
	if hrp != networkHrp {
		return addr, fmt.Errorf("wrong network id: expected `%s`, got `%s`: %w", networkHrp, hrp, ErrUnsupportedNetwork)
	}
	converted, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return addr, fmt.Errorf("error converting bech32 bits: %w", err)
	}
	if len(converted) != AddressLength {
		return addr, fmt.Errorf("expected %d bytes, got %d: %w", AddressLength, len(converted), ErrWrongAddressLength)
	}
	copy(addr[:], converted)
	return addr, nil
}

// Bytes gets the byte representation of the underlying address.
func (a Address) Bytes() []byte { return a[:] }

// Hex returns the raw hash160 in hex.
func (a Address) Hex() string { return hex.EncodeToString(a[:]) }

// IsEmpty checks if address is all zeroes.
func (a Address) IsEmpty() bool { return a == Address{} }

// String renders the address as bech32 with the configured network prefix.
func (a Address) String() string {
	converted, err := bech32.ConvertBits(a[:], 8, 5, true)
	if err != nil {
		panic("error converting bech32 bits: " + err.Error())
	}
	result, err := bech32.Encode(networkHrp, converted)
	if err != nil {
		panic("error encoding to bech32: " + err.Error())
	}
	return result
}

// MarshalText renders the address in hex, which is how it appears on the wire.
func (a Address) MarshalText() ([]byte, error) {
	return []byte(a.Hex()), nil
}
