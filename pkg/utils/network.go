package utils

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"ipjournal/pkg/models"
)

// MaxMaskLength is the prefix length of a host route
const MaxMaskLength = 32

// ParseAddress parses four dot-separated groups of 1-3 digits.
// Groups above 255 are rejected, never truncated.
func ParseAddress(s string) (models.Address, bool) {
	var addr models.Address
	i := 0
	for octet := 0; octet < 4; octet++ {
		if octet > 0 {
			if i >= len(s) || s[i] != '.' {
				return models.Address{}, false
			}
			i++
		}
		v, n := dec3(s, i)
		if n == i || v > 255 {
			return models.Address{}, false
		}
		addr[octet] = byte(v)
		i = n
	}
	if i != len(s) {
		return models.Address{}, false
	}
	return addr, true
}

// dec3 parses up to 3 ASCII digits starting at i, returns (value, newIndex).
func dec3(s string, i int) (uint32, int) {
	var v uint32
	end := i + 3
	if end > len(s) {
		end = len(s)
	}
	for ; i < end && s[i] >= '0' && s[i] <= '9'; i++ {
		v = v*10 + uint32(s[i]-'0')
	}
	return v, i
}

// AddressToInt converts an address to a 32-bit integer in network order
func AddressToInt(a models.Address) uint32 {
	return binary.BigEndian.Uint32(a[:])
}

// IntToAddress converts a 32-bit integer back to an address
func IntToAddress(n uint32) models.Address {
	var a models.Address
	binary.BigEndian.PutUint32(a[:], n)
	return a
}

// MaskFor returns the netmask with the top length bits set
func MaskFor(length int) (models.Address, error) {
	if length < 0 || length > MaxMaskLength {
		return models.Address{}, fmt.Errorf("mask length %d is outside [0,%d]", length, MaxMaskLength)
	}
	// a shift by 32 yields 0 for length 0
	return IntToAddress(0xFFFFFFFF << (MaxMaskLength - length)), nil
}

// ApplyMask returns the network address of a under the given prefix length
func ApplyMask(a models.Address, length int) (models.Address, error) {
	mask, err := MaskFor(length)
	if err != nil {
		return models.Address{}, err
	}
	var network models.Address
	for i := range a {
		network[i] = a[i] & mask[i]
	}
	return network, nil
}

// ParseMaskLength parses a decimal prefix length in [0,32]
func ParseMaskLength(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("mask length %q is not an integer", s)
	}
	if n < 0 || n > MaxMaskLength {
		return 0, fmt.Errorf("mask length %d is outside [0,%d]", n, MaxMaskLength)
	}
	return n, nil
}
