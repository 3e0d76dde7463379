// Package xrpcodec encodes and decodes base58 XRP Ledger identifiers:
// account ids (classic addresses), seeds and compressed public keys.
//
// An encoded identifier is base58(prefix ++ payload ++ checksum) over the
// ledger's own 58-symbol alphabet, where the prefix tags the identifier kind
// and the checksum is the first four bytes of a double SHA-256 over
// prefix ++ payload. Decoding validates length, prefix and checksum and
// reports any failure as ErrDecode without disclosing which check rejected
// the input.
//
// All functions are pure and safe for concurrent use.
package xrpcodec

import (
	"errors"
)

const (
	// EntropyLen is the exact seed entropy size in bytes.
	EntropyLen = 16
	// AccountIdLen is the exact account id size in bytes.
	AccountIdLen = 20
	// PublicKeyLen is the exact compressed public key size in bytes.
	PublicKeyLen = 33
)

// ErrDecode is returned for every invalid encoded identifier: a character
// outside the alphabet, a wrong decoded length, a wrong prefix or a checksum
// mismatch. The cause is intentionally not distinguishable, identifiers may
// encode secrets.
var ErrDecode = errors.New("xrpcodec: decode error")

// Entropy is seed randomness. It must come from a cryptographically secure
// source, the codec only transports it.
type Entropy = [EntropyLen]byte

// Algorithm is the signature scheme a seed is intended for. The zero value
// is Secp256k1.
type Algorithm int

const (
	Secp256k1 Algorithm = iota
	Ed25519
)

func (a Algorithm) String() string {
	switch a {
	case Ed25519:
		return "ed25519"
	default:
		return "secp256k1"
	}
}

// EncodeSeed encodes 16 bytes of entropy as a seed string. Secp256k1 seeds
// start with 's', Ed25519 seeds with 'sEd'.
func EncodeSeed(entropy Entropy, algorithm Algorithm) string {
	if algorithm == Ed25519 {
		return encode(ed25519SeedFormat, entropy[:])
	}
	return encode(secp256k1SeedFormat, entropy[:])
}

// DecodeSeed decodes a seed string into its entropy and the algorithm it was
// encoded for. The secp256k1 format is tried first, then Ed25519; the
// prefixes are disjoint so at most one can match.
func DecodeSeed(s string) (entropy Entropy, algorithm Algorithm, err error) {
	for _, sf := range seedFormats {
		var payload []byte
		payload, err = decode(sf.format, s)
		if err != nil {
			continue
		}
		copy(entropy[:], payload)
		return entropy, sf.algorithm, nil
	}
	return entropy, algorithm, err
}

// EncodeAccountId encodes a 20-byte account id as a classic address
// starting with 'r'.
func EncodeAccountId(id [AccountIdLen]byte) string {
	return encode(accountIdFormat, id[:])
}

// DecodeAccountId decodes a classic address to its 20-byte account id.
func DecodeAccountId(s string) (id [AccountIdLen]byte, err error) {
	payload, err := decode(accountIdFormat, s)
	if err != nil {
		return id, err
	}
	copy(id[:], payload)
	return id, nil
}

// EncodeNodePublic encodes a 33-byte node public key as a string starting
// with 'n'.
func EncodeNodePublic(key [PublicKeyLen]byte) string {
	return encode(nodePublicFormat, key[:])
}

// DecodeNodePublic decodes a node public key string to its 33 raw bytes.
func DecodeNodePublic(s string) (key [PublicKeyLen]byte, err error) {
	payload, err := decode(nodePublicFormat, s)
	if err != nil {
		return key, err
	}
	copy(key[:], payload)
	return key, nil
}

// EncodeAccountPublic encodes a 33-byte account public key as a string
// starting with 'a'.
func EncodeAccountPublic(key [PublicKeyLen]byte) string {
	return encode(accountPublicFormat, key[:])
}

// DecodeAccountPublic decodes an account public key string to its 33 raw
// bytes.
func DecodeAccountPublic(s string) (key [PublicKeyLen]byte, err error) {
	payload, err := decode(accountPublicFormat, s)
	if err != nil {
		return key, err
	}
	copy(key[:], payload)
	return key, nil
}
