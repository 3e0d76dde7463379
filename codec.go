package xrpcodec

import (
	"bytes"

	"github.com/mr-tron/base58"
)

// xrpAlphabet is the base58 dictionary used by the XRP Ledger. The symbol
// order defines the numeric mapping and differs from the bitcoin alphabet.
var xrpAlphabet = base58.NewAlphabet("rpshnaf39wBUDNEGHJKLM4PQRST7VWXYZ2bcdeCg65jkm8oFqi1tuvAxyz")

// encode serializes prefix ++ payload ++ checksum(prefix ++ payload) through
// the XRP Ledger alphabet. It cannot fail for a payload of the format's
// declared length.
func encode(f format, payload []byte) string {
	buf := make([]byte, 0, f.prefixLen()+len(payload)+checksumLen)
	buf = append(buf, f.prefix...)
	buf = append(buf, payload...)
	sum := checksum(buf)
	buf = append(buf, sum[:]...)
	return base58.FastBase58EncodingAlphabet(buf, xrpAlphabet)
}

// decode reverses encode and validates the result against the format. The
// checks run in a fixed order: minimum length before any slicing, then
// payload length, then prefix, then checksum. Every failure maps to
// ErrDecode so callers learn nothing about which check rejected the input.
func decode(f format, s string) ([]byte, error) {
	raw, err := base58.FastBase58DecodingAlphabet(s, xrpAlphabet)
	if err != nil {
		return nil, ErrDecode
	}
	if len(raw) < f.prefixLen()+checksumLen+1 {
		return nil, ErrDecode
	}
	if len(raw)-f.prefixLen()-checksumLen != f.payloadLen {
		return nil, ErrDecode
	}
	if !bytes.HasPrefix(raw, f.prefix) {
		return nil, ErrDecode
	}
	body, sum := raw[:len(raw)-checksumLen], raw[len(raw)-checksumLen:]
	want := checksum(body)
	if !bytes.Equal(sum, want[:]) {
		return nil, ErrDecode
	}
	return body[f.prefixLen():], nil
}
