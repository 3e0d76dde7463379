package xrpcodec

// format describes one identifier kind: the type prefix prepended to the
// payload before checksumming and the exact payload length in bytes.
type format struct {
	prefix     []byte
	payloadLen int
}

func (f format) prefixLen() int {
	return len(f.prefix)
}

// The prefix picks the leading characters of the encoded string: account ids
// start with 'r', account public keys with 'a', node public keys with 'n',
// secp256k1 seeds with 's' and Ed25519 seeds with 'sEd'.
var (
	accountIdFormat     = format{prefix: []byte{0x00}, payloadLen: AccountIdLen}
	accountPublicFormat = format{prefix: []byte{0x23}, payloadLen: PublicKeyLen}
	nodePublicFormat    = format{prefix: []byte{0x1c}, payloadLen: PublicKeyLen}
	secp256k1SeedFormat = format{prefix: []byte{0x21}, payloadLen: EntropyLen}
	ed25519SeedFormat   = format{prefix: []byte{0x01, 0xe1, 0x4b}, payloadLen: EntropyLen}
)

// seedFormats lists the seed descriptors in the order DecodeSeed tries them.
// The order is part of the contract: on total failure the error of the last
// attempt is the one reported.
var seedFormats = []struct {
	format    format
	algorithm Algorithm
}{
	{secp256k1SeedFormat, Secp256k1},
	{ed25519SeedFormat, Ed25519},
}
