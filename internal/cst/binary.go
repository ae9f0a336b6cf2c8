package cst

import (
	"github.com/dekarrin/rezi"

	"github.com/dekarrin/earleycst/internal/synerr"
)

// EncodeBinary serializes n to REZI's binary format, for the CLI's
// --format=binary output mode.
func (n *Node) EncodeBinary() []byte {
	return rezi.EncBinary(n)
}

// DecodeNodeBinary is the inverse of EncodeBinary.
func DecodeNodeBinary(data []byte) (*Node, error) {
	n := &Node{}
	read, err := rezi.DecBinary(data, n)
	if err != nil {
		return nil, synerr.WrapParsef(err, "REZI decode: %s", err)
	}
	if read != len(data) {
		return nil, synerr.Parsef("REZI decoded byte count mismatch; only consumed %d/%d bytes", read, len(data))
	}
	return n, nil
}
