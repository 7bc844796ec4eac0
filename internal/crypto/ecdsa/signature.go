package ecdsa

import (
	"encoding/binary"
	"fmt"

	"github.com/smallyu/go-mpicrypto/internal/crypto/mpi"
	"github.com/smallyu/go-mpicrypto/pkg/cryptoerr"
)

const (
	// SignatureSize is the fixed size of an encoded signature.
	SignatureSize = 128

	// MaxComponentSize bounds the encoded length of r and of s.
	MaxComponentSize = 48

	tagSize = 12

	// headerSize is the offset of the body: the tag, the body length and
	// eight reserved zero bytes.
	headerSize = 24
	bodyHeader = 8
)

// signatureTag is stored with every byte decremented by one, followed by a
// zero byte.
var signatureTag = [tagSize - 1]byte{'V', 'Z', 'B', 'S', 'H', 'J', 'D', 'P', 'H', 'M', 'V'}

// Marshal encodes sig into the fixed-size container
//
//	tag(12) | bodyLen BE(4) | reserved(8) | rLen LE(4) | sLen LE(4) | r | s | zero padding
//
// where bodyLen = 8 + rLen + sLen and r, s are minimal big-endian.
func (sig *Signature) Marshal() ([]byte, error) {
	rLen, sLen := sig.R.ByteLen(), sig.S.ByteLen()
	if rLen == 0 || sLen == 0 || rLen > MaxComponentSize || sLen > MaxComponentSize {
		return nil, cryptoerr.New(cryptoerr.ErrInvalidLength,
			fmt.Sprintf("ecdsa: component lengths r=%d s=%d out of range", rLen, sLen))
	}

	buf := make([]byte, SignatureSize)
	for i, b := range signatureTag {
		buf[i] = b - 1
	}
	binary.BigEndian.PutUint32(buf[tagSize:], uint32(bodyHeader+rLen+sLen))
	binary.LittleEndian.PutUint32(buf[headerSize:], uint32(rLen))
	binary.LittleEndian.PutUint32(buf[headerSize+4:], uint32(sLen))

	off := headerSize + bodyHeader
	if err := sig.R.FillBytes(buf[off:off+rLen], mpi.BigEndian); err != nil {
		return nil, err
	}
	off += rLen
	if err := sig.S.FillBytes(buf[off:off+sLen], mpi.BigEndian); err != nil {
		return nil, err
	}
	return buf, nil
}

func malformed(format string, args ...any) error {
	return cryptoerr.New(cryptoerr.ErrInvalidInputBuffer, "ecdsa: "+fmt.Sprintf(format, args...))
}

// ParseSignature decodes a container produced by Marshal. The reserved
// bytes are not inspected. A buffer whose
// tag, size or declared lengths do not fit fails with
// ErrInvalidInputBuffer; component lengths outside (0, 48] fail with
// ErrInvalidLength.
func ParseSignature(buf []byte) (*Signature, error) {
	if len(buf) != SignatureSize {
		return nil, malformed("signature has %d bytes, want %d", len(buf), SignatureSize)
	}
	for i, b := range signatureTag {
		if buf[i]+1 != b {
			return nil, malformed("bad signature tag")
		}
	}
	if buf[tagSize-1] != 0 {
		return nil, malformed("bad signature tag")
	}

	bodyLen := int64(binary.BigEndian.Uint32(buf[tagSize:]))
	if bodyLen < bodyHeader || int64(headerSize)+bodyLen > int64(len(buf)) {
		return nil, malformed("signature body length %d exceeds buffer", bodyLen)
	}
	body := buf[headerSize : headerSize+int(bodyLen)]

	rLen := int64(binary.LittleEndian.Uint32(body[0:]))
	sLen := int64(binary.LittleEndian.Uint32(body[4:]))
	if rLen <= 0 || rLen > MaxComponentSize || sLen <= 0 || sLen > MaxComponentSize {
		return nil, cryptoerr.New(cryptoerr.ErrInvalidLength,
			fmt.Sprintf("ecdsa: component lengths r=%d s=%d out of range", rLen, sLen))
	}
	if bodyHeader+rLen+sLen != bodyLen {
		return nil, malformed("component lengths do not match body length %d", bodyLen)
	}

	r := body[bodyHeader : bodyHeader+rLen]
	s := body[bodyHeader+rLen : bodyHeader+rLen+sLen]
	return &Signature{
		R: mpi.FromBytes(r, mpi.BigEndian),
		S: mpi.FromBytes(s, mpi.BigEndian),
	}, nil
}
