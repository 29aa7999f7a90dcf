package wire

import "encoding/binary"

// ResponseType identifies what kind of response a server frame carries.
type ResponseType uint8

const (
	MatchResult ResponseType = iota
	OrderResult
	VolumeResult
	ErrorResult
)

// Response is the uniform reply frame: a type tag, a fixed 4-byte
// numeric result (match_count, quantity, or volume depending on Type),
// an existence flag for OrderResult, and an optional trailing error
// string.
type Response struct {
	Type   ResponseType
	Value  uint32
	Exists bool
	Err    string
}

const responseFixedLen = 1 + 4 + 1 + 2 // type + value + exists + errLen

// Serialize packs r onto the wire as a fixed header (type, value, exists
// flag, error length) followed by the trailing error string.
func (r Response) Serialize() []byte {
	buf := make([]byte, responseFixedLen+len(r.Err))
	buf[0] = byte(r.Type)
	binary.BigEndian.PutUint32(buf[1:5], r.Value)
	if r.Exists {
		buf[5] = 1
	}
	binary.BigEndian.PutUint16(buf[6:8], uint16(len(r.Err)))
	copy(buf[responseFixedLen:], r.Err)
	return buf
}

// DecodeResponse parses a Response previously written by Serialize.
// Primarily used by the client and by tests exercising the codec
// round-trip.
func DecodeResponse(buf []byte) (Response, error) {
	if len(buf) < responseFixedLen {
		return Response{}, ErrMessageTooShort
	}
	errLen := int(binary.BigEndian.Uint16(buf[6:8]))
	if len(buf) < responseFixedLen+errLen {
		return Response{}, ErrMessageTooShort
	}
	return Response{
		Type:   ResponseType(buf[0]),
		Value:  binary.BigEndian.Uint32(buf[1:5]),
		Exists: buf[5] != 0,
		Err:    string(buf[responseFixedLen : responseFixedLen+errLen]),
	}, nil
}
