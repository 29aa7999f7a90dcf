// Package wire implements the binary codec for messages exchanged with
// the matching engine over TCP: a fixed-width order record plus a thin
// message envelope.
package wire

import (
	"encoding/binary"
	"errors"

	"github.com/fenrir-labs/lob/internal/common"
)

var (
	ErrInvalidMessageType = errors.New("invalid message type")
	ErrMessageTooShort    = errors.New("message too short")
)

// MessageType identifies the operation a client frame carries.
type MessageType uint8

const (
	MatchOrder MessageType = iota
	ModifyOrder
	LookupOrder
	VolumeAtLevel
)

const (
	headerLen = 1 // MessageType

	// OrderLen is the wire width of a single order record: id (4), price
	// (2), quantity (2), side (1).
	OrderLen = 4 + 2 + 2 + 1

	// ModifyLen is id (4) + new quantity (2).
	ModifyLen = 4 + 2

	// LookupLen and VolumeAtLevelLen are id (4), and price (2) + side (1).
	LookupLen        = 4
	VolumeAtLevelLen = 2 + 1
)

// EncodeOrder writes order's wire record: id uint32 BE, price uint16 BE,
// quantity uint16 BE, side 1 byte.
func EncodeOrder(order common.Order) []byte {
	buf := make([]byte, OrderLen)
	binary.BigEndian.PutUint32(buf[0:4], order.Id)
	binary.BigEndian.PutUint16(buf[4:6], order.Price)
	binary.BigEndian.PutUint16(buf[6:8], order.Quantity)
	buf[8] = byte(order.Side)
	return buf
}

// DecodeOrder parses the first OrderLen bytes of buf as a wire record;
// any bytes past OrderLen are ignored.
func DecodeOrder(buf []byte) (common.Order, error) {
	if len(buf) < OrderLen {
		return common.Order{}, ErrMessageTooShort
	}
	return common.Order{
		Id:       binary.BigEndian.Uint32(buf[0:4]),
		Price:    binary.BigEndian.Uint16(buf[4:6]),
		Quantity: binary.BigEndian.Uint16(buf[6:8]),
		Side:     common.Side(buf[8]),
	}, nil
}

// Frame is a parsed client request: a MessageType plus its raw payload.
type Frame struct {
	Type    MessageType
	Payload []byte
}

// ParseFrame splits the leading MessageType byte off buf.
func ParseFrame(buf []byte) (Frame, error) {
	if len(buf) < headerLen {
		return Frame{}, ErrMessageTooShort
	}
	return Frame{Type: MessageType(buf[0]), Payload: buf[headerLen:]}, nil
}

// ModifyRequest is the decoded payload of a ModifyOrder frame.
type ModifyRequest struct {
	Id          uint32
	NewQuantity uint16
}

func DecodeModifyRequest(buf []byte) (ModifyRequest, error) {
	if len(buf) < ModifyLen {
		return ModifyRequest{}, ErrMessageTooShort
	}
	return ModifyRequest{
		Id:          binary.BigEndian.Uint32(buf[0:4]),
		NewQuantity: binary.BigEndian.Uint16(buf[4:6]),
	}, nil
}

// VolumeRequest is the decoded payload of a VolumeAtLevel frame.
type VolumeRequest struct {
	Price uint16
	Side  common.Side
}

func DecodeVolumeRequest(buf []byte) (VolumeRequest, error) {
	if len(buf) < VolumeAtLevelLen {
		return VolumeRequest{}, ErrMessageTooShort
	}
	return VolumeRequest{
		Price: binary.BigEndian.Uint16(buf[0:2]),
		Side:  common.Side(buf[2]),
	}, nil
}

func DecodeLookupRequest(buf []byte) (uint32, error) {
	if len(buf) < LookupLen {
		return 0, ErrMessageTooShort
	}
	return binary.BigEndian.Uint32(buf[0:4]), nil
}
