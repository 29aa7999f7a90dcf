package transport

import (
	"github.com/fenrir-labs/lob/internal/common"
	"github.com/fenrir-labs/lob/internal/wire"
	"github.com/rs/zerolog/log"
)

// dispatch parses a raw client frame and actions it against the book,
// always returning a Response — malformed input is reported back as an
// ErrorResult rather than dropped.
func (s *Server) dispatch(buf []byte) wire.Response {
	frame, err := wire.ParseFrame(buf)
	if err != nil {
		return errorResponse(err)
	}

	switch frame.Type {
	case wire.MatchOrder:
		order, err := wire.DecodeOrder(frame.Payload)
		if err != nil {
			return errorResponse(err)
		}
		count := s.book.MatchOrder(order)
		return wire.Response{Type: wire.MatchResult, Value: uint32(count)}

	case wire.ModifyOrder:
		req, err := wire.DecodeModifyRequest(frame.Payload)
		if err != nil {
			return errorResponse(err)
		}
		s.book.ModifyOrderByID(req.Id, req.NewQuantity)
		return wire.Response{Type: wire.OrderResult, Exists: s.book.OrderExists(req.Id)}

	case wire.LookupOrder:
		id, err := wire.DecodeLookupRequest(frame.Payload)
		if err != nil {
			return errorResponse(err)
		}
		order, err := s.book.LookupOrderByID(id)
		if err != nil {
			return wire.Response{Type: wire.OrderResult, Exists: false}
		}
		return wire.Response{Type: wire.OrderResult, Exists: true, Value: uint32(order.Quantity)}

	case wire.VolumeAtLevel:
		req, err := wire.DecodeVolumeRequest(frame.Payload)
		if err != nil {
			return errorResponse(err)
		}
		if !req.Side.Valid() {
			return errorResponse(common.ErrOutOfDomain)
		}
		return wire.Response{
			Type:  wire.VolumeResult,
			Value: s.book.GetVolumeAtLevel(req.Price, req.Side),
		}

	default:
		return errorResponse(wire.ErrInvalidMessageType)
	}
}

func errorResponse(err error) wire.Response {
	log.Error().Err(err).Msg("error handling client frame")
	return wire.Response{Type: wire.ErrorResult, Err: err.Error()}
}
