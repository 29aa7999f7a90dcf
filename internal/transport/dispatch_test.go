package transport

import (
	"testing"

	"github.com/fenrir-labs/lob/internal/common"
	"github.com/fenrir-labs/lob/internal/engine"
	"github.com/fenrir-labs/lob/internal/wire"
	"github.com/stretchr/testify/assert"
)

func newTestServer() *Server {
	return New("127.0.0.1", 0, engine.NewBook("TEST"))
}

func frame(t wire.MessageType, payload []byte) []byte {
	return append([]byte{byte(t)}, payload...)
}

func TestDispatch_MatchOrder(t *testing.T) {
	s := newTestServer()
	order := common.Order{Id: 1, Price: 100, Quantity: 5, Side: common.Buy}

	resp := s.dispatch(frame(wire.MatchOrder, wire.EncodeOrder(order)))
	assert.Equal(t, wire.MatchResult, resp.Type)
	assert.Equal(t, uint32(0), resp.Value)
	assert.True(t, s.book.OrderExists(1))
}

func TestDispatch_ModifyOrder(t *testing.T) {
	s := newTestServer()
	s.book.MatchOrder(common.Order{Id: 1, Price: 100, Quantity: 5, Side: common.Buy})

	buf := make([]byte, wire.ModifyLen)
	buf[3] = 1
	buf[5] = 0
	resp := s.dispatch(frame(wire.ModifyOrder, buf))
	assert.Equal(t, wire.OrderResult, resp.Type)
	assert.False(t, resp.Exists)
	assert.False(t, s.book.OrderExists(1))
}

func TestDispatch_LookupOrder(t *testing.T) {
	s := newTestServer()
	s.book.MatchOrder(common.Order{Id: 1, Price: 100, Quantity: 5, Side: common.Buy})

	buf := make([]byte, wire.LookupLen)
	buf[3] = 1
	resp := s.dispatch(frame(wire.LookupOrder, buf))
	assert.Equal(t, wire.OrderResult, resp.Type)
	assert.True(t, resp.Exists)
	assert.Equal(t, uint32(5), resp.Value)
}

func TestDispatch_VolumeAtLevel(t *testing.T) {
	s := newTestServer()
	s.book.MatchOrder(common.Order{Id: 1, Price: 100, Quantity: 5, Side: common.Buy})

	buf := make([]byte, wire.VolumeAtLevelLen)
	buf[1] = 100
	buf[2] = byte(common.Buy)
	resp := s.dispatch(frame(wire.VolumeAtLevel, buf))
	assert.Equal(t, wire.VolumeResult, resp.Type)
	assert.Equal(t, uint32(5), resp.Value)
}

func TestDispatch_InvalidMessageType(t *testing.T) {
	s := newTestServer()
	resp := s.dispatch([]byte{0xFF})
	assert.Equal(t, wire.ErrorResult, resp.Type)
	assert.NotEmpty(t, resp.Err)
}

func TestDispatch_MalformedPayloadTooShort(t *testing.T) {
	s := newTestServer()
	resp := s.dispatch(frame(wire.MatchOrder, []byte{1, 2}))
	assert.Equal(t, wire.ErrorResult, resp.Type)
}
