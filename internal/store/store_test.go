package store

import (
	"testing"

	"github.com/fenrir-labs/lob/internal/common"
	"github.com/stretchr/testify/assert"
)

func TestStore_PutGetDeactivate(t *testing.T) {
	s := New(100, 50)
	assert.False(t, s.Active(5))

	s.Put(common.Order{Id: 5, Price: 10, Quantity: 3, Side: common.Buy})
	assert.True(t, s.Active(5))

	order, ok := s.Get(5)
	assert.True(t, ok)
	assert.Equal(t, uint16(3), order.Quantity)

	s.Deactivate(5)
	assert.False(t, s.Active(5))
	_, ok = s.Get(5)
	assert.False(t, ok)
}

func TestStore_SetQuantityPreservesIdentity(t *testing.T) {
	s := New(10, 10)
	s.Put(common.Order{Id: 1, Price: 7, Quantity: 10, Side: common.Sell})
	s.SetQuantity(1, 4)
	order, _ := s.Get(1)
	assert.Equal(t, uint16(4), order.Quantity)
	assert.Equal(t, uint16(7), order.Price)
	assert.Equal(t, common.Sell, order.Side)
}

func TestStore_VolumeOutOfDomainIsZero(t *testing.T) {
	s := New(10, 10)
	assert.Equal(t, uint32(0), s.Volume(999, common.Buy))
}

func TestStore_AddVolumeRoundTrips(t *testing.T) {
	s := New(10, 10)
	s.AddVolume(5, common.Buy, 10)
	assert.Equal(t, uint32(10), s.Volume(5, common.Buy))
	s.AddVolume(5, common.Buy, -10)
	assert.Equal(t, uint32(0), s.Volume(5, common.Buy))
}

func TestStore_InDomain(t *testing.T) {
	s := New(10, 10)
	assert.True(t, s.InDomain(9))
	assert.False(t, s.InDomain(10))
}
