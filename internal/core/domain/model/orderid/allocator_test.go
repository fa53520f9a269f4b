package orderid_test

import (
	"testing"

	"laundry/internal/core/domain/model/orderid"

	"github.com/stretchr/testify/assert"
)

func TestAllocator_Next(t *testing.T) {
	tests := []struct {
		name   string
		floor  uint64
		latest string
		want   string
	}{
		{name: "no orders yet, floor zero", floor: orderid.FloorZero, latest: "", want: "RKR000"},
		{name: "no orders yet, floor one", floor: orderid.FloorOne, latest: "", want: "RKR001"},
		{name: "increments", floor: orderid.FloorOne, latest: "RKR007", want: "RKR008"},
		{name: "carries into tens", floor: orderid.FloorOne, latest: "RKR009", want: "RKR010"},
		{name: "width grows past 999", floor: orderid.FloorOne, latest: "RKR999", want: "RKR1000"},
		{name: "wide codes keep growing", floor: orderid.FloorOne, latest: "RKR12345", want: "RKR12346"},
		{name: "prefix is case insensitive", floor: orderid.FloorOne, latest: "rkr041", want: "RKR042"},
		{name: "counter embedded in a longer value", floor: orderid.FloorOne, latest: "ORDER-RKR12-2024", want: "RKR013"},
		{name: "malformed restarts at floor", floor: orderid.FloorZero, latest: "ORD-17", want: "RKR000"},
		{name: "placeholder restarts at floor", floor: orderid.FloorOne, latest: "TMP-0f8b", want: "RKR001"},
		{name: "overflowing digits restart at floor", floor: orderid.FloorOne, latest: "RKR99999999999999999999999", want: "RKR001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := orderid.NewAllocator(tt.floor).Next(tt.latest)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestAllocator_NextIsPure(t *testing.T) {
	a := orderid.NewAllocator(orderid.FloorOne)

	assert.Equal(t, a.Next("RKR010"), a.Next("RKR010"))
	assert.Equal(t, "RKR001", a.Floor().String())
}
