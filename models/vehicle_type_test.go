package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseVehicleType(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want VehicleType
	}{
		{name: "car exact", in: "Car", want: TypeCar},
		{name: "car lowercase", in: "car", want: TypeCar},
		{name: "bike padded", in: "  Bike ", want: TypeBike},
		{name: "empty means unset", in: "", want: VehicleType{}},
		{name: "unknown keeps raw text", in: "Truck", want: VehicleType{Kind: KindUnknown, Raw: "Truck"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseVehicleType(tt.in))
		})
	}
}

func TestVehicleType_String_RoundTripsUnknown(t *testing.T) {
	got := ParseVehicleType("Trailer")
	assert.Equal(t, "Trailer", got.String())
	assert.Equal(t, got, ParseVehicleType(got.String()))
}

func TestVehicleType_IsZero(t *testing.T) {
	assert.True(t, VehicleType{}.IsZero())
	assert.False(t, TypeCar.IsZero())
	assert.False(t, ParseVehicleType("Truck").IsZero())
}
