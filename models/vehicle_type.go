package models

import "strings"

// VehicleKind enumerates the vehicle categories the application knows how
// to display. Stored type text that matches none of them is preserved as
// KindUnknown with the raw value intact, so display logic always has an
// explicit fallback case.
type VehicleKind int

const (
	KindUnknown VehicleKind = iota
	KindCar
	KindBike
)

// VehicleType is the closed tagged variant for a vehicle's category.
// The zero value means "no type selected" and acts as the "all types"
// wildcard in filters.
type VehicleType struct {
	Kind VehicleKind

	// Raw is the original stored text. Kept verbatim for unknown kinds
	// so unrecognized values survive a load/save cycle unchanged.
	Raw string
}

var (
	TypeCar  = VehicleType{Kind: KindCar, Raw: "Car"}
	TypeBike = VehicleType{Kind: KindBike, Raw: "Bike"}
)

// ParseVehicleType maps stored type text to a VehicleType. Matching is
// case-insensitive on the trimmed value; anything unrecognized becomes
// KindUnknown with the original text preserved.
func ParseVehicleType(s string) VehicleType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "car":
		return TypeCar
	case "bike":
		return TypeBike
	case "":
		return VehicleType{}
	default:
		return VehicleType{Kind: KindUnknown, Raw: s}
	}
}

// String returns the text persisted for this type.
func (t VehicleType) String() string {
	switch t.Kind {
	case KindCar:
		return "Car"
	case KindBike:
		return "Bike"
	default:
		return t.Raw
	}
}

// IsZero reports whether no type has been selected at all. Distinct from
// an unknown type, which carries non-empty raw text.
func (t VehicleType) IsZero() bool {
	return t.Kind == KindUnknown && t.Raw == ""
}
