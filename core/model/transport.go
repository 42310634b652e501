package model

// TransportMode identifies one of the fixed travel means of the zone model.
type TransportMode string

const (
	ModeBicycle         TransportMode = "bicycle"
	ModeCar             TransportMode = "car"
	ModePublicTransport TransportMode = "public_transport"
)

// Modes lists the supported transport modes in a fixed order.
func Modes() []TransportMode {
	return []TransportMode{ModeBicycle, ModeCar, ModePublicTransport}
}

// Known reports whether the mode belongs to the supported set.
func (m TransportMode) Known() bool {
	switch m {
	case ModeBicycle, ModeCar, ModePublicTransport:
		return true
	}
	return false
}
