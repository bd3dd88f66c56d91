package domain

// Immutable geographic coordinates in degrees (latitude, longitude).
// Values are taken verbatim from the lookup provider and are not range-checked.
type Coordinates struct {
	Lat float64
	Lon float64
}

// An airport code bound to the coordinates resolved for it.
// Created per lookup and consumed by the distance calculation; never stored.
type Airport struct {
	Code        string
	Coordinates Coordinates
}
