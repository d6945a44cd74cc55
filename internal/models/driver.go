package models

// Driver is one roster entry for the fleet. Drivers are interchangeable as
// far as the queueing model is concerned; the roster only labels pool slots
// so output records can name who delivered what.
type Driver struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	VehicleType string `json:"vehicle_type"`
}
