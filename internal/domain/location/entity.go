package location

import (
	"github.com/google/uuid"
)

// Location represents a room within a building. Equipment references a
// location; referential integrity is the only invariant.
type Location struct {
	ID uuid.UUID

	BuildingID  uuid.UUID
	FloorNumber int
	RoomNumber  string
	Description *string

	Building *Building
}

// Building is reference data for locations.
type Building struct {
	ID uuid.UUID

	BuildingName      string
	BuildingShortName string

	Locations []Location
}
