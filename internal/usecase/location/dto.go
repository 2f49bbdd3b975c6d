package location

import (
	"github.com/google/uuid"

	domainLocation "github.com/PratikPaudel/nwcs-inventory/internal/domain/location"
)

type LocationResponse struct {
	ID          uuid.UUID `json:"location_id"`
	BuildingID  uuid.UUID `json:"building_id"`
	Building    *string   `json:"building"`
	FloorNumber int       `json:"floor_number"`
	RoomNumber  string    `json:"room_number"`
	Description *string   `json:"description"`
}

type BuildingResponse struct {
	ID                uuid.UUID          `json:"building_id"`
	BuildingName      string             `json:"building_name"`
	BuildingShortName string             `json:"building_short_name"`
	Locations         []LocationResponse `json:"locations,omitempty"`
}

func ToLocationResponse(l *domainLocation.Location) LocationResponse {
	resp := LocationResponse{
		ID:          l.ID,
		BuildingID:  l.BuildingID,
		FloorNumber: l.FloorNumber,
		RoomNumber:  l.RoomNumber,
		Description: l.Description,
	}
	if l.Building != nil {
		resp.Building = &l.Building.BuildingName
	}

	return resp
}

func ToBuildingResponse(b *domainLocation.Building) BuildingResponse {
	resp := BuildingResponse{
		ID:                b.ID,
		BuildingName:      b.BuildingName,
		BuildingShortName: b.BuildingShortName,
	}
	for i := range b.Locations {
		resp.Locations = append(resp.Locations, ToLocationResponse(&b.Locations[i]))
	}

	return resp
}
