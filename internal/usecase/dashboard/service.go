package dashboard

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	domainEquipment "github.com/PratikPaudel/nwcs-inventory/internal/domain/equipment"
	domainLocation "github.com/PratikPaudel/nwcs-inventory/internal/domain/location"
	appErrors "github.com/PratikPaudel/nwcs-inventory/pkg/errors"
	"github.com/PratikPaudel/nwcs-inventory/pkg/utils"
)

const unassignedBucket = "Unassigned"

// Service assembles the dashboard read models. Aggregates over a single
// equipment column come straight from the registry; the building
// distribution needs the location -> building hop and is joined in memory
// over lookup tables built per request.
type Service struct {
	equipmentRepo domainEquipment.Repository
	locationRepo  domainLocation.Repository
}

// NewService creates a new dashboard service
func NewService(equipmentRepo domainEquipment.Repository, locationRepo domainLocation.Repository) *Service {
	return &Service{
		equipmentRepo: equipmentRepo,
		locationRepo:  locationRepo,
	}
}

// DevicesByBuilding counts equipment per building. Units without a location
// land in the Unassigned bucket. Buckets are sorted by count descending so
// the chart reads largest first.
func (s *Service) DevicesByBuilding(ctx context.Context) (*DistributionResponse, error) {
	items, err := s.equipmentRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load equipment registry: %w", err)
	}

	locations, err := s.locationRepo.ListLocations(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load locations: %w", err)
	}

	buildingByLocation := make(map[uuid.UUID]string, len(locations))
	for _, l := range locations {
		name := unassignedBucket
		if l.Building != nil {
			name = l.Building.BuildingName
		}
		buildingByLocation[l.ID] = name
	}

	counts := make(map[string]int)
	for _, e := range items {
		name := unassignedBucket
		if e.LocationID != nil {
			if building, ok := buildingByLocation[*e.LocationID]; ok {
				name = building
			}
		}
		counts[name]++
	}

	return &DistributionResponse{
		Type: "devices_by_building",
		Data: sortedDistribution(counts),
	}, nil
}

// DevicesByManufacturer counts equipment per manufacturer
func (s *Service) DevicesByManufacturer(ctx context.Context) (*DistributionResponse, error) {
	data, err := s.equipmentRepo.CountByManufacturer(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count by manufacturer: %w", err)
	}

	return &DistributionResponse{
		Type: "devices_by_manufacturer",
		Data: data,
	}, nil
}

// DevicesByFormFactor counts equipment per form factor
func (s *Service) DevicesByFormFactor(ctx context.Context) (*DistributionResponse, error) {
	data, err := s.equipmentRepo.CountByFormFactor(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count by form factor: %w", err)
	}

	return &DistributionResponse{
		Type: "devices_by_form_factor",
		Data: data,
	}, nil
}

// GenerateReport builds a filtered snapshot of the registry. Both filters
// are optional; an empty request reports the whole registry.
func (s *Service) GenerateReport(ctx context.Context, req *GenerateReportRequest) (*ReportResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, appErrors.NewAppError("VALIDATION_ERROR", "Invalid input", err)
	}

	items, err := s.equipmentRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load equipment registry: %w", err)
	}

	rows := make([]ReportRow, 0, len(items))
	for _, e := range items {
		if req.Status != nil && string(e.Status) != *req.Status {
			continue
		}
		if req.FormFactor != nil {
			if e.FormFactor == nil || *e.FormFactor != *req.FormFactor {
				continue
			}
		}
		rows = append(rows, toReportRow(e))
	}

	return &ReportResponse{
		Total: len(rows),
		Rows:  rows,
	}, nil
}

func sortedDistribution(counts map[string]int) []domainEquipment.Distribution {
	data := make([]domainEquipment.Distribution, 0, len(counts))
	for name, value := range counts {
		data = append(data, domainEquipment.Distribution{Name: name, Value: value})
	}
	sort.Slice(data, func(i, j int) bool {
		if data[i].Value != data[j].Value {
			return data[i].Value > data[j].Value
		}
		return data[i].Name < data[j].Name
	})

	return data
}
