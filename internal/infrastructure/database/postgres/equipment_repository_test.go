package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEquipmentOrderClause(t *testing.T) {
	tests := []struct {
		name      string
		sortBy    string
		sortOrder string
		want      string
	}{
		{"default", "", "", "created_at DESC"},
		{"allowed column ascending", "asset_tag", "asc", "asset_tag ASC"},
		{"allowed column descending", "device_name", "desc", "device_name DESC"},
		{"case insensitive direction", "status", "ASC", "status ASC"},
		{"unknown column falls back", "location_id", "asc", "created_at ASC"},
		{"injection attempt falls back", "created_at; DROP TABLE equipment", "desc", "created_at DESC"},
		{"unknown direction falls back", "updated_at", "sideways", "updated_at DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, equipmentOrderClause(tt.sortBy, tt.sortOrder))
		})
	}
}
