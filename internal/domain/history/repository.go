package history

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the read side of the history log. Records are appended only
// inside assignment transition transactions; there is deliberately no
// standalone Create, Update or Delete.
type Repository interface {
	ListByEquipmentID(ctx context.Context, equipmentID uuid.UUID) ([]*Record, error)
}
