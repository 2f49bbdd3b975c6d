package equipment

import "errors"

var (
	ErrEquipmentNotFound      = errors.New("equipment not found")
	ErrEquipmentAlreadyExists = errors.New("equipment with this asset tag already exists")
	ErrEquipmentInUse         = errors.New("equipment has an open assignment")
	ErrInvalidStatus          = errors.New("invalid equipment status")
)
