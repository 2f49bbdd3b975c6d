package deviceuser

import "errors"

var (
	ErrDeviceUserNotFound     = errors.New("device user not found")
	ErrDeviceUserExists       = errors.New("device user with this email already exists")
	ErrDepartmentNotFound     = errors.New("department not found")
	ErrEmploymentTypeNotFound = errors.New("employment type not found")
)
