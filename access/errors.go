package access

import "errors"

// ErrRepositoryRequired is returned when a gate is constructed without a
// device repository.
var ErrRepositoryRequired = errors.New("device repository required")
