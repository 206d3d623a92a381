package ecs

import "github.com/rotisserie/eris"

var (
	// ErrInvalidComponent is returned when a nil component is bound.
	ErrInvalidComponent = eris.New("component must not be nil")
	// ErrDuplicateBinding is returned when the entity already has a component of that type.
	ErrDuplicateBinding = eris.New("entity already has a component of this type")
	// ErrComponentInUse is returned when the instance is already bound to another entity.
	ErrComponentInUse = eris.New("component is bound to another entity")
	// ErrUnknownEntity is returned when the entity id was never issued.
	ErrUnknownEntity = eris.New("entity was never created")
)
