package entities

import (
	"github.com/pkg/errors"
)

type FieldName string

const (
	FieldBrand FieldName = "brand"
	FieldModel FieldName = "model"
	FieldYear  FieldName = "year"
)

var (
	ErrUnknownField = errors.New("unknown field")
	ErrUnknownKind  = errors.New("unknown vehicle kind")
)

// Fields lists the fields r exposes in declaration order.
func Fields(r Record) []FieldName {
	names := []FieldName{FieldBrand, FieldModel}
	if _, ok := r.(Dated); ok {
		names = append(names, FieldYear)
	}

	return names
}

// ReadField returns the value of the named field of r.
func ReadField(r Record, name FieldName) (any, error) {
	switch name {
	case FieldBrand:
		return r.Brand(), nil
	case FieldModel:
		return r.Model(), nil
	case FieldYear:
		if d, ok := r.(Dated); ok {
			return d.Year(), nil
		}
	}

	return nil, errors.Wrapf(ErrUnknownField, "%s has no field %q", r.EntityKind(), name)
}

// New builds a record of the given kind. year is ignored unless kind is KindTruck.
func New(kind string, brand Brand, model Model, year Year) (Record, error) {
	switch kind {
	case KindVehicle:
		return NewVehicle(brand, model), nil
	case KindCar:
		return NewCar(brand, model), nil
	case KindTruck:
		return NewTruck(brand, model, year), nil
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "%q", kind)
	}
}
