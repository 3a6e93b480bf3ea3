package entities

import (
	json "github.com/goccy/go-json"

	shared "github.com/whiteelite/garage/pkg/shared/domain/entities"
)

type (
	Brand string
	Model string
	Year  int
)

const (
	KindVehicle = "vehicle"
	KindCar     = "car"
	KindTruck   = "truck"
)

// Record is the capability set shared by every vehicle.
type Record interface {
	shared.Entity

	Brand() Brand
	Model() Model
}

// Dated is a Record that also carries a model year.
type Dated interface {
	Record

	Year() Year
}

// Vehicle is the base record. Its fields are only assigned by NewVehicle.
type Vehicle struct {
	brand Brand
	model Model
}

func NewVehicle(brand Brand, model Model) Vehicle {
	return Vehicle{
		brand: brand,
		model: model,
	}
}

func (v Vehicle) Brand() Brand { return v.brand }

func (v Vehicle) Model() Model { return v.model }

func (v Vehicle) EntityKind() string { return KindVehicle }

// Car inherits Vehicle unchanged.
type Car struct{ Vehicle }

func NewCar(brand Brand, model Model) Car {
	return Car{NewVehicle(brand, model)}
}

func (c Car) EntityKind() string { return KindCar }

// Truck extends Vehicle with a model year.
type Truck struct {
	Vehicle

	year Year
}

func NewTruck(brand Brand, model Model, year Year) Truck {
	t := Truck{Vehicle: NewVehicle(brand, model)}
	t.year = year

	return t
}

func (t Truck) Year() Year { return t.year }

func (t Truck) EntityKind() string { return KindTruck }

type vehicleJSON struct {
	Brand Brand `json:"brand"`
	Model Model `json:"model"`
}

type truckJSON struct {
	Brand Brand `json:"brand"`
	Model Model `json:"model"`
	Year  Year  `json:"year"`
}

func (v Vehicle) MarshalJSON() ([]byte, error) {
	return json.Marshal(vehicleJSON{Brand: v.brand, Model: v.model})
}

func (v *Vehicle) UnmarshalJSON(data []byte) error {
	var w vehicleJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*v = NewVehicle(w.Brand, w.Model)
	return nil
}

func (t Truck) MarshalJSON() ([]byte, error) {
	return json.Marshal(truckJSON{Brand: t.brand, Model: t.model, Year: t.year})
}

func (t *Truck) UnmarshalJSON(data []byte) error {
	var w truckJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	*t = NewTruck(w.Brand, w.Model, w.Year)
	return nil
}

// Compile-time assertions
var (
	_ Record = Vehicle{}
	_ Record = Car{}
	_ Dated  = Truck{}
	_ Record = (*Car)(nil)
	_ Dated  = (*Truck)(nil)
)
