// Package showroom runs the vehicle demonstration: one car and one truck,
// constructed and written out field by field.
package showroom

import (
	"context"

	"github.com/apex/log"
	"github.com/pkg/errors"

	"github.com/whiteelite/garage/internal/domain/entities"
	"github.com/whiteelite/garage/internal/infrastructure/output"
)

// Scenario returns the demonstration records in output order.
func Scenario() []entities.Record {
	return []entities.Record{
		entities.NewCar("Toyota", "Corolla"),
		entities.NewTruck("Toyota", "Hilux", 2020),
	}
}

func Run(ctx context.Context, w output.Writer, logger log.Interface) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for _, r := range Scenario() {
		logger.WithFields(log.Fields{
			"kind":  r.EntityKind(),
			"brand": r.Brand(),
			"model": r.Model(),
		}).Debug("writing record")

		if err := w.Write(r); err != nil {
			return errors.Wrapf(err, "writing %s", r.EntityKind())
		}
	}

	return nil
}
