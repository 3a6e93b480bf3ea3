package cmd

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/whiteelite/garage/internal/domain/entities"
)

func newReadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <kind> <brand> <model> [year] <field>",
		Short: "Construct a single vehicle and print one of its fields",
		Example: `  garage read car Toyota Corolla brand
  garage read truck Toyota Hilux 2020 year`,
		Args: cobra.RangeArgs(4, 5),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, l, err := setup(cmd)
			if err != nil {
				return err
			}

			kind, brand, model := args[0], entities.Brand(args[1]), entities.Model(args[2])
			field := entities.FieldName(args[len(args)-1])

			var year entities.Year
			if len(args) == 5 {
				n, err := strconv.Atoi(args[3])
				if err != nil {
					return errors.Wrapf(err, "invalid year %s", args[3])
				}
				year = entities.Year(n)
			}

			record, err := entities.New(kind, brand, model, year)
			if err != nil {
				return err
			}

			value, err := entities.ReadField(record, field)
			if err != nil {
				return err
			}

			l.WithField("kind", kind).WithField("field", field).Debug("read field")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}
}
