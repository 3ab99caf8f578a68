package domain

import "slices"

const (
	ColumnPlantName     = "Plant name"
	ColumnNetGeneration = "Generator annual net generation (MWh)"
	ColumnGeneratorID   = "Generator ID"
	ColumnDataYear      = "Data Year"
	ColumnState         = "Plant state abbreviation"
)

var RequiredColumns = []string{
	ColumnPlantName,
	ColumnNetGeneration,
	ColumnGeneratorID,
	ColumnDataYear,
	ColumnState,
}

// RawRow is a data row as it appears in the source file, before any cleaning.
type RawRow struct {
	PlantName     string `csv:"Plant name"`
	NetGeneration string `csv:"Generator annual net generation (MWh)"`
	GeneratorID   string `csv:"Generator ID"`
	DataYear      string `csv:"Data Year"`
	State         string `csv:"Plant state abbreviation"`
}

// MissingColumns returns the required labels absent from header, in
// RequiredColumns order.
func MissingColumns(header []string) []string {
	var missing []string
	for _, column := range RequiredColumns {
		if !slices.Contains(header, column) {
			missing = append(missing, column)
		}
	}
	return missing
}
