package table

import "fmt"

// Seed lays out the demo floor: a main hall, a terrace, and private rooms.
func Seed() []Table {
	var tables []Table
	for i := 1; i <= 12; i++ {
		tables = append(tables, Table{
			Number: fmt.Sprintf("A%02d", i),
			Area:   "Main Hall",
			Seats:  4,
		})
	}
	for i := 1; i <= 6; i++ {
		tables = append(tables, Table{
			Number: fmt.Sprintf("B%02d", i),
			Area:   "Terrace",
			Seats:  2,
		})
	}
	for i := 1; i <= 4; i++ {
		tables = append(tables, Table{
			Number: fmt.Sprintf("V%02d", i),
			Area:   "Private Rooms",
			Seats:  10,
		})
	}
	return tables
}
