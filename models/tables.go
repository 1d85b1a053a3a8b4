package models

// Names of the entity tables tracked by the sync engine. They double as the
// tableName values carried in queue entries and in the pull request's table
// list, so they must match the server's naming exactly.
const (
	TableAnimals           = "animals"
	TableBreedings         = "breedings"
	TableHealthRecords     = "health_records"
	TableProductionRecords = "production_records"
)

// TrackedTables lists every entity table included in a pull request, in the
// order the server expects them.
func TrackedTables() []string {
	return []string{
		TableAnimals,
		TableBreedings,
		TableHealthRecords,
		TableProductionRecords,
	}
}
