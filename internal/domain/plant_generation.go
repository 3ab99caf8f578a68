package domain

type PlantGeneration struct {
	ID            int64   `db:"id"             json:"id"`
	GeneratorID   string  `db:"gen_id"         json:"gen_id"`
	Year          int     `db:"year"           json:"year"`
	State         string  `db:"state"          json:"state"`
	PlantName     string  `db:"plant_name"     json:"plant_name"`
	NetGeneration float64 `db:"net_generation" json:"net_generation"`
}

type RecordFilter struct {
	State string
	Year  int
}
