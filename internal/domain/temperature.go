package domain

import "time"

// Temperature is a single reading tied to a city. Readings are append-only:
// they are created by the refresh workflow and removed only when their city
// is deleted.
type Temperature struct {
	ID           int64     `db:"id" json:"id"`
	CityID       int64     `db:"city_id" json:"city_id"`
	DateTime     time.Time `db:"date_time" json:"date_time"`
	TemperatureC float64   `db:"temperature" json:"temperature"`
}

// TemperatureRecord is a reading staged for insertion, before the store has
// assigned it an id.
type TemperatureRecord struct {
	CityID       int64
	DateTime     time.Time
	TemperatureC float64
}
