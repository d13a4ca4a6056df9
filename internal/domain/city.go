package domain

type City struct {
	ID             int64   `db:"id" json:"id"`
	Name           string  `db:"name" json:"name"`
	AdditionalInfo *string `db:"additional_info" json:"additional_info"`
}
