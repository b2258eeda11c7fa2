package model

type Institution struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type Position struct {
	ID   string `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

type TagType string

const (
	TagPositive TagType = "positive"
	TagNegative TagType = "negative"
)

type Tag struct {
	ID   string  `db:"id" json:"id"`
	Name string  `db:"name" json:"name"`
	Slug string  `db:"slug" json:"slug"`
	Type TagType `db:"type" json:"type"`
}
