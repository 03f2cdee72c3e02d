package database

import (
	"time"

	"github.com/KirkDiggler/dball/internal/models"
)

// NumberColumns is the red1..red6, blue column group shared by tickets and spots.
// Embed it in a row struct for sqlx scanning.
type NumberColumns struct {
	Red1 int `db:"red1"`
	Red2 int `db:"red2"`
	Red3 int `db:"red3"`
	Red4 int `db:"red4"`
	Red5 int `db:"red5"`
	Red6 int `db:"red6"`
	Blue int `db:"blue"`
}

// NumberColumnsFrom spreads a number set over the column group, reds ascending
func NumberColumnsFrom(n models.NumberSet) NumberColumns {
	r := n.Reds()
	return NumberColumns{
		Red1: r[0], Red2: r[1], Red3: r[2], Red4: r[3], Red5: r[4], Red6: r[5],
		Blue: n.Blue(),
	}
}

// NumberSet validates the stored columns back into a number set
func (c NumberColumns) NumberSet() (models.NumberSet, error) {
	return models.NewNumberSet([]int{c.Red1, c.Red2, c.Red3, c.Red4, c.Red5, c.Red6}, c.Blue)
}

// ToUnixNano stores times as integer nanoseconds
func ToUnixNano(t time.Time) int64 {
	return t.UnixNano()
}

// FromUnixNano reads a stored integer time back as UTC
func FromUnixNano(ns int64) time.Time {
	return time.Unix(0, ns).UTC()
}
