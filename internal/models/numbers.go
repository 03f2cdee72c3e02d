package models

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Pool bounds for a double-color-ball number set
const (
	RedCount = 6
	RedMin   = 1
	RedMax   = 33
	BlueMin  = 1
	BlueMax  = 16
)

// Field names used in validation errors
const (
	FieldRed        = "red"
	FieldBlue       = "blue"
	FieldPeriod     = "period"
	FieldMultiplier = "multiplier"
)

// NumberSet is six distinct red numbers plus one blue number.
// The reds are stored sorted, so two sets are == when they hold the same numbers in any order.
// The zero value is not a valid set; build one with NewNumberSet.
type NumberSet struct {
	red  [RedCount]int
	blue int
}

// NewNumberSet validates and builds a NumberSet.
// Checks run in order: red count, red range, blue range, duplicate reds.
func NewNumberSet(reds []int, blue int) (NumberSet, error) {
	if len(reds) != RedCount {
		return NumberSet{}, &ValidationError{Kind: ValidationWrongCount, Field: FieldRed, Value: len(reds)}
	}

	for _, r := range reds {
		if err := ValidateRed(r); err != nil {
			return NumberSet{}, err
		}
	}

	if err := ValidateBlue(blue); err != nil {
		return NumberSet{}, err
	}

	var set NumberSet
	copy(set.red[:], reds)
	sort.Ints(set.red[:])
	for i := 1; i < RedCount; i++ {
		if set.red[i] == set.red[i-1] {
			return NumberSet{}, &ValidationError{Kind: ValidationDuplicate, Field: FieldRed, Value: set.red[i]}
		}
	}
	set.blue = blue

	return set, nil
}

// ValidateRed checks that a single red number is in its pool
func ValidateRed(r int) error {
	if r < RedMin || r > RedMax {
		return &ValidationError{Kind: ValidationOutOfRange, Field: FieldRed, Value: r}
	}
	return nil
}

// ValidateBlue checks that a blue number is in its pool
func ValidateBlue(b int) error {
	if b < BlueMin || b > BlueMax {
		return &ValidationError{Kind: ValidationOutOfRange, Field: FieldBlue, Value: b}
	}
	return nil
}

// MustNumberSet is NewNumberSet for literals known to be valid; it panics otherwise
func MustNumberSet(reds []int, blue int) NumberSet {
	set, err := NewNumberSet(reds, blue)
	if err != nil {
		panic(err)
	}
	return set
}

// Reds returns a copy of the red numbers in ascending order
func (n NumberSet) Reds() []int {
	out := make([]int, RedCount)
	copy(out, n.red[:])
	return out
}

// Blue returns the blue number
func (n NumberSet) Blue() int {
	return n.blue
}

// IsZero reports whether n is the unset zero value
func (n NumberSet) IsZero() bool {
	return n.blue == 0
}

// ContainsRed reports whether v is one of the red numbers
func (n NumberSet) ContainsRed(v int) bool {
	i := sort.SearchInts(n.red[:], v)
	return i < RedCount && n.red[i] == v
}

// Key is a canonical, order-independent encoding such as "01-02-03-04-05-06+07"
func (n NumberSet) Key() string {
	parts := make([]string, RedCount)
	for i, r := range n.red {
		parts[i] = fmt.Sprintf("%02d", r)
	}
	return fmt.Sprintf("%s+%02d", strings.Join(parts, "-"), n.blue)
}

// String renders the set for logs and chat output
func (n NumberSet) String() string {
	parts := make([]string, RedCount)
	for i, r := range n.red {
		parts[i] = fmt.Sprintf("%02d", r)
	}
	return fmt.Sprintf("%s | %02d", strings.Join(parts, " "), n.blue)
}

type numberSetJSON struct {
	Red  []int `json:"red"`
	Blue int   `json:"blue"`
}

// MarshalJSON implements json.Marshaler
func (n NumberSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(numberSetJSON{Red: n.Reds(), Blue: n.blue})
}

// UnmarshalJSON implements json.Unmarshaler and re-validates the numbers
func (n *NumberSet) UnmarshalJSON(data []byte) error {
	var raw numberSetJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	set, err := NewNumberSet(raw.Red, raw.Blue)
	if err != nil {
		return err
	}

	*n = set
	return nil
}
