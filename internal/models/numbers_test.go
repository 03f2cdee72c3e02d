package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNumberSet_Valid(t *testing.T) {
	set, err := NewNumberSet([]int{28, 2, 16, 7, 13, 6}, 11)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 6, 7, 13, 16, 28}, set.Reds())
	assert.Equal(t, 11, set.Blue())
	assert.False(t, set.IsZero())
	assert.Equal(t, "02-06-07-13-16-28+11", set.Key())
}

func TestNewNumberSet_OrderIndependent(t *testing.T) {
	a := MustNumberSet([]int{1, 2, 3, 4, 5, 6}, 7)
	b := MustNumberSet([]int{6, 5, 4, 3, 2, 1}, 7)
	c := MustNumberSet([]int{1, 2, 3, 4, 5, 6}, 8)

	assert.True(t, a == b)
	assert.Equal(t, a.Key(), b.Key())
	assert.False(t, a == c)

	seen := map[NumberSet]bool{a: true}
	assert.True(t, seen[b])
}

func TestNewNumberSet_EveryValidBoundary(t *testing.T) {
	for blue := BlueMin; blue <= BlueMax; blue++ {
		for start := RedMin; start+RedCount-1 <= RedMax; start++ {
			reds := []int{start, start + 1, start + 2, start + 3, start + 4, start + 5}
			set, err := NewNumberSet(reds, blue)
			require.NoError(t, err)
			assert.Equal(t, reds, set.Reds())
			assert.Equal(t, blue, set.Blue())
		}
	}
}

func TestNewNumberSet_Invalid(t *testing.T) {
	testCases := []struct {
		name  string
		reds  []int
		blue  int
		kind  ValidationKind
		field string
		value int
	}{
		{name: "too few reds", reds: []int{1, 2, 3, 4, 5}, blue: 1, kind: ValidationWrongCount, field: FieldRed, value: 5},
		{name: "too many reds", reds: []int{1, 2, 3, 4, 5, 6, 7}, blue: 1, kind: ValidationWrongCount, field: FieldRed, value: 7},
		{name: "no reds", reds: nil, blue: 1, kind: ValidationWrongCount, field: FieldRed, value: 0},
		{name: "red below range", reds: []int{0, 2, 3, 4, 5, 6}, blue: 1, kind: ValidationOutOfRange, field: FieldRed, value: 0},
		{name: "red above range", reds: []int{1, 2, 3, 4, 5, 34}, blue: 1, kind: ValidationOutOfRange, field: FieldRed, value: 34},
		{name: "blue below range", reds: []int{1, 2, 3, 4, 5, 6}, blue: 0, kind: ValidationOutOfRange, field: FieldBlue, value: 0},
		{name: "blue above range", reds: []int{1, 2, 3, 4, 5, 6}, blue: 17, kind: ValidationOutOfRange, field: FieldBlue, value: 17},
		{name: "duplicate red", reds: []int{1, 2, 3, 3, 5, 6}, blue: 1, kind: ValidationDuplicate, field: FieldRed, value: 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewNumberSet(tc.reds, tc.blue)
			require.Error(t, err)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tc.kind, vErr.Kind)
			assert.Equal(t, tc.field, vErr.Field)
			assert.Equal(t, tc.value, vErr.Value)
			assert.NotEmpty(t, vErr.Error())
		})
	}
}

func TestNumberSet_SameValueInBothPools(t *testing.T) {
	set, err := NewNumberSet([]int{1, 2, 3, 4, 5, 16}, 16)
	require.NoError(t, err)
	assert.True(t, set.ContainsRed(16))
	assert.Equal(t, 16, set.Blue())
}

func TestNumberSet_RedsReturnsCopy(t *testing.T) {
	set := MustNumberSet([]int{1, 2, 3, 4, 5, 6}, 7)
	reds := set.Reds()
	reds[0] = 33

	assert.Equal(t, 1, set.Reds()[0])
}

func TestNumberSet_JSON(t *testing.T) {
	set := MustNumberSet([]int{9, 3, 1, 30, 22, 12}, 5)

	data, err := json.Marshal(set)
	require.NoError(t, err)
	assert.JSONEq(t, `{"red":[1,3,9,12,22,30],"blue":5}`, string(data))

	var decoded NumberSet
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, set, decoded)
}

func TestNumberSet_UnmarshalRejectsInvalid(t *testing.T) {
	var decoded NumberSet
	err := json.Unmarshal([]byte(`{"red":[1,1,2,3,4,5],"blue":5}`), &decoded)

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, ValidationDuplicate, vErr.Kind)
	assert.True(t, decoded.IsZero())
}

func TestValidateSingleNumbers(t *testing.T) {
	assert.NoError(t, ValidateRed(RedMin))
	assert.NoError(t, ValidateRed(RedMax))
	assert.NoError(t, ValidateBlue(BlueMax))

	var validationErr *ValidationError
	require.ErrorAs(t, ValidateRed(34), &validationErr)
	assert.Equal(t, ValidationOutOfRange, validationErr.Kind)
	assert.Equal(t, FieldRed, validationErr.Field)

	require.ErrorAs(t, ValidateBlue(17), &validationErr)
	assert.Equal(t, FieldBlue, validationErr.Field)
	assert.Equal(t, 17, validationErr.Value)
}
