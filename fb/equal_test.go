package fb

import (
	"maps"
	"math"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type point struct{ X, Y int }

type ref struct{ P *int }

type coords struct{ Lat, Lng float64 }

type label struct {
	name   string
	weight float64
	ptr    *int
}

func TestEqual(t *testing.T) {
	now := time.Now()
	x, y := 5, 5
	negZero := math.Copysign(0, -1)

	tests := []struct {
		name  string
		equal bool
		a, b  any
	}{
		{"ints", true, 1, 1},
		{"different ints", false, 1, 2},
		{"nil and empty slice", true, []string(nil), []string{}},
		{"slices", true, []string{"a", "b"}, []string{"a", "b"}},
		{"slice order", false, []string{"a", "b"}, []string{"b", "a"}},
		{"maps", true, map[string]int{"a": 1, "b": 2}, map[string]int{"b": 2, "a": 1}},
		{"map values", false, map[string]int{"a": 1}, map[string]int{"a": 2}},
		{"structs", true, point{1, 2}, point{1, 2}},
		{"struct pointer fields", true, ref{&x}, ref{&y}},
		{"struct negative zero", true, coords{Lat: negZero}, coords{Lat: 0}},
		{"unexported fields", true, label{"a", negZero, &x}, label{"a", 0, &y}},
		{"unexported fields differ", false, label{"a", 1, &x}, label{"b", 1, &x}},
		{"times in different zones", true, now, now.UTC()},
		{"lists", true, ListOf(1, 2), ListOf(1, 2)},
		{"sets ignore order", true, SetOf(1, 2), SetOf(2, 1)},
		{"sets differ", false, SetOf(1, 2), SetOf(1, 3)},
		{"nil", true, nil, nil},
		{"nil and value", false, nil, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.equal, Equal(tt.a, tt.b))

			if tt.equal {
				assert.Equal(t, HashOf(tt.a), HashOf(tt.b), "equal values must hash the same")
			}
		})
	}
}

func TestEqual_Pointers(t *testing.T) {
	a, b := 1, 1
	c := 2

	assert.True(t, Equal(&a, &b))
	assert.False(t, Equal(&a, &c))
	assert.True(t, Equal[*int](nil, nil))
	assert.False(t, Equal(&a, nil))
	assert.Equal(t, HashOf(&a), HashOf(&b))
}

func TestMap_EqualIgnoresOrder(t *testing.T) {
	m1 := MapFrom(maps.All(map[string]int{"a": 1}))
	m2 := MapFrom(slices.All([]int{5}))

	assert.False(t, m1.Equal(MapFrom(maps.All(map[string]int{"a": 2}))))
	assert.True(t, m1.Equal(MapFrom(maps.All(map[string]int{"a": 1}))))
	assert.Equal(t, 1, m2.Len())
}

func TestOptional(t *testing.T) {
	s := "x"

	assert.True(t, Some(1).IsPresent())
	assert.False(t, None[int]().IsPresent())
	assert.False(t, Some[error](nil).IsPresent())
	assert.False(t, OptionalOf[string](nil).IsPresent())
	assert.Equal(t, "x", OptionalOf(&s).OrElse("y"))
	assert.Equal(t, "y", None[string]().OrElse("y"))

	p := Some("v").Ptr()
	*p = "changed"
	v, ok := Some("v").Get()
	assert.True(t, ok)
	assert.Equal(t, "v", v)
	assert.Nil(t, None[string]().Ptr())

	assert.True(t, Some(1).Equal(Some(1)))
	assert.False(t, Some(1).Equal(None[int]()))
	assert.True(t, None[int]().Equal(None[int]()))
	assert.Equal(t, "None", None[int]().String())
	assert.Equal(t, "1", Some(1).String())
}
