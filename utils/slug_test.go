package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Mama's Pizza":       "mama-s-pizza",
		"  Café del Mar  ":   "café-del-mar",
		"The -- Grill!!":     "the-grill",
		"42 Burgers & Fries": "42-burgers-fries",
		"---":                "",
		"Sushi":              "sushi",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "input %q", in)
	}
}
