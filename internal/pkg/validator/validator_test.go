package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name     string `validate:"required,max=5"`
	Capacity int    `validate:"gte=1"`
}

func TestValidate(t *testing.T) {
	assert.Nil(t, Validate(sample{Name: "ok", Capacity: 1}))

	errs := Validate(sample{Name: "too long", Capacity: 0})
	assert.Equal(t, "max", errs["Name"])
	assert.Equal(t, "gte", errs["Capacity"])
}
