package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestWorkerSkills(t *testing.T) {
	w := &WorkerProfile{Skills: datatypes.JSONSlice[string]{"Plumbing", "Pipe Fitting"}}

	assert.Equal(t, "Plumbing", w.PrimarySkill())
	assert.True(t, w.HasSkill("plumbing"))
	assert.True(t, w.HasSkill("  PIPE fitting "))
	assert.False(t, w.HasSkill("pipe"))

	empty := &WorkerProfile{}
	assert.Equal(t, "", empty.PrimarySkill())
	assert.False(t, empty.HasSkill("plumbing"))
}

func TestParseRole(t *testing.T) {
	role, ok := ParseRole(" worker ")
	assert.True(t, ok)
	assert.Equal(t, RoleWorker, role)

	_, ok = ParseRole("ROOT")
	assert.False(t, ok)
}

func TestValidRating(t *testing.T) {
	for r := 1; r <= 5; r++ {
		assert.True(t, ValidRating(r))
	}
	assert.False(t, ValidRating(0))
	assert.False(t, ValidRating(6))
}
