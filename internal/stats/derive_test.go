package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveEstimatedMinutes(t *testing.T) {
	taskType := makeTaskType(1, "Inspection", 0.5)

	assert.Equal(t, 5.0, DeriveEstimatedMinutes(&taskType, 10))
	assert.Equal(t, 0.5, DeriveEstimatedMinutes(&taskType, 1))
}

func TestDeriveEstimatedMinutes_NilTaskType(t *testing.T) {
	assert.Equal(t, 0.0, DeriveEstimatedMinutes(nil, 10))
}
