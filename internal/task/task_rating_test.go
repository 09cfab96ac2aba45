package task_test

import (
	"testing"

	"go-hrms/internal/task"

	"github.com/stretchr/testify/assert"
)

func TestRate(t *testing.T) {
	hundred := 100
	zero := 0

	tests := []struct {
		name     string
		active   int
		estimate *int
		started  bool
		want     int
	}{
		{"no estimate", 10, nil, true, 3},
		{"zero estimate", 10, &zero, true, 3},
		{"never started", 10, &hundred, false, 3},
		{"well under estimate", 60, &hundred, true, 5},
		{"exactly 75 percent", 75, &hundred, true, 5},
		{"just over 75 percent", 76, &hundred, true, 4},
		{"on estimate", 100, &hundred, true, 4},
		{"slightly over", 101, &hundred, true, 3},
		{"130 percent", 130, &hundred, true, 3},
		{"131 percent", 131, &hundred, true, 2},
		{"149 percent", 149, &hundred, true, 2},
		{"150 percent", 150, &hundred, true, 1},
		{"triple", 300, &hundred, true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, task.Rate(tt.active, tt.estimate, tt.started))
		})
	}
}
