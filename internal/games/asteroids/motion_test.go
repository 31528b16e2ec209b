package asteroids

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

var testField = Playfield{Width: 1200, Height: 650}

func TestAdvanceWrapsOnEdges(t *testing.T) {
	tests := []struct {
		name     string
		box      core.Box
		vel      core.Vec2
		expected core.Box
	}{
		{
			name:     "plain move",
			box:      core.Box{X: 100, Y: 100, W: 20, H: 10},
			vel:      core.Vec2{X: 3, Y: -2},
			expected: core.Box{X: 103, Y: 98, W: 20, H: 10},
		},
		{
			name:     "trailing edge leaves left side",
			box:      core.Box{X: -19, Y: 100, W: 20, H: 10},
			vel:      core.Vec2{X: -2},
			expected: core.Box{X: 1200, Y: 100, W: 20, H: 10},
		},
		{
			name:     "still partly visible on the left",
			box:      core.Box{X: -10, Y: 100, W: 20, H: 10},
			vel:      core.Vec2{X: -2},
			expected: core.Box{X: -12, Y: 100, W: 20, H: 10},
		},
		{
			name:     "leading edge leaves right side",
			box:      core.Box{X: 1199, Y: 100, W: 20, H: 10},
			vel:      core.Vec2{X: 2},
			expected: core.Box{X: -20, Y: 100, W: 20, H: 10},
		},
		{
			name:     "leaves top",
			box:      core.Box{X: 50, Y: -9, W: 20, H: 10},
			vel:      core.Vec2{Y: -2},
			expected: core.Box{X: 50, Y: 650, W: 20, H: 10},
		},
		{
			name:     "leaves bottom",
			box:      core.Box{X: 50, Y: 649, W: 20, H: 10},
			vel:      core.Vec2{Y: 2},
			expected: core.Box{X: 50, Y: -10, W: 20, H: 10},
		},
		{
			name:     "both axes at once",
			box:      core.Box{X: -19, Y: 649, W: 20, H: 10},
			vel:      core.Vec2{X: -5, Y: 5},
			expected: core.Box{X: 1200, Y: -10, W: 20, H: 10},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, testField.Advance(tc.box, tc.vel))
		})
	}
}

func TestAdvanceKeepsEdgesBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		w := 1 + rng.Float64()*120
		h := 1 + rng.Float64()*120
		box := core.Box{X: rng.Float64() * testField.Width, Y: rng.Float64() * testField.Height, W: w, H: h}
		vel := core.Vec2{X: (rng.Float64() - 0.5) * 60, Y: (rng.Float64() - 0.5) * 60}

		for step := 0; step < 500; step++ {
			box = testField.Advance(box, vel)
			if box.Left() < -w || box.Right() > testField.Width+w ||
				box.Top() < -h || box.Bottom() > testField.Height+h {
				t.Fatalf("box %+v escaped bounds after %d steps with velocity %+v", box, step, vel)
			}
		}
	}
}

func TestPlayfieldCenter(t *testing.T) {
	assert.Equal(t, core.Vec2{X: 600, Y: 325}, testField.Center())
	assert.Equal(t, core.Box{W: 1200, H: 650}, testField.Bounds())
}
