package vec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMutatingOpsChainAndOnlyTouchReceiver(t *testing.T) {
	a := New(1, 2)
	b := New(3, 4)

	a.Add(b).Scale(2).Sub(New(1, 1))

	assert.Equal(t, New(7, 11), a)
	assert.Equal(t, New(3, 4), b, "argument must not change")
}

func TestStaticOpsReturnNewVectors(t *testing.T) {
	a := New(1, 2)
	b := New(3, 4)

	assert.Equal(t, New(4, 6), Add(a, b))
	assert.Equal(t, New(-2, -2), Sub(a, b))
	assert.Equal(t, New(2.5, 5), Scale(a, 2.5))
	assert.Equal(t, New(1, 2), a)
	assert.Equal(t, New(3, 4), b)
}

func TestMagAndDistance(t *testing.T) {
	assert.InDelta(t, 5.0, New(3, 4).Mag(), 1e-12)
	assert.InDelta(t, 25.0, New(3, 4).MagSq(), 1e-12)
	assert.InDelta(t, 5.0, Distance(New(1, 1), New(4, 5)), 1e-12)
}

func TestNormalizeZeroIsNoop(t *testing.T) {
	z := Vec2{}
	z.Normalize()
	assert.True(t, z.IsZero())
	assert.False(t, math.IsNaN(z.X))

	z.SetMag(10)
	assert.True(t, z.IsZero())
}

func TestSetMag(t *testing.T) {
	v := New(3, 4)
	v.SetMag(10)
	assert.InDelta(t, 6.0, v.X, 1e-9)
	assert.InDelta(t, 8.0, v.Y, 1e-9)
}

func TestLimit(t *testing.T) {
	v := New(30, 40)
	v.Limit(5)
	assert.InDelta(t, 5.0, v.Mag(), 1e-9)

	w := New(1, 0)
	w.Limit(5)
	assert.Equal(t, New(1, 0), w)
}

func TestFromAngle(t *testing.T) {
	tests := []struct {
		name   string
		theta  float64
		length float64
		want   Vec2
	}{
		{"east", 0, 1, New(1, 0)},
		{"north-ccw", math.Pi / 2, 2, New(0, 2)},
		{"west", math.Pi, 3, New(-3, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromAngle(tt.theta, tt.length)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}

func TestRotated(t *testing.T) {
	got := New(1, 0).Rotated(math.Pi / 2)
	assert.InDelta(t, 0.0, got.X, 1e-9)
	assert.InDelta(t, 1.0, got.Y, 1e-9)
}
