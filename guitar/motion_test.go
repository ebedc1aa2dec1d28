package guitar

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMotionDistanceSamePosition(t *testing.T) {
	g := Standard()
	p := MustPosition(g, []int{Muted, 3, 2, 0, 1, 0})
	assert.Zero(t, p.MotionDistance(p))
}

func TestMotionDistanceOpenStringsAreFree(t *testing.T) {
	g := Standard()
	a := MustPosition(g, []int{0, Muted, Muted, Muted, Muted, Muted})
	b := MustPosition(g, []int{Muted, 0, Muted, Muted, Muted, Muted})

	// no finger is involved on either side, so nothing moves
	assert.Zero(t, a.MotionDistance(b))
}

func TestMotionDistanceShiftUpTheNeck(t *testing.T) {
	g := Standard()
	a := MustPosition(g, []int{3, 5, 5, Muted, Muted, Muted})
	b := MustPosition(g, []int{5, 7, 7, Muted, Muted, Muted})

	assert := assert.New(t)
	// same shape two frets higher: each finger moves two frets
	assert.Equal(6, a.MotionDistance(b))
	assert.Equal(6, b.MotionDistance(a))
}

func TestMotionDistanceEngagePenalty(t *testing.T) {
	g := Standard()
	a := MustPosition(g, []int{3, 5, Muted, Muted, Muted, Muted})
	b := MustPosition(g, []int{3, 5, 5, Muted, Muted, Muted})

	// both existing fingers stay put, one string is newly engaged
	assert.Equal(t, 1, a.MotionDistance(b))
}
