package audio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testSR = 1000.0 // 1ms per tick keeps the arithmetic readable

func tickFor(p *Param, seconds float64) float64 {
	n := int(seconds * testSR)
	v := p.Value()
	for i := 0; i < n; i++ {
		v = p.Tick()
	}
	return v
}

func TestParam_HoldsInitialValue(t *testing.T) {
	p := newParam(testSR, 0, 0.5)
	assert.Equal(t, 0.5, tickFor(p, 0.1))
}

func TestParam_SetValueAt(t *testing.T) {
	p := newParam(testSR, 0, 0)
	p.SetValueAt(1, 0.05)

	assert.Equal(t, 0.0, tickFor(p, 0.04))
	assert.Equal(t, 1.0, tickFor(p, 0.02))
}

func TestParam_LinearRamp(t *testing.T) {
	p := newParam(testSR, 0, 0)
	p.LinearRampAt(1, 0, 0.1)

	mid := tickFor(p, 0.05)
	assert.InDelta(t, 0.5, mid, 0.02)
	end := tickFor(p, 0.06)
	assert.Equal(t, 1.0, end)
	assert.Equal(t, 1.0, tickFor(p, 0.1), "value holds after ramp end")
}

func TestParam_ExpRampDecays(t *testing.T) {
	p := newParam(testSR, 0, 0.6)
	p.ExpRampAt(0, 0, 0.6)

	half := tickFor(p, 0.3)
	assert.Less(t, half, 0.6)
	assert.Greater(t, half, expFloor)
	end := tickFor(p, 0.31)
	assert.InDelta(t, expFloor, end, 1e-9, "exp ramp lands on the floor, not true zero")
}

func TestParam_ExpRampIsExponentialNotLinear(t *testing.T) {
	p := newParam(testSR, 0, 1)
	p.ExpRampAt(expFloor, 0, 1)

	// Halfway through an exponential decay to -80 dB the value is -40 dB,
	// far below the linear midpoint.
	mid := tickFor(p, 0.5)
	assert.InDelta(t, 0.01, mid, 0.002)
}

func TestParam_TargetApproach(t *testing.T) {
	const tc = 0.5
	p := newParam(testSR, 0, 0)
	p.TargetAt(1, 0, tc)

	// After one time constant the approach covers 1-1/e of the distance.
	v := tickFor(p, tc)
	assert.InDelta(t, 1-1/math.E, v, 0.01)

	// Never overshoots.
	v = tickFor(p, 5*tc)
	assert.LessOrEqual(t, v, 1.0)
	assert.InDelta(t, 1.0, v, 0.01)
}

func TestParam_CancelAtDropsPending(t *testing.T) {
	p := newParam(testSR, 0, 0)
	p.SetValueAt(1, 0.2)
	p.CancelAt(0.1)

	assert.Equal(t, 0.0, tickFor(p, 0.5), "cancelled event must not fire")
}

func TestParam_CancelAtKeepsEarlierEvents(t *testing.T) {
	p := newParam(testSR, 0, 0)
	p.SetValueAt(1, 0.05)
	p.SetValueAt(2, 0.2)
	p.CancelAt(0.1)

	assert.Equal(t, 1.0, tickFor(p, 0.5))
}

func TestParam_RetriggerLastWins(t *testing.T) {
	// First trigger at t=0: rise then long decay. Retrigger at t=0.05
	// cancels the decay and starts over.
	p := newParam(testSR, 0, 0)
	p.LinearRampAt(0.6, 0, 0.01)
	p.ExpRampAt(0, 0.01, 0.61)

	tickFor(p, 0.05)

	p.CancelAt(0.05)
	p.SetValueAt(0, 0.05)
	p.LinearRampAt(0.6, 0.05, 0.06)
	p.ExpRampAt(0, 0.06, 0.66)

	v := tickFor(p, 0.011)
	assert.InDelta(t, 0.6, v, 0.02, "retrigger should restart the attack")
}

func TestParam_DegenerateRampBecomesSet(t *testing.T) {
	p := newParam(testSR, 0, 0)
	p.LinearRampAt(1, 0.05, 0.05)
	assert.Equal(t, 1.0, tickFor(p, 0.06))
}
