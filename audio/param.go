package audio

import (
	"math"
	"sort"
)

// expFloor is the smallest value exponential ramps run to or from. A true
// zero never decays, so "to ~0" means down to this (about -80 dBFS).
const expFloor = 1e-4

type eventKind int

const (
	evSet eventKind = iota
	evLinearRamp
	evExpRamp
	evTarget
)

type paramEvent struct {
	kind  eventKind
	at    float64 // start time, seconds on the session clock
	end   float64 // ramp end time; unused for set/target
	value float64 // target value
	tc    float64 // time constant for target events
}

type activeSegment struct {
	ev    paramEvent
	from  float64
	alpha float64 // per-sample smoothing factor for target events
}

// Param is an automatable value advanced one sample at a time on the render
// thread. Changes are scheduled against the session's audio clock rather
// than applied immediately, so trigger timing survives scheduler jitter.
// It mirrors the set / linear-ramp / exponential-ramp / target-approach
// automation vocabulary of a Web Audio AudioParam.
type Param struct {
	sr    float64
	now   float64
	value float64
	queue []paramEvent
	seg   *activeSegment
}

func newParam(sampleRate, now, initial float64) *Param {
	return &Param{sr: sampleRate, now: now, value: initial}
}

// Value returns the current value without advancing time.
func (p *Param) Value() float64 { return p.value }

// SetValueAt schedules an instantaneous jump to v at time t.
func (p *Param) SetValueAt(v, t float64) {
	p.push(paramEvent{kind: evSet, at: t, value: v})
}

// LinearRampAt schedules a linear ramp from the value held at t0 to v at t1.
func (p *Param) LinearRampAt(v, t0, t1 float64) {
	if t1 <= t0 {
		p.SetValueAt(v, t0)
		return
	}
	p.push(paramEvent{kind: evLinearRamp, at: t0, end: t1, value: v})
}

// ExpRampAt schedules an exponential ramp from the value held at t0 to v at
// t1. Endpoints at or below zero are floored to keep the curve defined.
func (p *Param) ExpRampAt(v, t0, t1 float64) {
	if t1 <= t0 {
		p.SetValueAt(v, t0)
		return
	}
	if v < expFloor {
		v = expFloor
	}
	p.push(paramEvent{kind: evExpRamp, at: t0, end: t1, value: v})
}

// TargetAt schedules an exponential approach toward v starting at time t
// with time constant tc seconds. The approach runs until superseded.
func (p *Param) TargetAt(v, t, tc float64) {
	if tc <= 0 {
		p.SetValueAt(v, t)
		return
	}
	p.push(paramEvent{kind: evTarget, at: t, value: v, tc: tc})
}

// CancelAt drops all scheduled events starting at or after time t, including
// an active segment that began at or after t. Used for last-trigger-wins
// retriggering.
func (p *Param) CancelAt(t float64) {
	kept := p.queue[:0]
	for _, ev := range p.queue {
		if ev.at < t {
			kept = append(kept, ev)
		}
	}
	p.queue = kept
	if p.seg != nil && p.seg.ev.at >= t {
		p.seg = nil
	}
}

func (p *Param) push(ev paramEvent) {
	p.queue = append(p.queue, ev)
	sort.SliceStable(p.queue, func(i, j int) bool {
		return p.queue[i].at < p.queue[j].at
	})
}

func (p *Param) activate(ev paramEvent) {
	switch ev.kind {
	case evSet:
		p.value = ev.value
		p.seg = nil
	case evLinearRamp:
		p.seg = &activeSegment{ev: ev, from: p.value}
	case evExpRamp:
		from := p.value
		if from < expFloor {
			from = expFloor
		}
		p.seg = &activeSegment{ev: ev, from: from}
	case evTarget:
		p.seg = &activeSegment{
			ev:    ev,
			alpha: 1 - math.Exp(-1/(ev.tc*p.sr)),
		}
	}
}

// Tick advances the param by one sample and returns the new value.
func (p *Param) Tick() float64 {
	p.now += 1 / p.sr
	for len(p.queue) > 0 && p.queue[0].at <= p.now {
		ev := p.queue[0]
		p.queue = p.queue[1:]
		p.activate(ev)
	}
	s := p.seg
	if s == nil {
		return p.value
	}
	switch s.ev.kind {
	case evLinearRamp:
		t := (p.now - s.ev.at) / (s.ev.end - s.ev.at)
		if t >= 1 {
			p.value = s.ev.value
			p.seg = nil
		} else {
			p.value = s.from + (s.ev.value-s.from)*t
		}
	case evExpRamp:
		t := (p.now - s.ev.at) / (s.ev.end - s.ev.at)
		if t >= 1 {
			p.value = s.ev.value
			p.seg = nil
		} else {
			p.value = s.from * math.Pow(s.ev.value/s.from, t)
		}
	case evTarget:
		p.value += (s.ev.value - p.value) * s.alpha
	}
	return p.value
}
