// Package trace gives external tooling three independent ways to observe a
// built hierarchy without it importing signal/module/simulator itself: a
// channel-based waveform sink any VCD writer can drain, a JSON hierarchy
// dump, and a verbose console dump of arbitrary values. Modeled on
// emul's Tracer (a pull-free, push-style recorder fed by callbacks rather
// than polled), generalized from one CPU's register set to any Logic.
package trace

import (
	"github.com/pdxjjb/rivulet/signal"
	"github.com/pdxjjb/rivulet/value"
)

// Change is one observed transition of a subscribed Logic, timestamped by
// the caller (trace itself has no notion of simulated time; a Simulator's
// Now is the usual source).
type Change struct {
	Time int64
	Name string
	Prev value.Value
	Next value.Value
}

// Sink is a channel-fed waveform recorder: each Subscribe opens one
// buffered channel carrying every future change of one Logic, until
// Unsubscribe or Close.
type Sink struct {
	clock  func() int64
	unsubs map[*signal.Logic]func()
	chans  map[*signal.Logic]chan Change
}

// NewSink creates a Sink whose Change.Time is stamped by calling now on
// every observed transition (typically a Simulator's Now method; pass nil
// to always stamp 0).
func NewSink(now func() int64) *Sink {
	if now == nil {
		now = func() int64 { return 0 }
	}
	return &Sink{
		clock:  now,
		unsubs: make(map[*signal.Logic]func()),
		chans:  make(map[*signal.Logic]chan Change),
	}
}

// Subscribe returns a channel that receives a Change every time l's value
// changes, buffered so a slow VCD writer doesn't stall signal propagation.
// Calling Subscribe again for the same Logic replaces its channel.
func (s *Sink) Subscribe(l *signal.Logic) (<-chan Change, error) {
	if old, ok := s.unsubs[l]; ok {
		old()
		close(s.chans[l])
	}
	ch := make(chan Change, 256)
	unsub, err := l.Subscribe(func(prev, next value.Value) {
		ch <- Change{Time: s.clock(), Name: l.Name(), Prev: prev, Next: next}
	})
	if err != nil {
		close(ch)
		return nil, err
	}
	s.unsubs[l] = unsub
	s.chans[l] = ch
	return ch, nil
}

// Unsubscribe stops and closes the channel previously returned for l, if
// any.
func (s *Sink) Unsubscribe(l *signal.Logic) {
	if unsub, ok := s.unsubs[l]; ok {
		unsub()
		close(s.chans[l])
		delete(s.unsubs, l)
		delete(s.chans, l)
	}
}

// Close stops every active subscription.
func (s *Sink) Close() {
	for l := range s.unsubs {
		s.Unsubscribe(l)
	}
}
