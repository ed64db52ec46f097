package service

import (
	"sync/atomic"
	"time"
)

// State: счётчики сервиса, общие для публичного и админского серверов.
type State struct {
	ready     atomic.Bool
	startedAt time.Time

	requests       atomic.Int64
	signals        atomic.Int64
	lastSignalUnix atomic.Int64 // unix seconds
}

func NewState() *State {
	s := &State{startedAt: time.Now()}
	s.ready.Store(false)
	return s
}

func (s *State) SetReady(v bool) { s.ready.Store(v) }
func (s *State) Ready() bool     { return s.ready.Load() }

// ObserveRequest: запрос дошёл до детектора.
func (s *State) ObserveRequest() { s.requests.Add(1) }
func (s *State) Requests() int64 { return s.requests.Load() }

func (s *State) ObserveSignal(t time.Time) {
	s.signals.Add(1)
	s.lastSignalUnix.Store(t.Unix())
}
func (s *State) Signals() int64 { return s.signals.Load() }

func (s *State) LastSignal() time.Time {
	u := s.lastSignalUnix.Load()
	if u == 0 {
		return time.Time{}
	}
	return time.Unix(u, 0)
}

func (s *State) Uptime() time.Duration { return time.Since(s.startedAt) }
