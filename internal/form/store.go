package form

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

type entry struct {
	mu       sync.Mutex
	state    *State
	lastSeen time.Time
}

// Store keeps one form per browser session and forgets sessions that have
// been idle longer than the TTL.
type Store struct {
	mu      sync.Mutex
	entries map[string]*entry
	ttl     time.Duration
	now     func() time.Time
}

func NewStore(ttl time.Duration) *Store {
	return &Store{
		entries: make(map[string]*entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// With runs fn on the session's form, creating an empty one if needed. Calls
// for the same session are serialised.
func (st *Store) With(session string, fn func(*State) error) error {
	st.mu.Lock()
	e, ok := st.entries[session]
	if !ok {
		e = &entry{state: NewState()}
		st.entries[session] = e
	}
	e.lastSeen = st.now()
	st.mu.Unlock()

	e.mu.Lock()
	defer e.mu.Unlock()
	return fn(e.state)
}

func (st *Store) Delete(session string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.entries, session)
}

func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.entries)
}

// Sweep drops sessions idle since before now-TTL and returns how many went.
func (st *Store) Sweep(now time.Time) int {
	st.mu.Lock()
	defer st.mu.Unlock()

	n := 0
	for id, e := range st.entries {
		if now.Sub(e.lastSeen) > st.ttl {
			delete(st.entries, id)
			n++
		}
	}
	return n
}

// Run sweeps every interval until ctx is cancelled.
func (st *Store) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case t := <-ticker.C:
			if n := st.Sweep(t); n > 0 {
				log.Debug().Int("expired", n).Int("active", st.Len()).Msg("swept form sessions")
			}
		}
	}
}
