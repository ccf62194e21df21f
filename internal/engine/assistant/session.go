package assistant

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/anatolykoptev/go_jobcoach/internal/engine/cv"
	"github.com/anatolykoptev/go_jobcoach/internal/engine/i18n"
)

// Turn is one entry of a conversation transcript.
type Turn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Message is one user turn plus optional context updates. Zero-valued
// fields keep the session's current value.
type Message struct {
	Text    string
	Lang    i18n.Lang
	CVText  string
	Profile *cv.Profile
}

// Session owns the conversation state of one user: profile, CV text,
// language and transcript. Send is the only writer and runs one dispatch
// at a time.
type Session struct {
	ID string

	mu      sync.Mutex
	profile cv.Profile
	cvText  string
	lang    i18n.Lang
	history []Turn
	delay   time.Duration
}

// NewSession starts a conversation whose replies are held back by delay.
// A zero delay answers immediately.
func NewSession(lang i18n.Lang, delay time.Duration) *Session {
	return &Session{
		ID:      uuid.NewString(),
		lang:    lang,
		history: []Turn{{Role: "assistant", Content: Greeting(lang)}},
		delay:   delay,
	}
}

// Send waits out the reply delay, applies the context carried by msg,
// dispatches msg.Text and applies any profile update before returning.
// A cancelled ctx aborts the wait and leaves the state untouched.
func (s *Session) Send(ctx context.Context, msg Message) (Reply, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.think(ctx); err != nil {
		return Reply{}, fmt.Errorf("assistant send: %w", err)
	}

	if msg.Lang != "" {
		s.lang = msg.Lang
	}
	if msg.CVText != "" {
		s.cvText = msg.CVText
	}
	if msg.Profile != nil {
		s.profile = msg.Profile.Clone()
	}

	reply := Respond(msg.Text, s.profile, s.cvText, s.lang)
	s.history = append(s.history,
		Turn{Role: "user", Content: msg.Text},
		Turn{Role: "assistant", Content: reply.Message},
	)
	if reply.UpdatedProfile != nil {
		s.profile = reply.UpdatedProfile.Clone()
	}
	return reply, nil
}

// think holds every reply back by the session delay.
func (s *Session) think(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Profile returns a copy of the current profile.
func (s *Session) Profile() cv.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile.Clone()
}

// CVText returns the stored CV text.
func (s *Session) CVText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cvText
}

// Lang returns the interface language.
func (s *Session) Lang() i18n.Lang {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

// History returns a copy of the transcript.
func (s *Session) History() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Turn, len(s.history))
	copy(out, s.history)
	return out
}

// SessionsConfig tunes a session registry.
type SessionsConfig struct {
	Lang       i18n.Lang
	ReplyDelay time.Duration
	// IdleTTL evicts sessions unused for this long. Zero keeps them forever.
	IdleTTL time.Duration
	// CreatePerMinute caps how fast new sessions are opened. Zero is unlimited.
	CreatePerMinute int
	Now             func() time.Time
}

type slot struct {
	s        *Session
	lastUsed time.Time
}

// Sessions is a concurrency-safe registry of sessions by ID.
type Sessions struct {
	mu     sync.Mutex
	items  map[string]*slot
	cfg    SessionsConfig
	create *rate.Limiter
}

// NewSessions creates a registry.
func NewSessions(c SessionsConfig) *Sessions {
	if c.Now == nil {
		c.Now = time.Now
	}
	limit := rate.Inf
	burst := 1
	if c.CreatePerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(c.CreatePerMinute))
		burst = c.CreatePerMinute
	}
	return &Sessions{
		items:  make(map[string]*slot),
		cfg:    c,
		create: rate.NewLimiter(limit, burst),
	}
}

// Open returns the session for id, creating a new one when id is empty,
// unknown or evicted. The second result reports whether the session was
// created. Creation waits for the registry's rate limit; ctx bounds the wait.
func (r *Sessions) Open(ctx context.Context, id string) (*Session, bool, error) {
	if id != "" {
		if s, ok := r.Get(id); ok {
			return s, false, nil
		}
	}
	if err := r.create.Wait(ctx); err != nil {
		return nil, false, fmt.Errorf("open session: %w", err)
	}
	s := NewSession(r.cfg.Lang, r.cfg.ReplyDelay)
	r.mu.Lock()
	r.items[s.ID] = &slot{s: s, lastUsed: r.cfg.Now()}
	r.mu.Unlock()
	return s, true, nil
}

// Get looks up a session and marks it used.
func (r *Sessions) Get(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	sl, ok := r.items[id]
	if !ok {
		return nil, false
	}
	sl.lastUsed = r.cfg.Now()
	return sl.s, true
}

// Close forgets a session.
func (r *Sessions) Close(id string) {
	r.mu.Lock()
	delete(r.items, id)
	r.mu.Unlock()
}

// Len returns the number of open sessions.
func (r *Sessions) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// Sweep evicts sessions idle for longer than IdleTTL and returns how many
// were removed.
func (r *Sessions) Sweep() int {
	if r.cfg.IdleTTL <= 0 {
		return 0
	}
	cutoff := r.cfg.Now().Add(-r.cfg.IdleTTL)
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for id, sl := range r.items {
		if sl.lastUsed.Before(cutoff) {
			delete(r.items, id)
			n++
		}
	}
	return n
}

// Run sweeps idle sessions every interval until ctx is done.
func (r *Sessions) Run(ctx context.Context, interval time.Duration) {
	if r.cfg.IdleTTL <= 0 {
		return
	}
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}
