package config

import (
	"encoding/json"
	"log"

	"github.com/quasilyte/gdata"
)

const sessionItem = "session"

// Session is cross-run viewer state, the moral equivalent of window
// settings persistence in desktop toolkits.
type Session struct {
	LastTrajectory string `json:"lastTrajectory"`
	WindowWidth    int    `json:"windowWidth"`
	WindowHeight   int    `json:"windowHeight"`
	PlaybackFPS    int    `json:"playbackFPS"`
}

// SessionStore persists Session in the platform app-data directory.
// Every failure degrades to defaults with a warning; a broken session
// file must never keep the viewer from starting.
type SessionStore struct {
	m *gdata.Manager
}

func OpenSessionStore() *SessionStore {
	m, err := gdata.Open(gdata.Config{AppName: "trajview"})
	if err != nil {
		log.Printf("config: session store unavailable: %v", err)
		return &SessionStore{}
	}
	return &SessionStore{m: m}
}

// Load returns the saved session, or nil when there is none.
func (s *SessionStore) Load() *Session {
	if s.m == nil {
		return nil
	}
	data, err := s.m.LoadItem(sessionItem)
	if err != nil {
		log.Printf("config: could not load session: %v", err)
		return nil
	}
	if data == nil {
		return nil
	}
	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		log.Printf("config: discarding corrupt session: %v", err)
		return nil
	}
	return &sess
}

// ApplyTo overlays the saved session onto cfg, restoring window
// geometry and the playback cap from the previous run. Nil or
// degenerate values leave cfg untouched.
func (s *Session) ApplyTo(cfg *Config) {
	if s == nil || cfg == nil {
		return
	}
	if s.WindowWidth > 0 && s.WindowHeight > 0 {
		cfg.WindowWidth = s.WindowWidth
		cfg.WindowHeight = s.WindowHeight
	}
	if s.PlaybackFPS >= 0 {
		cfg.PlaybackFPS = s.PlaybackFPS
	}
}

func (s *SessionStore) Save(sess *Session) {
	if s.m == nil || sess == nil {
		return
	}
	data, err := json.Marshal(sess)
	if err != nil {
		log.Printf("config: could not serialize session: %v", err)
		return
	}
	if err := s.m.SaveItem(sessionItem, data); err != nil {
		log.Printf("config: could not save session: %v", err)
	}
}
