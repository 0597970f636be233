package models

import "sync"

// UserProfile is purely descriptive and only consumed by the prompt builder.
type UserProfile struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Gender   string `json:"gender"`
	HeightCM int    `json:"height_cm"`
	WeightKG int    `json:"weight_kg"`
	Bust     int    `json:"bust"`
	Waist    int    `json:"waist"`
	Hips     int    `json:"hips"`
}

const (
	AvatarEmoji = "emoji"
	AvatarImage = "image"
)

// Avatar is a tagged union: either an emoji tag or raw image bytes, never both.
type Avatar struct {
	Kind  string `json:"kind"`
	Emoji string `json:"emoji,omitempty"`
	Image []byte `json:"-"`
}

func (a *Avatar) SetEmoji(emoji string) {
	a.Kind = AvatarEmoji
	a.Emoji = emoji
	a.Image = nil
}

func (a *Avatar) SetImage(data []byte) {
	a.Kind = AvatarImage
	a.Image = data
	a.Emoji = ""
}

// StylistPersona holds the assistant's identity. Persona is opaque free text;
// the builder embeds it verbatim and nothing type-checks its content.
type StylistPersona struct {
	Name    string `json:"name"`
	Avatar  Avatar `json:"avatar"`
	Persona string `json:"persona"`
	Weather string `json:"weather,omitempty"`
}

func DefaultProfile() UserProfile {
	return UserProfile{
		Name:     "User",
		Location: "Hong Kong",
		Gender:   "female",
		HeightCM: 160,
	}
}

func DefaultPersona() StylistPersona {
	p := StylistPersona{
		Name:    "Your Stylist",
		Persona: "A caring professional image consultant with a warm, expert tone.",
	}
	p.Avatar.SetEmoji("✨")
	return p
}

// SessionContext is the one explicit bundle of session state passed to every
// component; there are no ambient singletons. State is volatile and scoped to
// the process lifetime.
type SessionContext struct {
	mu       sync.RWMutex
	Wardrobe *WardrobeStore
	Chat     *ChatSession
	profile  UserProfile
	persona  StylistPersona
}

func NewSessionContext() *SessionContext {
	persona := DefaultPersona()
	return &SessionContext{
		Wardrobe: NewWardrobeStore(),
		Chat:     NewChatSession(persona.Name),
		profile:  DefaultProfile(),
		persona:  persona,
	}
}

func (s *SessionContext) Profile() UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.profile
}

func (s *SessionContext) SetProfile(p UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profile = p
}

func (s *SessionContext) Persona() StylistPersona {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.persona
}

func (s *SessionContext) SetPersona(p StylistPersona) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persona = p
}

func (s *SessionContext) SetWeather(weather string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persona.Weather = weather
}
