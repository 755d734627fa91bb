package mood

import "strings"

// Pick describes a single selectable mood.
type Pick struct {
	Key    string
	Symbol string
	Label  string
}

// DefaultPicks returns the fixed mood set in display order. The first pick
// is the default for entries saved without a mood.
func DefaultPicks() []Pick {
	p := make([]Pick, 0, 10)

	p = append(p, Pick{
		Key:    "happy",
		Symbol: "🐻",
		Label:  "cozy bear",
	}, Pick{
		Key:    "excited",
		Symbol: "🐰",
		Label:  "spark rabbit",
	}, Pick{
		Key:    "smart",
		Symbol: "🦊",
		Label:  "clever fox",
	}, Pick{
		Key:    "lazy",
		Symbol: "🐱",
		Label:  "lazy cat",
	}, Pick{
		Key:    "playful",
		Symbol: "🐶",
		Label:  "good pup",
	}, Pick{
		Key:    "sun",
		Symbol: "🐤",
		Label:  "sun chick",
	}, Pick{
		Key:    "rain",
		Symbol: "🐸",
		Label:  "rain frog",
	}, Pick{
		Key:    "calm",
		Symbol: "🦌",
		Label:  "forest deer",
	}, Pick{
		Key:    "tired",
		Symbol: "🐨",
		Label:  "sleepy koala",
	}, Pick{
		Key:    "sad",
		Symbol: "🐋",
		Label:  "deep-sea whale",
	})

	return p
}

func (p Pick) String() string {
	return p.Symbol
}

type Mood int

const (
	Happy Mood = iota
	Excited
	Smart
	Lazy
	Playful
	Sun
	Rain
	Calm
	Tired
	Sad
)

// Default is the mood assumed when none is recorded.
const Default = Happy

func (m Mood) Pick() Pick {
	picks := DefaultPicks()
	if m < 0 || int(m) >= len(picks) {
		return picks[Default]
	}
	return picks[m]
}

func (m Mood) Key() string {
	return m.Pick().Key
}

func (m Mood) Label() string {
	return m.Pick().Label
}

func (m Mood) String() string {
	return m.Pick().String()
}

// ForKey resolves a stored mood key back to a Mood. Unrecognized keys fall
// back to the default rather than failing, matching the persisted-data
// contract that old or hand-edited records stay loadable.
func ForKey(key string) Mood {
	key = strings.ToLower(strings.TrimSpace(key))
	for i, p := range DefaultPicks() {
		if p.Key == key {
			return Mood(i)
		}
	}
	return Default
}

// Keys returns the valid mood keys in display order.
func Keys() []string {
	picks := DefaultPicks()
	keys := make([]string, len(picks))
	for i, p := range picks {
		keys[i] = p.Key
	}
	return keys
}

func (m Mood) MarshalText() ([]byte, error) {
	return []byte(m.Key()), nil
}

func (m *Mood) UnmarshalText(b []byte) error {
	*m = ForKey(string(b))
	return nil
}
