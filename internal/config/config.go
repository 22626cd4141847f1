// Package config holds the face settings, the adapter that applies inbound
// key/value messages to them, and the file store that persists them.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// UnsetDate is the lucky star date meaning "no date configured".
const UnsetDate = "00000000"

var (
	// ErrUnknownKey is returned for message keys the face does not know.
	ErrUnknownKey = errors.New("unknown configuration key")
	// ErrInvalidDate is returned for dates that are not 8 ASCII digits.
	ErrInvalidDate = errors.New("lucky date must be 8 digits (YYYYMMDD)")
)

// Configuration is a snapshot of the face settings.
type Configuration struct {
	Inverted         bool   `toml:"inverted"`
	Animate          bool   `toml:"animate"`
	Stars            bool   `toml:"stars"`
	Vibrate          bool   `toml:"vibrate"`
	Asteroids        bool   `toml:"asteroids"`
	InfiniteRotation bool   `toml:"infinite_rotation"`
	LuckyDate        string `toml:"lucky_date"`
}

// Default returns the settings used for keys that were never stored.
func Default() Configuration {
	return Configuration{
		Inverted:         false,
		Animate:          true,
		Stars:            true,
		Vibrate:          false,
		Asteroids:        false,
		InfiniteRotation: false,
		LuckyDate:        UnsetDate,
	}
}

// Validate checks the lucky date invariant.
func (c Configuration) Validate() error {
	return ValidateDate(c.LuckyDate)
}

// LuckyStarSet reports whether a lucky date is configured.
func (c Configuration) LuckyStarSet() bool {
	return c.LuckyDate != UnsetDate
}

// String renders the settings for debug logs.
func (c Configuration) String() string {
	return fmt.Sprintf("inv:%t anim:%t stars:%t vibr:%t astro:%t infr:%t date:%s",
		c.Inverted, c.Animate, c.Stars, c.Vibrate, c.Asteroids, c.InfiniteRotation, c.LuckyDate)
}

// ValidateDate accepts exactly 8 ASCII digits.
func ValidateDate(s string) error {
	if len(s) != 8 {
		return fmt.Errorf("%w: got %q", ErrInvalidDate, s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return fmt.Errorf("%w: got %q", ErrInvalidDate, s)
		}
	}
	return nil
}

// Key identifies a setting on the message channel.
type Key int

const (
	KeyInverted Key = iota + 1
	KeyAnimate
	KeyStars
	KeyVibrate
	KeyDate
	KeyAsteroids
	KeyInfinite
)

var keyNames = map[Key]string{
	KeyInverted:  "inv",
	KeyAnimate:   "anim",
	KeyStars:     "stars",
	KeyVibrate:   "vibr",
	KeyDate:      "date",
	KeyAsteroids: "astro",
	KeyInfinite:  "infr",
}

// String returns the companion's name for the key.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "key(" + strconv.Itoa(int(k)) + ")"
}

// ParseKey accepts either the companion's name ("inv", "date", ...) or the
// numeric id ("1".."7").
func ParseKey(s string) (Key, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if _, ok := keyNames[Key(n)]; ok {
			return Key(n), nil
		}
		return 0, fmt.Errorf("%w: %s", ErrUnknownKey, s)
	}
	for k, name := range keyNames {
		if strings.EqualFold(name, s) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownKey, s)
}

// Message is one inbound batch of settings, key to raw string value.
type Message map[string]string

// Keys returns the message keys in a stable order.
func (m Message) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FieldError reports a rejected message field.
type FieldError struct {
	Key   string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("config field %s=%q: %v", e.Key, e.Value, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Apply translates a message 1:1 onto cfg. Boolean settings are true only
// for the value "yes". Fields that fail validation are left unchanged and
// reported; the remaining fields are still applied.
func Apply(cfg Configuration, msg Message) (Configuration, []error) {
	var errs []error
	for _, raw := range msg.Keys() {
		value := msg[raw]
		key, err := ParseKey(raw)
		if err != nil {
			errs = append(errs, &FieldError{Key: raw, Value: value, Err: err})
			continue
		}
		yes := value == "yes"
		switch key {
		case KeyInverted:
			cfg.Inverted = yes
		case KeyAnimate:
			cfg.Animate = yes
		case KeyStars:
			cfg.Stars = yes
		case KeyVibrate:
			cfg.Vibrate = yes
		case KeyAsteroids:
			cfg.Asteroids = yes
		case KeyInfinite:
			cfg.InfiniteRotation = yes
		case KeyDate:
			if err := ValidateDate(value); err != nil {
				errs = append(errs, &FieldError{Key: raw, Value: value, Err: err})
				continue
			}
			cfg.LuckyDate = value
		}
	}
	return cfg, errs
}

// ParseAssignment splits "key=value" as used by the -set flag.
func ParseAssignment(s string) (key, value string, err error) {
	key, value, ok := strings.Cut(s, "=")
	if !ok || strings.TrimSpace(key) == "" {
		return "", "", fmt.Errorf("expected key=value, got %q", s)
	}
	return strings.TrimSpace(key), value, nil
}

// Toggle returns a message flipping the boolean setting key in cfg.
func Toggle(cfg Configuration, key Key) Message {
	var cur bool
	switch key {
	case KeyInverted:
		cur = cfg.Inverted
	case KeyAnimate:
		cur = cfg.Animate
	case KeyStars:
		cur = cfg.Stars
	case KeyVibrate:
		cur = cfg.Vibrate
	case KeyAsteroids:
		cur = cfg.Asteroids
	case KeyInfinite:
		cur = cfg.InfiniteRotation
	default:
		return nil
	}
	value := "yes"
	if cur {
		value = "no"
	}
	return Message{key.String(): value}
}
