package internal

import (
	"fmt"
	"time"
)

// Config selects the storage locations and, notably, which policy
// implementation fills each strategy seam of the message service.
type Config struct {
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath  string `env:"BLUGE_FILEPATH,required=true"`
	LogLevel       string `env:"LOG_LEVEL,required=true"`

	LimitMessages *int          `env:"LIMIT_MESSAGES"`
	StatsInterval time.Duration `env:"STATS_INTERVAL,default=30s"`

	// token | substring | automaton
	MentionPolicy string `env:"MENTION_POLICY,default=token"`
	// basic | mute | importance
	UnreadPolicy          string   `env:"UNREAD_POLICY,default=basic"`
	ImportantWords        []string `env:"IMPORTANT_WORDS"`
	CaseSensitiveMentions bool     `env:"CASE_SENSITIVE_MENTIONS"`
}

func (c Config) Validate() error {
	switch c.MentionPolicy {
	case "token", "substring", "automaton":
	default:
		return fmt.Errorf("MENTION_POLICY must be token, substring or automaton, got %q", c.MentionPolicy)
	}
	switch c.UnreadPolicy {
	case "basic", "mute", "importance":
	default:
		return fmt.Errorf("UNREAD_POLICY must be basic, mute or importance, got %q", c.UnreadPolicy)
	}
	return nil
}
