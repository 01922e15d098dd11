package types

import (
	"errors"
	"math"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:   "default config is valid",
			config: DefaultConfig(),
		},
		{
			name:   "empty log level is valid",
			config: Config{Rules: RulesConfig{PeopleMin: 1, PeopleMax: 5}},
		},
		{
			name:   "log level is case insensitive",
			config: Config{LogLevel: "DEBUG", Rules: RulesConfig{PeopleMin: 1, PeopleMax: 5}},
		},
		{
			name:    "unknown log level returns ErrLogLevelUnknown",
			config:  Config{LogLevel: "loud", Rules: RulesConfig{PeopleMin: 1, PeopleMax: 5}},
			wantErr: ErrLogLevelUnknown,
		},
		{
			name:    "negative description length returns ErrRuleNegative",
			config:  Config{Rules: RulesConfig{DescriptionMinLength: -1, PeopleMax: 5}},
			wantErr: ErrRuleNegative,
		},
		{
			name:    "title min above max returns ErrRuleRangeInvalid",
			config:  Config{Rules: RulesConfig{TitleMinLength: 10, TitleMaxLength: 3, PeopleMax: 5}},
			wantErr: ErrRuleRangeInvalid,
		},
		{
			name:   "unset max length ignores min",
			config: Config{Rules: RulesConfig{TitleMinLength: 10, PeopleMax: 5}},
		},
		{
			name:    "people min above max returns ErrRuleRangeInvalid",
			config:  Config{Rules: RulesConfig{PeopleMin: 6, PeopleMax: 5}},
			wantErr: ErrRuleRangeInvalid,
		},
		{
			name:    "people max of MaxInt returns ErrRuleTooLarge",
			config:  Config{Rules: RulesConfig{PeopleMin: 1, PeopleMax: math.MaxInt}},
			wantErr: ErrRuleTooLarge,
		},
		{
			name:    "people min below -MaxPeople returns ErrRuleTooLarge",
			config:  Config{Rules: RulesConfig{PeopleMin: -MaxPeople - 1, PeopleMax: 5}},
			wantErr: ErrRuleTooLarge,
		},
		{
			name:   "people max at MaxPeople is valid",
			config: Config{Rules: RulesConfig{PeopleMin: 1, PeopleMax: MaxPeople}},
		},
		{
			name:   "people min equal to max is valid",
			config: Config{Rules: RulesConfig{PeopleMin: 3, PeopleMax: 3}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("expected nil error, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error %v, got nil", tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
		})
	}
}
