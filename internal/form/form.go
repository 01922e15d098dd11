// Package form turns raw form values into validated project input and hands
// accepted submissions to the state store.
package form

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mesh-intelligence/projectboard/pkg/types"
	"github.com/mesh-intelligence/projectboard/pkg/validate"
)

// Field names reported in FieldError.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldPeople      = "people"
)

// RejectMessage is shown to the user when a submission fails validation.
const RejectMessage = "Invalid input, please try again!"

// Submission holds the raw values read from the form.
type Submission struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	People      string `yaml:"people" json:"people"`
}

// Clear resets every field, as the form does after a successful submit.
func (s *Submission) Clear() {
	*s = Submission{}
}

// Input is a submission that passed validation.
type Input struct {
	Title       string
	Description string
	People      int
}

// FieldError reports the fields that failed validation. It wraps
// types.ErrInvalidInput.
type FieldError struct {
	Fields []string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", types.ErrInvalidInput, strings.Join(e.Fields, ", "))
}

func (e *FieldError) Unwrap() error {
	return types.ErrInvalidInput
}

// Rules are the per-field limits. Zero length limits are not set.
type Rules struct {
	TitleMinLength       int
	TitleMaxLength       int
	DescriptionMinLength int
	DescriptionMaxLength int
	PeopleMin            int
	PeopleMax            int
}

// DefaultRules returns the rules used when nothing is configured: title
// required, description of at least 5 characters, 1 to 5 people.
func DefaultRules() Rules {
	return RulesFromConfig(types.DefaultConfig().Rules)
}

// RulesFromConfig converts the configured limits.
func RulesFromConfig(c types.RulesConfig) Rules {
	return Rules{
		TitleMinLength:       c.TitleMinLength,
		TitleMaxLength:       c.TitleMaxLength,
		DescriptionMinLength: c.DescriptionMinLength,
		DescriptionMaxLength: c.DescriptionMaxLength,
		PeopleMin:            c.PeopleMin,
		PeopleMax:            c.PeopleMax,
	}
}

// Descriptors builds one descriptor per field, in field order.
func (r Rules) Descriptors(sub Submission) (title, description validate.Text, people validate.Numeric) {
	title = validate.Text{
		Value:     sub.Title,
		Required:  true,
		MinLength: optionalLength(r.TitleMinLength),
		MaxLength: optionalLength(r.TitleMaxLength),
	}
	description = validate.Text{
		Value:     sub.Description,
		Required:  true,
		MinLength: optionalLength(r.DescriptionMinLength),
		MaxLength: optionalLength(r.DescriptionMaxLength),
	}
	people = validate.Numeric{
		Value:    ParsePeople(sub.People),
		Required: true,
		Min:      validate.Float(float64(r.PeopleMin)),
		Max:      validate.Float(float64(r.PeopleMax)),
	}
	return title, description, people
}

func optionalLength(n int) *int {
	if n <= 0 {
		return nil
	}
	return validate.Int(n)
}

// ParsePeople converts the raw headcount. An empty value reads as 0 and an
// unparseable one as NaN, so both fail a minimum of 1.
func ParsePeople(raw string) float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// Gather validates every field and returns the accepted input. On failure it
// returns a *FieldError listing each failing field.
func Gather(sub Submission, rules Rules) (Input, error) {
	title, description, people := rules.Descriptors(sub)

	// All decides; the per-field checks only name what failed.
	if !validate.All(title, description, people) || !wholeHeadcount(people.Value) {
		var failed []string
		if !validate.Validate(title) {
			failed = append(failed, FieldTitle)
		}
		if !validate.Validate(description) {
			failed = append(failed, FieldDescription)
		}
		if !validate.Validate(people) || !wholeHeadcount(people.Value) {
			failed = append(failed, FieldPeople)
		}
		return Input{}, &FieldError{Fields: failed}
	}

	return Input{
		Title:       sub.Title,
		Description: sub.Description,
		People:      int(people.Value),
	}, nil
}

// wholeHeadcount reports whether f is an integer the store can hold.
func wholeHeadcount(f float64) bool {
	return f == math.Trunc(f) && f >= -types.MaxPeople && f <= types.MaxPeople
}

// Adder is the part of the state store a Form needs.
type Adder interface {
	AddProject(title, description string, people int) types.Project
}

// Form validates submissions and appends accepted ones to a store.
type Form struct {
	store  Adder
	rules  Rules
	logger zerolog.Logger
}

// New creates a Form bound to store.
func New(store Adder, rules Rules, logger zerolog.Logger) *Form {
	return &Form{store: store, rules: rules, logger: logger}
}

// Submit gathers sub and, if it is valid, appends it to the store. The store
// is not touched when validation fails. On success sub is cleared.
func (f *Form) Submit(sub *Submission) (types.Project, error) {
	in, err := Gather(*sub, f.rules)
	if err != nil {
		var fe *FieldError
		if errors.As(err, &fe) {
			f.logger.Info().Strs("fields", fe.Fields).Msg("submission rejected")
		}
		return types.Project{}, err
	}

	p := f.store.AddProject(in.Title, in.Description, in.People)
	sub.Clear()
	return p, nil
}
