package domain

import (
	"errors"
	"fmt"
	"time"
)

// Sport identifies one of the supported exercise categories.
type Sport string

const (
	SportRunning  Sport = "running"
	SportSwimming Sport = "swimming"
	SportCycling  Sport = "cycling"
	SportPullups  Sport = "pullups"
	SportPushups  Sport = "pushups"
	SportWeights  Sport = "weights"
)

// rateKind says how a sport's calorie rate is applied.
type rateKind int

const (
	perMinute rateKind = iota
	perRepetition
)

// sportProfile describes one sport: the attribute keys a payload must carry,
// the message reported when any of them is absent, and the calorie rate
// applied to them.
type sportProfile struct {
	requiredKeys []string
	requirement  string
	rate         float64
	kind         rateKind
}

// sportProfiles is the static per-sport lookup table. Time-based sports burn
// rate calories per minute, repetition-based sports per repetition.
var sportProfiles = map[Sport]sportProfile{
	SportRunning: {
		requiredKeys: []string{"time", "distance"},
		requirement:  "Running requires 'time' and 'distance'",
		rate:         10,
		kind:         perMinute,
	},
	SportSwimming: {
		requiredKeys: []string{"time", "distance"},
		requirement:  "Swimming requires 'time' and 'distance'",
		rate:         12,
		kind:         perMinute,
	},
	SportCycling: {
		requiredKeys: []string{"time", "distance"},
		requirement:  "Cycling requires 'time' and 'distance'",
		rate:         8,
		kind:         perMinute,
	},
	SportPullups: {
		requiredKeys: []string{"sets", "reps_per_set"},
		requirement:  "Pull-ups require 'sets' and 'reps_per_set'",
		rate:         0.5,
		kind:         perRepetition,
	},
	SportPushups: {
		requiredKeys: []string{"sets", "reps_per_set"},
		requirement:  "Push-ups require 'sets' and 'reps_per_set'",
		rate:         0.5,
		kind:         perRepetition,
	},
	SportWeights: {
		requiredKeys: []string{"exercise_type", "sets", "reps_per_set"},
		requirement:  "Weights require 'exercise_type', 'sets', and 'reps_per_set'",
		rate:         0.6,
		kind:         perRepetition,
	},
}

// Exercise is a single recorded exercise session.
type Exercise struct {
	ID             int64          `json:"id"`
	Date           time.Time      `json:"date"`
	Sport          Sport          `json:"sport"`
	Details        map[string]any `json:"details"`
	CaloriesBurned float64        `json:"calories_burned"`
}

// ValidationReason categorizes why a payload was rejected.
type ValidationReason string

const (
	ReasonUnsupportedSport ValidationReason = "unsupported_sport"
	ReasonMissingField     ValidationReason = "missing_field"
	ReasonInvalidField     ValidationReason = "invalid_field"
)

// ValidationError reports a client-correctable problem with an exercise
// payload. The API layer maps it to a 400 response; everything else is
// treated as a server-side failure.
type ValidationError struct {
	Reason  ValidationReason
	Sport   string   // sport as supplied by the caller
	Fields  []string // offending attribute keys, if any
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func newUnsupportedSportError(sport string) *ValidationError {
	return &ValidationError{
		Reason:  ReasonUnsupportedSport,
		Sport:   sport,
		Message: "Unsupported sport type",
	}
}

func newMissingFieldError(sport, requirement string, fields []string) *ValidationError {
	return &ValidationError{
		Reason:  ReasonMissingField,
		Sport:   sport,
		Fields:  fields,
		Message: requirement,
	}
}

func newInvalidFieldError(sport, field, want string) *ValidationError {
	return &ValidationError{
		Reason:  ReasonInvalidField,
		Sport:   sport,
		Fields:  []string{field},
		Message: fmt.Sprintf("Invalid value for '%s': expected %s", field, want),
	}
}

// NewExercise validates a raw payload for the given sport and returns the
// normalized record with its calorie estimate. Only the sport's required
// attributes are kept; unknown payload keys are dropped. The caller never
// supplies the calorie value, it is always derived here.
func NewExercise(sport string, payload map[string]any) (*Exercise, error) {
	profile, ok := sportProfiles[Sport(sport)]
	if !ok {
		return nil, newUnsupportedSportError(sport)
	}

	var missing []string
	for _, key := range profile.requiredKeys {
		if _, present := payload[key]; !present {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, newMissingFieldError(sport, profile.requirement, missing)
	}

	details := make(map[string]any, len(profile.requiredKeys))
	for _, key := range profile.requiredKeys {
		value, err := normalizeAttribute(sport, key, payload[key])
		if err != nil {
			return nil, err
		}
		details[key] = value
	}

	var calories float64
	switch profile.kind {
	case perMinute:
		calories = details["time"].(float64) * profile.rate
	case perRepetition:
		calories = details["sets"].(float64) * details["reps_per_set"].(float64) * profile.rate
	}

	return &Exercise{
		Date:           time.Now().UTC(),
		Sport:          Sport(sport),
		Details:        details,
		CaloriesBurned: calories,
	}, nil
}

// normalizeAttribute checks a single required attribute and returns the value
// to store. Numeric attributes must be non-negative numbers so the derived
// calorie value can never go negative.
func normalizeAttribute(sport, key string, value any) (any, error) {
	if key == "exercise_type" {
		s, ok := value.(string)
		if !ok {
			return nil, newInvalidFieldError(sport, key, "a string")
		}
		return s, nil
	}

	n, ok := numericValue(value)
	if !ok || n < 0 {
		return nil, newInvalidFieldError(sport, key, "a non-negative number")
	}
	return n, nil
}

// numericValue coerces a payload value to float64. JSON numbers always arrive
// as float64; the integer cases keep direct Go callers honest.
func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
