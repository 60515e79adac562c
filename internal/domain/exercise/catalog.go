package exercise

import (
	"errors"
	"strings"
)

// Domain errors
var (
	ErrEmptyName = errors.New("exercise name cannot be empty")
	ErrBuiltin   = errors.New("exercise is already in the built-in catalog")
	ErrDuplicate = errors.New("custom exercise already exists")
)

// Catalog returns the built-in exercise names offered before the user has
// logged anything. User-added names live outside this list and are tracked
// as custom exercises.
func Catalog() []string {
	return []string{
		"Bench Press",
		"Incline Bench Press",
		"Dumbbell Press",
		"Overhead Press",
		"Lateral Raise",
		"Chest Fly",
		"Push Up",
		"Dip",
		"Triceps Pushdown",
		"Skull Crusher",
		"Barbell Row",
		"Dumbbell Row",
		"Lat Pulldown",
		"Pull Up",
		"Chin Up",
		"Seated Cable Row",
		"Face Pull",
		"Shrug",
		"Biceps Curl",
		"Hammer Curl",
		"Preacher Curl",
		"Squat",
		"Front Squat",
		"Leg Press",
		"Lunge",
		"Bulgarian Split Squat",
		"Romanian Deadlift",
		"Deadlift",
		"Hip Thrust",
		"Leg Extension",
		"Leg Curl",
		"Calf Raise",
		"Plank",
		"Crunch",
		"Hanging Leg Raise",
		"Russian Twist",
	}
}

// IsBuiltin reports whether name is part of the built-in catalog.
func IsBuiltin(name string) bool {
	for _, n := range Catalog() {
		if n == name {
			return true
		}
	}
	return false
}

// ValidateCustom checks a user-added exercise name against the catalog and the
// existing custom list.
// POST: Returns nil only when name can be appended to the custom list
func ValidateCustom(name string, existing []string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if IsBuiltin(name) {
		return ErrBuiltin
	}
	for _, n := range existing {
		if n == name {
			return ErrDuplicate
		}
	}
	return nil
}
