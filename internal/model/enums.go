package model

import "strings"

// Gender determines the constant term of the Mifflin-St Jeor formula.
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// ParseGender accepts male/female in any letter case.
func ParseGender(s string) (Gender, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male":
		return GenderMale, true
	case "female":
		return GenderFemale, true
	default:
		return "", false
	}
}

// Weekday is the date key for meal records.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

// AllWeekdays lists the seven recognized labels in week order.
var AllWeekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// ParseWeekday accepts the seven weekday labels in any letter case.
func ParseWeekday(s string) (Weekday, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, day := range AllWeekdays {
		if name == strings.ToLower(string(day)) {
			return day, true
		}
	}
	return "", false
}

// WeekIndex returns a day's 0-based position from Monday.
func WeekIndex(day Weekday) int {
	for i, d := range AllWeekdays {
		if d == day {
			return i
		}
	}
	return -1
}

// MealSlot is one of the three meal slots of a daily record.
type MealSlot string

const (
	Breakfast MealSlot = "breakfast"
	Lunch     MealSlot = "lunch"
	Dinner    MealSlot = "dinner"
)

// AllMealSlots lists the slots in day order.
var AllMealSlots = []MealSlot{Breakfast, Lunch, Dinner}

// dayParts maps the user-facing time-of-day labels to meal slots.
var dayParts = map[string]MealSlot{
	"morning":   Breakfast,
	"afternoon": Lunch,
	"night":     Dinner,
}

// ParseDayPart maps morning/afternoon/night (any letter case) to a meal slot.
func ParseDayPart(s string) (MealSlot, bool) {
	slot, ok := dayParts[strings.ToLower(strings.TrimSpace(s))]
	return slot, ok
}

// DayPart returns the time-of-day label for a slot, for user-facing messages.
func DayPart(slot MealSlot) string {
	for part, s := range dayParts {
		if s == slot {
			return part
		}
	}
	return string(slot)
}

// activityFactors is the single source of truth for valid activity levels
// and their BMR multipliers.
var activityFactors = map[string]float64{
	"low":      1.375,
	"moderate": 1.55,
	"high":     1.725,
}

// ActivityFactor returns the TDEE multiplier for an activity level label.
func ActivityFactor(s string) (float64, bool) {
	factor, ok := activityFactors[strings.ToLower(strings.TrimSpace(s))]
	return factor, ok
}
