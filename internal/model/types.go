package model

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// WeightEntry is one point of the profile's append-only weight history.
type WeightEntry struct {
	ID         string
	WeightKG   float64
	RecordedAt time.Time
}

// Profile holds the single user's identity, body metrics and goal.
type Profile struct {
	Name          string
	Age           int
	Gender        Gender
	HeightCM      float64
	WeightKG      float64
	WeightGoalKG  float64
	WeightHistory []WeightEntry
}

// IsSet reports whether a profile has been created by set-profile.
func (p *Profile) IsSet() bool {
	return p.Name != ""
}

// IsValid reports whether derived calculations may run on this profile.
func (p *Profile) IsValid() bool {
	if !p.IsSet() {
		return false
	}
	if p.Gender != GenderMale && p.Gender != GenderFemale {
		return false
	}
	return p.Age > 0 && p.HeightCM > 0 && p.WeightKG > 0 && p.WeightGoalKG > 0
}

// SetWeight updates the current weight and appends a history entry.
func (p *Profile) SetWeight(weightKG float64) {
	p.WeightKG = weightKG
	p.WeightHistory = append(p.WeightHistory, WeightEntry{
		ID:         uuid.NewString(),
		WeightKG:   weightKG,
		RecordedAt: time.Now(),
	})
}

// DeleteWeightEntry removes the 1-based index from the weight history.
// It reports false for out-of-range indices and leaves the history unchanged.
func (p *Profile) DeleteWeightEntry(index int) bool {
	if index < 1 || index > len(p.WeightHistory) {
		return false
	}
	p.WeightHistory = append(p.WeightHistory[:index-1], p.WeightHistory[index:]...)
	return true
}

// FoodEntry is one logged food item. Calories is nil when the value was
// unknown or unparseable at log time; entries are immutable once recorded.
type FoodEntry struct {
	Name     string
	Calories *float64
}

// DailyFoodRecord holds the meals logged against one weekday.
type DailyFoodRecord struct {
	Day   Weekday
	Meals map[MealSlot][]FoodEntry
}

// AddFood appends an entry to a meal slot.
func (r *DailyFoodRecord) AddFood(slot MealSlot, entry FoodEntry) {
	r.Meals[slot] = append(r.Meals[slot], entry)
}

// SlotCalories sums the calculable calories of one slot and reports how many
// entries carried no calorie value.
func (r *DailyFoodRecord) SlotCalories(slot MealSlot) (total float64, counted, unknown int) {
	for _, entry := range r.Meals[slot] {
		if entry.Calories == nil {
			unknown++
			continue
		}
		total += *entry.Calories
		counted++
	}
	return total, counted, unknown
}

// DailyCalories sums the calculable calories across all three slots.
func (r *DailyFoodRecord) DailyCalories() (total float64, counted, unknown int) {
	for _, slot := range AllMealSlots {
		t, c, u := r.SlotCalories(slot)
		total += t
		counted += c
		unknown += u
	}
	return total, counted, unknown
}

// RecordBook owns the per-weekday food records, created lazily on first use.
type RecordBook struct {
	records map[Weekday]*DailyFoodRecord
}

func NewRecordBook() *RecordBook {
	return &RecordBook{records: make(map[Weekday]*DailyFoodRecord)}
}

// Record returns the day's record, creating it if absent.
func (b *RecordBook) Record(day Weekday) *DailyFoodRecord {
	if r, ok := b.records[day]; ok {
		return r
	}
	r := &DailyFoodRecord{Day: day, Meals: make(map[MealSlot][]FoodEntry)}
	b.records[day] = r
	return r
}

// Lookup returns the day's record without creating one.
func (b *RecordBook) Lookup(day Weekday) (*DailyFoodRecord, bool) {
	r, ok := b.records[day]
	return r, ok
}

// Days returns the recorded weekdays in week order.
func (b *RecordBook) Days() []Weekday {
	days := make([]Weekday, 0, len(b.records))
	for day := range b.records {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return WeekIndex(days[i]) < WeekIndex(days[j]) })
	return days
}

// NutritionDatabase is the user-maintained food catalogue. Logged meals keep
// their own calorie snapshot, so catalogue edits never rewrite past records.
type NutritionDatabase struct {
	foods map[string]float64
}

func NewNutritionDatabase() *NutritionDatabase {
	return &NutritionDatabase{foods: make(map[string]float64)}
}

func (db *NutritionDatabase) Add(name string, calories float64) {
	db.foods[name] = calories
}

// Remove deletes a food and reports whether it existed.
func (db *NutritionDatabase) Remove(name string) bool {
	if _, ok := db.foods[name]; !ok {
		return false
	}
	delete(db.foods, name)
	return true
}

func (db *NutritionDatabase) Lookup(name string) (float64, bool) {
	calories, ok := db.foods[name]
	return calories, ok
}

func (db *NutritionDatabase) Len() int {
	return len(db.foods)
}

// Names returns the catalogue keys sorted alphabetically.
func (db *NutritionDatabase) Names() []string {
	names := make([]string, 0, len(db.foods))
	for name := range db.foods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// RecipeItem is one food of a recommended recipe.
type RecipeItem struct {
	Name     string
	Calories float64
}

// Recipe is the last recommendation produced by new-recipe.
type Recipe struct {
	Items           []RecipeItem
	TotalCalories   float64
	RequirementKcal float64
}

// State aggregates everything the session owns. Commands receive it by
// reference for the duration of one execute call and never retain it.
type State struct {
	Profile Profile
	Records *RecordBook
	Catalog *NutritionDatabase
	Recipe  *Recipe
}

func NewState() *State {
	return &State{
		Records: NewRecordBook(),
		Catalog: NewNutritionDatabase(),
	}
}
