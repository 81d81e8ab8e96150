// Package storage persists the session state as human-readable text files
// under a data directory: profile.env (key=value), daily-food-record.txt and
// food-db.txt (one pipe-delimited entry per line). Read/write failures all
// surface as the single generic ErrFileAccess; callers report the file-error
// message and keep running on in-memory state.
package storage

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/saadjs/dietman/internal/model"
)

// ErrFileAccess is the generic data-file error condition.
var ErrFileAccess = errors.New("data file error")

const (
	profileFileName = "profile.env"
	recordsFileName = "daily-food-record.txt"
	foodDBFileName  = "food-db.txt"
)

// Store reads and rewrites the per-entity data files.
type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the data directory the store operates on.
func (s *Store) Dir() string { return s.dir }

func fileErr(err error) error {
	return fmt.Errorf("%w: %v", ErrFileAccess, err)
}

// Load populates the state from the data files. Missing files are a fresh
// start, not an error.
func (s *Store) Load(st *model.State) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fileErr(err)
	}
	if err := s.loadProfile(&st.Profile); err != nil {
		return err
	}
	if err := s.loadRecords(st.Records); err != nil {
		return err
	}
	return s.loadFoodDB(st.Catalog)
}

// Save rewrites every data file to reflect the current state.
func (s *Store) Save(st *model.State) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fileErr(err)
	}
	if err := s.saveProfile(&st.Profile); err != nil {
		return err
	}
	if err := s.saveRecords(st.Records); err != nil {
		return err
	}
	return s.saveFoodDB(st.Catalog)
}

func (s *Store) loadProfile(p *model.Profile) error {
	path := filepath.Join(s.dir, profileFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	values, err := godotenv.Read(path)
	if err != nil {
		return fileErr(err)
	}
	p.Name = values["NAME"]
	if p.Name == "" {
		return nil
	}
	if p.Age, err = strconv.Atoi(values["AGE"]); err != nil {
		return fileErr(err)
	}
	p.Gender = model.Gender(values["GENDER"])
	if p.HeightCM, err = strconv.ParseFloat(values["HEIGHT"], 64); err != nil {
		return fileErr(err)
	}
	if p.WeightKG, err = strconv.ParseFloat(values["WEIGHT"], 64); err != nil {
		return fileErr(err)
	}
	if p.WeightGoalKG, err = strconv.ParseFloat(values["WEIGHT_GOAL"], 64); err != nil {
		return fileErr(err)
	}
	p.WeightHistory = parseWeightHistory(values["WEIGHT_HISTORY"])
	return nil
}

func (s *Store) saveProfile(p *model.Profile) error {
	if !p.IsSet() {
		return nil
	}
	values := map[string]string{
		"NAME":           p.Name,
		"AGE":            strconv.Itoa(p.Age),
		"GENDER":         string(p.Gender),
		"HEIGHT":         strconv.FormatFloat(p.HeightCM, 'f', 2, 64),
		"WEIGHT":         strconv.FormatFloat(p.WeightKG, 'f', 2, 64),
		"WEIGHT_GOAL":    strconv.FormatFloat(p.WeightGoalKG, 'f', 2, 64),
		"WEIGHT_HISTORY": formatWeightHistory(p.WeightHistory),
	}
	if err := godotenv.Write(values, filepath.Join(s.dir, profileFileName)); err != nil {
		return fileErr(err)
	}
	return nil
}

// Weight history entries are stored as "id|kg|timestamp", joined with ";".
func formatWeightHistory(history []model.WeightEntry) string {
	parts := make([]string, 0, len(history))
	for _, entry := range history {
		parts = append(parts, fmt.Sprintf("%s|%.2f|%s",
			entry.ID, entry.WeightKG, entry.RecordedAt.Format(time.RFC3339)))
	}
	return strings.Join(parts, ";")
}

func parseWeightHistory(raw string) []model.WeightEntry {
	if raw == "" {
		return nil
	}
	var history []model.WeightEntry
	for _, part := range strings.Split(raw, ";") {
		fields := strings.Split(part, "|")
		if len(fields) != 3 {
			continue
		}
		weight, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			continue
		}
		recordedAt, err := time.Parse(time.RFC3339, fields[2])
		if err != nil {
			continue
		}
		history = append(history, model.WeightEntry{ID: fields[0], WeightKG: weight, RecordedAt: recordedAt})
	}
	return history
}

func (s *Store) loadRecords(book *model.RecordBook) error {
	return s.readLines(recordsFileName, func(line string) {
		fields := strings.Split(line, "|")
		if len(fields) != 4 {
			return
		}
		day, ok := model.ParseWeekday(fields[0])
		if !ok {
			return
		}
		slot := model.MealSlot(fields[1])
		entry := model.FoodEntry{Name: fields[2]}
		if fields[3] != "" {
			if v, err := strconv.ParseFloat(fields[3], 64); err == nil {
				entry.Calories = &v
			}
		}
		book.Record(day).AddFood(slot, entry)
	})
}

func (s *Store) saveRecords(book *model.RecordBook) error {
	var sb strings.Builder
	for _, day := range book.Days() {
		record, _ := book.Lookup(day)
		for _, slot := range model.AllMealSlots {
			for _, entry := range record.Meals[slot] {
				calories := ""
				if entry.Calories != nil {
					calories = strconv.FormatFloat(*entry.Calories, 'f', 2, 64)
				}
				fmt.Fprintf(&sb, "%s|%s|%s|%s\n", day, slot, entry.Name, calories)
			}
		}
	}
	return s.writeFile(recordsFileName, sb.String())
}

func (s *Store) loadFoodDB(db *model.NutritionDatabase) error {
	return s.readLines(foodDBFileName, func(line string) {
		fields := strings.Split(line, "|")
		if len(fields) != 2 {
			return
		}
		calories, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return
		}
		db.Add(fields[0], calories)
	})
}

func (s *Store) saveFoodDB(db *model.NutritionDatabase) error {
	var sb strings.Builder
	for _, name := range db.Names() {
		calories, _ := db.Lookup(name)
		fmt.Fprintf(&sb, "%s|%s\n", name, strconv.FormatFloat(calories, 'f', 2, 64))
	}
	return s.writeFile(foodDBFileName, sb.String())
}

// readLines feeds each non-empty line of a data file to parse. Malformed
// lines are skipped by the parse callbacks rather than failing the load.
func (s *Store) readLines(name string, parse func(line string)) error {
	f, err := os.Open(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fileErr(err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parse(line)
	}
	if err := scanner.Err(); err != nil {
		return fileErr(err)
	}
	return nil
}

func (s *Store) writeFile(name, contents string) error {
	if err := os.WriteFile(filepath.Join(s.dir, name), []byte(contents), 0o644); err != nil {
		return fileErr(err)
	}
	return nil
}
