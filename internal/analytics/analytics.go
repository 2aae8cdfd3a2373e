// ABOUTME: Pure derived-data functions over stored session logs.
// ABOUTME: Muscle volume, 1RM estimates, streaks, and XP levels.
package analytics

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/bmonteiro/ferro/internal/models"
)

// parseNum converts a user-typed numeric string, defaulting to zero.
// Weight and reps are stored as free text and must never crash analytics.
func parseNum(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(s, ",", ".")), 64)
	if err != nil {
		return 0
	}
	return v
}

// parseDate accepts the date formats logs carry: date-only or full RFC3339.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MuscleVolume buckets the set counts of the last seven days (relative to
// now) by muscle group. Every group is present in the result, zero when
// untrained; unknown exercises count under "other".
func MuscleVolume(logs []*models.Log, now time.Time) map[MuscleGroup]int {
	volume := make(map[MuscleGroup]int, len(AllMuscleGroups))
	for _, g := range AllMuscleGroups {
		volume[g] = 0
	}

	weekAgo := now.AddDate(0, 0, -7)
	for _, log := range logs {
		t, ok := parseDate(log.Date)
		if !ok || t.Before(weekAgo) {
			continue
		}
		for exerciseName, entry := range log.Data {
			info := LookupExercise(exerciseName)
			volume[info.Target] += len(entry.Sets)
		}
	}
	return volume
}

// OneRepMax estimates a one-rep max with the Brzycki formula:
// weight * (36 / (37 - reps)). A single rep is already the max.
func OneRepMax(weight, reps float64) float64 {
	if reps <= 0 {
		return 0
	}
	if reps == 1 {
		return weight
	}
	return float64(int(weight*(36/(37-reps)) + 0.5))
}

// Best1RM scans every logged set of the exercise (matched by dictionary
// name or key, substring) and returns the highest estimated 1RM.
func Best1RM(logs []*models.Log, exerciseKey string) float64 {
	match := exerciseKey
	if info, ok := ExerciseDB[exerciseKey]; ok {
		match = info.Name
	}
	match = strings.ToLower(match)

	best := 0.0
	for _, log := range logs {
		for name, entry := range log.Data {
			if !strings.Contains(strings.ToLower(name), match) {
				continue
			}
			for _, set := range entry.Sets {
				w := parseNum(set.Weight)
				r := parseNum(set.Reps)
				if w <= 0 || r <= 0 {
					continue
				}
				if oneRM := OneRepMax(w, r); oneRM > best {
					best = oneRM
				}
			}
		}
	}
	return best
}

// Streak counts consecutive training days ending today or yesterday
// (relative to now). A gap of more than one day breaks it; an inactive
// streak is zero no matter how long the history is.
func Streak(logs []*models.Log, now time.Time) int {
	if len(logs) == 0 {
		return 0
	}

	seen := make(map[string]bool)
	var days []time.Time
	for _, log := range logs {
		t, ok := parseDate(log.Date)
		if !ok {
			continue
		}
		day := t.Format("2006-01-02")
		if !seen[day] {
			seen[day] = true
			d, _ := time.Parse("2006-01-02", day)
			days = append(days, d)
		}
	}
	if len(days) == 0 {
		return 0
	}
	sort.Slice(days, func(i, j int) bool { return days[i].After(days[j]) })

	today := now.Format("2006-01-02")
	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")
	latest := days[0].Format("2006-01-02")
	if latest != today && latest != yesterday {
		return 0
	}

	streak := 1
	for i := 1; i < len(days); i++ {
		if days[i-1].Sub(days[i]) > 24*time.Hour {
			break
		}
		streak++
	}
	return streak
}

// XP sums weight x reps across every logged set: 1 kg-rep = 1 XP.
func XP(logs []*models.Log) int {
	total := 0.0
	for _, log := range logs {
		for _, entry := range log.Data {
			for _, set := range entry.Sets {
				total += parseNum(set.Weight) * parseNum(set.Reps)
			}
		}
	}
	return int(total)
}

// LevelInfo describes where in the progression a given XP total sits.
type LevelInfo struct {
	Name     string
	NextAt   int
	Progress float64 // 0..1 toward NextAt
}

// Level maps total XP onto the named progression tiers.
func Level(xp int) LevelInfo {
	switch {
	case xp < 10000:
		return LevelInfo{Name: "Iniciante", NextAt: 10000, Progress: float64(xp) / 10000}
	case xp < 50000:
		return LevelInfo{Name: "Intermediário", NextAt: 50000, Progress: float64(xp-10000) / 40000}
	case xp < 100000:
		return LevelInfo{Name: "Elite", NextAt: 100000, Progress: float64(xp-50000) / 50000}
	default:
		return LevelInfo{Name: "Lenda", NextAt: xp + xp/2, Progress: 1}
	}
}
