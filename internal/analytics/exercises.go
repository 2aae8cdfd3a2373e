// ABOUTME: Static exercise metadata mapping movement names to muscle groups.
// ABOUTME: Lookup is a substring match with an explicit "other" fallback.
package analytics

import "strings"

// MuscleGroup is a heatmap bucket.
type MuscleGroup string

const (
	GroupChest      MuscleGroup = "chest"
	GroupBack       MuscleGroup = "back"
	GroupShoulders  MuscleGroup = "shoulders"
	GroupBiceps     MuscleGroup = "biceps"
	GroupTriceps    MuscleGroup = "triceps"
	GroupQuads      MuscleGroup = "quads"
	GroupHamstrings MuscleGroup = "hamstrings"
	GroupGlutes     MuscleGroup = "glutes"
	GroupAbs        MuscleGroup = "abs"
	GroupCalves     MuscleGroup = "calves"
	GroupOther      MuscleGroup = "other"
)

// AllMuscleGroups lists every bucket, heatmap order.
var AllMuscleGroups = []MuscleGroup{
	GroupChest, GroupBack, GroupShoulders,
	GroupBiceps, GroupTriceps,
	GroupQuads, GroupHamstrings, GroupGlutes,
	GroupAbs, GroupCalves, GroupOther,
}

// ExerciseInfo describes a known movement.
type ExerciseInfo struct {
	Name   string
	Target MuscleGroup
	Kind   string // strength, isolation, compound, calisthenics, isometric
}

// ExerciseDB maps stable exercise keys to metadata. Names are the pt-BR
// labels users actually type.
var ExerciseDB = map[string]ExerciseInfo{
	// chest
	"bench_press":    {Name: "Supino Reto", Target: GroupChest, Kind: "strength"},
	"db_bench_press": {Name: "Supino com Halteres", Target: GroupChest, Kind: "strength"},
	"incline_bench":  {Name: "Supino Inclinado", Target: GroupChest, Kind: "strength"},
	"pec_deck":       {Name: "Voador / Pec Deck", Target: GroupChest, Kind: "isolation"},
	"push_up":        {Name: "Flexão de Braço", Target: GroupChest, Kind: "calisthenics"},
	"cable_fly":      {Name: "Crossover / Fly", Target: GroupChest, Kind: "isolation"},

	// back
	"pull_up":      {Name: "Barra Fixa", Target: GroupBack, Kind: "calisthenics"},
	"lat_pulldown": {Name: "Puxada Alta", Target: GroupBack, Kind: "strength"},
	"barbell_row":  {Name: "Remada Curvada", Target: GroupBack, Kind: "strength"},
	"seated_row":   {Name: "Remada Baixa", Target: GroupBack, Kind: "strength"},
	"deadlift":     {Name: "Levantamento Terra", Target: GroupBack, Kind: "compound"},

	// quads
	"squat":         {Name: "Agachamento Livre", Target: GroupQuads, Kind: "compound"},
	"leg_press":     {Name: "Leg Press", Target: GroupQuads, Kind: "strength"},
	"leg_extension": {Name: "Cadeira Extensora", Target: GroupQuads, Kind: "isolation"},

	// hamstrings and glutes
	"leg_curl":   {Name: "Mesa Flexora", Target: GroupHamstrings, Kind: "isolation"},
	"stiff":      {Name: "Stiff", Target: GroupHamstrings, Kind: "strength"},
	"hip_thrust": {Name: "Elevação Pélvica", Target: GroupGlutes, Kind: "strength"},

	// shoulders
	"overhead_press": {Name: "Desenvolvimento", Target: GroupShoulders, Kind: "strength"},
	"lateral_raise":  {Name: "Elevação Lateral", Target: GroupShoulders, Kind: "isolation"},
	"front_raise":    {Name: "Elevação Frontal", Target: GroupShoulders, Kind: "isolation"},

	// arms
	"bicep_curl":      {Name: "Rosca Direta", Target: GroupBiceps, Kind: "isolation"},
	"hammer_curl":     {Name: "Rosca Martelo", Target: GroupBiceps, Kind: "isolation"},
	"tricep_pushdown": {Name: "Tríceps Polia", Target: GroupTriceps, Kind: "isolation"},
	"skull_crusher":   {Name: "Tríceps Testa", Target: GroupTriceps, Kind: "isolation"},
	"dips":            {Name: "Mergulho (Dips)", Target: GroupTriceps, Kind: "calisthenics"},

	// core
	"crunch": {Name: "Abdominal", Target: GroupAbs, Kind: "isolation"},
	"plank":  {Name: "Prancha", Target: GroupAbs, Kind: "isometric"},
}

// LookupExercise matches a free-form exercise name against the dictionary:
// the name matches an entry when it contains the entry's display name or
// key. Unknown movements land in the "other" bucket.
func LookupExercise(name string) ExerciseInfo {
	lower := strings.ToLower(name)
	for key, info := range ExerciseDB {
		if strings.Contains(lower, strings.ToLower(info.Name)) || strings.Contains(lower, key) {
			return info
		}
	}
	return ExerciseInfo{Name: name, Target: GroupOther}
}
