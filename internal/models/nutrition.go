// ABOUTME: NutritionLog record with two historical shapes and a normalizer.
// ABOUTME: Legacy logs carry flat macros; itemized logs nest them under Macros.
package models

// Macros groups macronutrient grams.
type Macros struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// FoodItem is one food inside an itemized nutrition log.
type FoodItem struct {
	Name     string  `json:"name"`
	Weight   float64 `json:"weight,omitempty"` // grams
	Calories float64 `json:"calories,omitempty"`
}

// NutritionLog records one logged meal. Two shapes coexist in stored data:
//
//   - legacy: Foods []string with flat Protein/Carbs/Fats fields
//   - itemized: Items []FoodItem with macros nested under Macros
//
// Readers call Normalize before computing anything; the store persists
// whichever shape it was given.
type NutritionLog struct {
	ID       string   `json:"id"`
	Date     string   `json:"date"`
	Meal     string   `json:"meal,omitempty"`
	Calories float64  `json:"calories"`
	Foods    []string `json:"foods,omitempty"`
	Protein  float64  `json:"protein,omitempty"`
	Carbs    float64  `json:"carbs,omitempty"`
	Fats     float64  `json:"fats,omitempty"`

	Items  []FoodItem `json:"items,omitempty"`
	Macros *Macros    `json:"macros,omitempty"`
}

// MealEntry is the canonical shape downstream analytics consume.
type MealEntry struct {
	ID       string
	Date     string
	Meal     string
	Calories float64
	Macros   Macros
	Foods    []string
}

// Normalize collapses either stored shape into the canonical MealEntry.
// Nested macros win when both shapes are somehow present.
func (n *NutritionLog) Normalize() MealEntry {
	entry := MealEntry{
		ID:       n.ID,
		Date:     n.Date,
		Meal:     n.Meal,
		Calories: n.Calories,
		Foods:    n.Foods,
	}

	if n.Macros != nil {
		entry.Macros = *n.Macros
	} else {
		entry.Macros = Macros{Protein: n.Protein, Carbs: n.Carbs, Fat: n.Fats}
	}

	if len(entry.Foods) == 0 && len(n.Items) > 0 {
		for _, item := range n.Items {
			entry.Foods = append(entry.Foods, item.Name)
		}
	}

	return entry
}
