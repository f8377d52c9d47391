package models

// Nutrition is a nutrient profile per 100 grams of a food.
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type NutrientTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Scale returns the absolute nutrients of a portion of the given weight.
// Values are not rounded and negative weights give negative amounts.
func (n Nutrition) Scale(grams float64) NutrientTotals {
	return NutrientTotals{
		Calories: n.Calories * grams / 100,
		Protein:  n.Protein * grams / 100,
		Carbs:    n.Carbs * grams / 100,
		Fat:      n.Fat * grams / 100,
	}
}

func (t NutrientTotals) Add(other NutrientTotals) NutrientTotals {
	return NutrientTotals{
		Calories: t.Calories + other.Calories,
		Protein:  t.Protein + other.Protein,
		Carbs:    t.Carbs + other.Carbs,
		Fat:      t.Fat + other.Fat,
	}
}

const (
	KcalPerGramProtein = 4
	KcalPerGramCarbs   = 4
	KcalPerGramFat     = 9
)

type MacroEnergy struct {
	ProteinKcal float64 `json:"proteinKcal"`
	CarbsKcal   float64 `json:"carbsKcal"`
	FatKcal     float64 `json:"fatKcal"`
}

func (e MacroEnergy) Total() float64 {
	return e.ProteinKcal + e.CarbsKcal + e.FatKcal
}

func MacroEnergyOf(protein, carbs, fat float64) MacroEnergy {
	return MacroEnergy{
		ProteinKcal: protein * KcalPerGramProtein,
		CarbsKcal:   carbs * KcalPerGramCarbs,
		FatKcal:     fat * KcalPerGramFat,
	}
}

func (n Nutrition) MacroEnergy() MacroEnergy {
	return MacroEnergyOf(n.Protein, n.Carbs, n.Fat)
}

func (t NutrientTotals) MacroEnergy() MacroEnergy {
	return MacroEnergyOf(t.Protein, t.Carbs, t.Fat)
}

// MacroShares holds the percentage (0-100) of macro energy coming from each
// macronutrient.
type MacroShares struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// Shares is the zero vector when there is no macro energy at all.
func (e MacroEnergy) Shares() MacroShares {
	total := e.Total()
	if total == 0 {
		return MacroShares{}
	}
	return MacroShares{
		Protein: e.ProteinKcal / total * 100,
		Carbs:   e.CarbsKcal / total * 100,
		Fat:     e.FatKcal / total * 100,
	}
}
