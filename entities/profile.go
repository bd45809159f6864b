package entities

// Targets holds the daily goal values derived from the profile, or the
// defaults when the profile has never been completed.
type Targets struct {
	Calories      int `json:"calories"`
	Protein       int `json:"protein"`
	Carbohydrates int `json:"carbohydrates"`
	Fat           int `json:"fat"`
}

type Profile struct {
	Age           int     `json:"age,omitempty"`
	Gender        string  `json:"gender,omitempty"` // "male", "female"
	Height        float64 `json:"height,omitempty"` // cm
	Weight        float64 `json:"weight,omitempty"` // kg
	ActivityLevel string  `json:"activityLevel,omitempty"`
	Goal          string  `json:"goal,omitempty"` // "lose", "maintain", "gain"
	Targets       Targets `json:"targets"`
}

func DefaultTargets() Targets {
	return Targets{Calories: 2000, Protein: 150, Carbohydrates: 250, Fat: 60}
}
