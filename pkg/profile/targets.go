package profile

import (
	"math"

	"nutrilog/entities"
)

// activityMultipliers maps activity levels to their TDEE multiplier and is
// the source of truth for valid activity level values.
var activityMultipliers = map[string]float64{
	"sedentary": 1.2,
	"light":     1.375,
	"moderate":  1.55,
	"active":    1.725,
	"very":      1.9,
}

var goalOffsets = map[string]float64{
	"lose":     -500,
	"maintain": 0,
	"gain":     500,
}

// ComputeTargets derives daily calorie and macro targets from a complete
// profile: Mifflin-St Jeor BMR, activity multiplier, goal offset, then a
// 30% protein / 40% carbohydrate / 30% fat split. A profile missing any
// required field is returned unchanged; partial profiles never get
// partial targets.
func ComputeTargets(p entities.Profile) entities.Profile {
	if p.Age == 0 || p.Height == 0 || p.Weight == 0 {
		return p
	}
	if p.Gender != "male" && p.Gender != "female" {
		return p
	}

	multiplier, ok := activityMultipliers[p.ActivityLevel]
	if !ok {
		return p
	}
	offset, ok := goalOffsets[p.Goal]
	if !ok {
		return p
	}

	bmr := 10*p.Weight + 6.25*p.Height - 5*float64(p.Age)
	if p.Gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	tdee := bmr * multiplier
	calories := int(math.Round(tdee + offset))

	p.Targets = entities.Targets{
		Calories:      calories,
		Protein:       int(math.Round(float64(calories) * 0.30 / 4)),
		Carbohydrates: int(math.Round(float64(calories) * 0.40 / 4)),
		Fat:           int(math.Round(float64(calories) * 0.30 / 9)),
	}
	return p
}
