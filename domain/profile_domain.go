package domain

import "nutrilog/entities"

var (
	MessageFailedGetProfile  = "failed to retrieve profile"
	MessageFailedSaveProfile = "failed to save profile"
)

type (
	// SaveProfileRequest replaces the stored profile wholesale; there is
	// no merge.
	SaveProfileRequest struct {
		Age           int              `json:"age" validate:"omitempty,min=1,max=130"`
		Gender        string           `json:"gender" validate:"omitempty,oneof=male female"`
		Height        float64          `json:"height" validate:"omitempty,min=50,max=250"`
		Weight        float64          `json:"weight" validate:"omitempty,min=10,max=400"`
		ActivityLevel string           `json:"activityLevel" validate:"omitempty,oneof=sedentary light moderate active very"`
		Goal          string           `json:"goal" validate:"omitempty,oneof=lose maintain gain"`
		Targets       entities.Targets `json:"targets"`
	}
)

func (r SaveProfileRequest) ToProfile() entities.Profile {
	return entities.Profile{
		Age:           r.Age,
		Gender:        r.Gender,
		Height:        r.Height,
		Weight:        r.Weight,
		ActivityLevel: r.ActivityLevel,
		Goal:          r.Goal,
		Targets:       r.Targets,
	}
}
