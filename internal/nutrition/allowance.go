// Package nutrition computes a personal daily added-sugar budget from
// biometrics using the Mifflin-St Jeor equation.
package nutrition

import (
	"fmt"
	"strings"
)

const (
	// SedentaryActivity converts basal metabolic rate into daily energy use.
	SedentaryActivity = 1.2
	// KcalPerGram is the energy density of sugar.
	KcalPerGram = 4.0

	standardSugarShare   = 0.10
	restrictedSugarShare = 0.05
)

// Gender selects the Mifflin-St Jeor constant.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// ParseGender accepts male/female and their one-letter forms.
func ParseGender(s string) (Gender, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "male", "m":
		return Male, nil
	case "female", "f":
		return Female, nil
	default:
		return "", fmt.Errorf("unknown gender %q (expected male|female)", s)
	}
}

// Biometrics are the user inputs for the sugar budget. Values are not
// range-checked here; callers validate before computing.
type Biometrics struct {
	Age        float64 `json:"age" yaml:"age"`
	WeightKg   float64 `json:"weight_kg" yaml:"weight_kg"`
	HeightCm   float64 `json:"height_cm" yaml:"height_cm"`
	Gender     Gender  `json:"gender" yaml:"gender"`
	Patient    bool    `json:"patient" yaml:"patient"`
	WeightLoss bool    `json:"weight_loss" yaml:"weight_loss"`
}

// BMR returns the basal metabolic rate in kcal/day. Anything other than
// Male uses the female constant.
func (b Biometrics) BMR() float64 {
	base := 10*b.WeightKg + 6.25*b.HeightCm - 5*b.Age
	if b.Gender == Male {
		return base + 5
	}
	return base - 161
}

// TDEE returns total daily energy expenditure at a sedentary activity level.
func (b Biometrics) TDEE() float64 {
	return b.BMR() * SedentaryActivity
}

// SugarShare is the fraction of daily calories allowed from sugar.
func (b Biometrics) SugarShare() float64 {
	if b.Patient || b.WeightLoss {
		return restrictedSugarShare
	}
	return standardSugarShare
}

// DailySugarAllowance returns the sugar budget in grams per day.
func DailySugarAllowance(b Biometrics) float64 {
	return b.TDEE() * b.SugarShare() / KcalPerGram
}
