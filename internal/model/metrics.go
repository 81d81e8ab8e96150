package model

// BMR estimates resting energy expenditure with the Mifflin-St Jeor formula.
// The second return is false when the gender is unrecognized, in which case
// the rate is 0 and no requirement can be derived.
func (p *Profile) BMR() (float64, bool) {
	base := 10*p.WeightKG + 6.25*p.HeightCM - 5*float64(p.Age)
	switch p.Gender {
	case GenderMale:
		return base + 5, true
	case GenderFemale:
		return base - 161, true
	default:
		return 0, false
	}
}

// CalorieRequirement is the BMR scaled by an activity factor.
func (p *Profile) CalorieRequirement(factor float64) (float64, bool) {
	bmr, ok := p.BMR()
	if !ok {
		return 0, false
	}
	return bmr * factor, true
}

// BMI is weight in kilograms over squared height in meters.
func (p *Profile) BMI() float64 {
	if p.HeightCM <= 0 {
		return 0
	}
	meters := p.HeightCM / 100
	return p.WeightKG / (meters * meters)
}

// BMICategory names the band a BMI value falls into.
func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "UNDERWEIGHT"
	case bmi < 25:
		return "HEALTHY"
	case bmi < 30:
		return "OVERWEIGHT"
	case bmi < 40:
		return "OBESE"
	default:
		return "EXTREMELY OBESE"
	}
}
