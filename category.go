package bmi

type Category string

const (
	SeverelyUnderweight Category = "Severely underweight"
	Underweight         Category = "Underweight"
	Normal              Category = "Normal"
	Overweight          Category = "Overweight"
	ObeseClassI         Category = "Obese Class I"
	ObeseClassII        Category = "Obese Class II"
	ObeseClassIII       Category = "Obese Class III"
)

// Upper bound of the normal range, the divisor for BMI Prime.
const UpperNormalBMI = 25

type categoryThreshold struct {
	lowerBound Decimal // inclusive
	category   Category
}

// highest first
var categoryThresholds = []categoryThreshold{
	{NewDecimal(4000), ObeseClassIII},
	{NewDecimal(3500), ObeseClassII},
	{NewDecimal(3000), ObeseClassI},
	{NewDecimal(2500), Overweight},
	{NewDecimal(1850), Normal},
	{NewDecimal(1600), Underweight},
}

// CategoryFor classifies a BMI in kg/m². Every lower bound belongs to the
// band above it, so 18.50 is Normal and 25.00 is Overweight.
func CategoryFor(bmi Decimal) Category {
	for _, t := range categoryThresholds {
		if bmi.Cmp(t.lowerBound) >= 0 {
			return t.category
		}
	}
	return SeverelyUnderweight
}

func (c Category) String() string {
	return string(c)
}
