package bmi

import (
	"sync"

	"github.com/google/uuid"
)

// Calculator computes BMI, BMI Prime and the weight category for inputs
// given in a fixed pair of units. The last BMI and BMI Prime are cached on
// the Calculator: ComputeBMIPrime and Category read from that cache.
//
// A Calculator is safe for concurrent use, but the cache is shared, so
// callers interleaving different people on one Calculator will see each
// other's results.
type Calculator struct {
	id         uuid.UUID
	massUnit   Unit
	heightUnit Unit

	mutex        sync.Mutex
	lastBMI      *Decimal
	lastBMIPrime *Decimal
}

// New builds a Calculator. A nil cfg selects kilograms and meters.
func New(cfg *Config) (*Calculator, error) {
	c := DefaultConfig()
	if cfg != nil {
		c = *cfg
	}
	massUnit, heightUnit, err := c.units()
	if err != nil {
		return nil, err
	}
	return &Calculator{
		id:         uuid.New(),
		massUnit:   massUnit,
		heightUnit: heightUnit,
	}, nil
}

// NewFromRecord builds a Calculator from a loosely typed configuration
// record; see ParseConfig.
func NewFromRecord(v any) (*Calculator, error) {
	cfg, err := ParseConfig(v)
	if err != nil {
		return nil, err
	}
	return New(&cfg)
}

func (c *Calculator) ID() uuid.UUID {
	return c.id
}

func (c *Calculator) MassUnit() Unit {
	return c.massUnit
}

func (c *Calculator) HeightUnit() Unit {
	return c.heightUnit
}

// ComputeBMI converts mass and height from the configured units to
// kilograms and meters and returns mass/height² rounded to two decimals.
// A zero mass or height is treated as not supplied. The result replaces
// the cached BMI.
func (c *Calculator) ComputeBMI(mass, height float64) (Decimal, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.computeBMI(mass, height)
}

func (c *Calculator) computeBMI(mass, height float64) (Decimal, error) {
	if mass == 0 {
		return Decimal{}, &MissingArgumentError{Arg: "mass", Err: ErrMissingMass}
	}
	if height == 0 {
		return Decimal{}, &MissingArgumentError{Arg: "height", Err: ErrMissingHeight}
	}
	kg, err := ToKilograms(mass, c.massUnit)
	if err != nil {
		return Decimal{}, err
	}
	m, err := ToMeters(height, c.heightUnit)
	if err != nil {
		return Decimal{}, err
	}
	bmi := NewDecimalFromFloat(kg / (m * m))
	c.lastBMI = &bmi
	return bmi, nil
}

// ComputeBMIPrime returns the cached BMI divided by 25, rounded to two
// decimals. Only when no BMI has been computed yet are mass and height used,
// to compute one first. Once a BMI is cached the arguments are ignored,
// even if they differ from the ones that produced it.
func (c *Calculator) ComputeBMIPrime(mass, height float64) (Decimal, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	if c.lastBMI == nil {
		if _, err := c.computeBMI(mass, height); err != nil {
			return Decimal{}, err
		}
	}
	prime := c.lastBMI.DivideInt(UpperNormalBMI)
	c.lastBMIPrime = &prime
	return prime, nil
}

// Category classifies the cached BMI. It fails with
// ErrPrecomputationRequired until ComputeBMI or ComputeBMIPrime succeeds.
func (c *Calculator) Category() (Category, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.lastBMI == nil {
		return "", ErrPrecomputationRequired
	}
	return CategoryFor(*c.lastBMI), nil
}

func (c *Calculator) LastBMI() (Decimal, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.lastBMI == nil {
		return Decimal{}, false
	}
	return *c.lastBMI, true
}

func (c *Calculator) LastBMIPrime() (Decimal, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.lastBMIPrime == nil {
		return Decimal{}, false
	}
	return *c.lastBMIPrime, true
}

// Result snapshots the cached values. BMIPrime is empty when only ComputeBMI
// has run.
func (c *Calculator) Result() (Result, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.lastBMI == nil {
		return Result{}, ErrPrecomputationRequired
	}
	r := Result{
		CalculatorID: c.id.String(),
		MassUnit:     string(c.massUnit),
		HeightUnit:   string(c.heightUnit),
		BMI:          c.lastBMI.String(),
		Category:     string(CategoryFor(*c.lastBMI)),
	}
	if c.lastBMIPrime != nil {
		r.BMIPrime = c.lastBMIPrime.String()
	}
	return r, nil
}
