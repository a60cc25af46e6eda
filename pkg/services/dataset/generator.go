package dataset

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/de-tools/report-lab/pkg/models/domain"
)

// ErrInvalidArgument marks generation parameters that are out of range.
var ErrInvalidArgument = errors.New("invalid argument")

const weightSumTolerance = 1e-9

// Params fixes the distributions behind every generated field.
type Params struct {
	StartDate       time.Time
	Categories      []string
	CategoryWeights []float64
	ValueScale      float64 // exponential scale for Value
	MetricMean      float64
	MetricStdDev    float64
	CountLambda     float64 // Poisson rate for Count
	BinaryProb      float64 // probability of Binary == 1
}

// DefaultParams returns the reference distributions used by all report
// profiles: daily dates from 2023-01-01, categories A-D weighted
// 0.4/0.3/0.2/0.1, exponential values (scale 100), normal metrics
// (50 +/- 15), Poisson counts (lambda 10) and a 0.3 binary rate.
func DefaultParams() Params {
	return Params{
		StartDate:       time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
		Categories:      []string{"A", "B", "C", "D"},
		CategoryWeights: []float64{0.4, 0.3, 0.2, 0.1},
		ValueScale:      100,
		MetricMean:      50,
		MetricStdDev:    15,
		CountLambda:     10,
		BinaryProb:      0.3,
	}
}

// Generator produces deterministic synthetic datasets. It carries no
// mutable state between calls, so the same instance is safe to share.
type Generator struct {
	params Params
	cum    []float64 // cumulative category weights
}

func NewGenerator(params Params) (*Generator, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	cum := make([]float64, len(params.CategoryWeights))
	total := 0.0
	for i, w := range params.CategoryWeights {
		total += w
		cum[i] = total
	}

	return &Generator{params: params, cum: cum}, nil
}

// Generate produces n records from a single source seeded with seed.
// The same (seed, n) pair always yields an identical dataset: every
// field of every record is drawn from the shared source in a fixed
// order, and dates advance one day at a time from the start date.
func (g *Generator) Generate(seed int64, n int) (domain.Dataset, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: row count must be positive, got %d", ErrInvalidArgument, n)
	}

	r := rand.New(rand.NewSource(seed))
	records := make(domain.Dataset, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, domain.Record{
			Date:     g.params.StartDate.AddDate(0, 0, i),
			Category: g.pickCategory(r),
			Value:    r.ExpFloat64() * g.params.ValueScale,
			Metric:   g.params.MetricMean + r.NormFloat64()*g.params.MetricStdDev,
			Count:    poisson(r, g.params.CountLambda),
			Binary:   bernoulli(r, g.params.BinaryProb),
		})
	}

	return records, nil
}

func (g *Generator) pickCategory(r *rand.Rand) string {
	u := r.Float64()
	for i, c := range g.cum {
		if u < c {
			return g.params.Categories[i]
		}
	}
	return g.params.Categories[len(g.params.Categories)-1]
}

func validateParams(p Params) error {
	if p.StartDate.IsZero() {
		return fmt.Errorf("%w: start date is not set", ErrInvalidArgument)
	}
	if len(p.Categories) == 0 {
		return fmt.Errorf("%w: no categories defined", ErrInvalidArgument)
	}
	if len(p.CategoryWeights) != len(p.Categories) {
		return fmt.Errorf("%w: %d categories but %d weights",
			ErrInvalidArgument, len(p.Categories), len(p.CategoryWeights))
	}

	total := 0.0
	for i, w := range p.CategoryWeights {
		if w <= 0 {
			return fmt.Errorf("%w: weight for category %q must be positive, got %g",
				ErrInvalidArgument, p.Categories[i], w)
		}
		total += w
	}
	if math.Abs(total-1) > weightSumTolerance {
		return fmt.Errorf("%w: category weights must sum to 1, got %g", ErrInvalidArgument, total)
	}

	if p.ValueScale <= 0 {
		return fmt.Errorf("%w: value scale must be positive, got %g", ErrInvalidArgument, p.ValueScale)
	}
	if p.MetricStdDev <= 0 {
		return fmt.Errorf("%w: metric std dev must be positive, got %g", ErrInvalidArgument, p.MetricStdDev)
	}
	if p.CountLambda <= 0 {
		return fmt.Errorf("%w: count lambda must be positive, got %g", ErrInvalidArgument, p.CountLambda)
	}
	if p.BinaryProb < 0 || p.BinaryProb > 1 {
		return fmt.Errorf("%w: binary probability must be in [0, 1], got %g", ErrInvalidArgument, p.BinaryProb)
	}

	return nil
}

// poisson draws via Knuth's product-of-uniforms method. Fine for small
// lambda; the default rate is 10.
func poisson(r *rand.Rand, lambda float64) int {
	limit := math.Exp(-lambda)
	k := 0
	p := 1.0
	for {
		p *= r.Float64()
		if p <= limit {
			return k
		}
		k++
	}
}

func bernoulli(r *rand.Rand, prob float64) int {
	if r.Float64() < prob {
		return 1
	}
	return 0
}
