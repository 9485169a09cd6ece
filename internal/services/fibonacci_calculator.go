package services

import "math"

// Level names. The five ratio levels are retracements of the swing range,
// support and resistance are the range boundaries themselves.
const (
	Level236        = "23.6%"
	Level382        = "38.2%"
	Level500        = "50.0%"
	Level618        = "61.8%"
	Level786        = "78.6%"
	LevelSupport    = "support"
	LevelResistance = "resistance"
)

// TimeframeMode describes the analysis lens a timeframe multiplier implies.
type TimeframeMode string

const (
	ModeMagnifyingGlass TimeframeMode = "MAGNIFYING_GLASS"
	ModeBalancedView    TimeframeMode = "BALANCED_VIEW"
	ModeBinoculars      TimeframeMode = "BINOCULARS"
)

// ProximityZone grades how close price sits to a ratio level.
type ProximityZone string

const (
	ZoneNear        ProximityZone = "NEAR"
	ZoneApproaching ProximityZone = "APPROACHING"
	ZoneNone        ProximityZone = "NONE"
)

// FibonacciLevel is a single named retracement level.
type FibonacciLevel struct {
	Name  string
	Value float64
}

// TimeframeInfo describes one supported timeframe.
type TimeframeInfo struct {
	Timeframe  string
	Multiplier int
	Mode       TimeframeMode
}

var timeframeOrder = []string{"1m", "5m", "15m", "30m", "1h", "4h", "1d", "1w"}

var timeframeMultipliers = map[string]int{
	"1m":  1,
	"5m":  5,
	"15m": 15,
	"30m": 30,
	"1h":  60,
	"4h":  240,
	"1d":  1440,
	"1w":  10080,
}

// FibonacciCalculator derives retracement levels from a swing range and
// locates price relative to them.
type FibonacciCalculator struct {
	NearDistance        float64
	ApproachingDistance float64
	DefaultMultiplier   int
}

// NewFibonacciCalculator creates a new calculator instance
func NewFibonacciCalculator() *FibonacciCalculator {
	return &FibonacciCalculator{
		NearDistance:        500.0,
		ApproachingDistance: 1000.0,
		DefaultMultiplier:   60,
	}
}

// Levels computes the retracement levels for a swing range, ordered from
// the shallowest ratio down to the range boundaries. The range is taken as
// given: an inverted range produces levels outside [low, high] rather than
// an error.
func (calc *FibonacciCalculator) Levels(high, low float64) []FibonacciLevel {
	diff := high - low

	return []FibonacciLevel{
		{Name: Level236, Value: high - diff*0.236},
		{Name: Level382, Value: high - diff*0.382},
		{Name: Level500, Value: high - diff*0.500},
		{Name: Level618, Value: high - diff*0.618},
		{Name: Level786, Value: high - diff*0.786},
		{Name: LevelSupport, Value: low},
		{Name: LevelResistance, Value: high},
	}
}

// Nearest returns the level with the smallest absolute distance to price
// along with that distance. On an exact tie the earlier level in the slice
// wins.
func (calc *FibonacciCalculator) Nearest(price float64, levels []FibonacciLevel) (FibonacciLevel, float64) {
	if len(levels) == 0 {
		return FibonacciLevel{}, 0
	}

	nearest := levels[0]
	best := math.Abs(price - levels[0].Value)
	for _, level := range levels[1:] {
		if d := math.Abs(price - level.Value); d < best {
			nearest = level
			best = d
		}
	}

	return nearest, best
}

// Proximity grades how close price sits to a ratio level. Support and
// resistance are boundaries, not retracements, so they never grade.
func (calc *FibonacciCalculator) Proximity(price float64, level FibonacciLevel) ProximityZone {
	if level.Name == LevelSupport || level.Name == LevelResistance {
		return ZoneNone
	}

	distance := math.Abs(price - level.Value)
	switch {
	case distance < calc.NearDistance:
		return ZoneNear
	case distance < calc.ApproachingDistance:
		return ZoneApproaching
	default:
		return ZoneNone
	}
}

// AboveMidpoint reports whether price trades strictly above the 50% level.
func (calc *FibonacciCalculator) AboveMidpoint(price float64, levels []FibonacciLevel) bool {
	for _, level := range levels {
		if level.Name == Level500 {
			return price > level.Value
		}
	}
	return false
}

// InReversalZone reports whether price sits within the near distance of
// either golden-pocket level, 38.2% or 61.8%.
func (calc *FibonacciCalculator) InReversalZone(price float64, levels []FibonacciLevel) bool {
	for _, level := range levels {
		if level.Name != Level382 && level.Name != Level618 {
			continue
		}
		if math.Abs(price-level.Value) < calc.NearDistance {
			return true
		}
	}
	return false
}

// TimeframeMultiplier converts a timeframe label to its duration in
// minutes. Unknown labels fall back to the default.
func (calc *FibonacciCalculator) TimeframeMultiplier(timeframe string) int {
	if multiplier, ok := timeframeMultipliers[timeframe]; ok {
		return multiplier
	}
	return calc.DefaultMultiplier
}

// Mode maps a multiplier onto the analysis lens: intraday multipliers get
// the magnifying glass, anything beyond a day gets binoculars.
func (calc *FibonacciCalculator) Mode(multiplier int) TimeframeMode {
	switch {
	case multiplier <= 60:
		return ModeMagnifyingGlass
	case multiplier <= 1440:
		return ModeBalancedView
	default:
		return ModeBinoculars
	}
}

// Timeframes lists the supported timeframes in ascending duration order.
func (calc *FibonacciCalculator) Timeframes() []TimeframeInfo {
	infos := make([]TimeframeInfo, 0, len(timeframeOrder))
	for _, label := range timeframeOrder {
		multiplier := timeframeMultipliers[label]
		infos = append(infos, TimeframeInfo{
			Timeframe:  label,
			Multiplier: multiplier,
			Mode:       calc.Mode(multiplier),
		})
	}
	return infos
}
