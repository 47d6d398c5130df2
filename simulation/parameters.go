package simulation

// Parameters bundles every tunable constant spec §4.3–§4.6 names, so the
// config package can override them from config.yaml without the stage
// functions needing to know where a value came from.
type Parameters struct {
	MetricRange        float32 // r0, meters
	MimeticWeight      float64 // λ
	CharacteristicLen  float64 // L, meters
	MimeticExponent    float64 // E
	AlignmentMimetic   float64 // α
	EquilibriumForce   float64 // β
	EquilibriumDist    float64 // d_eq, meters
	WalkingSpeed       float32 // m/s
	RunningSpeed       float32 // m/s
	HeadingNoiseRadian float32 // half-width of the uniform noise draw
	WorldWidth         float32 // meters
	WorldHeight        float32 // meters
}

// DefaultParameters returns the constants spec §4.3–§4.6 specify.
func DefaultParameters() Parameters {
	return Parameters{
		MetricRange:        1.0,
		MimeticWeight:      15.0,
		CharacteristicLen:  36.0,
		MimeticExponent:    4.0,
		AlignmentMimetic:   4.0,
		EquilibriumForce:   0.8,
		EquilibriumDist:    1.0,
		WalkingSpeed:       0.15,
		RunningSpeed:       1.5,
		HeadingNoiseRadian: 0.4082,
		WorldWidth:         80.0,
		WorldHeight:        80.0,
	}
}

// NaturalNeighborLimit is the cap of four natural neighbors consulted by
// the behavior and heading stages (spec §4.3, §4.4). It is fixed and
// independent of MimeticExponent.
const NaturalNeighborLimit = 4
