package problemgen

// genFunc builds one problem of a fixed type.
type genFunc func(r Rand, cfg Config) *Problem

var generators = map[ProblemType]genFunc{
	MultiplicationPattern:   genMultiplicationPattern,
	DivisionPattern:         genDivisionPattern,
	ProductEstimation:       genProductEstimation,
	QuotientEstimation:      genQuotientEstimation,
	MultiplicationProperty:  genMultiplicationProperty,
	DistributiveProperty:    genDistributiveProperty,
	RemainderInterpretation: genRemainderInterpretation,
}

// Generator produces procedurally generated problems. It is not safe for
// concurrent use unless its Rand is.
type Generator struct {
	rng Rand
	cfg Config
}

// New creates a Generator drawing from rng. A nil rng uses the
// process-wide source.
func New(rng Rand, cfg Config) *Generator {
	if rng == nil {
		rng = globalRand{}
	}
	if cfg.MaxDistractorAttempts <= 0 {
		cfg.MaxDistractorAttempts = DefaultConfig().MaxDistractorAttempts
	}
	return &Generator{rng: rng, cfg: cfg}
}

// NewSeeded creates a Generator with a deterministic source and the
// default config.
func NewSeeded(seed uint64) *Generator {
	return New(NewSeededRand(seed), DefaultConfig())
}

var defaultGenerator = New(nil, DefaultConfig())

// Default returns the process-wide generator.
func Default() *Generator {
	return defaultGenerator
}

// GenerateProblem generates a problem for stage using the process-wide
// generator.
func GenerateProblem(stage StageContext) *Problem {
	return defaultGenerator.Generate(stage)
}

// Generate picks a problem type uniformly from the stage's eligible set
// and builds a problem of that type. Calls are independent; consecutive
// problems may repeat a type. Unknown stages draw from every type.
func (g *Generator) Generate(stage StageContext) *Problem {
	t := pick(g.rng, EligibleTypes(stage))
	return g.GenerateType(t)
}

// GenerateType builds a problem of type t. Unknown types fall back to a
// multiplication pattern.
func (g *Generator) GenerateType(t ProblemType) *Problem {
	gen, ok := generators[t]
	if !ok {
		gen = genMultiplicationPattern
	}
	return gen(g.rng, g.cfg)
}

// GenerateChecked generates a problem for stage and runs the configured
// validators on it. A failing problem is returned alongside the error so
// callers can report it.
func (g *Generator) GenerateChecked(stage StageContext) (*Problem, error) {
	p := g.Generate(stage)
	if err := g.Validate(p); err != nil {
		return p, err
	}
	if !IsEligible(stage, p.Type) {
		return p, &ValidationError{
			Validator: "stage",
			Message:   "type " + p.Type.String() + " is not eligible for stage " + string(stage),
		}
	}
	return p, nil
}

// Validate runs the configured validator chain on p.
func (g *Generator) Validate(p *Problem) error {
	for _, v := range g.cfg.Validators {
		if verr := v.Validate(p); verr != nil {
			return verr
		}
	}
	return nil
}
