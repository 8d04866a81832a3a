// Package plan loads the YAML file that drives a report run.
//
//	pairs: {min: 1, max: 6}
//	capacities: [2, 3, 4]
//	solvers: [bfs, heuristic]
//	rule: paired          # paired | outnumbered
//	workers: 4
//	timeout: 10s
//	max_states: 200000
//	output: solutions.csv
//
// Keys left out keep their Default value; unknown keys are rejected.
package plan

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/rivercross/puzzle"
	"github.com/katalvlaran/rivercross/report"
)

// ErrInvalidPlan is returned when a plan fails decoding or validation.
var ErrInvalidPlan = errors.New("plan: invalid plan")

var planValidate = validator.New(validator.WithRequiredStructEnabled())

// Range is an inclusive range of pair counts.
type Range struct {
	Min int `yaml:"min" validate:"gte=1"`
	Max int `yaml:"max" validate:"gtefield=Min"`
}

// Plan is the decoded plan file.
type Plan struct {
	Pairs      Range         `yaml:"pairs"`
	Capacities []int         `yaml:"capacities" validate:"required,min=1,dive,gte=1"`
	Solvers    []string      `yaml:"solvers" validate:"required,min=1,dive,oneof=bfs dfs heuristic"`
	Rule       string        `yaml:"rule" validate:"oneof=paired outnumbered"`
	Workers    int           `yaml:"workers" validate:"gte=1,lte=256"`
	Timeout    time.Duration `yaml:"timeout" validate:"gte=0s"`
	MaxStates  int           `yaml:"max_states" validate:"gte=0"`
	Output     string        `yaml:"output"`
}

// Default returns the plan used when no file is given.
func Default() Plan {
	return Plan{
		Pairs:      Range{Min: 1, Max: 6},
		Capacities: []int{2, 3, 4},
		Solvers:    []string{"bfs", "heuristic"},
		Rule:       "paired",
		Workers:    4,
		Timeout:    10 * time.Second,
		MaxStates:  200000,
		Output:     "solutions.csv",
	}
}

// Load reads and parses the plan file at path.
func Load(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, fmt.Errorf("plan: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes data over Default and validates the result.
// Empty input yields Default.
func Parse(data []byte) (Plan, error) {
	p := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return Plan{}, fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}
	if err := p.Validate(); err != nil {
		return Plan{}, err
	}

	return p, nil
}

// Validate checks field constraints. Each failing field is named in the error.
func (p Plan) Validate() error {
	err := planValidate.Struct(p)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %w", ErrInvalidPlan, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s fails %s", fe.Namespace(), fe.Tag()))
	}

	return fmt.Errorf("%w: %s", ErrInvalidPlan, strings.Join(msgs, "; "))
}

// ReportOptions converts p into report.Options. Logger and Metrics are
// left for the caller.
func (p Plan) ReportOptions() (report.Options, error) {
	rule, ok := puzzle.RuleByName(p.Rule)
	if !ok {
		return report.Options{}, fmt.Errorf("%w: unknown rule %q", ErrInvalidPlan, p.Rule)
	}
	solvers := make([]report.Solver, 0, len(p.Solvers))
	for _, name := range p.Solvers {
		s, err := report.ParseSolver(name)
		if err != nil {
			return report.Options{}, fmt.Errorf("%w: %w", ErrInvalidPlan, err)
		}
		solvers = append(solvers, s)
	}

	return report.Options{
		PairsMin:   p.Pairs.Min,
		PairsMax:   p.Pairs.Max,
		Capacities: append([]int(nil), p.Capacities...),
		Solvers:    solvers,
		Rule:       rule,
		Workers:    p.Workers,
		Timeout:    p.Timeout,
		MaxStates:  p.MaxStates,
	}, nil
}
