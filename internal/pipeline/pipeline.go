// Package pipeline wires the processing stages together: load and prepare
// the three entity tables, join them, label the rows and build the feature
// table. Each stage reports counters so a run leaves an auditable trail of
// where rows went.
package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/recrutaml/recruta/internal/dataset"
	"github.com/recrutaml/recruta/internal/modeling"
	"github.com/recrutaml/recruta/internal/prep"
)

// Config holds everything the stages need to know about a run.
type Config struct {
	PostingsPath   string
	CandidatesPath string
	ProspectsPath  string

	GarbageValues []string
	Technologies  []string
	Skills        []string
	Vocabulary    modeling.Vocabulary
}

// State is the shared working set the stages fill in. The entity fields are
// written concurrently during loading, one stage per field; everything after
// the join runs sequentially.
type State struct {
	Postings   *dataset.Postings
	Candidates *dataset.Candidates
	Prospects  *dataset.Prospects

	Rows       *dataset.TrainingRows
	Features   *modeling.FeatureTable
	Unlabeled  []string
	LabelStats modeling.LabelStats
}

// Step describes the row accounting of one stage.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Stage is one unit of pipeline work.
type Stage interface {
	Name() string
	Run(ctx context.Context, deps Deps, state *State) (Step, error)
}

// Deps aggregates the helpers shared across stages.
type Deps struct {
	Logger     *zap.Logger
	Config     *Config
	Cleaner    *prep.Cleaner
	TechTagger *prep.Tagger
	SkillTag   *prep.Tagger
}

// Pipeline runs the full processing sequence.
type Pipeline struct {
	deps Deps
}

// New builds a pipeline from its configuration. The cleaner and taggers are
// constructed once and shared by every stage.
func New(cfg *Config, logger *zap.Logger) *Pipeline {
	return &Pipeline{deps: Deps{
		Logger:     logger,
		Config:     cfg,
		Cleaner:    prep.NewCleaner(cfg.GarbageValues),
		TechTagger: prep.NewTagger(cfg.Technologies),
		SkillTag:   prep.NewTagger(cfg.Skills),
	}}
}

// Run executes the pipeline. The three entity loads are independent and run
// concurrently; the relational stages run in order afterwards.
func (p *Pipeline) Run(ctx context.Context) (*State, error) {
	state := &State{}

	group, groupCtx := errgroup.WithContext(ctx)
	for _, stage := range []Stage{loadPostingsStage{}, loadCandidatesStage{}, loadProspectsStage{}} {
		group.Go(func() error {
			return p.runStage(groupCtx, stage, state)
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	for _, stage := range []Stage{joinStage{}, labelStage{}, matchStage{}, featureStage{}} {
		if err := p.runStage(ctx, stage, state); err != nil {
			return nil, err
		}
	}

	return state, nil
}

func (p *Pipeline) runStage(ctx context.Context, stage Stage, state *State) error {
	info, err := stage.Run(ctx, p.deps, state)
	if err != nil {
		return fmt.Errorf("%s: %w", stage.Name(), err)
	}

	p.deps.Logger.Info("pipeline stage",
		zap.String("name", stage.Name()),
		zap.Int("initial", info.Initial),
		zap.Int("dropped", info.Dropped),
		zap.Int("left", info.Left),
	)
	return nil
}
