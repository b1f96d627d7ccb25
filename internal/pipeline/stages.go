package pipeline

import (
	"context"
	"fmt"

	"github.com/recrutaml/recruta/internal/dataset"
	"github.com/recrutaml/recruta/internal/ingest"
	"github.com/recrutaml/recruta/internal/modeling"
	"github.com/recrutaml/recruta/internal/prep"
)

type loadPostingsStage struct{}

func (loadPostingsStage) Name() string { return "load_postings" }

func (loadPostingsStage) Run(_ context.Context, deps Deps, state *State) (Step, error) {
	postings := ingest.LoadPostings(deps.Config.PostingsPath, deps.Logger)
	prep.PreparePostings(postings, deps.Cleaner, deps.TechTagger)
	state.Postings = postings
	return Step{Initial: postings.Len(), Left: postings.Len()}, nil
}

type loadCandidatesStage struct{}

func (loadCandidatesStage) Name() string { return "load_candidates" }

func (loadCandidatesStage) Run(_ context.Context, deps Deps, state *State) (Step, error) {
	candidates := ingest.LoadCandidates(deps.Config.CandidatesPath, deps.Logger)
	prep.PrepareCandidates(candidates, deps.Cleaner, deps.SkillTag)
	state.Candidates = candidates
	return Step{Initial: candidates.Len(), Left: candidates.Len()}, nil
}

type loadProspectsStage struct{}

func (loadProspectsStage) Name() string { return "load_prospects" }

func (loadProspectsStage) Run(_ context.Context, deps Deps, state *State) (Step, error) {
	prospects := ingest.LoadProspects(deps.Config.ProspectsPath, deps.Logger)
	prep.PrepareProspects(prospects, deps.Cleaner)
	state.Prospects = prospects
	return Step{Initial: prospects.Len(), Left: prospects.Len()}, nil
}

type joinStage struct{}

func (joinStage) Name() string { return "join" }

func (joinStage) Run(_ context.Context, _ Deps, state *State) (Step, error) {
	state.Rows = dataset.Join(state.Prospects, state.Postings, state.Candidates)
	return Step{Initial: state.Prospects.Len(), Left: state.Rows.Len()}, nil
}

type labelStage struct{}

func (labelStage) Name() string { return "label" }

func (labelStage) Run(_ context.Context, deps Deps, state *State) (Step, error) {
	if len(deps.Config.Vocabulary.Success) == 0 {
		return Step{}, fmt.Errorf("success vocabulary is empty")
	}
	if len(deps.Config.Vocabulary.Failure) == 0 {
		return Step{}, fmt.Errorf("failure vocabulary is empty")
	}

	initial := state.Rows.Len()
	labeled, unlabeled, stats := modeling.BuildLabels(state.Rows, deps.Config.Vocabulary)
	state.Rows = labeled
	state.Unlabeled = unlabeled
	state.LabelStats = stats

	return Step{
		Initial: initial,
		Dropped: stats.Dropped + stats.Skipped,
		Left:    labeled.Len(),
	}, nil
}

type matchStage struct{}

func (matchStage) Name() string { return "match_features" }

func (matchStage) Run(_ context.Context, _ Deps, state *State) (Step, error) {
	modeling.ComputeMatchFeatures(state.Rows)
	return Step{Initial: state.Rows.Len(), Left: state.Rows.Len()}, nil
}

type featureStage struct{}

func (featureStage) Name() string { return "feature_table" }

func (featureStage) Run(_ context.Context, deps Deps, state *State) (Step, error) {
	schema := modeling.FeatureSchema{
		Technologies: deps.TechTagger.Names(),
		Skills:       deps.SkillTag.Names(),
	}
	state.Features = modeling.BuildFeatureTable(state.Rows, schema)
	return Step{Initial: state.Rows.Len(), Left: state.Features.Rows()}, nil
}
