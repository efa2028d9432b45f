package insights

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"interview-insights-go/internal/types"
)

const maxFailurePoints = 10

// BuildWorkflowProfiles aggregates workflows by lower-cased name and
// cross-references tools, roles and pain points: Systems is the union of the
// tools its participants touch, FailurePoints are pain points sharing a
// token with the workflow name or a step, UnclearSteps are short steps only
// one interview mentioned.
func BuildWorkflowProfiles(interviews []types.Interview) []types.WorkflowProfile {
	c := collectCompleted(interviews)
	lookup := participantTools(c)

	type wfAcc struct {
		profile       *types.WorkflowProfile
		steps         map[string]*types.WorkflowStep
		stepOrder     []string
		stepSightings map[string]map[string]struct{} // step key -> interview ids
	}

	accs := map[string]*wfAcc{}
	var order []string
	for _, tw := range c.workflows {
		wf := tw.item
		key := NameKey(wf.Name)
		acc, ok := accs[key]
		if !ok {
			acc = &wfAcc{
				profile: &types.WorkflowProfile{
					ID:            uuid.New().String(),
					Name:          wf.Name,
					Frequency:     wf.Frequency,
					Participants:  []string{},
					Steps:         []types.WorkflowStep{},
					Systems:       []string{},
					FailurePoints: []types.FailurePoint{},
					UnclearSteps:  []string{},
				},
				steps:         map[string]*types.WorkflowStep{},
				stepSightings: map[string]map[string]struct{}{},
			}
			accs[key] = acc
			order = append(order, key)
		}
		p := acc.profile
		p.Count++
		p.InterviewIDs = appendUnique(p.InterviewIDs, tw.interviewID)
		p.Frequency = MaxFrequency(p.Frequency, wf.Frequency)
		p.Participants = appendUniqueFold(p.Participants, wf.Participants...)

		for idx, step := range wf.Steps {
			if step == "" {
				continue
			}
			sk := NameKey(step)
			st, ok := acc.steps[sk]
			if !ok {
				// Order is the index of first sighting; a later interview
				// listing the same step elsewhere does not move it.
				st = &types.WorkflowStep{Text: step, Order: idx}
				acc.steps[sk] = st
				acc.stepOrder = append(acc.stepOrder, sk)
				acc.stepSightings[sk] = map[string]struct{}{}
			}
			st.Count++
			acc.stepSightings[sk][tw.interviewID] = struct{}{}
		}
	}

	out := make([]types.WorkflowProfile, 0, len(order))
	for _, key := range order {
		acc := accs[key]
		p := acc.profile

		for _, sk := range acc.stepOrder {
			p.Steps = append(p.Steps, *acc.steps[sk])
		}
		sort.SliceStable(p.Steps, func(i, j int) bool { return p.Steps[i].Order < p.Steps[j].Order })

		for _, participant := range p.Participants {
			p.Systems = appendUniqueFold(p.Systems, lookup[NameKey(participant)]...)
		}

		p.FailurePoints = failurePoints(c.painPoints, p)
		p.UnclearSteps = unclearSteps(acc.steps, acc.stepOrder, acc.stepSightings)

		out = append(out, *p)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// failurePoints attaches pain points whose description shares a token
// (case-insensitive, longer than three characters) with the workflow name
// or one of its steps. The first matching step is linked; matches are
// capped at maxFailurePoints.
func failurePoints(painPoints []tagged[types.PainPoint], p *types.WorkflowProfile) []types.FailurePoint {
	nameTokens := tokenize(p.Name)
	out := []types.FailurePoint{}
	for _, tp := range painPoints {
		if len(out) >= maxFailurePoints {
			break
		}
		pp := tp.item
		descTokens := tokenize(pp.Description)
		if tokensOverlap(nameTokens, descTokens) {
			out = append(out, types.FailurePoint{Description: pp.Description, Severity: pp.Severity})
			continue
		}
		for _, step := range p.Steps {
			if tokensOverlap(tokenize(step.Text), descTokens) {
				out = append(out, types.FailurePoint{
					Description: pp.Description,
					Severity:    pp.Severity,
					RelatedStep: step.Text,
				})
				break
			}
		}
	}
	return out
}

// unclearSteps flags steps a single interview mentioned that carry fewer
// than three words: too thin to execute from, likely tribal knowledge.
func unclearSteps(steps map[string]*types.WorkflowStep, order []string, sightings map[string]map[string]struct{}) []string {
	out := []string{}
	for _, sk := range order {
		st := steps[sk]
		if len(sightings[sk]) != 1 {
			continue
		}
		if len(strings.Fields(st.Text)) < 3 {
			out = append(out, st.Text)
		}
	}
	return out
}
