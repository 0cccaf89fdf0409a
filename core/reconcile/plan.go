package reconcile

import (
	"context"
	"errors"
	"fmt"

	"theme-sync/core/models"
	"theme-sync/core/plm"
)

// PlanStyle loads the style and computes its decision without mutating anything.
// It returns ErrStyleNotFound when the style does not exist.
func PlanStyle(ctx context.Context, reader StyleReader, styleID int, colorways []models.ColorwayRecord) (Decision, error) {
	style, err := reader.FetchStyle(ctx, styleID)
	if err != nil {
		return Decision{StyleID: styleID}, err
	}
	if style == nil {
		return Decision{StyleID: styleID}, fmt.Errorf("%w: %d", ErrStyleNotFound, styleID)
	}
	return Reconcile(*style, colorways), nil
}

// ApplyDecision issues one PATCH carrying only the changed fields, then
// triggers a re-index. Nothing is sent when the decision is unchanged or
// opts.DryRun is set. A re-index failure is recorded on the result and does not
// undo the patch; only a patch failure is returned as an error.
func ApplyDecision(ctx context.Context, writer StyleWriter, d Decision, opts Options) (Result, error) {
	result := Result{StyleID: d.StyleID, Decision: &d}

	if !d.Changed() {
		result.Outcome = OutcomeUnchanged
		return result, nil
	}
	if opts.DryRun {
		result.Outcome = OutcomePlanned
		return result, nil
	}

	if err := writer.PatchStyle(ctx, d.StyleID, d.Fields()); err != nil {
		result.Outcome = OutcomeFailed
		result.Error = err.Error()
		return result, err
	}
	result.Outcome = OutcomeUpdated

	if err := writer.TriggerReindex(ctx, d.StyleID); err != nil {
		result.ReindexError = err.Error()
		return result, nil
	}
	result.Reindexed = true
	return result, nil
}

// ReconcileStyle plans and applies the decision for one style. Every failure is
// recorded on the returned result.
func ReconcileStyle(ctx context.Context, store StyleStore, styleID int, colorways []models.ColorwayRecord, opts Options) Result {
	d, err := PlanStyle(ctx, store, styleID, colorways)
	if err != nil {
		outcome := OutcomeFailed
		if isNotFound(err) {
			outcome = OutcomeNotFound
		}
		return Result{StyleID: styleID, Outcome: outcome, Error: err.Error()}
	}

	result, _ := ApplyDecision(ctx, store, d, opts)
	return result
}

// ReconcileStyles reconciles each group's style against the group's colorways,
// one style at a time. A failing style never stops its siblings.
func ReconcileStyles(ctx context.Context, store StyleStore, groups []plm.StyleGroup, opts Options) Report {
	report := Report{Results: make([]Result, 0, len(groups))}

	for _, g := range groups {
		if err := ctx.Err(); err != nil {
			report.add(Result{StyleID: g.StyleID, Outcome: OutcomeFailed, Error: err.Error()})
			continue
		}
		report.add(ReconcileStyle(ctx, store, g.StyleID, g.Colorways, opts))
	}
	return report
}

func (r *Report) add(result Result) {
	r.Results = append(r.Results, result)
	r.Summary.Checked++
	switch result.Outcome {
	case OutcomeUpdated:
		r.Summary.Updated++
	case OutcomePlanned:
		r.Summary.Planned++
	case OutcomeNotFound:
		r.Summary.NotFound++
	case OutcomeFailed:
		r.Summary.Failed++
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrStyleNotFound)
}
