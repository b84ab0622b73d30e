package reconcile

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"nbcli/core/input"
)

// Skip reasons.
const (
	ReasonNotFound  = "not found in NetBox"
	ReasonSameName  = "new name equals old name"
	ReasonNameTaken = "new name already in use"
	ReasonAmbiguous = "old name matches more than one device"
)

// PlanDelete plans one delete action per record of every matched identifier.
// Unmatched identifiers are reported as skipped.
func PlanDelete(report *Report) *Plan {
	plan := &Plan{Report: report}
	plan.Summary.Entries = report.Total()

	seen := make(map[int]struct{})
	for _, key := range report.Matched {
		for _, rec := range report.Records[key] {
			if _, dup := seen[rec.RecordID()]; dup {
				continue
			}
			seen[rec.RecordID()] = struct{}{}
			plan.Actions = append(plan.Actions, Action{
				Type:     ActionDelete,
				Key:      key,
				RecordID: rec.RecordID(),
				Reason:   "listed in input",
				Record:   rec,
			})
			plan.Summary.DeleteActions++
		}
	}

	for _, key := range report.Unmatched {
		plan.Skipped = append(plan.Skipped, Skip{Key: key, Reason: ReasonNotFound})
	}
	plan.Summary.Skipped = len(plan.Skipped)
	return plan
}

// PlanRename plans one rename action per pair whose old name exists exactly once.
// Pairs are skipped when the old name is unknown or ambiguous, when the new name
// equals the old one, or when the new name is already used by another record or
// by an earlier pair.
func PlanRename(pairs []input.RenamePair, records []Record, selector FieldSelector) *Plan {
	byName := make(map[string][]Record, len(records))
	for _, rec := range records {
		name, ok := selector(rec)
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		byName[name] = append(byName[name], rec)
	}

	plan := &Plan{}
	plan.Summary.Entries = len(pairs)
	claimed := make(map[string]struct{})

	skip := func(p input.RenamePair, key, reason string) {
		plan.Skipped = append(plan.Skipped, Skip{Key: key, Reason: reason, Line: p.Line})
	}

	for _, pair := range pairs {
		oldName := strings.TrimSpace(pair.OldName)
		newName := strings.TrimSpace(pair.NewName)

		if oldName == newName {
			skip(pair, oldName, ReasonSameName)
			continue
		}

		matches := byName[oldName]
		switch len(matches) {
		case 0:
			skip(pair, oldName, ReasonNotFound)
			continue
		case 1:
		default:
			skip(pair, oldName, ReasonAmbiguous)
			continue
		}

		if _, taken := byName[newName]; taken {
			skip(pair, oldName, ReasonNameTaken)
			continue
		}
		if _, taken := claimed[newName]; taken {
			skip(pair, oldName, ReasonNameTaken)
			continue
		}
		claimed[newName] = struct{}{}

		rec := matches[0]
		plan.Actions = append(plan.Actions, Action{
			Type:     ActionRename,
			Key:      oldName,
			RecordID: rec.RecordID(),
			NewName:  newName,
			Reason:   fmt.Sprintf("%s -> %s", oldName, newName),
			Record:   rec,
		})
		plan.Summary.RenameActions++
	}

	plan.Summary.Skipped = len(plan.Skipped)
	return plan
}

// ApplyPlan executes the actions in a plan.
// Returns the number of actions executed and any error encountered.
// Requires opts.Confirmed=true and opts.DryRun=false to actually execute.
// Execution stops at the first failure; every attempted action is passed to
// recorder (which may be nil). executed counts mutations NetBox applied, even
// when recording them fails afterwards.
func ApplyPlan(ctx context.Context, mutator Mutator, plan *Plan, opts Options, recorder Recorder) (executed int, err error) {
	// Safety check: do not execute if not confirmed or dry-run
	if !opts.Executes() || plan == nil || len(plan.Actions) == 0 {
		return 0, nil
	}
	if mutator == nil {
		return 0, fmt.Errorf("no mutator for %d planned actions", len(plan.Actions))
	}

	var deletes, renames []Action
	for _, action := range plan.Actions {
		switch action.Type {
		case ActionDelete:
			deletes = append(deletes, action)
		case ActionRename:
			renames = append(renames, action)
		default:
			return 0, fmt.Errorf("unknown action type %q", action.Type)
		}
	}

	record := func(action Action, actErr error) error {
		if recorder == nil {
			return nil
		}
		if err := recorder.RecordAction(ctx, action, actErr); err != nil {
			return fmt.Errorf("failed to record %s of %s: %w", action.Type, action.Key, err)
		}
		return nil
	}

	if len(deletes) > 0 {
		if batch, ok := mutator.(BatchDeleter); ok {
			recs := make([]Record, 0, len(deletes))
			for _, action := range deletes {
				recs = append(recs, action.Record)
			}
			batchErr := batch.DeleteBatch(ctx, recs)
			if batchErr == nil {
				executed += len(deletes)
			}
			// The batch already happened; record every action before reporting a journal failure.
			var recordErr error
			for _, action := range deletes {
				if err := record(action, batchErr); err != nil && recordErr == nil {
					recordErr = err
				}
			}
			if batchErr != nil {
				return executed, errors.Join(fmt.Errorf("failed to batch delete %d records: %w", len(recs), batchErr), recordErr)
			}
			if recordErr != nil {
				return executed, recordErr
			}
		} else {
			for _, action := range deletes {
				if err := ctx.Err(); err != nil {
					return executed, err
				}
				delErr := mutator.Delete(ctx, action.Record)
				if delErr == nil {
					executed++
				}
				if err := record(action, delErr); err != nil {
					return executed, errors.Join(err, delErr)
				}
				if delErr != nil {
					return executed, fmt.Errorf("failed to delete %s: %w", action.Key, delErr)
				}
			}
		}
	}

	for _, action := range renames {
		if err := ctx.Err(); err != nil {
			return executed, err
		}
		renameErr := mutator.Rename(ctx, action.Record, action.NewName)
		if renameErr == nil {
			executed++
		}
		if err := record(action, renameErr); err != nil {
			return executed, errors.Join(err, renameErr)
		}
		if renameErr != nil {
			return executed, fmt.Errorf("failed to rename %s to %s: %w", action.Key, action.NewName, renameErr)
		}
	}

	return executed, nil
}
