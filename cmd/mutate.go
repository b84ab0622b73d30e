package cmd

import (
	"context"
	"fmt"

	"nbcli/core/apperr"
	"nbcli/core/input"
	"nbcli/core/reconcile"
	"nbcli/core/render"
	"nbcli/feature/dcim"
	"nbcli/feature/ipam"

	"go.uber.org/zap"
)

// mutatingAdapter fetches, selects and mutates records of one category.
type mutatingAdapter interface {
	reconcile.Adapter
	reconcile.Mutator
}

func renameDevices(ctx context.Context, a *App, opts Options) error {
	pairs, err := input.ReadRenamePairs(opts.File)
	if err != nil {
		return err
	}

	adapter := dcim.NewNameAdapter(a.client)
	records, err := adapter.Fetch(ctx)
	if err != nil {
		return apperr.Fetch(adapter.Name(), err)
	}
	plan := reconcile.PlanRename(pairs, records, adapter.Select)

	lines := make([]string, 0, len(plan.Actions))
	for _, action := range plan.Actions {
		lines = append(lines, action.Reason)
	}
	if err := printPlan(a, plan, "These devices will be renamed:", lines,
		"These were not found in NetBox and could not be renamed:"); err != nil {
		return err
	}

	return a.apply(ctx, opts, adapter, plan, "RENAME THE DEVICES IN "+opts.File+"?", func(action reconcile.Action) string {
		return fmt.Sprintf("%s changed to %s", action.Key, action.NewName)
	})
}

func deleteDevices(ctx context.Context, a *App, opts Options) error {
	return deleteRecords(ctx, a, opts, dcim.NewNameAdapter(a.client))
}

func deleteAddresses(ctx context.Context, a *App, opts Options) error {
	return deleteRecords(ctx, a, opts, ipam.NewAddressAdapter(a.client))
}

func deleteRecords(ctx context.Context, a *App, opts Options, adapter mutatingAdapter) error {
	report, err := reconcile.ReconcileFile(ctx, adapter, opts.File)
	if err != nil {
		return err
	}
	a.logReport(report)
	plan := reconcile.PlanDelete(report)

	lines := make([]string, 0, len(plan.Actions))
	for _, action := range plan.Actions {
		lines = append(lines, action.Key)
	}
	if err := printPlan(a, plan, "These records will be deleted from NetBox:", lines,
		"These were not found in NetBox and will not be deleted:"); err != nil {
		return err
	}

	return a.apply(ctx, opts, adapter, plan, "ARE YOU SURE YOU WANT TO DELETE EVERYTHING IN "+opts.File+"?", func(action reconcile.Action) string {
		return action.Key + " deleted from NetBox"
	})
}

// printPlan lists planned actions, identifiers missing from NetBox and
// entries skipped for any other reason.
func printPlan(a *App, plan *reconcile.Plan, title string, lines []string, notFoundTitle string) error {
	var notFound, skipped []string
	for _, skip := range plan.Skipped {
		if skip.Reason == reconcile.ReasonNotFound {
			notFound = append(notFound, skip.Key)
			continue
		}
		if skip.Line > 0 {
			skipped = append(skipped, fmt.Sprintf("%s (line %d: %s)", skip.Key, skip.Line, skip.Reason))
		} else {
			skipped = append(skipped, fmt.Sprintf("%s (%s)", skip.Key, skip.Reason))
		}
	}

	if len(lines) > 0 {
		if err := render.List(a.out, title, lines); err != nil {
			return err
		}
	}
	if len(notFound) > 0 {
		if err := render.List(a.out, notFoundTitle, notFound); err != nil {
			return err
		}
	}
	if len(skipped) > 0 {
		if err := render.List(a.out, "Skipped:", skipped); err != nil {
			return err
		}
	}
	return nil
}

// apply asks for confirmation unless --yes was given, then executes plan and
// prints one line per executed action. Dry runs stop before the prompt.
func (a *App) apply(ctx context.Context, opts Options, mutator reconcile.Mutator, plan *reconcile.Plan, question string, done func(reconcile.Action) string) error {
	if len(plan.Actions) == 0 {
		a.logger.Info("No actions required", zap.Int("skipped", plan.Summary.Skipped))
		return nil
	}
	if opts.DryRun {
		a.logger.Info("Dry-run mode: no changes were made", zap.Int("planned", len(plan.Actions)))
		return nil
	}

	confirmed := opts.Yes
	if !confirmed {
		var err error
		if confirmed, err = a.prompter.Confirm(ctx, question); err != nil {
			return err
		}
	}
	if !confirmed {
		_, err := fmt.Fprintf(a.out, "User did not confirm %s\n", opts.Action)
		return err
	}

	recorder, closeJournal, err := a.recorder(opts.Category.String())
	if err != nil {
		return err
	}
	defer closeJournal()

	executed, applyErr := reconcile.ApplyPlan(ctx, mutator, plan, reconcile.Options{Confirmed: true}, recorder)
	for _, action := range plan.Actions[:executed] {
		if _, err := fmt.Fprintln(a.out, done(action)); err != nil {
			return err
		}
	}
	if applyErr != nil {
		return applyErr
	}

	a.logger.Info("Successfully executed actions", zap.Int("count", executed))
	return nil
}
