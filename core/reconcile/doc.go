// Package reconcile compares a local list of identifiers with a collection
// fetched from NetBox and turns the outcome into mutation plans.
//
// # Architecture
//
// The package consists of three parts:
//
// 1. Engine: Reconcile normalizes both sides, indexes the records once and
// partitions the identifiers into matched and unmatched. It never mutates
// the remote collection.
//
// 2. Adapter: category-specific fetching and field selection (device name,
// serial, asset tag, IP address). Features implement adapters on top of the
// NetBox client.
//
// 3. Plan: PlanDelete and PlanRename build a list of actions; ApplyPlan runs
// them through a Mutator only when the operator confirmed and it is not a dry run.
//
// # Normalization
//
// Identifiers are trimmed. IP addresses lose their "/NN" mask unless the first
// identifier of the list carries one, and are compared in canonical form.
//
// # Usage Example
//
//	adapter := dcim.NewNameAdapter(client)
//	report, err := reconcile.ReconcileFile(ctx, adapter, "devices.txt")
//	for _, id := range report.Select(reverse) {
//	    fmt.Println(id)
//	}
//
//	plan := reconcile.PlanDelete(report)
//	executed, err := reconcile.ApplyPlan(ctx, mutator, plan, reconcile.Options{Confirmed: true}, journal)
package reconcile
