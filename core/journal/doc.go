// Package journal records every executed rename and delete in a SQL table.
//
// Each invocation that mutates NetBox opens a run (a UUID shared by its
// entries) and hands the Journal to reconcile.ApplyPlan as its Recorder.
// The history command reads entries back with Recent.
package journal
