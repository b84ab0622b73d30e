package reconcile

import (
	"context"

	"nbcli/core/apperr"
	"nbcli/core/input"
)

// Reconcile partitions identifiers into those carried by a record and those
// that are not. It is a pure function: records are indexed once and nothing
// is mutated. Records whose field is absent or empty never match.
func Reconcile(identifiers []string, records []Record, selector FieldSelector, normalize Normalizer) *Report {
	index := make(map[string][]Record, len(records))
	for _, rec := range records {
		value, ok := selector(rec)
		if !ok {
			continue
		}
		key := normalize(value)
		if key == "" {
			continue
		}
		index[key] = append(index[key], rec)
	}

	matched := make(map[string]struct{})
	unmatched := make(map[string]struct{})
	for _, raw := range identifiers {
		key := normalize(raw)
		if key == "" {
			continue
		}
		if _, ok := index[key]; ok {
			matched[key] = struct{}{}
		} else {
			unmatched[key] = struct{}{}
		}
	}

	report := &Report{
		Matched:   sortedKeys(matched),
		Unmatched: sortedKeys(unmatched),
		Records:   make(map[string][]Record, len(matched)),
	}
	for key := range matched {
		report.Records[key] = index[key]
	}
	return report
}

// ReconcileFile reads identifiers from path, fetches the adapter's collection
// and reconciles both. The file is read before anything is fetched, so a
// missing file never triggers a request.
func ReconcileFile(ctx context.Context, adapter Adapter, path string) (*Report, error) {
	identifiers, err := input.ReadIdentifiers(path)
	if err != nil {
		return nil, err
	}
	return ReconcileIdentifiers(ctx, adapter, identifiers)
}

// ReconcileIdentifiers fetches the adapter's collection and reconciles identifiers against it.
func ReconcileIdentifiers(ctx context.Context, adapter Adapter, identifiers []string) (*Report, error) {
	records, err := adapter.Fetch(ctx)
	if err != nil {
		return nil, apperr.Fetch(adapter.Name(), err)
	}

	report := Reconcile(identifiers, records, adapter.Select, NewNormalizer(adapter.Kind(), identifiers))
	report.Kind = adapter.Kind()
	return report, nil
}
