package reconcile

import "sort"

// Record is a remote inventory entry taking part in a reconciliation.
type Record interface {
	// RecordID returns the NetBox object ID.
	RecordID() int
	// DisplayName returns a human readable name for reports and logs.
	DisplayName() string
}

// FieldSelector returns the identifying field of a record.
// ok is false when the record does not carry the field (null or empty).
type FieldSelector func(rec Record) (value string, ok bool)

// Normalizer maps a raw identifier to its comparable form.
type Normalizer func(raw string) string

// IdentifierKind names the field an identifier list is compared against.
type IdentifierKind string

const (
	// KindName compares device names.
	KindName IdentifierKind = "name"
	// KindSerial compares device serial numbers.
	KindSerial IdentifierKind = "serial"
	// KindAssetTag compares device asset tags.
	KindAssetTag IdentifierKind = "asset_tag"
	// KindAddress compares IP addresses.
	KindAddress IdentifierKind = "address"
)

// Report is the outcome of one reconciliation.
// Matched and Unmatched are disjoint, sorted, and together hold every
// normalized identifier of the input exactly once.
type Report struct {
	// Kind is the field the identifiers were compared against.
	Kind IdentifierKind `json:"kind"`

	// Matched holds identifiers present in the remote collection.
	Matched []string `json:"matched"`

	// Unmatched holds identifiers absent from the remote collection.
	Unmatched []string `json:"unmatched"`

	// Records maps each matched identifier to the records carrying it.
	Records map[string][]Record `json:"-"`
}

// Select returns Matched, or Unmatched when reverse is set.
func (r *Report) Select(reverse bool) []string {
	if reverse {
		return r.Unmatched
	}
	return r.Matched
}

// Total returns the number of distinct normalized identifiers.
func (r *Report) Total() int {
	return len(r.Matched) + len(r.Unmatched)
}

// MatchedRecords returns the records of every matched identifier in
// identifier order, each record once.
func (r *Report) MatchedRecords() []Record {
	seen := make(map[int]struct{})
	var out []Record
	for _, key := range r.Matched {
		for _, rec := range r.Records[key] {
			if _, dup := seen[rec.RecordID()]; dup {
				continue
			}
			seen[rec.RecordID()] = struct{}{}
			out = append(out, rec)
		}
	}
	return out
}

// ActionType represents the type of mutation action.
type ActionType string

const (
	// ActionDelete deletes a record.
	ActionDelete ActionType = "delete"
	// ActionRename renames a device.
	ActionRename ActionType = "rename"
)

// Action represents a planned mutation operation.
type Action struct {
	// Type specifies the action to perform.
	Type ActionType `json:"type"`

	// Key is the identifier that selected the record.
	Key string `json:"key"`

	// RecordID is the NetBox object ID.
	RecordID int `json:"record_id"`

	// NewName is the target name. Only populated for ActionRename.
	NewName string `json:"new_name,omitempty"`

	// Reason explains why this action is needed.
	Reason string `json:"reason"`

	// Record is the record the action applies to.
	Record Record `json:"-"`
}

// Skip is an input entry that produced no action.
type Skip struct {
	Key    string `json:"key"`
	Reason string `json:"reason"`
	// Line is the 1-based input line, when known.
	Line int `json:"line,omitempty"`
}

// Plan contains planned actions and the entries that were skipped.
type Plan struct {
	// Report is the reconciliation the plan was built from. Nil for rename plans.
	Report *Report `json:"report,omitempty"`

	// Actions contains planned mutation operations.
	Actions []Action `json:"actions"`

	// Skipped lists entries without an action.
	Skipped []Skip `json:"skipped"`

	// Summary provides aggregate counts.
	Summary PlanSummary `json:"summary"`
}

// PlanSummary provides aggregate statistics for a plan.
type PlanSummary struct {
	// Entries is the number of distinct input entries considered.
	Entries int `json:"entries"`

	// DeleteActions counts planned deletions.
	DeleteActions int `json:"delete_actions"`

	// RenameActions counts planned renames.
	RenameActions int `json:"rename_actions"`

	// Skipped counts entries without an action.
	Skipped int `json:"skipped"`
}

// Options controls whether a plan is executed.
type Options struct {
	// DryRun prevents execution of any mutations if true.
	DryRun bool

	// Confirmed indicates the operator confirmed the destructive actions.
	// If false, mutations will not execute regardless of DryRun.
	Confirmed bool
}

// Executes reports whether ApplyPlan will perform mutations with these options.
func (o Options) Executes() bool {
	return o.Confirmed && !o.DryRun
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
