package sat

// assignmentRecord holds everything known about one variable's current
// assignment: its value, whether it was set by decision or by implication,
// the reason clause if it was an implication, and the decision level it
// was set at.
type assignmentRecord struct {
	value      LBool
	isDecision bool
	reason     *Clause // nil for decisions and for unassigned variables
	level      int     // -1 when unassigned
}

// AssignmentMap is an O(1) variable -> assignment lookup table. Variables
// are dense integers starting at 1, so a flat slice indexed by variable ID
// (with index 0 unused) is the natural representation — grounded on the
// teacher's parallel assigns/reason/level slices in
// internal/sat/solver.go.
type AssignmentMap struct {
	records []assignmentRecord
}

// newAssignmentMap returns an AssignmentMap with room for n variables.
func newAssignmentMap(n int) *AssignmentMap {
	records := make([]assignmentRecord, n+1)
	for i := range records {
		records[i].level = -1
	}
	return &AssignmentMap{records: records}
}

// numVars returns the number of variables the map has room for.
func (m *AssignmentMap) numVars() int {
	return len(m.records) - 1
}

// Value returns the current value of variable v, or Unknown if unassigned.
func (m *AssignmentMap) Value(v int) LBool {
	return m.records[v].value
}

// Get returns the full assignment record of v. ok is false if v is
// currently unassigned.
func (m *AssignmentMap) Get(v int) (value LBool, isDecision bool, reason *Clause, ok bool) {
	r := m.records[v]
	if r.value == Unknown {
		return Unknown, false, nil, false
	}
	return r.value, r.isDecision, r.reason, true
}

// Level returns the decision level at which v was assigned, or -1 if it is
// currently unassigned.
func (m *AssignmentMap) Level(v int) int {
	return m.records[v].level
}

// IsDecision reports whether v's current assignment is a decision rather
// than an implication. Must only be called on an assigned variable.
func (m *AssignmentMap) IsDecision(v int) bool {
	return m.records[v].isDecision
}

// Reason returns the reason clause for v's current assignment, or nil if v
// is a decision or is unassigned.
func (m *AssignmentMap) Reason(v int) *Clause {
	return m.records[v].reason
}

// set records a decision assignment for v (reason is always nil).
func (m *AssignmentMap) set(v int, value LBool, level int) {
	m.records[v] = assignmentRecord{value: value, isDecision: true, level: level}
}

// setImplied records an implication assignment for v, justified by reason.
// An assignment is either a decision with no reason or an implication with
// a non-empty reason; a nil or variable-less reason here is a programmer
// error.
func (m *AssignmentMap) setImplied(v int, value LBool, level int, reason *Clause) {
	if reason == nil || reason.Len() == 0 {
		invariant("setImplied: empty reason for variable %d", v)
	}
	if !reason.ContainsVar(v) {
		invariant("setImplied: reason %s does not contain variable %d", reason, v)
	}
	m.records[v] = assignmentRecord{value: value, isDecision: false, reason: reason, level: level}
}

// clear removes v's assignment, returning it to Unknown.
func (m *AssignmentMap) clear(v int) {
	m.records[v] = assignmentRecord{level: -1}
}
