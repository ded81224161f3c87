package charba

// FuncKind tags the small set of deferred byte functions charba
// supports on SST register updates.
type FuncKind int

const (
	// Identity leaves the input symbol unchanged.
	Identity FuncKind = iota
	// ToUpper maps 'a'-'z' to 'A'-'Z' and leaves everything else alone.
	ToUpper
	// ToLower maps 'A'-'Z' to 'a'-'z' and leaves everything else alone.
	ToLower
)

// Func is a deferred BA function evaluated against the current input
// symbol during a functional register update (spec.md §3, "F = BA
// function").
type Func struct {
	Kind FuncKind
}
