// Package synth is the method-body synthesiser: statement generation and
// expression generation live in the same package because the two layers
// recurse into each other constantly.
package synth

// Target selects the annotation style component F (the module package)
// emits around a synthesised body, and gates whether method calls and
// future gets may appear in the expression synthesiser.
type Target int

const (
	// Crowbar emits typed [Spec: ...] annotations.
	Crowbar Target = iota
	// NullableExtension emits untyped [NonNull]/[Nullable] annotations.
	NullableExtension
	// Location emits no annotations and disables synchronous calls,
	// asynchronous calls and future gets.
	Location
)

func (t Target) String() string {
	switch t {
	case Crowbar:
		return "crowbar"
	case NullableExtension:
		return "nullable-extension"
	case Location:
		return "location"
	default:
		return "unknown"
	}
}

// ParseTarget parses a --target flag value. ok is false for any string
// other than the three recognised spellings.
func ParseTarget(s string) (t Target, ok bool) {
	switch s {
	case "crowbar":
		return Crowbar, true
	case "nullable-extension":
		return NullableExtension, true
	case "location":
		return Location, true
	default:
		return 0, false
	}
}

// Options configures a Generator.
type Options struct {
	NumRandClasses  uint32
	MaxDepth        uint8
	BranchRate      float64
	DeclareToAssign float64
	ElseRatio       float64
	AvgMethBodySize uint32
	AvgBlockSize    uint32
	Target          Target

	// BuggyBoolOperators renders `||`/`&&` as `==` at the or/and expression
	// levels. Defaults to true for corpus-statistics comparability across
	// runs.
	BuggyBoolOperators bool

	// EnableUnaryMinus turns on the unary-minus expression level, which is
	// otherwise never emitted. Defaults to false.
	EnableUnaryMinus bool
}

// DefaultOptions returns the baseline generator configuration.
func DefaultOptions() Options {
	return Options{
		NumRandClasses:      100,
		MaxDepth:            3,
		BranchRate:          0.2,
		DeclareToAssign:     0.3,
		ElseRatio:           0.7,
		AvgMethBodySize:     10,
		AvgBlockSize:        4,
		Target:              NullableExtension,
		BuggyBoolOperators:  true,
		EnableUnaryMinus:    false,
	}
}
