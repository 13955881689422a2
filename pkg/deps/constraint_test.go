package deps

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		dep      Dependency
		expected ConstraintKind
	}{
		{name: "Caret", dep: Dependency{Constraint: "^1.2.0"}, expected: KindCaret},
		{name: "Caret with build", dep: Dependency{Constraint: "^1.2.0+3"}, expected: KindCaret},
		{name: "Exact", dep: Dependency{Constraint: "6.1.1"}, expected: KindExact},
		{name: "Range", dep: Dependency{Constraint: ">=1.0.0 <2.0.0"}, expected: KindRange},
		{name: "Any", dep: Dependency{Constraint: "any"}, expected: KindAny},
		{name: "Empty", dep: Dependency{Constraint: ""}, expected: KindAny},
		{name: "Garbage caret", dep: Dependency{Constraint: "^latest"}, expected: KindInvalid},
		{name: "Garbage range", dep: Dependency{Constraint: ">=one"}, expected: KindInvalid},
		{name: "Garbage", dep: Dependency{Constraint: "banana"}, expected: KindInvalid},
		{name: "SDK", dep: Dependency{Constraint: "sdk: flutter", Source: SourceSDK}, expected: KindSDK},
		{name: "Git", dep: Dependency{Constraint: "git: x", Source: SourceGit}, expected: KindGit},
		{name: "Path", dep: Dependency{Constraint: "path: ../x", Source: SourcePath}, expected: KindPath},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.dep))
		})
	}
}
