package generics

import (
	"go/parser"
	"go/token"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enumevent-generator/internal/decl"
)

func TestPhantomType(t *testing.T) {
	assert.Empty(t, PhantomType(nil))
	assert.Equal(t, "[0]*T", PhantomType([]string{"T"}))
	assert.Equal(t, "[0]*struct{ _ T; _ U }", PhantomType([]string{"T", "U"}))

	_, err := parser.ParseExpr(PhantomType([]string{"A", "B", "C"}))
	assert.NoError(t, err)
}

func TestParamList(t *testing.T) {
	tests := []struct {
		name   string
		params []decl.TypeParam
		where  []decl.Predicate
		want   string
	}{
		{"none", nil, nil, ""},
		{
			"defaults",
			[]decl.TypeParam{{Name: "T", Constraint: "any"}, {Name: "U"}},
			nil,
			"[T any, U any]",
		},
		{
			"bounds kept",
			[]decl.TypeParam{{Name: "K", Constraint: "comparable"}, {Name: "V", Constraint: "fmt.Stringer"}},
			nil,
			"[K comparable, V fmt.Stringer]",
		},
		{
			"where merged",
			[]decl.TypeParam{{Name: "T", Constraint: "comparable"}, {Name: "U", Constraint: "any"}},
			[]decl.Predicate{{Param: "T", Constraint: "fmt.Stringer"}, {Param: "U", Constraint: "io.Reader"}},
			"[T interface{ comparable; fmt.Stringer }, U io.Reader]",
		},
		{
			"union",
			[]decl.TypeParam{{Name: "N", Constraint: "~int | ~float64"}},
			nil,
			"[N ~int | ~float64]",
		},
		{
			"pointer constraint wrapped",
			[]decl.TypeParam{{Name: "P", Constraint: "*bytes.Buffer"}},
			nil,
			"[P interface{ *bytes.Buffer }]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParamList(tt.params, tt.where)
			assert.Equal(t, tt.want, got)

			if got == "" {
				return
			}

			src := "package p\ntype X" + got + " struct{}\n"
			_, err := parser.ParseFile(token.NewFileSet(), "x.go", src, 0)
			require.NoError(t, err, src)
		})
	}
}

func TestArgList(t *testing.T) {
	assert.Empty(t, ArgList(nil))
	assert.Equal(t, "[T]", ArgList([]decl.TypeParam{{Name: "T"}}))
	assert.Equal(t, "[K, V]", ArgList([]decl.TypeParam{{Name: "K"}, {Name: "V"}}))
}
