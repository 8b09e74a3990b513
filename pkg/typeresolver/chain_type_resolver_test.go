package typeresolver_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/l2obster/smali/pkg/typeresolver"
	"github.com/l2obster/smali/pkg/typeresolver/mocks"
)

func TestChainTypeResolver(t *testing.T) {
	local := typeresolver.NewScope()
	if err := local.PutType(typeresolver.NewType("com.foo.Bar", "local", "Bar.smali")); err != nil {
		t.Fatal(err)
	}

	for name, tc := range map[string]struct {
		name   string
		want   *typeresolver.Type
		wantOk bool
	}{
		"first in chain wins": {
			name:   "com.foo.Bar",
			want:   typeresolver.NewType("com.foo.Bar", "local", "Bar.smali"),
			wantOk: true,
		},
		"falls through to predefined": {
			name:   "java.lang.Object",
			want:   typeresolver.NewType("java.lang.Object", "predefined", ""),
			wantOk: true,
		},
		"unresolved": {
			name: "com.foo.Missing",
		},
	} {
		t.Run(name, func(t *testing.T) {
			chain := typeresolver.NewChainTypeResolver(local, typeresolver.NewPredefinedScope(), typeresolver.Unresolved)
			got, ok := chain.ResolveType(tc.name)
			if ok != tc.wantOk {
				t.Fatalf("ok: want %t, got %t", tc.wantOk, ok)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestMemoTypeResolver(t *testing.T) {
	want := typeresolver.NewType("com.foo.Bar", "test", "")

	next := mocks.NewTypeResolver(t)
	next.On("ResolveType", "com.foo.Bar").Return(want, true).Once()
	next.On("ResolveType", "com.foo.Missing").Return(nil, false).Twice()

	memo := typeresolver.NewMemoTypeResolver(next)
	for i := 0; i < 2; i++ {
		got, ok := memo.ResolveType("com.foo.Bar")
		if !ok {
			t.Fatal("expected com.foo.Bar to resolve")
		}
		if got != want {
			t.Errorf("want memoized pointer %p, got %p", want, got)
		}
		if _, ok := memo.ResolveType("com.foo.Missing"); ok {
			t.Error("expected com.foo.Missing to be unresolved")
		}
	}
}
