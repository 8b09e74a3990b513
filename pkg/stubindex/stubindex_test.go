package stubindex

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/bazelbuild/rules_go/go/tools/bazel"
	"github.com/google/go-cmp/cmp"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/l2obster/smali/pkg/reflist"
	"github.com/l2obster/smali/pkg/smali"
	"github.com/l2obster/smali/pkg/testutil"
)

const barSmali = `.class public Lcom/foo/Bar;
.super Lcom/foo/Base;
.implements Ljava/lang/Runnable;
.implements
.implements Ljava/io/Serializable;
`

const apiSmali = `.class public abstract interface Lcom/foo/Api;
.super Ljava/lang/Object;
.implements Lcom/foo/Foo;
.implements Lcom/foo/Bar;
`

func mustParse(t *testing.T, src string) *smali.Class {
	t.Helper()
	class, err := smali.ParseBytes([]byte(src))
	if err != nil {
		t.Fatal(err)
	}
	return class
}

func TestBuild(t *testing.T) {
	for name, tc := range map[string]struct {
		src  string
		want *Entry
	}{
		"class": {
			src: barSmali,
			want: &Entry{
				Name:       "com.foo.Bar",
				Kind:       smali.KindClass,
				Hash:       Hash([]byte(barSmali)),
				Extends:    []string{"com.foo.Base"},
				Implements: []string{"java.lang.Runnable", "java.io.Serializable"},
			},
		},
		"interface": {
			src: apiSmali,
			want: &Entry{
				Name:    "com.foo.Api",
				Kind:    smali.KindInterface,
				Hash:    Hash([]byte(apiSmali)),
				Extends: []string{"com.foo.Foo", "com.foo.Bar"},
			},
		},
	} {
		t.Run(name, func(t *testing.T) {
			got := Build(mustParse(t, tc.src), []byte(tc.src))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

// TestIndexAgreesWithTree checks that a freshly built index answers queries
// exactly as the syntax tree does.
func TestIndexAgreesWithTree(t *testing.T) {
	ix := NewIndex()
	for _, src := range []string{barSmali, apiSmali} {
		ix.Put(Build(mustParse(t, src), []byte(src)))
	}
	provider := NewProvider(ix, WithLogger(testutil.NewTestLogger(t)))
	r := reflist.NewResolver()

	for _, src := range []string{barSmali, apiSmali} {
		tree := mustParse(t, src)
		cached := mustParse(t, src)
		if !provider.Attach(cached, []byte(src)) {
			t.Fatalf("stubs not attached for %s", cached.QualifiedName())
		}
		for _, role := range smali.Roles {
			if diff := cmp.Diff(r.ReferenceNames(tree, role), r.ReferenceNames(cached, role)); diff != "" {
				t.Errorf("%s %s (-tree +cached):\n%s", tree.QualifiedName(), role, diff)
			}
		}
	}
}

func TestProviderAttach(t *testing.T) {
	ix := NewIndex()
	ix.Put(&Entry{
		Name:       "com.foo.Bar",
		Hash:       Hash([]byte(barSmali)),
		Extends:    []string{"X"},
		Implements: []string{"Y", "Z"},
	})
	provider := NewProvider(ix, WithLogger(testutil.NewTestLogger(t)))

	t.Run("matching hash", func(t *testing.T) {
		class := mustParse(t, barSmali)
		if !provider.Attach(class, []byte(barSmali)) {
			t.Fatal("expected stubs to be attached")
		}
		stub, ok := class.Stub(smali.Implements)
		if !ok {
			t.Fatal("no implements stub")
		}
		if diff := cmp.Diff([]string{"Y", "Z"}, stub.Names); diff != "" {
			t.Errorf("(-want +got):\n%s", diff)
		}
	})

	t.Run("stale", func(t *testing.T) {
		edited := barSmali + ".implements LNew;\n"
		class := mustParse(t, edited)
		if provider.Attach(class, []byte(edited)) {
			t.Fatal("stale entry should not be attached")
		}
		if class.HasStubs() {
			t.Error("class should stay tree-backed")
		}
	})

	t.Run("unknown class", func(t *testing.T) {
		class := mustParse(t, apiSmali)
		if provider.Attach(class, []byte(apiSmali)) {
			t.Fatal("unexpected attach")
		}
	})
}

func TestReadWriteFile(t *testing.T) {
	want := NewIndex()
	want.Put(Build(mustParse(t, barSmali), []byte(barSmali)))
	want.Put(Build(mustParse(t, apiSmali), []byte(apiSmali)))

	tmpDir, err := bazel.NewTmpDir("")
	if err != nil {
		t.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	for _, ext := range []string{".json", ".pbtext", ".pb"} {
		t.Run(ext, func(t *testing.T) {
			filename := filepath.Join(tmpDir, "stubs"+ext)
			if err := WriteFile(filename, want); err != nil {
				t.Fatal(err)
			}
			got, err := ReadFile(filename)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(want.Entries(), got.Entries()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestWriteToIsDeterministic(t *testing.T) {
	ix := NewIndex()
	ix.Put(Build(mustParse(t, barSmali), []byte(barSmali)))
	ix.Put(Build(mustParse(t, apiSmali), []byte(apiSmali)))

	var a, b bytes.Buffer
	if err := WriteTo("stubs.pb", ix, &a); err != nil {
		t.Fatal(err)
	}
	if err := WriteTo("stubs.pb", ix, &b); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("binary encoding is not deterministic")
	}
}

func TestFromStructErrors(t *testing.T) {
	for name, tc := range map[string]struct {
		in      map[string]interface{}
		wantErr string
	}{
		"missing version": {
			in:      map[string]interface{}{},
			wantErr: "unsupported stub index version 0 (want 1)",
		},
		"unknown kind": {
			in: map[string]interface{}{
				"version": 1,
				"classes": map[string]interface{}{
					"a.B": map[string]interface{}{"kind": "enum", "hash": "1"},
				},
			},
			wantErr: `class "a.B": unknown kind "enum"`,
		},
		"bad hash": {
			in: map[string]interface{}{
				"version": 1,
				"classes": map[string]interface{}{
					"a.B": map[string]interface{}{"kind": "class", "hash": "xyz"},
				},
			},
			wantErr: `class "a.B": hash: strconv.ParseUint: parsing "xyz": invalid syntax`,
		},
		"non-string name": {
			in: map[string]interface{}{
				"version": 1,
				"classes": map[string]interface{}{
					"a.B": map[string]interface{}{
						"kind":    "class",
						"hash":    "1",
						"extends": []interface{}{1.0},
					},
				},
			},
			wantErr: `class "a.B": extends: item 0: want a non-empty string`,
		},
	} {
		t.Run(name, func(t *testing.T) {
			s, err := structpb.NewStruct(tc.in)
			if err != nil {
				t.Fatal(err)
			}
			_, err = FromStruct(s)
			if err == nil {
				t.Fatal("expected error")
			}
			if diff := cmp.Diff(tc.wantErr, err.Error()); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	a := NewIndex()
	a.Put(&Entry{Name: "a.A", Hash: 1, Extends: []string{"java.lang.Object"}})
	a.Put(&Entry{Name: "a.Shared", Hash: 2})
	b := NewIndex()
	b.Put(&Entry{Name: "a.Shared", Hash: 3})
	b.Put(&Entry{Name: "b.B", Hash: 4})
	c := NewIndex()
	c.Put(&Entry{Name: "a.A", Hash: 1, Extends: []string{"java.lang.Object"}})

	var warnings []string
	warn := func(format string, args ...interface{}) {
		warnings = append(warnings, format)
	}
	merged := Merge(warn, a, b, c)

	var names []string
	for _, e := range merged.Entries() {
		names = append(names, e.Name)
	}
	if diff := cmp.Diff([]string{"a.A", "a.Shared", "b.B"}, names); diff != "" {
		t.Errorf("names (-want +got):\n%s", diff)
	}
	if shared, _ := merged.Get("a.Shared"); shared.Hash != 2 {
		t.Errorf("first entry should win, got hash %d", shared.Hash)
	}
	if len(warnings) != 1 {
		t.Errorf("want 1 warning for the conflicting duplicate, got %d", len(warnings))
	}
}
