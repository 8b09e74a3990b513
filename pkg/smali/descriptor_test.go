package smali

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCanonicalName(t *testing.T) {
	for name, tc := range map[string]struct {
		descriptor string
		want       string
	}{
		"degenerate":      {},
		"whitespace":      {descriptor: "  ", want: ""},
		"class":           {descriptor: "Lcom/foo/Bar;", want: "com.foo.Bar"},
		"default package": {descriptor: "LBar;", want: "Bar"},
		"inner class":     {descriptor: "Lcom/foo/Bar$Baz;", want: "com.foo.Bar$Baz"},
		"primitive":       {descriptor: "I", want: "int"},
		"primitive array": {descriptor: "[I", want: "int[]"},
		"class array":     {descriptor: "[[Lcom/foo/Bar;", want: "com.foo.Bar[][]"},
		"unterminated":    {descriptor: "Lcom/foo", want: "com.foo"},
		"empty class":     {descriptor: "L;", want: ""},
		"bare L":          {descriptor: "L", want: ""},
		"array only":      {descriptor: "[[", want: ""},
		"java name":       {descriptor: "com.foo.Bar", want: "com.foo.Bar"},
		"bare letter":     {descriptor: "X", want: "X"},
		"bare name":       {descriptor: "Xy", want: "Xy"},
		"letter array":    {descriptor: "[X", want: "X[]"},
	} {
		t.Run(name, func(t *testing.T) {
			got := CanonicalName(tc.descriptor)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestDescriptor(t *testing.T) {
	if got := Descriptor("com.foo.Bar"); got != "Lcom/foo/Bar;" {
		t.Errorf("want Lcom/foo/Bar;, got %s", got)
	}
	if got := CanonicalName(Descriptor("com.foo.Bar$Baz")); got != "com.foo.Bar$Baz" {
		t.Errorf("round trip: got %s", got)
	}
}
