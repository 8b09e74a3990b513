package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/l2obster/smali/pkg/reflist"
	"github.com/l2obster/smali/pkg/smali"
)

// report writes one block per unit:
//
//	com.foo.Bar (class, tree) Foo.smali
//	  extends: com.foo.Base<source>
//	  implements: java.lang.Runnable<predefined> com.foo.Missing<unresolved>
func report(out io.Writer, resolver *reflist.Resolver, units []*unit, dump bool) error {
	for _, u := range units {
		source := "tree"
		if u.cached {
			source = "stub"
		}
		if _, err := fmt.Fprintf(out, "%s (%s, %s) %s\n", displayName(u.class), u.class.Kind, source, u.filename); err != nil {
			return err
		}
		for _, role := range smali.Roles {
			list := resolver.ReferencedTypes(u.class, role)
			var line strings.Builder
			fmt.Fprintf(&line, "  %s:", role)
			for i := 0; i < list.Len(); i++ {
				line.WriteString(" " + list.At(i).String())
			}
			line.WriteString("\n")
			if _, err := io.WriteString(out, line.String()); err != nil {
				return err
			}
			if dump {
				spew.Fdump(out, list.Types())
			}
		}
	}
	return nil
}

func displayName(class *smali.Class) string {
	if name := class.QualifiedName(); name != "" {
		return name
	}
	return "<anonymous>"
}
