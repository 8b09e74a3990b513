package smali

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse reads the header directives of a smali file (".class", ".super" and
// ".implements") and builds the Class they declare.  Member bodies are
// skipped.  Malformed directives are kept with an absent class reference;
// only read errors are returned.
func Parse(r io.Reader) (*Class, error) {
	class := &Class{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var block string // directive of the member body being skipped
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}

		directive := fields[0]
		if block != "" {
			if directive == ".end" && len(fields) > 1 && fields[1] == block {
				block = ""
			}
			continue
		}

		switch directive {
		case ".method", ".annotation":
			block = directive[1:]
		case ".class":
			if class.Name == nil && len(class.AccessFlags) == 0 {
				parseClassDirective(class, fields[1:], line)
			}
		case ".super":
			if class.Super == nil {
				class.Super = &SuperStatement{ClassReference: referenceAt(fields, line)}
			}
		case ".implements":
			class.Implements = append(class.Implements, &ImplementsStatement{ClassReference: referenceAt(fields, line)})
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan line %d: %w", line+1, err)
	}

	return class, nil
}

// ParseBytes is Parse over an in-memory file.
func ParseBytes(data []byte) (*Class, error) {
	return Parse(bytes.NewReader(data))
}

// ParseFile reads and parses the named file, returning the class and the raw
// file content.
func ParseFile(filename string) (*Class, []byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, nil, fmt.Errorf("read %q: %w", filename, err)
	}
	class, err := ParseBytes(data)
	if err != nil {
		return nil, nil, fmt.Errorf("parse %q: %w", filename, err)
	}
	return class, data, nil
}

func parseClassDirective(class *Class, args []string, line int) {
	for i, arg := range args {
		if isTypeToken(arg) {
			class.Name = &ClassTypeElement{Descriptor: arg, Line: line}
			class.AccessFlags = args[:i]
			break
		}
	}
	if class.Name == nil {
		class.AccessFlags = args
	}
	for _, flag := range class.AccessFlags {
		if flag == "interface" {
			class.Kind = KindInterface
		}
	}
}

// referenceAt returns the reference node of a one-argument directive, or nil
// when the argument is missing.
func referenceAt(fields []string, line int) *ClassTypeElement {
	if len(fields) < 2 {
		return nil
	}
	return &ClassTypeElement{Descriptor: fields[1], Line: line}
}

func isTypeToken(s string) bool {
	return strings.HasPrefix(s, "L") || strings.HasPrefix(s, "[")
}
