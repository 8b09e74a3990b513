package smali

import "strings"

var primitiveTypes = map[byte]string{
	'V': "void",
	'Z': "boolean",
	'B': "byte",
	'S': "short",
	'C': "char",
	'I': "int",
	'J': "long",
	'F': "float",
	'D': "double",
}

// CanonicalName converts a smali type descriptor to its canonical (java)
// form.  "Lcom/foo/Bar;" becomes "com.foo.Bar", "[I" becomes "int[]" and
// "[[Lcom/foo/Bar$Baz;" becomes "com.foo.Bar$Baz[][]".  Descriptors that are
// cut short by an in-progress edit ("Lcom/foo") are converted as far as they
// go.  The empty string is returned when nothing nameable remains.
func CanonicalName(descriptor string) string {
	descriptor = strings.TrimSpace(descriptor)
	dims := 0
	for dims < len(descriptor) && descriptor[dims] == '[' {
		dims++
	}
	elem := descriptor[dims:]
	if elem == "" {
		return ""
	}

	var name string
	if elem[0] == 'L' {
		name = strings.TrimSuffix(elem[1:], ";")
		name = strings.TrimSpace(strings.ReplaceAll(name, "/", "."))
	} else if primitive, ok := primitiveTypes[elem[0]]; ok && len(elem) == 1 {
		name = primitive
	} else {
		// not a descriptor, probably a bare java name typed by hand
		name = elem
	}
	if name == "" {
		return ""
	}
	return name + strings.Repeat("[]", dims)
}

// Descriptor converts a canonical java class name back to a smali class
// descriptor.  Array and primitive names are not supported.
func Descriptor(canonicalName string) string {
	return "L" + strings.ReplaceAll(canonicalName, ".", "/") + ";"
}
