package stubindex

import (
	"fmt"
	"strconv"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/l2obster/smali/pkg/smali"
)

// formatVersion is bumped whenever the encoded layout changes.
const formatVersion = 1

// ToStruct encodes the index as a protobuf Struct:
//
//	{
//	  "version": 1,
//	  "classes": {
//	    "com.foo.Bar": {
//	      "kind": "class",
//	      "hash": "9f86d081884c7d65",
//	      "extends": ["java.lang.Object"],
//	      "implements": ["java.lang.Runnable"]
//	    }
//	  }
//	}
func ToStruct(ix *Index) (*structpb.Struct, error) {
	classes := make(map[string]interface{}, ix.Len())
	for _, e := range ix.Entries() {
		classes[e.Name] = map[string]interface{}{
			"kind":       e.Kind.String(),
			"hash":       formatHash(e.Hash),
			"extends":    stringList(e.Extends),
			"implements": stringList(e.Implements),
		}
	}
	s, err := structpb.NewStruct(map[string]interface{}{
		"version": formatVersion,
		"classes": classes,
	})
	if err != nil {
		return nil, fmt.Errorf("encode stub index: %w", err)
	}
	return s, nil
}

// FromStruct decodes an index encoded by ToStruct.
func FromStruct(s *structpb.Struct) (*Index, error) {
	version := s.GetFields()["version"].GetNumberValue()
	if version != formatVersion {
		return nil, fmt.Errorf("unsupported stub index version %v (want %d)", version, formatVersion)
	}
	ix := NewIndex()
	for name, value := range s.GetFields()["classes"].GetStructValue().GetFields() {
		e, err := decodeEntry(name, value.GetStructValue())
		if err != nil {
			return nil, fmt.Errorf("class %q: %w", name, err)
		}
		ix.Put(e)
	}
	return ix, nil
}

func decodeEntry(name string, s *structpb.Struct) (*Entry, error) {
	if name == "" {
		return nil, fmt.Errorf("empty class name")
	}
	if s == nil {
		return nil, fmt.Errorf("not an object")
	}
	fields := s.GetFields()

	e := &Entry{Name: name}
	switch kind := fields["kind"].GetStringValue(); kind {
	case smali.KindClass.String():
		e.Kind = smali.KindClass
	case smali.KindInterface.String():
		e.Kind = smali.KindInterface
	default:
		return nil, fmt.Errorf("unknown kind %q", kind)
	}

	hash, err := strconv.ParseUint(fields["hash"].GetStringValue(), 16, 64)
	if err != nil {
		return nil, fmt.Errorf("hash: %w", err)
	}
	e.Hash = hash

	if e.Extends, err = decodeNames(fields["extends"]); err != nil {
		return nil, fmt.Errorf("extends: %w", err)
	}
	if e.Implements, err = decodeNames(fields["implements"]); err != nil {
		return nil, fmt.Errorf("implements: %w", err)
	}
	return e, nil
}

func decodeNames(v *structpb.Value) ([]string, error) {
	var names []string
	for i, item := range v.GetListValue().GetValues() {
		s, ok := item.GetKind().(*structpb.Value_StringValue)
		if !ok || s.StringValue == "" {
			return nil, fmt.Errorf("item %d: want a non-empty string", i)
		}
		names = append(names, s.StringValue)
	}
	return names, nil
}

func stringList(names []string) []interface{} {
	list := make([]interface{}, len(names))
	for i, name := range names {
		list[i] = name
	}
	return list
}

func formatHash(h uint64) string {
	return strconv.FormatUint(h, 16)
}
