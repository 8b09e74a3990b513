package stubindex

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/known/structpb"
)

type marshaler func(m protoreflect.ProtoMessage) ([]byte, error)
type unmarshaler func(b []byte, m protoreflect.ProtoMessage) error

func unmarshalerForFilename(filename string) unmarshaler {
	switch filepath.Ext(filename) {
	case ".json":
		return protojson.Unmarshal
	case ".pbtext":
		return prototext.Unmarshal
	default:
		return proto.Unmarshal
	}
}

func marshalerForFilename(filename string) marshaler {
	switch filepath.Ext(filename) {
	case ".json":
		return protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal
	case ".pbtext":
		return prototext.MarshalOptions{Multiline: true}.Marshal
	default:
		return proto.MarshalOptions{Deterministic: true}.Marshal
	}
}

// ReadFile reads an index, choosing the encoding from the filename
// extension: ".json", ".pbtext", or binary proto otherwise.
func ReadFile(filename string) (*Index, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("read stub index %q: %w", filename, err)
	}
	defer f.Close()
	return ReadFrom(filename, f)
}

// ReadFrom is ReadFile over a reader; filename only selects the encoding.
func ReadFrom(filename string, in io.Reader) (*Index, error) {
	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("read stub index %q: %w", filename, err)
	}
	var s structpb.Struct
	if err := unmarshalerForFilename(filename)(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal stub index %q: %w", filename, err)
	}
	ix, err := FromStruct(&s)
	if err != nil {
		return nil, fmt.Errorf("decode stub index %q: %w", filename, err)
	}
	return ix, nil
}

// WriteFile writes an index, choosing the encoding from the filename
// extension.
func WriteFile(filename string, ix *Index) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("write stub index: %w", err)
	}
	if err := WriteTo(filename, ix, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write stub index: %w", err)
	}
	return nil
}

// WriteTo is WriteFile over a writer; filename only selects the encoding.
func WriteTo(filename string, ix *Index, out io.Writer) error {
	s, err := ToStruct(ix)
	if err != nil {
		return err
	}
	data, err := marshalerForFilename(filename)(s)
	if err != nil {
		return fmt.Errorf("marshal stub index: %w", err)
	}
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("write stub index: %w", err)
	}
	return nil
}
