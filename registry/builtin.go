package registry

import (
	"github.com/bytetree/schemacodec/errs"
	"github.com/bytetree/schemacodec/schema"
)

// init self-registers the constructor for every built-in node kind
// (spec §4.4 "each node kind registers its constructor ... at first
// instantiation"). Go's static initialization order gives this the same
// one-time-per-process guarantee a sync.Once would.
func init() {
	MustRegister(string(schema.KindPrimitive), makePrimitive)
	MustRegister(string(schema.KindRecord), makeRecord)
	MustRegister(string(schema.KindTuple), makeTuple)
	MustRegister(string(schema.KindArray), makeArray)
	MustRegister(string(schema.KindHeadArray), makeHeadArray)
	MustRegister(string(schema.KindHeadPrimitive), makeHeadPrimitive)
	MustRegister(string(schema.KindEnum), makeEnum)
}

func makePrimitive(desc Description) (schema.Node, error) {
	if desc.TypeName == "" {
		return nil, errs.WithPath(desc.Name, errs.ErrInvalidDescription)
	}

	var opts []schema.PrimitiveOption
	if desc.Default != nil {
		opts = append(opts, schema.WithDefaultValue(desc.Default))
	}
	if len(desc.DefaultArgs) > 0 {
		opts = append(opts, schema.WithDefaultArgs(desc.DefaultArgs...))
	}

	return schema.NewPrimitiveNode(desc.Name, desc.TypeName, opts...), nil
}

func makeRecord(desc Description) (schema.Node, error) {
	children, err := MakeChildren(desc.Children)
	if err != nil {
		return nil, errs.WithPath(desc.Name, err)
	}

	fields := make([]schema.Field, len(children))
	for i, c := range children {
		fields[i] = schema.Field{Node: c}
	}

	n, err := schema.NewRecordNode(desc.Name, fields)
	if err != nil {
		return nil, errs.WithPath(desc.Name, err)
	}

	return n, nil
}

func makeTuple(desc Description) (schema.Node, error) {
	children, err := MakeChildren(desc.Children)
	if err != nil {
		return nil, errs.WithPath(desc.Name, err)
	}

	return schema.NewTupleNode(desc.Name, children), nil
}

func makeArray(desc Description) (schema.Node, error) {
	if len(desc.Children) != 1 {
		return nil, errs.WithPath(desc.Name, wrapf(errs.ErrInvalidDescription, "array requires exactly one element schema, got %d", len(desc.Children)))
	}

	elem, err := Make(desc.Children[0])
	if err != nil {
		return nil, errs.WithPath(desc.Name, err)
	}

	return schema.NewArrayNode(desc.Name, elem), nil
}

func makeHeadArray(desc Description) (schema.Node, error) {
	if len(desc.Children) != 1 {
		return nil, errs.WithPath(desc.Name, wrapf(errs.ErrInvalidDescription, "head-array requires exactly one element schema, got %d", len(desc.Children)))
	}
	if desc.HeadType == "" {
		return nil, errs.WithPath(desc.Name, wrapf(errs.ErrInvalidDescription, "head-array requires a head-type"))
	}

	elem, err := Make(desc.Children[0])
	if err != nil {
		return nil, errs.WithPath(desc.Name, err)
	}

	return schema.NewHeadArrayNode(desc.Name, desc.HeadType, elem), nil
}

func makeHeadPrimitive(desc Description) (schema.Node, error) {
	if len(desc.Children) != 1 {
		return nil, errs.WithPath(desc.Name, wrapf(errs.ErrInvalidDescription, "head-primitive requires exactly one content schema, got %d", len(desc.Children)))
	}
	if desc.HeadType == "" {
		return nil, errs.WithPath(desc.Name, wrapf(errs.ErrInvalidDescription, "head-primitive requires a head-type"))
	}

	content, err := Make(desc.Children[0])
	if err != nil {
		return nil, errs.WithPath(desc.Name, err)
	}

	return schema.NewHeadPrimitiveNode(desc.Name, desc.HeadType, content), nil
}

func makeEnum(desc Description) (schema.Node, error) {
	entries := make([]schema.EnumEntry, len(desc.Entries))
	for i, e := range desc.Entries {
		entries[i] = schema.EnumEntry{Value: e.Value, Literal: e.Literal}
	}

	var def schema.Node
	if len(desc.DefaultEntry) == 1 {
		var err error
		def, err = Make(desc.DefaultEntry[0])
		if err != nil {
			return nil, errs.WithPath(desc.Name, err)
		}
	}

	return schema.NewEnumNode(desc.Name, entries, def), nil
}
