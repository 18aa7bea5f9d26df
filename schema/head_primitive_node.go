package schema

import (
	"reflect"

	"github.com/bytetree/schemacodec/errs"
	"github.com/bytetree/schemacodec/primitive"
)

// HeadPrimitiveNode serialises a variable-length field whose length must
// be recovered at decode time without a delimiter: encode writes
// head.encode(length) ∥ content.encode(value) (spec §4.2.6).
//
// Per the Design Notes' resolved Open Question, length is an *element
// count* when content is an array and a *byte count* when content is a
// str/bytes primitive.
type HeadPrimitiveNode struct {
	base
	head    *PrimitiveNode
	content Node
}

// NewHeadPrimitiveNode builds a head-primitive node. content is typically
// a str or bytes PrimitiveNode, a numeric array PrimitiveNode (e.g.
// "u2b[]"), or a numeric ArrayNode.
func NewHeadPrimitiveNode(name, headType string, content Node) *HeadPrimitiveNode {
	return &HeadPrimitiveNode{
		base:    base{name: name},
		head:    NewPrimitiveNode(name+".head", headType),
		content: content,
	}
}

func (n *HeadPrimitiveNode) Kind() Kind { return KindHeadPrimitive }

// Content returns the length-bearing child schema.
func (n *HeadPrimitiveNode) Content() Node { return n.content }

// HeadType returns the length prefix's primitive type-name.
func (n *HeadPrimitiveNode) HeadType() string { return n.head.TypeName() }

func (n *HeadPrimitiveNode) Encode(value any, args ...int) ([]byte, error) {
	resolved, ok := n.resolveValue(value)
	if !ok {
		return nil, missingValue(n.name)
	}

	contentBytes, err := n.content.Encode(resolved)
	if err != nil {
		return nil, errs.WithPath(n.name, err)
	}

	length := len(contentBytes) // byte count, the str/bytes default
	switch c := n.content.(type) {
	case *ArrayNode:
		length = reflect.ValueOf(resolved).Len() // element count
	case *PrimitiveNode:
		if pn, err := primitive.ParseName(c.TypeName()); err == nil && pn.IsArray {
			length = reflect.ValueOf(resolved).Len() // element count
		}
	}

	headBytes, err := n.head.Encode(uint64(length))
	if err != nil {
		return nil, errs.WithPath(n.name, err)
	}

	return append(headBytes, contentBytes...), nil
}

func (n *HeadPrimitiveNode) Decode(buf []byte, offset int, args ...int) (any, int, error) {
	length64, headSize, err := n.head.Decode(buf, offset)
	if err != nil {
		return nil, 0, errs.WithPath(n.name, err)
	}

	length, err := asCount(length64)
	if err != nil {
		return nil, 0, errs.WithPath(n.name, err)
	}

	value, consumed, err := n.content.Decode(buf, offset+headSize, length)
	if err != nil {
		return nil, 0, errs.WithPath(n.name, err)
	}

	n.remember(value)

	return value, headSize + consumed, nil
}
