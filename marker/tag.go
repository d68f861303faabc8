package marker

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Kind is the variant of a Tag.
type Kind uint8

const (
	KindObject Kind = iota
	KindPlatform
	KindGround
)

var kindNames = [...]string{
	KindObject:   "Object",
	KindPlatform: "Platform",
	KindGround:   "Ground",
}

// Kinds lists every tag kind in display order.
var Kinds = []Kind{KindObject, KindPlatform, KindGround}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("marker: unknown tag kind %q", s)
}

// Horizontal is an active edge of a platform.
type Horizontal uint8

const (
	Left Horizontal = iota
	Center
	Right
)

var horizontalNames = [...]string{
	Left:   "Left",
	Center: "Center",
	Right:  "Right",
}

// Horizontals lists every edge in declaration order.
var Horizontals = []Horizontal{Left, Center, Right}

func (h Horizontal) String() string {
	if int(h) < len(horizontalNames) {
		return horizontalNames[h]
	}
	return fmt.Sprintf("Horizontal(%d)", uint8(h))
}

func ParseHorizontal(s string) (Horizontal, error) {
	for h, name := range horizontalNames {
		if name == s {
			return Horizontal(h), nil
		}
	}
	return 0, fmt.Errorf("marker: unknown horizontal edge %q", s)
}

// Square is a mark position on the 3x3 ground grid, plus the four inner
// corners.
type Square uint8

const (
	LT Square = iota
	MT
	RT
	LM
	MM
	RM
	LB
	MB
	RB
	ILT
	IRT
	IBL
	IBR
)

var squareNames = [...]string{
	LT: "LT", MT: "MT", RT: "RT",
	LM: "LM", MM: "MM", RM: "RM",
	LB: "LB", MB: "MB", RB: "RB",
	ILT: "ILT", IRT: "IRT", IBL: "IBL", IBR: "IBR",
}

// Squares lists every mark in declaration order.
var Squares = []Square{LT, MT, RT, LM, MM, RM, LB, MB, RB, ILT, IRT, IBL, IBR}

func (s Square) String() string {
	if int(s) < len(squareNames) {
		return squareNames[s]
	}
	return fmt.Sprintf("Square(%d)", uint8(s))
}

func ParseSquare(s string) (Square, error) {
	for sq, name := range squareNames {
		if name == s {
			return Square(sq), nil
		}
	}
	return 0, fmt.Errorf("marker: unknown ground square %q", s)
}

// EdgeSet is a set of Horizontal values.
type EdgeSet uint8

func Edges(hs ...Horizontal) EdgeSet {
	var s EdgeSet
	for _, h := range hs {
		s = s.With(h)
	}
	return s
}

func (s EdgeSet) Has(h Horizontal) bool        { return s&(1<<h) != 0 }
func (s EdgeSet) With(h Horizontal) EdgeSet    { return s | 1<<h }
func (s EdgeSet) Without(h Horizontal) EdgeSet { return s &^ (1 << h) }

// Toggle adds h when absent and removes it when present.
func (s EdgeSet) Toggle(h Horizontal) EdgeSet { return s ^ 1<<h }

func (s EdgeSet) Members() []Horizontal {
	out := make([]Horizontal, 0, len(Horizontals))
	for _, h := range Horizontals {
		if s.Has(h) {
			out = append(out, h)
		}
	}
	return out
}

func (s EdgeSet) Len() int { return len(s.Members()) }

func (s EdgeSet) MarshalJSON() ([]byte, error) {
	members := s.Members()
	names := make([]string, len(members))
	for i, h := range members {
		names[i] = h.String()
	}
	return json.Marshal(names)
}

func (s *EdgeSet) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	var out EdgeSet
	for _, name := range names {
		h, err := ParseHorizontal(name)
		if err != nil {
			return err
		}
		out = out.With(h)
	}
	*s = out
	return nil
}

// MarkSet is a set of Square values.
type MarkSet uint16

func Marks(sq ...Square) MarkSet {
	var s MarkSet
	for _, q := range sq {
		s = s.With(q)
	}
	return s
}

func (s MarkSet) Has(q Square) bool        { return s&(1<<q) != 0 }
func (s MarkSet) With(q Square) MarkSet    { return s | 1<<q }
func (s MarkSet) Without(q Square) MarkSet { return s &^ (1 << q) }

// Toggle adds q when absent and removes it when present.
func (s MarkSet) Toggle(q Square) MarkSet { return s ^ 1<<q }

func (s MarkSet) Members() []Square {
	out := make([]Square, 0, len(Squares))
	for _, q := range Squares {
		if s.Has(q) {
			out = append(out, q)
		}
	}
	return out
}

func (s MarkSet) Len() int { return len(s.Members()) }

func (s MarkSet) MarshalJSON() ([]byte, error) {
	members := s.Members()
	names := make([]string, len(members))
	for i, q := range members {
		names[i] = q.String()
	}
	return json.Marshal(names)
}

func (s *MarkSet) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}
	var out MarkSet
	for _, name := range names {
		q, err := ParseSquare(name)
		if err != nil {
			return err
		}
		out = out.With(q)
	}
	*s = out
	return nil
}

// Tag is the gameplay classification of a frame. Only the payload matching
// Kind is meaningful; the constructors leave the other one empty.
type Tag struct {
	Kind  Kind
	Edges EdgeSet
	Marks MarkSet
}

func Object() Tag {
	return Tag{Kind: KindObject}
}

func Platform(edges ...Horizontal) Tag {
	return Tag{Kind: KindPlatform, Edges: Edges(edges...)}
}

func Ground(marks ...Square) Tag {
	return Tag{Kind: KindGround, Marks: Marks(marks...)}
}

// Empty returns the payload-free tag of kind k.
func Empty(k Kind) Tag {
	switch k {
	case KindObject:
		return Object()
	case KindPlatform:
		return Platform()
	case KindGround:
		return Ground()
	default:
		panic(fmt.Sprintf("marker: unknown tag kind %d", k))
	}
}

// Equal compares kinds and the payload relevant to the kind.
func (t Tag) Equal(other Tag) bool {
	if t.Kind != other.Kind {
		return false
	}
	switch t.Kind {
	case KindPlatform:
		return t.Edges == other.Edges
	case KindGround:
		return t.Marks == other.Marks
	default:
		return true
	}
}

func (t Tag) String() string {
	switch t.Kind {
	case KindPlatform:
		parts := make([]string, 0, 3)
		for _, h := range t.Edges.Members() {
			parts = append(parts, h.String())
		}
		return "Platform[" + strings.Join(parts, " ") + "]"
	case KindGround:
		parts := make([]string, 0, len(Squares))
		for _, q := range t.Marks.Members() {
			parts = append(parts, q.String())
		}
		return "Ground[" + strings.Join(parts, " ") + "]"
	default:
		return t.Kind.String()
	}
}

type platformJSON struct {
	ActiveEdges EdgeSet `json:"activeEdges"`
}

type groundJSON struct {
	ActiveMarks MarkSet `json:"activeMarks"`
}

// MarshalJSON writes "Object", {"Platform":{"activeEdges":[...]}} or
// {"Ground":{"activeMarks":[...]}}.
func (t Tag) MarshalJSON() ([]byte, error) {
	switch t.Kind {
	case KindObject:
		return json.Marshal(KindObject.String())
	case KindPlatform:
		return json.Marshal(map[string]platformJSON{
			KindPlatform.String(): {ActiveEdges: t.Edges},
		})
	case KindGround:
		return json.Marshal(map[string]groundJSON{
			KindGround.String(): {ActiveMarks: t.Marks},
		})
	default:
		return nil, fmt.Errorf("marker: cannot encode tag kind %d", t.Kind)
	}
}

func (t *Tag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		if name != KindObject.String() {
			return fmt.Errorf("marker: unit tag %q is not %q", name, KindObject)
		}
		*t = Object()
		return nil
	}

	var variant map[string]json.RawMessage
	if err := json.Unmarshal(data, &variant); err != nil {
		return err
	}
	if len(variant) != 1 {
		return fmt.Errorf("marker: tag must hold exactly one variant, got %d", len(variant))
	}
	for name, payload := range variant {
		kind, err := ParseKind(name)
		if err != nil {
			return err
		}
		switch kind {
		case KindObject:
			return fmt.Errorf("marker: %q is written as a bare string, not an object", KindObject)
		case KindPlatform:
			var p struct {
				ActiveEdges *EdgeSet `json:"activeEdges"`
			}
			if err := decodeStrict(payload, &p); err != nil {
				return fmt.Errorf("marker: platform tag: %w", err)
			}
			if p.ActiveEdges == nil {
				return fmt.Errorf("marker: platform tag: missing activeEdges")
			}
			*t = Tag{Kind: KindPlatform, Edges: *p.ActiveEdges}
		case KindGround:
			var g struct {
				ActiveMarks *MarkSet `json:"activeMarks"`
			}
			if err := decodeStrict(payload, &g); err != nil {
				return fmt.Errorf("marker: ground tag: %w", err)
			}
			if g.ActiveMarks == nil {
				return fmt.Errorf("marker: ground tag: missing activeMarks")
			}
			*t = Tag{Kind: KindGround, Marks: *g.ActiveMarks}
		}
	}
	return nil
}

func decodeStrict(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
