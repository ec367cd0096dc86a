package transform

// Flags is the bitmask the generated constructor calls receive. It packs
// the element kind, the special host kinds and the child-keying mode into
// one small integer so calls stay short.
type Flags int

const (
	// FlagText, FlagFun and FlagClass are reserved bit positions the run
	// time understands; the transform never sets them.
	FlagText Flags = 1 << iota
	FlagHTML
	FlagSVG
	FlagFun
	FlagClass
	FlagInput
	FlagTextArea
	FlagTemplate
	FlagKeyedChildren
	FlagUnkeyedChildren
)
