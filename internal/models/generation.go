package models

// GeneratedClass represents a fully assembled implementation source unit.
type GeneratedClass struct {
	TypeName     string // canonical name of the implemented type
	ClassName    string // simple name of the generated class
	Package      string // package of the generated class, empty for default
	FilePath     string // path where the source file was (or will be) written
	Content      string // generated source text
	Constructors int    // number of synthesized constructors
	Methods      int    // number of synthesized method overrides
}

// SynthesizedMember is one generated member fragment: the declaration plus
// body text and the parameter name sequence used to produce it.
type SynthesizedMember struct {
	Text       string
	ParamNames []string
}
