package eel

import "fmt"

// Config is a typed key/value map for the small set of compile-time
// knobs this package exposes, following the teacher's path-keyed
// settings map idiom rather than a plain struct: it lets future knobs
// be added without changing Context's constructor signature.
type Config map[string]*cfgVal

// NewConfig creates a configuration primed with the defaults every
// Context uses unless the caller overrides them.
func NewConfig() *Config {
	m := make(Config)
	m.SetBool("compiler.optimize", true)
	m.SetBool("parser.hex_literals", true)
	return &m
}

type cfgValType int

const (
	cfgValTypeUndefined cfgValType = iota
	cfgValTypeBool
	cfgValTypeInt
	cfgValTypeString
)

func (vt cfgValType) String() string {
	return map[cfgValType]string{
		cfgValTypeUndefined: "undefined",
		cfgValTypeBool:      "bool",
		cfgValTypeInt:       "int",
		cfgValTypeString:    "string",
	}[vt]
}

type cfgVal struct {
	typ      cfgValType
	asBool   bool
	asInt    int
	asString string
}

func (v *cfgVal) assignType(vt cfgValType) {
	if v.typ != vt && v.typ != cfgValTypeUndefined {
		panic(fmt.Sprintf("can't assign %q to type %q", vt, v.typ))
	}
	v.typ = vt
}

func (v *cfgVal) checkType(vt cfgValType) {
	if v.typ != vt {
		panic(fmt.Sprintf("can't retrieve %q from %q setting", vt, v.typ))
	}
}

func (c *Config) SetBool(path string, v bool) {
	(*c)[path] = &cfgVal{}
	(*c)[path].assignType(cfgValTypeBool)
	(*c)[path].asBool = v
}

func (c *Config) SetInt(path string, v int) {
	(*c)[path] = &cfgVal{}
	(*c)[path].assignType(cfgValTypeInt)
	(*c)[path].asInt = v
}

func (c *Config) GetBool(path string) bool {
	if val, ok := (*c)[path]; ok {
		val.checkType(cfgValTypeBool)
		return val.asBool
	}
	panic(fmt.Sprintf("bool setting %q does not exist", path))
}

func (c *Config) GetInt(path string) int {
	if val, ok := (*c)[path]; ok {
		val.checkType(cfgValTypeInt)
		return val.asInt
	}
	panic(fmt.Sprintf("int setting %q does not exist", path))
}

// GetBoolOr returns the bool setting at path, or def if the path was
// never set. Callers that read a knob with a well-known default (like
// compiler.optimize) use this instead of GetBool so a caller-built
// Config that omits the knob doesn't panic.
func (c *Config) GetBoolOr(path string, def bool) bool {
	val, ok := (*c)[path]
	if !ok {
		return def
	}
	val.checkType(cfgValTypeBool)
	return val.asBool
}
