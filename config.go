package rematch

import "fmt"

type Config map[string]*cfgVal

// NewConfig creates a new configuration object primed with all the
// default values expected by the matcher and by the CLI.
func NewConfig() *Config {
	m := make(Config)
	// try the pattern against each input line separately
	m.SetBool("match.split_lines", true)
	// require the match to cover a whole line
	m.SetBool("match.full_lines", false)
	// dump the compiled pattern tree before matching
	m.SetBool("output.ast", false)
	// when to colorize output: auto, always or never
	m.SetString("output.color", "auto")
	return &m
}

type cfgValType int

const (
	cfgValType_Undefined cfgValType = iota
	cfgValType_Bool
	cfgValType_String
)

func (vt cfgValType) String() string {
	return map[cfgValType]string{
		cfgValType_Undefined: "undefined",
		cfgValType_Bool:      "bool",
		cfgValType_String:    "string",
	}[vt]
}

type cfgVal struct {
	vtype cfgValType
	vbool bool
	vstr  string
}

func (v cfgVal) String() string {
	switch v.vtype {
	case cfgValType_Bool:
		return fmt.Sprintf("%t", v.vbool)
	case cfgValType_String:
		return v.vstr
	default:
		return "undefined"
	}
}

func (c *Config) SetBool(name string, value bool) {
	(*c)[name] = &cfgVal{vtype: cfgValType_Bool, vbool: value}
}

func (c *Config) GetBool(name string) bool {
	if v, ok := (*c)[name]; ok && v.vtype == cfgValType_Bool {
		return v.vbool
	}
	return false
}

func (c *Config) SetString(name, value string) {
	(*c)[name] = &cfgVal{vtype: cfgValType_String, vstr: value}
}

func (c *Config) GetString(name string) string {
	if v, ok := (*c)[name]; ok && v.vtype == cfgValType_String {
		return v.vstr
	}
	return ""
}
