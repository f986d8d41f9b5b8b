package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/ini.v1"

	"ipjournal/pkg/utils"
)

// DefaultFile is the configuration file read when --config is not given
const DefaultFile = "ipjournal.ini"

// Argument names, shared by flags, environment variables and config file keys
const (
	FileLog      = "file-log"
	FileOutput   = "file-output"
	AddressStart = "address-start"
	AddressMask  = "address-mask"
	TimeStart    = "time-start"
	TimeEnd      = "time-end"
	LogFile      = "log-file"
)

// Names lists the recognized arguments in validation order
var Names = []string{FileLog, FileOutput, AddressStart, AddressMask, TimeStart, TimeEnd, LogFile}

// Kind selects the validator applied to an argument value
type Kind int

const (
	KindPath Kind = iota
	KindIP
	KindMask
	KindDate
)

func (k Kind) String() string {
	switch k {
	case KindPath:
		return "path"
	case KindIP:
		return "ip"
	case KindMask:
		return "ip_mask"
	case KindDate:
		return "date"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid reports whether value is acceptable for the kind
func (k Kind) Valid(value string) bool {
	switch k {
	case KindPath:
		return filepath.IsAbs(value)
	case KindIP:
		_, ok := utils.ParseAddress(value)
		return ok
	case KindMask:
		_, err := utils.ParseMaskLength(value)
		return err == nil
	case KindDate:
		_, err := utils.ParseDate(value)
		return err == nil
	}
	return false
}

// Argument is one recognized option
type Argument struct {
	Value    string
	Required bool
	Kind     Kind
	Usage    string
}

// DefaultArguments returns the argument table with no values set
func DefaultArguments() map[string]Argument {
	return map[string]Argument{
		FileLog:      {Required: true, Kind: KindPath, Usage: "absolute path of the access journal"},
		FileOutput:   {Required: true, Kind: KindPath, Usage: "absolute path of the directory receiving result.txt"},
		AddressStart: {Required: false, Kind: KindIP, Usage: "lower address bound, compared octet by octet"},
		AddressMask:  {Required: false, Kind: KindMask, Usage: "prefix length 0-32, applied only with --address-start"},
		TimeStart:    {Required: true, Kind: KindDate, Usage: "entries must be strictly after this date/time"},
		TimeEnd:      {Required: true, Kind: KindDate, Usage: "entries must be strictly before this date/time"},
		LogFile:      {Required: false, Kind: KindPath, Usage: "absolute path of a rotated copy of the console log"},
	}
}

// Config holds the resolved arguments. It is never mutated after Resolve.
type Config struct {
	FileLog      string
	FileOutput   string
	AddressStart string
	AddressMask  string
	TimeStart    string
	TimeEnd      string
	LogFile      string
}

// Loader layers argument values: config file, then environment, then flags
type Loader struct {
	args map[string]Argument
}

// NewLoader creates a loader over the default argument table
func NewLoader() *Loader {
	return &Loader{args: DefaultArguments()}
}

// set overrides the value of a known argument; empty values never override
func (l *Loader) set(name, value string) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	arg, ok := l.args[name]
	if !ok {
		return
	}
	arg.Value = value
	l.args[name] = arg
}

// Value returns the current value of an argument
func (l *Loader) Value(name string) string {
	return l.args[name].Value
}

// LoadFromFile loads argument values from the default section of an INI file.
// A missing file is not an error.
func (l *Loader) LoadFromFile(filename string) error {
	cfg, err := ini.LoadSources(ini.LoadOptions{Insensitive: true, Loose: true}, filename)
	if err != nil {
		return &utils.ConfigError{Reason: fmt.Sprintf("config file %s: %v", filename, err)}
	}

	section := cfg.Section("")
	for _, name := range Names {
		if section.HasKey(name) {
			l.set(name, section.Key(name).String())
		}
	}
	return nil
}

// LoadFromEnv loads argument values from environment variables named after the arguments
func (l *Loader) LoadFromEnv() {
	for _, name := range Names {
		if v, ok := os.LookupEnv(name); ok {
			l.set(name, v)
		}
	}
}

// LoadFromFlags loads the values of flags set on the command line
func (l *Loader) LoadFromFlags(fs *pflag.FlagSet) {
	for _, name := range Names {
		if !fs.Changed(name) {
			continue
		}
		if v, err := fs.GetString(name); err == nil {
			l.set(name, v)
		}
	}
}

// Resolve validates every argument and builds the configuration
func (l *Loader) Resolve() (Config, error) {
	for _, name := range Names {
		arg := l.args[name]
		if arg.Value == "" {
			if arg.Required {
				return Config{}, utils.NotSupplied(name)
			}
			continue
		}
		if !arg.Kind.Valid(arg.Value) {
			return Config{}, utils.WrongFormat(name)
		}
	}

	return Config{
		FileLog:      l.Value(FileLog),
		FileOutput:   l.Value(FileOutput),
		AddressStart: l.Value(AddressStart),
		AddressMask:  l.Value(AddressMask),
		TimeStart:    l.Value(TimeStart),
		TimeEnd:      l.Value(TimeEnd),
		LogFile:      l.Value(LogFile),
	}, nil
}

// RegisterFlags adds one string flag per argument
func RegisterFlags(fs *pflag.FlagSet) {
	args := DefaultArguments()
	for _, name := range Names {
		fs.String(name, "", args[name].Usage)
	}
}

// New resolves the configuration with precedence flags > environment > config file
func New(configFile string, fs *pflag.FlagSet) (Config, error) {
	l := NewLoader()

	// Load from file first
	if err := l.LoadFromFile(configFile); err != nil {
		return Config{}, err
	}

	// Override with environment variables
	l.LoadFromEnv()

	// Override with command-line flags
	if fs != nil {
		l.LoadFromFlags(fs)
	}

	return l.Resolve()
}
