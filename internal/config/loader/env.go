package loader

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Kind is the value type of a setting, used to convert environment text.
type Kind int

// Setting kinds. Paths without a registered kind stay strings.
const (
	KindString Kind = iota
	KindBool
	KindInt
	KindFloat
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "integer"
	case KindFloat:
		return "float"
	default:
		return "string"
	}
}

// EnvLoader loads configuration from environment variables.
type EnvLoader struct {
	prefix  string            // e.g. "TEXTBUF_"
	mapping map[string]string // env var -> config path
	kinds   map[string]Kind   // config path -> value kind
	environ func() []string
}

// NewEnvLoader creates an environment variable loader.
// The prefix should include the trailing underscore (e.g., "TEXTBUF_").
func NewEnvLoader(prefix string) *EnvLoader {
	return &EnvLoader{
		prefix:  prefix,
		mapping: defaultEnvMapping(prefix),
		kinds:   make(map[string]Kind),
		environ: os.Environ,
	}
}

// defaultEnvMapping holds shortcuts that don't follow SECTION_KEY naming.
func defaultEnvMapping(prefix string) map[string]string {
	return map[string]string{
		prefix + "LOG_LEVEL": "logging.level",
		prefix + "NO_COLOR":  "logging.no_color",
		prefix + "NEWLINE":   "buffer.newline",
	}
}

// AddMapping adds a custom environment variable mapping.
func (l *EnvLoader) AddMapping(envVar, configPath string) {
	l.mapping[envVar] = configPath
}

// SetKind declares the value kind of the setting at path. Values for
// paths with no kind are kept as strings.
func (l *EnvLoader) SetKind(path string, kind Kind) {
	l.kinds[path] = kind
}

// Load reads prefixed environment variables into a configuration map.
// Empty values are kept, not treated as unset.
func (l *EnvLoader) Load() (map[string]any, error) {
	config := make(map[string]any)

	for _, env := range l.environ() {
		name, value, ok := strings.Cut(env, "=")
		if !ok || !strings.HasPrefix(name, l.prefix) {
			continue
		}

		path, mapped := l.mapping[name]
		if !mapped {
			path = l.envToPath(name)
		}
		if path == "" {
			continue
		}
		v, err := parseValue(value, l.kinds[path])
		if err != nil {
			return nil, &ParseError{
				Path:    "environment",
				Message: fmt.Sprintf("%s: %v", name, err),
				Err:     err,
			}
		}
		setByPath(config, path, v)
	}

	return config, nil
}

// envToPath converts TEXTBUF_SCRIPT_WATCH_DEBOUNCE to script.watch_debounce.
func (l *EnvLoader) envToPath(env string) string {
	name := strings.ToLower(strings.TrimPrefix(env, l.prefix))
	section, key, ok := strings.Cut(name, "_")
	if !ok || section == "" || key == "" {
		return ""
	}
	return section + "." + key
}

// parseValue converts s to the Go value for kind. Booleans also accept
// yes/no and on/off.
func parseValue(s string, kind Kind) (any, error) {
	switch kind {
	case KindBool:
		switch strings.ToLower(s) {
		case "yes", "on":
			return true, nil
		case "no", "off":
			return false, nil
		}
		v, err := strconv.ParseBool(s)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q", kind, s)
		}
		return v, nil
	case KindInt:
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q", kind, s)
		}
		return v, nil
	case KindFloat:
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q", kind, s)
		}
		return v, nil
	default:
		return s, nil
	}
}

// setByPath sets a value in a nested map using a dot-separated path.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data

	for _, part := range parts[:len(parts)-1] {
		next, ok := current[part].(map[string]any)
		if !ok {
			next = make(map[string]any)
			current[part] = next
		}
		current = next
	}

	current[parts[len(parts)-1]] = value
}
