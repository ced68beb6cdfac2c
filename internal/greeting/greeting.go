package greeting

import (
	"bytes"
	"encoding/json"
	"strings"
)

// DefaultUserName is greeted when no name is given.
const DefaultUserName = "World"

// Config is the parsed result of one invocation.
type Config struct {
	UserName string
	JSON     bool
}

// DefaultConfig returns a Config with every field at its default.
func DefaultConfig() Config {
	return Config{UserName: DefaultUserName}
}

// Message builds the plain greeting for name. The name is substituted as is.
func Message(name string) string {
	return "Hello, " + name + "!"
}

// Render formats cfg as a single line without a trailing newline.
func Render(cfg Config) string {
	msg := Message(cfg.UserName)
	if !cfg.JSON {
		return msg
	}
	return `{"message": ` + quote(msg) + `}`
}

// quote encodes s as a JSON string, leaving <, > and & unescaped.
func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a string value cannot fail.
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}
