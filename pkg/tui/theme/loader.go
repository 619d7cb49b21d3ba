// ABOUTME: YAML stylesheet files: parse, load from disk, and marshal back out
// ABOUTME: Files may extend a built-in theme; rule keys are "class" or "class:state"

package theme

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/gridtui/pkg/tui/style"
)

// ErrUnknownTheme is returned by Load for a name that is neither built in
// nor a readable file.
var ErrUnknownTheme = errors.New("unknown theme")

// ruleDoc is the on-disk form of a style.Rule. Absent fields stay unset.
type ruleDoc struct {
	FG       *string `yaml:"fg,omitempty"`
	BG       *string `yaml:"bg,omitempty"`
	Outline  *string `yaml:"outline,omitempty"`
	CursorFG *string `yaml:"cursor_fg,omitempty"`
	CursorBG *string `yaml:"cursor_bg,omitempty"`
	Font     *string `yaml:"font,omitempty"`
	X        *int    `yaml:"x,omitempty"`
	Y        *int    `yaml:"y,omitempty"`
	Width    *int    `yaml:"width,omitempty"`
	Height   *int    `yaml:"height,omitempty"`
	AutoY    *bool   `yaml:"auto_y,omitempty"`
	Border   *bool   `yaml:"border,omitempty"`
}

type fileDoc struct {
	Name    string             `yaml:"name,omitempty"`
	Extends string             `yaml:"extends,omitempty"`
	Rules   map[string]ruleDoc `yaml:"rules"`
}

// Parse reads a YAML theme document.
func Parse(data []byte) (*Theme, error) {
	var doc fileDoc
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing theme: %w", err)
	}

	sheet := make(style.Sheet, len(doc.Rules))
	for key, rd := range doc.Rules {
		if err := validKey(key); err != nil {
			return nil, err
		}
		r, err := rd.rule()
		if err != nil {
			return nil, fmt.Errorf("rule %q: %w", key, err)
		}
		if strings.Contains(key, ":") && r.Geometry != (style.Geometry{}) {
			return nil, fmt.Errorf("rule %q: geometry is only allowed on base rules", key)
		}
		sheet[key] = r
	}

	name := doc.Name
	if doc.Extends == "" {
		return &Theme{Name: name, Sheet: sheet}, nil
	}
	base := Builtin(doc.Extends)
	if base == nil {
		return nil, fmt.Errorf("extends %q: %w", doc.Extends, ErrUnknownTheme)
	}
	if name == "" {
		name = base.Name
	}
	return base.Extend(name, sheet), nil
}

// LoadFile parses the theme at path. A nameless theme takes the file's base
// name without extension.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme: %w", err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if t.Name == "" {
		t.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return t, nil
}

// Load resolves a built-in theme name or a path to a YAML file.
func Load(nameOrPath string) (*Theme, error) {
	if t := Builtin(nameOrPath); t != nil {
		return t, nil
	}
	if _, err := os.Stat(nameOrPath); err != nil {
		return nil, fmt.Errorf("%q: %w", nameOrPath, ErrUnknownTheme)
	}
	return LoadFile(nameOrPath)
}

// Marshal renders t as a YAML document that Parse accepts.
func Marshal(t *Theme) ([]byte, error) {
	doc := fileDoc{Name: t.Name, Rules: make(map[string]ruleDoc, len(t.Sheet))}
	for k, r := range t.Sheet {
		doc.Rules[k] = docFor(r)
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding theme: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding theme: %w", err)
	}
	return buf.Bytes(), nil
}

func validKey(key string) error {
	class, state, found := strings.Cut(key, ":")
	if class == "" || strings.ContainsAny(class, " \t") {
		return fmt.Errorf("rule %q: invalid class name", key)
	}
	if !found {
		return nil
	}
	switch state {
	case style.Hovered.String(), style.Clicked.String(), style.Selected.String():
		return nil
	}
	return fmt.Errorf("rule %q: unknown state %q", key, state)
}

func (d ruleDoc) rule() (style.Rule, error) {
	var r style.Rule
	colors := []struct {
		src *string
		dst *style.Value[style.Color]
	}{
		{d.FG, &r.FG},
		{d.BG, &r.BG},
		{d.Outline, &r.Outline},
		{d.CursorFG, &r.CursorFG},
		{d.CursorBG, &r.CursorBG},
	}
	for _, c := range colors {
		if c.src == nil {
			continue
		}
		col, err := style.ParseColor(*c.src)
		if err != nil {
			return r, err
		}
		c.dst.Set(col)
	}
	if d.Font != nil {
		f, err := style.ParseFont(*d.Font)
		if err != nil {
			return r, err
		}
		r.Font.Set(f)
	}
	ints := []struct {
		src *int
		dst *style.Value[int]
	}{
		{d.X, &r.X}, {d.Y, &r.Y}, {d.Width, &r.Width}, {d.Height, &r.Height},
	}
	for _, n := range ints {
		if n.src == nil {
			continue
		}
		if *n.src < 0 {
			return r, fmt.Errorf("negative geometry %d", *n.src)
		}
		n.dst.Set(*n.src)
	}
	if d.AutoY != nil {
		r.AutoY.Set(*d.AutoY)
	}
	if d.Border != nil {
		r.Border.Set(*d.Border)
	}
	return r, nil
}

func docFor(r style.Rule) ruleDoc {
	var d ruleDoc
	color := func(v style.Value[style.Color]) *string {
		if !v.IsCustom() {
			return nil
		}
		s := v.Get().String()
		return &s
	}
	d.FG, d.BG, d.Outline = color(r.FG), color(r.BG), color(r.Outline)
	d.CursorFG, d.CursorBG = color(r.CursorFG), color(r.CursorBG)
	if r.Font.IsCustom() {
		s := r.Font.Get().String()
		d.Font = &s
	}
	num := func(v style.Value[int]) *int {
		if !v.IsCustom() {
			return nil
		}
		n := v.Get()
		return &n
	}
	d.X, d.Y, d.Width, d.Height = num(r.X), num(r.Y), num(r.Width), num(r.Height)
	flag := func(v style.Value[bool]) *bool {
		if !v.IsCustom() {
			return nil
		}
		b := v.Get()
		return &b
	}
	d.AutoY, d.Border = flag(r.AutoY), flag(r.Border)
	return d
}
