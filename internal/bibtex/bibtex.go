// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bibtex reads and writes BibTeX files as ordered record lists.
// Field order and every field the pipeline does not touch survive a round
// trip; layout is normalised to one field per line.
package bibtex

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gulsah-atas/Literature-Review-Scoring/pkg/types"
)

// ParseError reports malformed BibTeX input with its location.
type ParseError struct {
	Path string
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
	}
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Msg)
}

// Load reads and parses the BibTeX file at path.
func Load(path string) ([]types.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading bibliography %s: %w", path, err)
	}
	return parse(path, data)
}

// Save writes records to path. The file is written to a temporary sibling
// first and renamed into place, so a failed write leaves path untouched.
// An existing file keeps its permissions; a new one is created 0644.
func Save(path string, records []types.Record) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".litscore-*.bib")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if err := Write(tmp, records); err != nil {
		tmp.Close()
		return fmt.Errorf("writing bibliography %s: %w", path, err)
	}
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		return fmt.Errorf("setting permissions on %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing bibliography %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("saving bibliography %s: %w", path, err)
	}
	return nil
}

// Parse reads BibTeX text from r. Non-blank text between blocks, including
// any '@' that does not open one, is kept as a free-text record.
func Parse(r io.Reader) ([]types.Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading bibliography: %w", err)
	}
	return parse("", data)
}

// Write serialises records in order. Entries are written as
// "@type{key," followed by one "  name = {value}" line per field.
func Write(w io.Writer, records []types.Record) error {
	bw := bufio.NewWriter(w)
	for i, rec := range records {
		if i > 0 {
			bw.WriteString("\n")
		}
		if rec.IsText() {
			bw.WriteString(rec.Raw + "\n")
			continue
		}
		if !rec.IsEntry() {
			fmt.Fprintf(bw, "@%s{%s}\n", rec.Type, rec.Raw)
			continue
		}
		fmt.Fprintf(bw, "@%s{%s", rec.Type, rec.Key)
		for _, f := range rec.Fields {
			fmt.Fprintf(bw, ",\n  %s = %s", f.Name, formatValue(f))
		}
		bw.WriteString("\n}\n")
	}
	return bw.Flush()
}

func formatValue(f types.Field) string {
	if f.Bare {
		return f.Value
	}
	return "{" + f.Value + "}"
}

type parser struct {
	path string
	data []byte
	pos  int
}

func parse(path string, data []byte) ([]types.Record, error) {
	p := &parser{path: path, data: data}
	var records []types.Record
	text := 0
	for p.skipTo('@') {
		if !p.atBlock() {
			p.pos++
			continue
		}
		records = appendText(records, data[text:p.pos])
		rec, err := p.block()
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
		text = p.pos
	}
	return appendText(records, data[text:]), nil
}

func appendText(records []types.Record, text []byte) []types.Record {
	t := strings.TrimSpace(string(text))
	if t == "" {
		return records
	}
	return append(records, types.Record{Raw: t})
}

// atBlock reports whether the '@' at p.pos opens a block: an identifier
// followed, after optional space, by '{' or '('. Any other '@' is text.
func (p *parser) atBlock() bool {
	i := p.pos + 1
	for i < len(p.data) && isIdentByte(p.data[i]) {
		i++
	}
	if i == p.pos+1 {
		return false
	}
	for i < len(p.data) && isSpace(p.data[i]) {
		i++
	}
	return i < len(p.data) && (p.data[i] == '{' || p.data[i] == '(')
}

func (p *parser) errorf(at int, format string, args ...any) error {
	if at > len(p.data) {
		at = len(p.data)
	}
	return &ParseError{
		Path: p.path,
		Line: 1 + bytes.Count(p.data[:at], []byte{'\n'}),
		Msg:  fmt.Sprintf(format, args...),
	}
}

func (p *parser) skipTo(c byte) bool {
	i := bytes.IndexByte(p.data[p.pos:], c)
	if i < 0 {
		p.pos = len(p.data)
		return false
	}
	p.pos += i
	return true
}

func (p *parser) skipSpace() {
	for p.pos < len(p.data) && isSpace(p.data[p.pos]) {
		p.pos++
	}
}

func (p *parser) peek() byte {
	if p.pos >= len(p.data) {
		return 0
	}
	return p.data[p.pos]
}

func (p *parser) ident() string {
	start := p.pos
	for p.pos < len(p.data) && isIdentByte(p.data[p.pos]) {
		p.pos++
	}
	return string(p.data[start:p.pos])
}

// block parses one @-block starting at the '@'. The caller has checked
// atBlock, so the type and opening delimiter are present.
func (p *parser) block() (types.Record, error) {
	start := p.pos
	p.pos++
	typ := p.ident()
	p.skipSpace()

	closer := byte('}')
	if p.peek() == '(' {
		closer = ')'
	}

	switch strings.ToLower(typ) {
	case "comment", "preamble", "string":
		body, err := p.balanced(p.peek(), closer, typ, start)
		if err != nil {
			return types.Record{}, err
		}
		return types.Record{Type: typ, Raw: body}, nil
	}

	p.pos++
	return p.entry(typ, start, closer)
}

// balanced consumes a block delimited by open/closer, honouring nesting,
// and returns its inner text. at is the block's '@' for error reporting.
func (p *parser) balanced(open, closer byte, typ string, at int) (string, error) {
	start := p.pos
	depth := 0
	for i := p.pos; i < len(p.data); i++ {
		switch p.data[i] {
		case open:
			depth++
		case closer:
			depth--
			if depth == 0 {
				p.pos = i + 1
				return string(p.data[start+1 : i]), nil
			}
		}
	}
	return "", p.errorf(at, "unterminated @%s block", typ)
}

func (p *parser) entry(typ string, start int, closer byte) (types.Record, error) {
	rec := types.Record{Type: typ}

	p.skipSpace()
	keyStart := p.pos
	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if c == ',' || c == closer || isSpace(c) {
			break
		}
		p.pos++
	}
	rec.Key = string(p.data[keyStart:p.pos])
	if rec.Key == "" {
		return rec, p.errorf(keyStart, "@%s entry has no citation key", typ)
	}

	for {
		p.skipSpace()
		if p.pos >= len(p.data) {
			return rec, p.errorf(start, "unterminated @%s{%s entry", typ, rec.Key)
		}
		switch p.data[p.pos] {
		case closer:
			p.pos++
			return rec, nil
		case ',':
			p.pos++
			continue
		}
		f, err := p.field(closer)
		if err != nil {
			return rec, err
		}
		rec.Fields = append(rec.Fields, f)
	}
}

type valuePart struct {
	text      string
	delimited bool
}

func (p *parser) field(closer byte) (types.Field, error) {
	nameStart := p.pos
	name := p.ident()
	if name == "" {
		return types.Field{}, p.errorf(nameStart, "expected field name, found %q", p.peek())
	}
	p.skipSpace()
	if p.peek() != '=' {
		return types.Field{}, p.errorf(p.pos, "expected '=' after field %q", name)
	}
	p.pos++
	p.skipSpace()

	valStart := p.pos
	var parts []valuePart
	for {
		part, err := p.value(closer)
		if err != nil {
			return types.Field{}, err
		}
		parts = append(parts, part)
		p.skipSpace()
		if p.peek() != '#' {
			break
		}
		p.pos++
		p.skipSpace()
	}

	f := types.Field{Name: strings.ToLower(name)}
	if len(parts) == 1 && parts[0].delimited {
		f.Value = parts[0].text
	} else {
		f.Value = strings.TrimSpace(string(p.data[valStart:p.pos]))
		f.Bare = true
	}
	return f, nil
}

func (p *parser) value(closer byte) (valuePart, error) {
	start := p.pos
	switch p.peek() {
	case 0:
		return valuePart{}, p.errorf(start, "unexpected end of input in field value")
	case '{':
		depth := 0
		for i := p.pos; i < len(p.data); i++ {
			switch p.data[i] {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					p.pos = i + 1
					return valuePart{text: string(p.data[start+1 : i]), delimited: true}, nil
				}
			}
		}
		return valuePart{}, p.errorf(start, "unterminated braced value")
	case '"':
		depth := 0
		for i := p.pos + 1; i < len(p.data); i++ {
			switch p.data[i] {
			case '{':
				depth++
			case '}':
				depth--
			case '"':
				if depth == 0 {
					p.pos = i + 1
					return valuePart{text: string(p.data[start+1 : i]), delimited: true}, nil
				}
			}
		}
		return valuePart{}, p.errorf(start, "unterminated quoted value")
	}

	for p.pos < len(p.data) {
		c := p.data[p.pos]
		if isSpace(c) || c == ',' || c == '#' || c == closer || c == '}' {
			break
		}
		p.pos++
	}
	if p.pos == start {
		return valuePart{}, p.errorf(start, "empty field value")
	}
	return valuePart{text: string(p.data[start:p.pos])}, nil
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func isIdentByte(c byte) bool {
	if isSpace(c) {
		return false
	}
	switch c {
	case '=', ',', '{', '}', '(', ')', '"', '#', '@', '%':
		return false
	}
	return true
}
