// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bibtex

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gulsah-atas/Literature-Review-Scoring/pkg/types"
)

const sample = `% exported from a reference manager
@string{jfs = "Journal of Fire Sciences"}

@Article{smith2021,
  Title = {Crowd {Evacuation} under smoke},
  author = "Smith, J. and Doe, A.",
  journal = jfs,
  year = 2021,
  month = jan # "~15",
  keywords = {fire, evacuation}
}

@comment{jabref-meta: databaseType:bibtex;}

@inproceedings(lee2019, title={Flood routing}, year={2019},)
`

func TestParse(t *testing.T) {
	records, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, records, 5)

	assert.True(t, records[0].IsText())
	assert.False(t, records[0].IsEntry())
	assert.Equal(t, "% exported from a reference manager", records[0].Raw)

	assert.Equal(t, "string", records[1].Type)
	assert.Equal(t, `jfs = "Journal of Fire Sciences"`, records[1].Raw)
	assert.False(t, records[1].IsEntry())

	smith := records[2]
	assert.Equal(t, "Article", smith.Type)
	assert.Equal(t, "smith2021", smith.Key)
	assert.True(t, smith.IsEntry())
	assert.Equal(t, []types.Field{
		{Name: "title", Value: "Crowd {Evacuation} under smoke"},
		{Name: "author", Value: "Smith, J. and Doe, A."},
		{Name: "journal", Value: "jfs", Bare: true},
		{Name: "year", Value: "2021", Bare: true},
		{Name: "month", Value: `jan # "~15"`, Bare: true},
		{Name: "keywords", Value: "fire, evacuation"},
	}, smith.Fields)

	assert.Equal(t, "comment", records[3].Type)
	assert.Equal(t, "jabref-meta: databaseType:bibtex;", records[3].Raw)

	lee := records[4]
	assert.Equal(t, "lee2019", lee.Key)
	assert.Equal(t, "Flood routing", lee.Get("TITLE"))
	assert.Equal(t, "2019", lee.Get("year"))
}

func TestParseEmpty(t *testing.T) {
	for _, input := range []string{"", "\n\n", " \t\n"} {
		records, err := Parse(strings.NewReader(input))
		require.NoError(t, err)
		assert.Empty(t, records)
	}
}

func TestParseKeepsText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"text only", "no entries here\n", []string{"no entries here"}},
		{"address in header", "% Exported by jdoe@example.org\n", []string{"% Exported by jdoe@example.org"}},
		{"bare at sign", "@ home\n@\n", []string{"@ home\n@"}},
		{"type without opener", "see @article for details", []string{"see @article for details"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			var got []string
			for _, r := range records {
				require.True(t, r.IsText())
				got = append(got, r.Raw)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAtSignBeforeEntry(t *testing.T) {
	input := "% Exported by jdoe@example.org\n" +
		"% Encoding: UTF-8\n" +
		"@article{a,\n  title = {Fire evacuation}\n}\n" +
		"Notes: ask jdoe@example.org about @misc items.\n" +
		"@misc{b, title = {Drills}}\n"

	records, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, records, 4)

	assert.Equal(t, "% Exported by jdoe@example.org\n% Encoding: UTF-8", records[0].Raw)
	assert.Equal(t, "a", records[1].Key)
	assert.Equal(t, "Fire evacuation", records[1].Get(types.FieldTitle))
	assert.Equal(t, "Notes: ask jdoe@example.org about @misc items.", records[2].Raw)
	assert.Equal(t, "b", records[3].Key)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
		msg   string
	}{
		{"missing key", "@article{, title={a}}", 1, "no citation key"},
		{"missing equals", "@article{k,\n  title {a}}", 2, "expected '='"},
		{"unterminated brace", "@article{k,\n title={abc,\n", 2, "unterminated braced value"},
		{"unterminated quote", "@article{k, title=\"abc}", 1, "unterminated quoted value"},
		{"unterminated entry", "@article{k,\n\n title={a}", 1, "unterminated @article{k entry"},
		{"unterminated comment", "\n@comment{abc", 2, "unterminated @comment block"},
		{"unterminated comment opener on next line", "x@y.org\n@comment\n{abc", 2, "unterminated @comment block"},
		{"unterminated entry after text", "% jdoe@example.org\n@article\n{k,\n title={a}", 2, "unterminated @article{k entry"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			require.Error(t, err)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.line, pe.Line)
			assert.Contains(t, pe.Msg, tt.msg)
		})
	}
}

func TestWrite(t *testing.T) {
	records := []types.Record{
		{Type: "string", Raw: "ieee = {IEEE}"},
		{
			Type: "article",
			Key:  "k1",
			Fields: []types.Field{
				{Name: "title", Value: "A {B} c"},
				{Name: "year", Value: "2020", Bare: true},
			},
		},
		{Type: "misc", Key: "empty"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, records))

	want := "@string{ieee = {IEEE}}\n" +
		"\n" +
		"@article{k1,\n" +
		"  title = {A {B} c},\n" +
		"  year = 2020\n" +
		"}\n" +
		"\n" +
		"@misc{empty\n" +
		"}\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteText(t *testing.T) {
	records := []types.Record{
		{Raw: "% Encoding: UTF-8"},
		{Type: "misc", Key: "k", Fields: []types.Field{{Name: "title", Value: "T"}}},
		{Raw: "trailing note"},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, records))
	want := "% Encoding: UTF-8\n" +
		"\n" +
		"@misc{k,\n  title = {T}\n}\n" +
		"\n" +
		"trailing note\n"
	assert.Equal(t, want, buf.String())
}

func TestRoundTrip(t *testing.T) {
	first, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, first))

	second, err := Parse(&buf)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "input.bib")
	require.NoError(t, os.WriteFile(in, []byte(sample), 0o644))

	records, err := Load(in)
	require.NoError(t, err)
	require.Len(t, records, 5)

	records[2].Set(types.FieldKeywords, "evacuation, fire, indoor")
	out := filepath.Join(dir, "output.bib")
	require.NoError(t, Save(out, records))

	reloaded, err := Load(out)
	require.NoError(t, err)
	assert.Equal(t, "% exported from a reference manager", reloaded[0].Raw)
	assert.Equal(t, "evacuation, fire, indoor", reloaded[2].Get(types.FieldKeywords))
	assert.Equal(t, records[2].Get("author"), reloaded[2].Get("author"))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	// No temp files left behind.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestSaveKeepsExistingMode(t *testing.T) {
	out := filepath.Join(t.TempDir(), "output.bib")
	require.NoError(t, os.WriteFile(out, []byte("old\n"), 0o600))
	require.NoError(t, os.Chmod(out, 0o600))

	require.NoError(t, Save(out, []types.Record{{Type: "misc", Key: "k"}}))

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "@misc{k\n}\n", string(data))
}

func TestLoadErrorsNamePath(t *testing.T) {
	dir := t.TempDir()

	missing := filepath.Join(dir, "missing.bib")
	_, err := Load(missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), missing)
	assert.True(t, errors.Is(err, os.ErrNotExist))

	bad := filepath.Join(dir, "bad.bib")
	require.NoError(t, os.WriteFile(bad, []byte("@article{k,\ntitle={x}\n"), 0o644))
	_, err = Load(bad)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), bad+":1:"), err.Error())
}

func TestSaveFailsForMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "out.bib")
	err := Save(path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
