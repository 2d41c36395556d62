package importer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	in := "\ufeffEmail, Name ,Skills,extra\n" +
		"ada@example.com,Ada Lovelace,Math; Engines ;,x\n" +
		"\n" +
		",,,\n" +
		"grace@example.com,Grace Hopper\n"

	rows, bad, err := Parse(strings.NewReader(in), KindFounders)

	require.NoError(t, err)
	assert.Empty(t, bad)
	require.Len(t, rows, 2)

	assert.Equal(t, 2, rows[0].Number)
	assert.Equal(t, "ada@example.com", rows[0].Get("email"))
	assert.Equal(t, "Ada Lovelace", rows[0].Get("name"))
	assert.Equal(t, []string{"Math", "Engines"}, rows[0].List("skills"))
	assert.True(t, rows[0].Has("extra"))
	assert.False(t, rows[0].Has("bio"))

	assert.Equal(t, 5, rows[1].Number)
	assert.True(t, rows[1].Has("skills"))
	assert.Nil(t, rows[1].List("skills"))
}

func TestParse_MissingColumn(t *testing.T) {
	_, _, err := Parse(strings.NewReader("name,bio\nAda,x\n"), KindFounders)
	assert.ErrorIs(t, err, ErrMissingColumn)
	assert.ErrorContains(t, err, "email")
}

func TestParse_EmptyFile(t *testing.T) {
	_, _, err := Parse(strings.NewReader(""), KindStartups)
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestParse_UnknownKind(t *testing.T) {
	_, _, err := Parse(strings.NewReader("name\n"), Kind("events"))
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestParse_MalformedLineBecomesRowError(t *testing.T) {
	in := "name\nAcme\n\"Broken\"quote\nGlobex\n"
	rows, bad, err := Parse(strings.NewReader(in), KindStartups)

	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Globex", rows[1].Get("name"))
	require.Len(t, bad, 1)
	assert.Equal(t, 3, bad[0].Row)
}

func TestRow_Bool(t *testing.T) {
	r := Row{fields: map[string]string{"a": "yes", "b": "FALSE", "c": "", "d": "maybe"}}

	v, err := r.Bool("a", false)
	require.NoError(t, err)
	assert.True(t, v)

	v, err = r.Bool("b", true)
	require.NoError(t, err)
	assert.False(t, v)

	v, err = r.Bool("c", true)
	require.NoError(t, err)
	assert.True(t, v)

	_, err = r.Bool("d", true)
	assert.Error(t, err)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" Founders ")
	require.NoError(t, err)
	assert.Equal(t, KindFounders, k)

	_, err = ParseKind("hobbies")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestSummary(t *testing.T) {
	s := NewSummary(KindFounders, true)
	s.Record(Created)
	s.Record(Updated)
	s.Record(Skipped)
	s.Fail(RowError{Row: 4, Field: "email", Message: "must be a valid email"})

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 1, s.Created)
	assert.Equal(t, 1, s.Updated)
	assert.Equal(t, 1, s.Skipped)
	assert.Equal(t, 1, s.Failed)
	assert.Equal(t, "email: must be a valid email", s.Errors[0].Error())
}
