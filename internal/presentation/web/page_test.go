package web

import (
	"bytes"
	"testing"

	"github.com/aretw0/sequencer"
	"github.com/aretw0/sequencer/internal/config"
	"github.com/aretw0/sequencer/pkg/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForm_Request(t *testing.T) {
	form := NewForm(config.Default().Defaults)
	req, err := form.Request()
	require.NoError(t, err)
	assert.Equal(t, sequence.Arith(1, 1, 10), req)

	form.Kind = "geometric"
	req, err = form.Request()
	require.NoError(t, err)
	assert.Equal(t, sequence.Geom(1, 2, 10), req)
}

func TestForm_RequestErrors(t *testing.T) {
	form := NewForm(config.Default().Defaults)
	form.TermCount = "2.5"
	_, err := form.Request()
	assert.ErrorIs(t, err, sequence.ErrTermCountNotPositive)

	form = NewForm(config.Default().Defaults)
	form.FirstTerm = "x"
	_, err = form.Request()
	assert.ErrorIs(t, err, sequence.ErrInvalidNumber)

	form = NewForm(config.Default().Defaults)
	form.Kind = "harmonic"
	_, err = form.Request()
	assert.ErrorIs(t, err, sequence.ErrUnknownKind)
}

func TestRender_WithReport(t *testing.T) {
	report, err := sequencer.Calculate(sequence.Geom(2, 2, 5))
	require.NoError(t, err)

	form := NewForm(config.Default().Defaults)
	form.Kind = "geometric"
	page, err := NewPage(form, report, "")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, page))
	html := buf.String()

	assert.Contains(t, html, `value="geometric" checked`)
	assert.Contains(t, html, "<h3>Geometric Sequence</h3>")
	assert.Contains(t, html, "2, 4, 8, 16, 32")
	assert.Contains(t, html, "62.00")
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "About Sequences")
}

func TestRender_WithError(t *testing.T) {
	page, err := NewPage(NewForm(config.Default().Defaults), nil, sequence.MsgZeroRatio)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, page))
	assert.Contains(t, buf.String(), sequence.MsgZeroRatio)
	assert.NotContains(t, buf.String(), `id="results"`)
}

func TestMarkdown(t *testing.T) {
	out, err := Markdown("**bold** <script>x</script>")
	require.NoError(t, err)
	assert.Contains(t, string(out), "<strong>bold</strong>")
	assert.NotContains(t, string(out), "<script>")
}
