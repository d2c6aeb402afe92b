package changelog

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	for _, valid := range []string{"pretty", "json", "markdown"} {
		got, err := ParseFormat(valid)
		require.NoError(t, err)
		assert.Equal(t, Format(valid), got)
	}

	_, err := ParseFormat("yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pretty, json, markdown")
}

func TestRenderPending_JSON(t *testing.T) {
	doc := docWithEntries(t, [2]string{"fixed", "leak"})

	var buf bytes.Buffer
	require.NoError(t, RenderPending(doc, FormatJSON, &buf, FormatOptions{}))

	var round Document
	require.NoError(t, json.Unmarshal(buf.Bytes(), &round))
	assert.Equal(t, "testproj", round.Project)
	assert.Equal(t, "leak", round.Changes[CategoryFixed][0].Description)
}

func TestRenderPending_Markdown(t *testing.T) {
	doc := docWithEntries(t,
		[2]string{"added", "Export command"},
		[2]string{"fixed", "Crash"},
	)
	doc.Changes[CategoryAdded][0].Author = "Ana"

	var buf bytes.Buffer
	require.NoError(t, RenderPending(doc, FormatMarkdown, &buf, FormatOptions{}))
	got := buf.String()

	assert.Contains(t, got, "### Added\n- Export command (Ana)\n")
	assert.Contains(t, got, "### Fixed\n- Crash\n")
	assert.Less(t, strings.Index(got, "### Added"), strings.Index(got, "### Fixed"))
}

func TestRenderPending_MarkdownEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPending(NewDocument("p"), FormatMarkdown, &buf, FormatOptions{}))
	assert.Equal(t, "No unreleased changes.\n", buf.String())
}

func TestRenderPending_PrettyPlain(t *testing.T) {
	doc := docWithEntries(t,
		[2]string{"added", "one"},
		[2]string{"added", "two"},
	)
	doc.Changes[CategoryAdded][1].Author = "Bob"

	var buf bytes.Buffer
	require.NoError(t, RenderPending(doc, FormatPretty, &buf, FormatOptions{Plain: true}))
	got := buf.String()

	assert.Contains(t, got, "UNRELEASED CHANGES (2):")
	assert.Contains(t, got, "### Added")
	assert.Contains(t, got, "  1. one")
	assert.Contains(t, got, "  2. two (Bob)")
}

func TestRenderPending_PrettyEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderPending(NewDocument("p"), FormatPretty, &buf, FormatOptions{Plain: true}))
	assert.Contains(t, buf.String(), "No unreleased changes")
}
