package mapping

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Blank(t *testing.T) {
	line := Classify("", 1)
	assert.Equal(t, LineBlank, line.Kind)

	line = Classify("   \t  ", 2)
	assert.Equal(t, LineBlank, line.Kind)
	assert.Equal(t, "   \t  ", line.Raw, "blank lines keep their raw text")
}

func TestClassify_Comment(t *testing.T) {
	line := Classify("# a comment", 3)
	assert.Equal(t, LineComment, line.Kind)

	line = Classify("   # indented comment", 4)
	assert.Equal(t, LineComment, line.Kind)
	assert.Equal(t, "   # indented comment", line.Raw)
}

func TestClassify_Record(t *testing.T) {
	line := Classify("main,1,press,play,a.wav", 5)
	assert.Equal(t, LineRecord, line.Kind)
	assert.Equal(t, 5, line.Number)
}

func TestSplitFields_Simple(t *testing.T) {
	fields := splitFields("a,b,c")
	assert.Equal(t, []string{"a", "b", "c"}, fields)
}

func TestSplitFields_QuotedComma(t *testing.T) {
	fields := splitFields(`main,1,press,play,"file, with comma.wav"`)
	require.Len(t, fields, 5)
	assert.Equal(t, "file, with comma.wav", fields[4])
}

func TestSplitFields_TrailingEmpty(t *testing.T) {
	fields := splitFields("a,b,")
	assert.Equal(t, []string{"a", "b", ""}, fields)
}

func TestParseLine_Valid(t *testing.T) {
	line := ParseLine("main,1,press,play,a.wav", 1, DefaultRules())

	require.True(t, line.Diags.IsValid(), "unexpected errors: %v", line.Diags.Errors)
	assert.Equal(t, "main", line.Page)
	assert.Equal(t, 1, line.Slot)
	assert.Equal(t, "press", line.Trigger)
	assert.Equal(t, "play", line.Action)
	assert.Equal(t, []string{"a.wav"}, line.Params)
}

func TestParseLine_NormalizesCase(t *testing.T) {
	line := ParseLine("Main, 2 , PRESS , Play_Cut , a.wav", 1, DefaultRules())

	require.True(t, line.Diags.IsValid(), "unexpected errors: %v", line.Diags.Errors)
	assert.Equal(t, "Main", line.Page, "page case is preserved")
	assert.Equal(t, 2, line.Slot)
	assert.Equal(t, "press", line.Trigger)
	assert.Equal(t, "play_cut", line.Action)
}

func TestParseLine_TooFewFields(t *testing.T) {
	line := ParseLine("main,1,press", 1, DefaultRules())

	require.True(t, line.Diags.HasErrors())
	assert.Contains(t, line.Diags.Errors[0].Message, "too few fields")
	assert.Empty(t, line.Page, "no partial record beyond raw text")
}

func TestParseLine_BadSlotNumber(t *testing.T) {
	line := ParseLine("main,abc,press,play,a.wav", 1, DefaultRules())

	require.True(t, line.Diags.HasErrors())
	assert.Contains(t, line.Diags.Errors[0].Message, "invalid button number")
	assert.Empty(t, line.Trigger, "parse stops at the failing field")
}

func TestParseLine_StopWithoutParams(t *testing.T) {
	line := ParseLine("main,3,release,stop", 1, DefaultRules())

	assert.True(t, line.Diags.IsValid(), "unexpected errors: %v", line.Diags.Errors)
	assert.Empty(t, line.Params)
}

func TestParse_LineNumbersAndKinds(t *testing.T) {
	input := "# header\n\nmain,1,press,play,a.wav\n"
	lines, err := Parse(strings.NewReader(input), DefaultRules())
	require.NoError(t, err)
	require.Len(t, lines, 3)

	assert.Equal(t, LineComment, lines[0].Kind)
	assert.Equal(t, 1, lines[0].Number)
	assert.Equal(t, LineBlank, lines[1].Kind)
	assert.Equal(t, LineRecord, lines[2].Kind)
	assert.Equal(t, 3, lines[2].Number)
}

func TestParse_CRLF(t *testing.T) {
	lines, err := Parse(strings.NewReader("main,1,press,play,a.wav\r\n"), DefaultRules())
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "main,1,press,play,a.wav", lines[0].Raw)
}

func TestCanonical_RoundTrip(t *testing.T) {
	rules := DefaultRules()
	inputs := []string{
		"main,1,press,play,a.wav",
		"Main, 2 , PRESS , Play , b.wav",
		"fx,3,long_press,stop",
		`fx,4,release,play,"name, with comma.wav"`,
	}

	for _, input := range inputs {
		line := ParseLine(input, 1, rules)
		require.True(t, line.Diags.IsValid(), "input %q: %v", input, line.Diags.Errors)

		reparsed := ParseLine(line.Canonical(), 1, rules)
		assert.True(t, reparsed.Diags.IsValid(), "canonical %q: %v", line.Canonical(), reparsed.Diags.Errors)
		assert.Equal(t, line.Page, reparsed.Page)
		assert.Equal(t, line.Slot, reparsed.Slot)
		assert.Equal(t, line.Trigger, reparsed.Trigger)
		assert.Equal(t, line.Action, reparsed.Action)
		assert.Equal(t, line.Params, reparsed.Params)
	}
}

func TestLineKind_String(t *testing.T) {
	assert.Equal(t, "LineBlank", LineBlank.String())
	assert.Equal(t, "LineRecord", LineRecord.String())
}
