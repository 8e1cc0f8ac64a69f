package swift_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tirasundara/mt940-parser/internal/swift"
)

func collectBlocks(t *testing.T, lines []string, frame swift.Frame) ([]swift.Block, error) {
	t.Helper()

	var blocks []swift.Block
	err := swift.Segment(lines, frame, func(b swift.Block) error {
		blocks = append(blocks, b)
		return nil
	})
	return blocks, err
}

func TestSegment_WithHeader(t *testing.T) {
	lines := []string{
		"{1:F01TATRSKBXAXXX0000000000}{2:I940TATRSKBXXXXXN}{3:{108:MT940}}{4:\r",
		":20:A\r",
		"",
		":25:B   ",
		"-}",
		"   ",
		"{1:F01TATRSKBXAXXX0000000000}{2:I940TATRSKBXXXXXN}{4:",
		":20:C",
		"-}{5:{CHK:1}}",
	}

	blocks, err := collectBlocks(t, lines, swift.Frame{Header: swift.HeaderPattern, Trailer: swift.DefaultTrailer})
	require.NoError(t, err)
	require.Len(t, blocks, 2)

	assert.Equal(t, swift.Block{{No: 2, Text: ":20:A"}, {No: 4, Text: ":25:B"}}, blocks[0])
	assert.Equal(t, swift.Block{{No: 8, Text: ":20:C"}}, blocks[1])
}

func TestSegment_Headerless(t *testing.T) {
	lines := []string{":20:A", ":25:B", "-", ":20:C", "-"}

	blocks, err := collectBlocks(t, lines, swift.Frame{Trailer: "-"})
	require.NoError(t, err)
	assert.Len(t, blocks, 2)
}

func TestSegment_InvalidHeader(t *testing.T) {
	lines := []string{"{1:F01TATRSKBX}{4:", ":20:A", "-}"}

	_, err := collectBlocks(t, lines, swift.Frame{Header: swift.HeaderPattern})
	assert.ErrorIs(t, err, swift.ErrInvalidHeader)

	// body without any header
	_, err = collectBlocks(t, []string{":20:A", "-}"}, swift.Frame{Header: swift.HeaderPattern})
	assert.ErrorIs(t, err, swift.ErrInvalidHeader)
}

func TestSegment_Unfinished(t *testing.T) {
	_, err := collectBlocks(t, []string{":20:A", "-", ":20:B"}, swift.Frame{Trailer: "-"})
	assert.ErrorIs(t, err, swift.ErrUnfinishedStatement)

	header := "{1:F01TATRSKBXAXXX0000000000}{2:I940TATRSKBXXXXXN}{4:"
	_, err = collectBlocks(t, []string{header}, swift.Frame{Header: swift.HeaderPattern})
	assert.ErrorIs(t, err, swift.ErrUnfinishedStatement)
}

func TestSegment_EmitErrorStops(t *testing.T) {
	calls := 0
	err := swift.Segment([]string{":20:A", "-", ":20:B", "-"}, swift.Frame{Trailer: "-"}, func(swift.Block) error {
		calls++
		return swift.ErrRunawayField
	})

	assert.ErrorIs(t, err, swift.ErrRunawayField)
	assert.Equal(t, 1, calls)
}
