package processor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yixiangWangTrv/deposit-export/internal/extractor"
	"github.com/yixiangWangTrv/deposit-export/internal/parsererror"
)

const sampleCSV = `report title
generated,2025-01-14
,
col1,col2,col3,col4,col5,col6,col7,col8,col9
a,b,c,H100,d,e,f,USD,"1,000"
a,b,c,H200,d,e,f,IDR,(250)
`

func writeInput(t *testing.T, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deposits.csv")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

func TestRunEndToEnd(t *testing.T) {
	path := writeInput(t, []byte(sampleCSV))

	p := New(extractor.DefaultSchema(), nil)
	result, err := p.Run(path)
	require.NoError(t, err)

	assert.Equal(t, 6, result.Stats.TotalRows)
	assert.Equal(t, 2, result.Stats.Processed)
	assert.Equal(t, 0, result.Stats.Skipped)
	assert.Equal(t, 0, result.Stats.Errors)

	require.Len(t, result.Records, 2)
	assert.Equal(t, "H100", result.Records[0].HotelID)
	assert.Equal(t, "USD", result.Records[0].Currency)
	assert.True(t, result.Records[0].Amount.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, "H200", result.Records[1].HotelID)
	assert.True(t, result.Records[1].Amount.Equal(decimal.NewFromInt(-250)))

	assert.Equal(t, "utf-8-sig", result.Encoding)
	assert.Equal(t, path, result.Source)
	assert.False(t, result.ModTime.IsZero())
}

func TestRunMissingFileIsFatal(t *testing.T) {
	p := New(extractor.DefaultSchema(), nil)

	result, err := p.Run(filepath.Join(t.TempDir(), "no-such-file.csv"))

	require.Error(t, err)
	assert.Nil(t, result)

	var notFound *parsererror.FileNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestRunRowLevelConditionsAreAbsorbed(t *testing.T) {
	input := `h
h
h
h
a,b,c,H1,d,e,f,USD,100
a,b,c
a,b,c,H2,d,e,f,USD,garbage
a,b,c,,d,e,f,USD,100
`
	path := writeInput(t, []byte(input))

	p := New(extractor.DefaultSchema(), nil)
	result, err := p.Run(path)
	require.NoError(t, err)

	assert.Equal(t, 8, result.Stats.TotalRows)
	assert.Equal(t, 1, result.Stats.Processed)
	assert.Equal(t, 2, result.Stats.Skipped)
	assert.Equal(t, 1, result.Stats.Errors)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "H1", result.Records[0].HotelID)
}

func TestRunLatin1Input(t *testing.T) {
	// Hotel name field carries a Latin-1 e-acute; the file is not
	// valid UTF-8 and must fall back.
	row := append([]byte("h\nh\nh\nh\na,b,c,Caf"), 0xE9)
	row = append(row, []byte(",d,e,f,EUR,50\n")...)
	path := writeInput(t, row)

	p := New(extractor.DefaultSchema(), nil)
	result, err := p.Run(path)
	require.NoError(t, err)

	assert.Equal(t, "latin-1", result.Encoding)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "Café", result.Records[0].HotelID)
}

func TestRunIdempotent(t *testing.T) {
	path := writeInput(t, []byte(sampleCSV))
	p := New(extractor.DefaultSchema(), nil)

	first, err := p.Run(path)
	require.NoError(t, err)
	second, err := p.Run(path)
	require.NoError(t, err)

	assert.Equal(t, first.Stats, second.Stats)
	assert.Equal(t, first.Records, second.Records)
}
