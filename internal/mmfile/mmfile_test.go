package mmfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.bin")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestMap_WholeFile(t *testing.T) {
	want := []byte{0xde, 0xad, 0xbe, 0xef, 0x42}
	r, err := Map(writeTemp(t, want))
	require.NoError(t, err)
	defer r.Close()

	assert.Equal(t, want, r.Bytes())
	assert.Equal(t, int64(0), r.Offset())
	assert.Equal(t, int64(5), r.FileSize())
}

func TestMap_ZeroLength(t *testing.T) {
	r, err := Map(writeTemp(t, nil))
	require.NoError(t, err)
	assert.Empty(t, r.Bytes())
	require.NoError(t, r.Close())
}

func TestMapRange_Unaligned(t *testing.T) {
	data := make([]byte, 3*4096+100)
	for i := range data {
		data[i] = byte(i * 7)
	}
	path := writeTemp(t, data)

	r, err := MapRange(path, 4096+13, 200)
	require.NoError(t, err)
	defer r.Close()

	assert.Equal(t, data[4096+13:4096+213], r.Bytes())
	assert.Equal(t, int64(4096+13), r.Offset())
}

func TestMapRange_ClampsToEnd(t *testing.T) {
	path := writeTemp(t, []byte("0123456789"))

	r, err := MapRange(path, 7, 100)
	require.NoError(t, err)
	defer r.Close()
	assert.Equal(t, []byte("789"), r.Bytes())

	end, err := MapRange(path, 10, 5)
	require.NoError(t, err)
	assert.Empty(t, end.Bytes())

	_, err = MapRange(path, 11, 1)
	assert.ErrorIs(t, err, ErrOffset)
}

func TestClose_Twice(t *testing.T) {
	r, err := Map(writeTemp(t, []byte("abc")))
	require.NoError(t, err)
	require.NoError(t, r.Close())
	require.NoError(t, r.Close())
	assert.Nil(t, r.Bytes())
}

func TestMap_Missing(t *testing.T) {
	_, err := Map(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
