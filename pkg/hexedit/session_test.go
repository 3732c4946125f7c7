package hexedit_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/hexkit/hexfile/grid"
	"github.com/joshuapare/hexkit/hexfile/rebuild"
	"github.com/joshuapare/hexkit/internal/testutil"
	"github.com/joshuapare/hexkit/pkg/hexedit"
	"github.com/joshuapare/hexkit/pkg/types"
)

func openDigits(t *testing.T) (*hexedit.Session, string) {
	t.Helper()
	path := testutil.WriteFile(t, "digits.bin", []byte(testutil.Digits))
	s, err := hexedit.Open(path, nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestOpen_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := hexedit.Open(filepath.Join(dir, "missing.bin"), nil)
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.ErrKindNotFound), "got %v", err)
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, err = hexedit.Open(dir, nil)
	assert.True(t, types.IsKind(err, types.ErrKindNotRegularOrEmpty), "got %v", err)

	empty := testutil.WriteFile(t, "empty.bin", nil)
	_, err = hexedit.Open(empty, nil)
	assert.ErrorIs(t, err, types.ErrNotRegularOrEmpty)
}

func TestOpen_AccessDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores file permissions")
	}
	path := testutil.WriteFile(t, "ro.bin", []byte("x"))
	require.NoError(t, os.Chmod(path, 0o444))

	_, err := hexedit.Open(path, nil)
	assert.ErrorIs(t, err, types.ErrAccessDenied)
}

func TestEffectiveByte_Unedited(t *testing.T) {
	s, _ := openDigits(t)

	for off := range s.Size() {
		eff, err := s.EffectiveByte(off)
		require.NoError(t, err)
		base, err := s.BaseByte(off)
		require.NoError(t, err)
		assert.Equal(t, base, eff)
	}

	_, err := s.EffectiveByte(10)
	assert.ErrorIs(t, err, types.ErrPrecondition)
}

// Edit, revert, edit, save: the on-disk file reads 01Z3456789.
func TestScenario_EditRevertSave(t *testing.T) {
	s, path := openDigits(t)

	require.NoError(t, s.EditByte(4, 'X'))
	assert.Equal(t, 1, s.PendingCount())

	require.NoError(t, s.EditByte(4, '4'))
	assert.Equal(t, 0, s.PendingCount())

	require.NoError(t, s.EditByte(2, 'Z'))
	assert.True(t, s.IsEdited(2))
	assert.Equal(t, testutil.Digits, string(testutil.ReadFile(t, path)), "nothing written before save")

	n, err := s.Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 0, s.PendingCount())
	assert.Equal(t, "01Z3456789", string(testutil.ReadFile(t, path)))

	base, err := s.BaseByte(2)
	require.NoError(t, err)
	assert.Equal(t, byte('Z'), base)
}

func TestEditNibble(t *testing.T) {
	s, _ := openDigits(t)

	// '4' is 0x34.
	require.NoError(t, s.EditNibble(4, grid.HexHigh, 'a'))
	b, _ := s.EffectiveByte(4)
	assert.Equal(t, byte(0xA4), b)

	require.NoError(t, s.EditNibble(4, grid.HexLow, 'F'))
	b, _ = s.EffectiveByte(4)
	assert.Equal(t, byte(0xAF), b)

	require.NoError(t, s.EditNibble(4, grid.HexHigh, '3'))
	require.NoError(t, s.EditNibble(4, grid.HexLow, '4'))
	assert.Equal(t, 0, s.PendingCount())

	err := s.EditNibble(4, grid.HexHigh, 'g')
	assert.ErrorIs(t, err, types.ErrPrecondition)

	err = s.EditNibble(4, grid.ASCII, 'a')
	assert.ErrorIs(t, err, types.ErrPrecondition)
}

func TestClearAtAndAbandon(t *testing.T) {
	s, path := openDigits(t)

	require.NoError(t, s.EditByte(0, 'a'))
	require.NoError(t, s.EditByte(1, 'b'))
	require.NoError(t, s.EditByte(9, 'c'))

	s.ClearAt(1)
	assert.Equal(t, []int64{0, 9}, s.PendingOffsets())

	assert.Equal(t, 2, s.Abandon())
	assert.Equal(t, 0, s.Abandon())
	assert.Equal(t, 0, s.PendingCount())
	assert.Equal(t, testutil.Digits, string(testutil.ReadFile(t, path)))
}

func TestSave_NothingPending(t *testing.T) {
	s, _ := openDigits(t)

	n, err := s.Save(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestReadEffective(t *testing.T) {
	s, _ := openDigits(t)
	require.NoError(t, s.EditByte(3, 'x'))
	require.NoError(t, s.EditByte(8, 'y'))

	assert.Equal(t, []byte("12x456"), s.ReadEffective(1, 6))
	assert.Equal(t, []byte("7y9"), s.ReadEffective(7, 100))
	assert.Nil(t, s.ReadEffective(10, 1))
	assert.Nil(t, s.ReadEffective(0, 0))
}

func TestDelete_Digits(t *testing.T) {
	s, path := openDigits(t)

	require.NoError(t, s.Delete(context.Background(), 2, 3))
	assert.Equal(t, int64(7), s.Size())
	assert.Equal(t, "0156789", string(testutil.ReadFile(t, path)))
	assert.Equal(t, []byte("0156789"), s.ReadEffective(0, 7))
	assert.NoFileExists(t, rebuild.TempPath(path))

	// The reopened session still edits and saves.
	require.NoError(t, s.EditByte(6, '!'))
	_, err := s.Save(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "015678!", string(testutil.ReadFile(t, path)))
}

func TestInsert_Digits(t *testing.T) {
	s, path := openDigits(t)

	require.NoError(t, s.Insert(context.Background(), 5, 2))
	assert.Equal(t, int64(12), s.Size())
	assert.Equal(t, []byte("01234\x00\x0056789"), testutil.ReadFile(t, path))

	b, err := s.EffectiveByte(6)
	require.NoError(t, err)
	assert.Equal(t, byte(0), b)
}

func TestInsert_FillOption(t *testing.T) {
	path := testutil.WriteFile(t, "f.bin", []byte("ab"))
	s, err := hexedit.Open(path, &hexedit.Options{Fill: 0xFF, SyncBeforeRename: true})
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Insert(context.Background(), 2, 2))
	assert.Equal(t, []byte{'a', 'b', 0xFF, 0xFF}, testutil.ReadFile(t, path))
}

func TestStructural_RefusedWithPendingEdits(t *testing.T) {
	s, path := openDigits(t)
	require.NoError(t, s.EditByte(0, 'x'))

	err := s.Insert(context.Background(), 0, 1)
	assert.ErrorIs(t, err, types.ErrPrecondition)
	err = s.Delete(context.Background(), 0, 1)
	assert.ErrorIs(t, err, types.ErrPrecondition)

	assert.Equal(t, 1, s.PendingCount())
	assert.Equal(t, testutil.Digits, string(testutil.ReadFile(t, path)))
}

func TestStructural_BadRanges(t *testing.T) {
	s, path := openDigits(t)
	ctx := context.Background()

	tests := []struct {
		name string
		fn   func() error
	}{
		{"insert zero", func() error { return s.Insert(ctx, 0, 0) }},
		{"insert past end", func() error { return s.Insert(ctx, 11, 1) }},
		{"delete past end", func() error { return s.Delete(ctx, 8, 3) }},
		{"delete negative", func() error { return s.Delete(ctx, -1, 1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn()
			require.Error(t, err)
			assert.True(t, types.IsKind(err, types.ErrKindPrecondition), "got %v", err)
		})
	}

	assert.False(t, s.Closed())
	assert.Equal(t, testutil.Digits, string(testutil.ReadFile(t, path)))
}

func TestStructural_MaxStructural(t *testing.T) {
	path := testutil.WriteFile(t, "f.bin", []byte(testutil.Digits))
	opts := hexedit.DefaultOptions()
	opts.MaxStructural = 4
	s, err := hexedit.Open(path, &opts)
	require.NoError(t, err)
	defer s.Close()

	assert.ErrorIs(t, s.Insert(context.Background(), 0, 5), types.ErrPrecondition)
	assert.NoError(t, s.Insert(context.Background(), 0, 4))
}

func TestDelete_WholeFileClosesSession(t *testing.T) {
	s, path := openDigits(t)

	err := s.Delete(context.Background(), 0, 10)
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.ErrKindClosed), "got %v", err)
	assert.True(t, s.Closed())

	st, statErr := os.Stat(path)
	require.NoError(t, statErr)
	assert.Zero(t, st.Size())

	_, err = s.Save(context.Background())
	assert.ErrorIs(t, err, types.ErrClosed)
	_, err = s.EffectiveByte(0)
	assert.ErrorIs(t, err, types.ErrClosed)
	assert.NoError(t, s.Close())
}

func TestStructural_IOFailureKeepsSessionUsable(t *testing.T) {
	s, path := openDigits(t)

	// A directory squatting on the temp name makes the rebuild fail.
	require.NoError(t, os.Mkdir(rebuild.TempPath(path), 0o755))

	err := s.Insert(context.Background(), 0, 1)
	require.Error(t, err)
	assert.True(t, types.IsKind(err, types.ErrKindIO), "got %v", err)
	assert.False(t, s.Closed())
	assert.Equal(t, int64(10), s.Size())

	b, err := s.EffectiveByte(0)
	require.NoError(t, err)
	assert.Equal(t, byte('0'), b)
}

func TestCreateBackup(t *testing.T) {
	path := testutil.WriteFile(t, "f.bin", []byte(testutil.Digits))
	opts := hexedit.DefaultOptions()
	opts.CreateBackup = true
	s, err := hexedit.Open(path, &opts)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Delete(context.Background(), 0, 1))
	assert.Equal(t, testutil.Digits, string(testutil.ReadFile(t, rebuild.BackupPath(path))))
}

func TestClose_DiscardsPending(t *testing.T) {
	s, path := openDigits(t)
	require.NoError(t, s.EditByte(0, 'x'))

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	assert.True(t, s.Closed())
	assert.Zero(t, s.Size())
	assert.Equal(t, testutil.Digits, string(testutil.ReadFile(t, path)))

	err := s.EditByte(0, 'y')
	var te *types.Error
	require.True(t, errors.As(err, &te))
	assert.Equal(t, types.ErrKindClosed, te.Kind)
}
