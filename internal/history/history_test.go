package history

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/ihft/internal/model"
)

func openTemp(t *testing.T, content string) *Store {
	t.Helper()
	p := filepath.Join(t.TempDir(), "hist")
	if content != "" {
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	s, err := Open(p)
	require.NoError(t, err)
	return s
}

func TestPushPeekPop(t *testing.T) {
	s := openTemp(t, "")

	require.NoError(t, s.Push(model.AddedRecord("walk dog")))
	require.NoError(t, s.Push(model.RemovedRecord("walk dog")))

	b, err := os.ReadFile(s.Path())
	require.NoError(t, err)
	assert.Equal(t, "remove walk dog\nadd walk dog\n", string(b))

	r, err := s.Peek()
	require.NoError(t, err)
	assert.Equal(t, model.RemovedRecord("walk dog"), r)

	require.NoError(t, s.Pop())
	r, err = s.Peek()
	require.NoError(t, err)
	assert.Equal(t, model.AddedRecord("walk dog"), r)

	require.NoError(t, s.Pop())
	assert.Equal(t, 0, s.Len())
}

func TestPeek_Empty(t *testing.T) {
	s := openTemp(t, "")
	_, err := s.Peek()
	assert.ErrorIs(t, err, ErrEmpty)
	assert.ErrorIs(t, s.Pop(), ErrEmpty)
}

func TestPeek_Corrupt(t *testing.T) {
	s := openTemp(t, "frobnicate x\nadd y\n")

	_, err := s.Peek()
	require.ErrorIs(t, err, ErrCorrupt)
	assert.ErrorIs(t, err, model.ErrMalformedRecord)

	var ce *CorruptError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "frobnicate x", ce.Line)
	assert.Equal(t, 2, s.Len())
}

func TestRecords(t *testing.T) {
	s := openTemp(t, "remove b\nadd a\n")
	recs, err := s.Records()
	require.NoError(t, err)
	assert.Equal(t, []model.Record{model.RemovedRecord("b"), model.AddedRecord("a")}, recs)

	bad := openTemp(t, "add a\nnope\n")
	_, err = bad.Records()
	assert.ErrorIs(t, err, ErrCorrupt)
}
