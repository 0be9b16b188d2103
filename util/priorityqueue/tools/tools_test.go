package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/manuelroemer/NCommons-sub000/util"
	"github.com/manuelroemer/NCommons-sub000/util/heap"
	testing_util "github.com/manuelroemer/NCommons-sub000/util/testing"
)

func readers(inputs ...string) []io.Reader {
	out := make([]io.Reader, 0, len(inputs))
	for _, input := range inputs {
		out = append(out, strings.NewReader(input))
	}
	return out
}

func TestSortEntries(t *testing.T) {
	for _, tc := range []struct {
		name   string
		args   sortArgs
		inputs []string

		expected    string
		expectedErr string
	}{
		{
			name:     "text",
			inputs:   []string{"pear\napple\nfig\n"},
			expected: "pear\nfig\napple\n",
		},
		{
			name:     "text reversed",
			args:     sortArgs{orderArgs: orderArgs{Reverse: true}},
			inputs:   []string{"pear\napple\n", "fig\n"},
			expected: "apple\nfig\npear\n",
		},
		{
			name:     "numeric",
			args:     sortArgs{orderArgs: orderArgs{Numeric: true}},
			inputs:   []string{"5\n1\n9\n3\n10\n"},
			expected: "10\n9\n5\n3\n1\n",
		},
		{
			name: "unique with zero capacity",
			args: sortArgs{
				orderArgs: orderArgs{Numeric: true, Reverse: true},
				Capacity:  util.Some(0),
				Unique:    true,
			},
			inputs:   []string{"2\n1\n2\n", "1\n3\n"},
			expected: "1\n2\n3\n",
		},
		{
			name:     "empty",
			inputs:   []string{""},
			expected: "",
		},
		{
			name:        "not a number",
			args:        sortArgs{orderArgs: orderArgs{Numeric: true}},
			inputs:      []string{"1\ntwo\n3\n"},
			expectedErr: `line "two" is not a number`,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			err := sortEntries(tc.args, readers(tc.inputs...), &out, zap.NewNop())
			if tc.expectedErr != "" {
				assert.ErrorContains(t, err, tc.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.expected, out.String())
		})
	}

	t.Run("negative capacity", func(t *testing.T) {
		var out bytes.Buffer
		err := sortEntries(sortArgs{Capacity: util.Some(-1)}, readers("a\n"), &out, zap.NewNop())
		assert.True(t, errors.Is(err, heap.ErrInvalidArgument), "unexpected error %v", err)
	})
}

func TestTopEntries(t *testing.T) {
	for _, tc := range []struct {
		name   string
		args   topArgs
		inputs []string

		expected string
	}{
		{
			name:     "numeric",
			args:     topArgs{orderArgs: orderArgs{Numeric: true}, Count: 3},
			inputs:   []string{"5\n1\n9\n", "3\n10\n7\n"},
			expected: "10\n9\n7\n",
		},
		{
			name:     "lowest",
			args:     topArgs{orderArgs: orderArgs{Numeric: true, Reverse: true}, Count: 2},
			inputs:   []string{"5\n1\n9\n3\n"},
			expected: "1\n3\n",
		},
		{
			name:     "fewer lines than count",
			args:     topArgs{Count: 10},
			inputs:   []string{"b\na\nc\n"},
			expected: "c\nb\na\n",
		},
		{
			name:     "zero count",
			args:     topArgs{Count: 0},
			inputs:   []string{"b\na\nc\n"},
			expected: "",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			require.NoError(t, topEntries(tc.args, readers(tc.inputs...), &out, zap.NewNop()))
			assert.Equal(t, tc.expected, out.String())
		})
	}
}

func TestMergeEntries(t *testing.T) {
	dir := testing_util.MkdirTemp(t, "TestMergeEntries")
	paths := testing_util.WriteFiles(t, dir,
		[2]string{"a.txt", "1\n4\n10\n"},
		[2]string{"b.txt", "2\n4\n8\n"},
	)

	t.Run("numeric", func(t *testing.T) {
		inputs, closeAll, err := openInputs(nil, paths)
		require.NoError(t, err)
		defer closeAll()

		var out bytes.Buffer
		require.NoError(t, mergeEntries(mergeArgs{orderArgs: orderArgs{Numeric: true}}, inputs, &out, zap.NewNop()))
		assert.Equal(t, "1\n2\n4\n4\n8\n10\n", out.String())
	})

	t.Run("numeric unique", func(t *testing.T) {
		inputs, closeAll, err := openInputs(nil, paths)
		require.NoError(t, err)
		defer closeAll()

		var out bytes.Buffer
		require.NoError(t, mergeEntries(
			mergeArgs{orderArgs: orderArgs{Numeric: true}, Unique: true}, inputs, &out, zap.NewNop(),
		))
		assert.Equal(t, "1\n2\n4\n8\n10\n", out.String())
	})

	t.Run("reversed", func(t *testing.T) {
		var out bytes.Buffer
		require.NoError(t, mergeEntries(
			mergeArgs{orderArgs: orderArgs{Reverse: true}}, readers("c\na\n", "d\nb\n"), &out, zap.NewNop(),
		))
		assert.Equal(t, "d\nc\nb\na\n", out.String())
	})

	t.Run("not a number", func(t *testing.T) {
		var out bytes.Buffer
		err := mergeEntries(
			mergeArgs{orderArgs: orderArgs{Numeric: true}}, readers("1\n2\n", "x\n"), &out, zap.NewNop(),
		)
		assert.ErrorContains(t, err, `line "x" is not a number`)
	})

	t.Run("missing file", func(t *testing.T) {
		_, _, err := openInputs(nil, []string{filepath.Join(dir, "missing.txt")})
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
