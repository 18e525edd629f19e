// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dictionary

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	pairs []WordPair
	err   error
	calls int
}

func (r *fakeReader) Read(context.Context) ([]WordPair, error) {
	r.calls++
	return r.pairs, r.err
}

type fakeWriter struct {
	written []WordPair
	failOn  string
	err     error
}

func (w *fakeWriter) WriteOne(_ context.Context, pair WordPair) error {
	if pair.Key == w.failOn {
		return w.err
	}
	w.written = append(w.written, pair)
	return nil
}

func TestLoad(t *testing.T) {
	r := &fakeReader{pairs: []WordPair{
		{Key: "Key1", Value: "Value1"},
		{Key: "Key2", Value: "Value2"},
	}}
	d := New(r, nil)

	require.NoError(t, d.Load(context.Background()))
	assert.Equal(t, 1, r.calls)

	v, ok, err := d.Find("Key1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Value1", v)

	v, _, _ = d.Find("Key2")
	assert.Equal(t, "Value2", v)
}

func TestLoadLaterRecordWins(t *testing.T) {
	r := &fakeReader{pairs: []WordPair{
		{Key: "cat", Value: "кот"},
		{Key: "cat", Value: "кошка"},
	}}
	d := New(r, nil)

	require.NoError(t, d.Load(context.Background()))
	v, _, _ := d.Find("cat")
	assert.Equal(t, "кошка", v)
	assert.Equal(t, 1, d.Size())
}

func TestLoadEmptySnapshot(t *testing.T) {
	d := New(&fakeReader{}, nil)
	require.NoError(t, d.Load(context.Background()))
	assert.Equal(t, 0, d.Size())
}

func TestLoadReadError(t *testing.T) {
	storeErr := errors.New("database is locked")
	d := New(&fakeReader{err: storeErr}, nil)

	err := d.Load(context.Background())
	assert.ErrorIs(t, err, ErrRead)
	assert.ErrorIs(t, err, storeErr)
	assert.Equal(t, 0, d.Size())
}

func TestLoadKeepsPriorInsertsOnBadRecord(t *testing.T) {
	d := New(&fakeReader{pairs: []WordPair{
		{Key: "one", Value: "один"},
		{Key: "", Value: "пусто"},
		{Key: "two", Value: "два"},
	}}, nil)

	err := d.Load(context.Background())
	assert.ErrorIs(t, err, ErrInvalidKey)
	assert.Equal(t, 1, d.Size())

	_, ok, _ := d.Find("one")
	assert.True(t, ok)
}

func TestLoadWithoutReader(t *testing.T) {
	assert.ErrorIs(t, New(nil, nil).Load(context.Background()), ErrNoReader)
}

func TestSave(t *testing.T) {
	w := &fakeWriter{}
	d := New(nil, w)
	pairs := []WordPair{
		{Key: "Key1", Value: "Val1"},
		{Key: "Key2", Value: "Val2"},
		{Key: "Key1", Value: "Val1"},
	}

	require.NoError(t, d.Save(context.Background(), pairs))
	// One write per record, duplicates included.
	assert.Equal(t, pairs, w.written)
}

func TestSaveOne(t *testing.T) {
	w := &fakeWriter{}
	d := New(nil, w)
	wp := WordPair{Key: "Key", Value: "Val"}

	require.NoError(t, d.SaveOne(context.Background(), wp))
	assert.Equal(t, []WordPair{wp}, w.written)
}

func TestSaveStopsAtFirstFailure(t *testing.T) {
	storeErr := errors.New("disk full")
	w := &fakeWriter{failOn: "b", err: storeErr}
	d := New(nil, w)

	err := d.Save(context.Background(), []WordPair{
		{Key: "a", Value: "1"},
		{Key: "b", Value: "2"},
		{Key: "c", Value: "3"},
	})
	assert.ErrorIs(t, err, ErrWrite)
	assert.ErrorIs(t, err, storeErr)
	assert.Contains(t, err.Error(), `"b"`)
	assert.Equal(t, []WordPair{{Key: "a", Value: "1"}}, w.written)
}

func TestSaveWithoutWriter(t *testing.T) {
	err := New(nil, nil).SaveOne(context.Background(), WordPair{Key: "k"})
	assert.ErrorIs(t, err, ErrNoWriter)
}

func TestSaveDoesNotTouchTree(t *testing.T) {
	d := New(nil, &fakeWriter{})
	require.NoError(t, d.SaveOne(context.Background(), WordPair{Key: "k", Value: "v"}))
	assert.Equal(t, 0, d.Size())
}
