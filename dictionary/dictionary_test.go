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
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// build inserts key/value pairs given as a flat list.
func build(t *testing.T, kv ...string) *Dictionary {
	t.Helper()
	d := New(nil, nil)
	for i := 0; i+1 < len(kv); i += 2 {
		require.NoError(t, d.Insert(kv[i], kv[i+1]))
	}
	return d
}

// checkOrdering fails the test if any node breaks the strict BST order.
func checkOrdering(t *testing.T, n *Node, low, high *string) {
	t.Helper()
	if n == nil {
		return
	}
	if low != nil && !(n.key > *low) {
		t.Errorf("key %q not greater than lower bound %q", n.key, *low)
	}
	if high != nil && !(n.key < *high) {
		t.Errorf("key %q not less than upper bound %q", n.key, *high)
	}
	checkOrdering(t, n.left, low, &n.key)
	checkOrdering(t, n.right, &n.key, high)
}

func inOrderKeys(d *Dictionary) []string {
	var keys []string
	d.Walk(func(key, _ string) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

func TestInsertFirstNodeBecomesRoot(t *testing.T) {
	d := New(nil, nil)
	require.Nil(t, d.Root())

	require.NoError(t, d.Insert("Ключ", "Значение"))
	require.NotNil(t, d.Root())
	assert.Equal(t, "Ключ", d.Root().Key())
	assert.Equal(t, "Значение", d.Root().Value())
	assert.Equal(t, 1, d.Size())
}

func TestInsertDuplicateKeyUpdatesInPlace(t *testing.T) {
	d := build(t, "key", "value1")
	root := d.Root()

	require.NoError(t, d.Insert("key", "value2"))
	assert.Same(t, root, d.Root())
	assert.Equal(t, "value2", d.Root().Value())
	assert.Equal(t, 1, d.Size())

	v, ok, err := d.Find("key")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "value2", v)
}

func TestInsertShape(t *testing.T) {
	d := build(t, "M", "M", "A", "A", "Z", "Z", "B", "B")

	root := d.Root()
	assert.Equal(t, "M", root.Key())
	assert.Equal(t, "A", root.Left().Key())
	assert.Equal(t, "B", root.Left().Right().Key())
	assert.Equal(t, "Z", root.Right().Key())
	assert.Nil(t, root.Left().Left())
}

func TestInsertEmptyValueIsAllowed(t *testing.T) {
	d := build(t, "blank", "")
	v, ok, err := d.Find("blank")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "", v)
}

func TestOrdinalComparison(t *testing.T) {
	// Upper case sorts before lower case byte-wise.
	d := build(t, "b", "1", "B", "2", "a", "3", "A", "4")
	assert.Equal(t, []string{"A", "B", "a", "b"}, inOrderKeys(d))
}

func TestInvalidKey(t *testing.T) {
	d := New(nil, nil)

	assert.ErrorIs(t, d.Insert("", "value"), ErrInvalidKey)

	_, _, err := d.Find("")
	assert.ErrorIs(t, err, ErrInvalidKey)

	deleted, err := d.Delete("")
	assert.ErrorIs(t, err, ErrInvalidKey)
	assert.False(t, deleted)

	assert.Equal(t, 0, d.Size())
}

func TestEmptyDictionary(t *testing.T) {
	d := New(nil, nil)

	v, ok, err := d.Find("anything")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "", v)

	deleted, err := d.Delete("anything")
	require.NoError(t, err)
	assert.False(t, deleted)

	assert.Equal(t, 0, d.Size())
	assert.Equal(t, 0, d.Height())
	assert.Empty(t, d.Pairs())
}

func TestGetSet(t *testing.T) {
	d := New(nil, nil)
	require.NoError(t, d.Set("key", "value1"))
	v, ok, err := d.Get("key")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "value1", v)

	require.NoError(t, d.Set("key", "value2"))
	v, _, _ = d.Get("key")
	assert.Equal(t, "value2", v)

	_, ok, err = d.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDeleteCases(t *testing.T) {
	t.Run("leaf", func(t *testing.T) {
		d := build(t, "M", "Root", "A", "Left")

		deleted, err := d.Delete("A")
		require.NoError(t, err)
		assert.True(t, deleted)
		assert.Nil(t, d.Root().Left())
		assert.Equal(t, 1, d.Size())
	})

	t.Run("one child", func(t *testing.T) {
		d := build(t, "M", "Root", "A", "Left", "B", "LeftRight")

		deleted, err := d.Delete("A")
		require.NoError(t, err)
		assert.True(t, deleted)
		require.NotNil(t, d.Root().Left())
		assert.Equal(t, "B", d.Root().Left().Key())
		assert.Equal(t, "LeftRight", d.Root().Left().Value())
		assert.Equal(t, 2, d.Size())
	})

	t.Run("two children at root", func(t *testing.T) {
		d := build(t,
			"M", "Root",
			"A", "Left",
			"Z", "Right",
			"B", "LeftRight",
			"N", "RightLeft",
		)

		deleted, err := d.Delete("M")
		require.NoError(t, err)
		assert.True(t, deleted)
		assert.NotEqual(t, "M", d.Root().Key())
		assert.Equal(t, "N", d.Root().Key())
		assert.Equal(t, "RightLeft", d.Root().Value())
		assert.Nil(t, d.Root().Right().Left())
		assert.Equal(t, 4, d.Size())
		checkOrdering(t, d.Root(), nil, nil)

		_, ok, _ := d.Find("M")
		assert.False(t, ok)
	})

	t.Run("two children, successor is right child", func(t *testing.T) {
		d := build(t, "M", "m", "A", "a", "Z", "z", "ZZ", "zz")

		deleted, err := d.Delete("M")
		require.NoError(t, err)
		assert.True(t, deleted)
		assert.Equal(t, "Z", d.Root().Key())
		assert.Equal(t, "ZZ", d.Root().Right().Key())
		assert.Equal(t, 3, d.Size())
		checkOrdering(t, d.Root(), nil, nil)
	})

	t.Run("single root", func(t *testing.T) {
		d := build(t, "only", "один")

		deleted, err := d.Delete("only")
		require.NoError(t, err)
		assert.True(t, deleted)
		assert.Nil(t, d.Root())
		assert.Equal(t, 0, d.Size())
	})

	t.Run("root with one child", func(t *testing.T) {
		d := build(t, "M", "m", "Z", "z", "X", "x")

		deleted, err := d.Delete("M")
		require.NoError(t, err)
		assert.True(t, deleted)
		assert.Equal(t, "Z", d.Root().Key())
		assert.Equal(t, "X", d.Root().Left().Key())
	})

	t.Run("missing key", func(t *testing.T) {
		d := build(t, "key", "value")

		deleted, err := d.Delete("NonExist")
		require.NoError(t, err)
		assert.False(t, deleted)
		assert.Equal(t, 1, d.Size())
	})
}

func TestFindWithParent(t *testing.T) {
	d := build(t, "M", "m", "A", "a", "Z", "z", "B", "b")

	node, parent := d.findWithParent("M")
	assert.Same(t, d.Root(), node)
	assert.Nil(t, parent)

	node, parent = d.findWithParent("B")
	require.NotNil(t, node)
	assert.Equal(t, "B", node.key)
	assert.Equal(t, "A", parent.key)

	// A missing key yields the attach point.
	node, parent = d.findWithParent("C")
	assert.Nil(t, node)
	assert.Equal(t, "B", parent.key)
}

func TestRemoveHelpers(t *testing.T) {
	d := build(t, "M", "m", "A", "a", "Z", "z", "B", "b", "N", "n", "Y", "y")

	node, parent := d.findWithParent("B")
	d.removeLeaf(node, parent)
	assert.Nil(t, d.Root().Left().Right())

	// Y hangs under N's right after insertion order M A Z B N Y.
	node, parent = d.findWithParent("N")
	require.Equal(t, "Z", parent.key)
	d.removeOneChild(node, parent)
	assert.Equal(t, "Y", d.Root().Right().Left().Key())

	d.removeTwoChildren(d.Root())
	assert.Equal(t, "Y", d.Root().Key())
	assert.Equal(t, []string{"A", "Y", "Z"}, inOrderKeys(d))
}

func TestCountNodes(t *testing.T) {
	assert.Equal(t, 0, countNodes(nil))
	d := build(t, "b", "", "a", "", "c", "")
	assert.Equal(t, 3, countNodes(d.Root()))
	assert.Equal(t, 1, countNodes(d.Root().Left()))
}

func TestHeightDegenerate(t *testing.T) {
	d := New(nil, nil)
	for i := 0; i < 10; i++ {
		require.NoError(t, d.Insert(fmt.Sprintf("k%02d", i), ""))
	}
	// Sorted insertion order gives a list-shaped tree.
	assert.Equal(t, 10, d.Height())
	assert.Nil(t, d.Root().Left())
}

func TestWalkStopsEarly(t *testing.T) {
	d := build(t, "c", "3", "a", "1", "b", "2", "d", "4")
	var seen []string
	d.Walk(func(key, _ string) bool {
		seen = append(seen, key)
		return key != "b"
	})
	assert.Equal(t, []string{"a", "b"}, seen)
}

func TestSearchPrefix(t *testing.T) {
	d := build(t,
		"cat", "кошка",
		"apple", "яблоко",
		"car", "машина",
		"dog", "собака",
		"cart", "тележка",
		"ca", "ка",
		"cab", "такси",
		"b", "б",
	)

	testCases := []struct {
		Name     string
		Prefix   string
		Expected []string
	}{
		{"all", "", []string{"apple", "b", "ca", "cab", "car", "cart", "cat", "dog"}},
		{"ca", "ca", []string{"ca", "cab", "car", "cart", "cat"}},
		{"car", "car", []string{"car", "cart"}},
		{"exact", "dog", []string{"dog"}},
		{"none", "zebra", nil},
		{"between", "bz", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			var keys []string
			for _, p := range d.SearchPrefix(tc.Prefix) {
				keys = append(keys, p.Key)
			}
			assert.Equal(t, tc.Expected, keys)
		})
	}
}

func TestPairsInOrder(t *testing.T) {
	d := build(t, "b", "2", "a", "1", "c", "3")
	assert.Equal(t, []WordPair{
		{Key: "a", Value: "1"},
		{Key: "b", Value: "2"},
		{Key: "c", Value: "3"},
	}, d.Pairs())
}

// TestRandomOperations drives the tree and a map with the same random
// operations and compares them after every step.
func TestRandomOperations(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	d := New(nil, nil)
	model := map[string]string{}

	for step := 0; step < 3000; step++ {
		key := fmt.Sprintf("w%03d", rng.Intn(200))
		if rng.Intn(3) == 0 {
			_, present := model[key]
			sizeBefore := d.Size()

			deleted, err := d.Delete(key)
			require.NoError(t, err)
			require.Equal(t, present, deleted, "step %d delete %q", step, key)
			delete(model, key)

			if present {
				require.Equal(t, sizeBefore-1, d.Size())
			} else {
				require.Equal(t, sizeBefore, d.Size())
			}
		} else {
			value := fmt.Sprintf("v%d", step)
			require.NoError(t, d.Insert(key, value))
			model[key] = value
		}

		require.Equal(t, len(model), d.Size(), "step %d", step)
		require.Equal(t, len(model) == 0, d.Root() == nil)
	}

	checkOrdering(t, d.Root(), nil, nil)

	keys := make([]string, 0, len(model))
	for k, v := range model {
		keys = append(keys, k)
		got, ok, err := d.Find(k)
		require.NoError(t, err)
		require.True(t, ok, "missing %q", k)
		require.Equal(t, v, got)
	}
	sort.Strings(keys)
	assert.Equal(t, keys, inOrderKeys(d))
}
