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

package collisions

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/google/btree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRecord(t testing.TB, zip string, date Date, key string) Record {
	t.Helper()
	r, err := NewRecord(zip, date, key, Counts{})
	require.NoError(t, err)
	return r
}

// zipRecord is a record that only differs from its siblings by zip.
func zipRecord(t testing.TB, zip string) Record {
	return mustRecord(t, zip, MustDate(2020, time.January, 1), "1")
}

// checkInvariants verifies cached heights, AVL balance and strict ordering,
// and that Len matches the number of reachable nodes.
func checkInvariants(t *testing.T, idx *Index) {
	t.Helper()

	var walk func(n *node) int
	nodes := 0
	walk = func(n *node) int {
		if n == nil {
			return -1
		}
		nodes++
		lh, rh := walk(n.left), walk(n.right)
		h := max(lh, rh) + 1
		require.Equal(t, h, n.height, "cached height of %s", n.record)
		bf := rh - lh
		require.True(t, bf >= -1 && bf <= 1, "balance factor %d at %s", bf, n.record)
		require.Equal(t, bf, balanceFactor(n), "balanceFactor formula at %s", n.record)
		return h
	}
	walk(idx.root)
	require.Equal(t, nodes, idx.Len())

	records := idx.Records()
	for i := 1; i < len(records); i++ {
		require.Negative(t, Compare(records[i-1], records[i]), "order at %d: %s then %s", i, records[i-1], records[i])
	}
}

func zips(records []Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Zip())
	}
	return out
}

type indexTestCase struct {
	Name          string
	InitialZips   []string
	ZipsToInsert  []string
	ZipsToDelete  []string
	ExpectedOrder []string
}

func TestIndexOperations(t *testing.T) {
	testCases := []indexTestCase{
		{
			Name:          "Simple Insertion",
			ZipsToInsert:  []string{"10001", "10002", "10003"},
			ExpectedOrder: []string{"10001", "10002", "10003"},
		},
		{
			Name:          "Insertion with Balancing (Right-Heavy)",
			InitialZips:   []string{"10001"},
			ZipsToInsert:  []string{"10002", "10003"},
			ExpectedOrder: []string{"10001", "10002", "10003"},
		},
		{
			Name:          "Insertion with Balancing (Left-Right)",
			InitialZips:   []string{"10005", "10001"},
			ZipsToInsert:  []string{"10003"},
			ExpectedOrder: []string{"10001", "10003", "10005"},
		},
		{
			Name:          "Deletion with Balancing (Left-Heavy)",
			InitialZips:   []string{"10003", "10002", "10004", "10001"},
			ZipsToDelete:  []string{"10004"},
			ExpectedOrder: []string{"10001", "10002", "10003"},
		},
		{
			Name:          "Deletion of Missing Zip",
			InitialZips:   []string{"10003", "10002"},
			ZipsToDelete:  []string{"10009"},
			ExpectedOrder: []string{"10002", "10003"},
		},
		{
			Name:          "Mixed Operations",
			InitialZips:   []string{"10004", "10003"},
			ZipsToInsert:  []string{"10005", "10002"},
			ZipsToDelete:  []string{"10003"},
			ExpectedOrder: []string{"10002", "10004", "10005"},
		},
		{
			Name:          "Numeric Zip Order",
			ZipsToInsert:  []string{"90210", "01002", "10001"},
			ExpectedOrder: []string{"01002", "10001", "90210"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			idx := NewIndex()
			for _, z := range tc.InitialZips {
				idx.Insert(zipRecord(t, z))
			}
			for _, z := range tc.ZipsToInsert {
				idx.Insert(zipRecord(t, z))
			}
			for _, z := range tc.ZipsToDelete {
				idx.Delete(zipRecord(t, z))
			}
			checkInvariants(t, idx)
			assert.Equal(t, tc.ExpectedOrder, zips(idx.Records()))
		})
	}
}

func TestEmptyIndex(t *testing.T) {
	idx := NewIndex()

	assert.Equal(t, 0, idx.Len())
	assert.Equal(t, -1, idx.Height())
	assert.Equal(t, "", idx.String())
	assert.False(t, idx.Delete(zipRecord(t, "10001")))
	assert.Equal(t, "\nnull", idx.TreeString())
}

func TestInsertDuplicateIsNoop(t *testing.T) {
	idx := NewIndex()
	first, err := NewRecord("10001", MustDate(2020, time.March, 4), "42", Counts{PersonsInjured: 1})
	require.NoError(t, err)
	// Same identity, different counts.
	again, err := NewRecord("10001", MustDate(2020, time.March, 4), "42", Counts{PersonsInjured: 9})
	require.NoError(t, err)

	idx.Insert(first)
	idx.Insert(zipRecord(t, "10002"))
	before := idx.String()

	idx.Insert(again)

	assert.Equal(t, 2, idx.Len())
	assert.Equal(t, before, idx.String())
	got := idx.RangeQuery("10001", MustDate(2020, time.January, 1), MustDate(2020, time.December, 31))
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].PersonsInjured(), "first insert wins")
}

func TestIncreasingZipsStayBalanced(t *testing.T) {
	idx := NewIndex()
	for i := 1; i <= 7; i++ {
		idx.Insert(zipRecord(t, fmt.Sprintf("1000%d", i)))
		checkInvariants(t, idx)
	}

	assert.Equal(t, 7, idx.Len())
	assert.Equal(t, 2, idx.Height())
	assert.Equal(t, "10004", idx.root.record.Zip())
}

func TestDeleteRootPromotesPredecessor(t *testing.T) {
	idx := NewIndex()
	idx.Insert(zipRecord(t, "10002"))
	idx.Insert(zipRecord(t, "10001"))
	idx.Insert(zipRecord(t, "10003"))
	require.Equal(t, "10002", idx.root.record.Zip())

	assert.True(t, idx.Delete(zipRecord(t, "10002")))

	assert.Equal(t, 2, idx.Len())
	assert.Equal(t, "10001", idx.root.record.Zip())
	require.NotNil(t, idx.root.right)
	assert.Equal(t, "10003", idx.root.right.record.Zip())
	assert.Nil(t, idx.root.left)
	checkInvariants(t, idx)
}

func TestDeleteTwoChildrenCountsOnce(t *testing.T) {
	idx := NewIndex()
	for _, z := range []string{"10004", "10002", "10006", "10001", "10003", "10005", "10007"} {
		idx.Insert(zipRecord(t, z))
	}

	assert.True(t, idx.Delete(zipRecord(t, "10002")))
	assert.Equal(t, 6, idx.Len())
	assert.True(t, idx.Delete(zipRecord(t, "10004")))
	assert.Equal(t, 5, idx.Len())
	assert.False(t, idx.Delete(zipRecord(t, "10004")))
	assert.Equal(t, 5, idx.Len())

	checkInvariants(t, idx)
	assert.Equal(t, []string{"10001", "10003", "10005", "10006", "10007"}, zips(idx.Records()))
}

func TestDeleteRebalancesWholePath(t *testing.T) {
	idx := NewIndex()
	for i := 0; i < 64; i++ {
		idx.Insert(zipRecord(t, fmt.Sprintf("%05d", 10000+i)))
	}
	// Draining the left half forces rotations above the deleted nodes.
	for i := 0; i < 32; i++ {
		require.True(t, idx.Delete(zipRecord(t, fmt.Sprintf("%05d", 10000+i))))
		checkInvariants(t, idx)
	}
	assert.Equal(t, 32, idx.Len())
}

func TestBalanceFactorShallow(t *testing.T) {
	leaf := func(zip string) *node { return &node{record: zipRecord(t, zip)} }

	t.Run("nil", func(t *testing.T) {
		assert.Equal(t, -1, balanceFactor(nil))
	})

	t.Run("leaf", func(t *testing.T) {
		assert.Equal(t, 0, balanceFactor(leaf("10001")))
	})

	t.Run("left child only", func(t *testing.T) {
		n := leaf("10002")
		n.left = leaf("10001")
		updateHeight(n)
		assert.Equal(t, 1, n.height)
		assert.Equal(t, -1, balanceFactor(n))
	})

	t.Run("right child only", func(t *testing.T) {
		n := leaf("10001")
		n.right = leaf("10002")
		updateHeight(n)
		assert.Equal(t, 1, balanceFactor(n))
	})

	t.Run("left chain picks LL", func(t *testing.T) {
		a, b, c := leaf("10003"), leaf("10002"), leaf("10001")
		b.left = c
		updateHeight(b)
		a.left = b
		updateHeight(a)
		require.Equal(t, -2, balanceFactor(a))
		require.Equal(t, -1, balanceFactor(b))

		root := rebalance(a)
		assert.Same(t, b, root)
		assert.Same(t, c, root.left)
		assert.Same(t, a, root.right)
		assert.Equal(t, 1, root.height)
	})

	t.Run("left zigzag picks LR", func(t *testing.T) {
		a, b, c := leaf("10003"), leaf("10001"), leaf("10002")
		b.right = c
		updateHeight(b)
		a.left = b
		updateHeight(a)
		require.Equal(t, -2, balanceFactor(a))
		require.Equal(t, 1, balanceFactor(b))

		root := rebalance(a)
		assert.Same(t, c, root)
		assert.Same(t, b, root.left)
		assert.Same(t, a, root.right)
	})

	t.Run("right chain picks RR", func(t *testing.T) {
		a, b, c := leaf("10001"), leaf("10002"), leaf("10003")
		b.right = c
		updateHeight(b)
		a.right = b
		updateHeight(a)
		require.Equal(t, 2, balanceFactor(a))

		assert.Same(t, b, rebalance(a))
	})

	t.Run("right zigzag picks RL", func(t *testing.T) {
		a, b, c := leaf("10001"), leaf("10003"), leaf("10002")
		b.left = c
		updateHeight(b)
		a.right = b
		updateHeight(a)
		require.Equal(t, 2, balanceFactor(a))
		require.Equal(t, -1, balanceFactor(b))

		assert.Same(t, c, rebalance(a))
	})

	t.Run("balanced subtree is left alone", func(t *testing.T) {
		a := leaf("10002")
		a.left, a.right = leaf("10001"), leaf("10003")
		updateHeight(a)
		assert.Same(t, a, rebalance(a))
	})
}

func TestStringAndTreeString(t *testing.T) {
	idx := NewIndex()
	d := MustDate(2020, time.June, 1)
	idx.Insert(mustRecord(t, "10002", d, "2"))
	idx.Insert(mustRecord(t, "10001", d, "1"))

	assert.Equal(t, "10001 06/01/2020 1 10002 06/01/2020 2", idx.String())
	assert.Equal(t, "\n10002 06/01/2020 2\n|--10001 06/01/2020 1\n   |--null\n   |--null\n|--null", idx.TreeString())
}

func TestAscendStopsEarly(t *testing.T) {
	idx := NewIndex()
	for i := 1; i <= 5; i++ {
		idx.Insert(zipRecord(t, fmt.Sprintf("1000%d", i)))
	}

	var seen []string
	idx.Ascend(func(r Record) bool {
		seen = append(seen, r.Zip())
		return len(seen) < 2
	})
	assert.Equal(t, []string{"10001", "10002"}, seen)
}

// TestRandomWorkloadMatchesReference drives the index and a google/btree set
// with the same random inserts and deletes and compares them after each step.
func TestRandomWorkloadMatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(20200101))
	ref := btree.NewG[Record](4, func(a, b Record) bool { return Compare(a, b) < 0 })
	idx := NewIndex()

	zipsPool := []string{"10001", "10002", "10003", "11201", "11215"}
	randomRecord := func() Record {
		zip := zipsPool[rng.Intn(len(zipsPool))]
		date := MustDate(2019+rng.Intn(2), time.Month(1+rng.Intn(12)), 1+rng.Intn(28))
		key := fmt.Sprintf("%d", 1+rng.Intn(5))
		counts := Counts{PersonsInjured: rng.Intn(3), PersonsKilled: rng.Intn(2)}
		r, err := NewRecord(zip, date, key, counts)
		require.NoError(t, err)
		return r
	}

	for step := 0; step < 3000; step++ {
		r := randomRecord()
		if rng.Intn(3) == 0 {
			_, found := ref.Delete(r)
			assert.Equal(t, found, idx.Delete(r), "step %d delete %s", step, r)
		} else {
			if !ref.Has(r) {
				ref.ReplaceOrInsert(r)
			}
			idx.Insert(r)
		}
		require.Equal(t, ref.Len(), idx.Len(), "step %d", step)
		if step%100 == 0 {
			checkInvariants(t, idx)
		}
	}
	checkInvariants(t, idx)

	var want []Record
	ref.Ascend(func(r Record) bool {
		want = append(want, r)
		return true
	})
	assert.Equal(t, want, idx.Records())
}
