package usda

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pagedListHandler serves a list of total items in pages of max.
func pagedListHandler(t *testing.T, total int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t.Helper()
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		max, _ := strconv.Atoi(r.URL.Query().Get("max"))
		if max <= 0 {
			max = 50
		}

		end := offset + max
		if end > total {
			end = total
		}

		items := ""
		for i := offset; i < end; i++ {
			if items != "" {
				items += ","
			}
			items += fmt.Sprintf(`{"offset": %d, "id": "%05d", "name": "food %d"}`, i, i, i)
		}

		fmt.Fprintf(w, `{"list": {"lt": "f", "start": %d, "end": %d, "total": %d, "item": [%s]}}`,
			offset, end, total, items)
	}
}

func TestListPager(t *testing.T) {
	var requests int
	client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		pagedListHandler(t, 5)(w, r)
	})
	defer closeFn()

	pager := client.ListPager(ListFood, ListOptions{Max: 2})
	ctx := context.Background()

	var all []ListItem
	for {
		items, err := pager.Next(ctx)
		require.NoError(t, err)
		if items == nil {
			break
		}
		all = append(all, items...)
	}

	assert.Len(t, all, 5)
	assert.Equal(t, 3, requests)
	assert.Equal(t, "00000", all[0].ID)
	assert.Equal(t, "00004", all[4].ID)

	// Exhausted pager stays exhausted without another request.
	items, err := pager.Next(ctx)
	require.NoError(t, err)
	assert.Nil(t, items)
	assert.Equal(t, 3, requests)
}

func TestListPagerAll(t *testing.T) {
	client, closeFn := newTestClient(t, pagedListHandler(t, 7))
	defer closeFn()

	all, err := client.ListPager(ListFood, ListOptions{Max: 3}).All(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 7)
}

func TestListPagerStartOffset(t *testing.T) {
	client, closeFn := newTestClient(t, pagedListHandler(t, 6))
	defer closeFn()

	all, err := client.ListPager(ListFood, ListOptions{Max: 4, Offset: 4}).All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "00004", all[0].ID)
}

func TestListPagerEmptyList(t *testing.T) {
	client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"list": {"lt": "f", "start": 0, "end": 0, "total": 0, "item": []}}`))
	})
	defer closeFn()

	all, err := client.ListPager(ListFood, ListOptions{}).All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSearchPager(t *testing.T) {
	client, closeFn := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		total := 3
		end := offset + 2
		if end > total {
			end = total
		}

		items := ""
		for i := offset; i < end; i++ {
			if items != "" {
				items += ","
			}
			items += fmt.Sprintf(`{"offset": %d, "name": "butter %d", "ndbno": "%05d"}`, i, i, i)
		}
		fmt.Fprintf(w, `{"list": {"q": "butter", "start": %d, "end": %d, "total": %d, "item": [%s]}}`,
			offset, end, total, items)
	})
	defer closeFn()

	all, err := client.SearchPager(SearchOptions{Query: "butter", Max: 2}).All(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "butter 2", all[2].Name)
}

func TestHasMorePages(t *testing.T) {
	list := &List{End: 50, Total: 100}
	assert.True(t, list.HasMorePages())
	list.End = 100
	assert.False(t, list.HasMorePages())

	result := &SearchResult{End: 10, Total: 10}
	assert.False(t, result.HasMorePages())
}
