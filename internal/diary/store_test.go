package diary

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceThenRead(t *testing.T) {
	s := NewStore()

	flags, err := s.Replace("2024-05-01", Input{Todo: "a, b ,,c", Contents: " hi ", Thanks: ""})
	require.NoError(t, err)
	assert.Equal(t, Flags{HasContents: true, HasTodos: true}, flags)

	got, err := s.Read("2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, Entry{TodoItems: []string{"a", "b", "c"}, Contents: "hi", Thanks: ""}, got)
}

func TestReplaceOverwrites(t *testing.T) {
	s := NewStore()

	_, err := s.Replace("2024-05-01", Input{Todo: "a", Contents: "first", Thanks: "x"})
	require.NoError(t, err)

	flags, err := s.Replace("2024-05-01", Input{Contents: "second"})
	require.NoError(t, err)
	assert.Equal(t, Flags{HasContents: true, HasTodos: false}, flags)

	got, _ := s.Read("2024-05-01")
	assert.Equal(t, Entry{TodoItems: []string{}, Contents: "second", Thanks: ""}, got)
}

func TestReplaceNonStringFields(t *testing.T) {
	s := NewStore()

	flags, err := s.Replace("2024-05-01", Input{Todo: 7.0, Contents: true, Thanks: []any{"x"}})
	require.NoError(t, err)
	assert.Equal(t, Flags{}, flags)

	got, _ := s.Read("2024-05-01")
	assert.Equal(t, emptyEntry(), got)
}

func TestReadMissingDate(t *testing.T) {
	s := NewStore()

	got, err := s.Read("1999-12-31")
	require.NoError(t, err)
	assert.Equal(t, Entry{TodoItems: []string{}, Contents: "", Thanks: ""}, got)
}

func TestInvalidDateNeverTouchesStore(t *testing.T) {
	s := NewStore()

	_, err := s.Replace("not-a-date", Input{Contents: "x"})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = s.Merge("2024-5-1", Patch{Contents: Some("x")})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = s.Read("")
	assert.ErrorIs(t, err, ErrInvalidDate)

	assert.Empty(t, s.entries)
}

func TestReadReturnsCopy(t *testing.T) {
	s := NewStore()
	_, err := s.Replace("2024-05-01", Input{Todo: []any{"a"}})
	require.NoError(t, err)

	got, _ := s.Read("2024-05-01")
	got.TodoItems[0] = "mutated"

	again, _ := s.Read("2024-05-01")
	assert.Equal(t, []string{"a"}, again.TodoItems)
}

func TestMergeAllUnsetIsNoop(t *testing.T) {
	s := NewStore()
	_, err := s.Replace("2024-05-01", Input{Todo: "a,b", Contents: "hi", Thanks: "ty"})
	require.NoError(t, err)
	before, _ := s.Read("2024-05-01")

	flags, err := s.Merge("2024-05-01", Patch{})
	require.NoError(t, err)
	assert.Equal(t, Flags{HasContents: true, HasTodos: true}, flags)

	after, _ := s.Read("2024-05-01")
	assert.Equal(t, before, after)
}

func TestMergeContentsOnly(t *testing.T) {
	s := NewStore()
	_, err := s.Replace("2024-05-01", Input{Todo: "a, b ,,c", Contents: " hi ", Thanks: "ty"})
	require.NoError(t, err)

	_, err = s.Merge("2024-05-01", Patch{Contents: Some("  updated ")})
	require.NoError(t, err)

	got, _ := s.Read("2024-05-01")
	assert.Equal(t, Entry{TodoItems: []string{"a", "b", "c"}, Contents: "updated", Thanks: "ty"}, got)
}

func TestMergeThanksKeepsRest(t *testing.T) {
	s := NewStore()
	_, err := s.Replace("2024-05-01", Input{Todo: "a, b ,,c", Contents: " hi ", Thanks: ""})
	require.NoError(t, err)

	flags, err := s.Merge("2024-05-01", Patch{Thanks: Some("grateful")})
	require.NoError(t, err)
	assert.Equal(t, Flags{HasContents: true, HasTodos: true}, flags)

	got, _ := s.Read("2024-05-01")
	assert.Equal(t, Entry{TodoItems: []string{"a", "b", "c"}, Contents: "hi", Thanks: "grateful"}, got)
}

func TestMergeOnMissingDateStartsEmpty(t *testing.T) {
	s := NewStore()

	flags, err := s.Merge("2024-06-10", Patch{Todo: Some([]any{"walk"})})
	require.NoError(t, err)
	assert.Equal(t, Flags{HasContents: false, HasTodos: true}, flags)

	got, _ := s.Read("2024-06-10")
	assert.Equal(t, Entry{TodoItems: []string{"walk"}, Contents: "", Thanks: ""}, got)
}

func TestMergeExplicitNullClears(t *testing.T) {
	s := NewStore()
	_, err := s.Replace("2024-05-01", Input{Todo: "a", Contents: "hi"})
	require.NoError(t, err)

	var p Patch
	require.NoError(t, json.Unmarshal([]byte(`{"contents":null}`), &p))
	assert.True(t, p.Contents.Set)
	assert.False(t, p.Todo.Set)

	flags, err := s.Merge("2024-05-01", p)
	require.NoError(t, err)
	assert.Equal(t, Flags{HasContents: false, HasTodos: true}, flags)
}

func TestPatchDecodingDistinguishesOmitted(t *testing.T) {
	var p Patch
	require.NoError(t, json.Unmarshal([]byte(`{"todo":"x, y","thanks":""}`), &p))

	assert.True(t, p.Todo.Set)
	assert.Equal(t, "x, y", p.Todo.Value)
	assert.False(t, p.Contents.Set)
	assert.True(t, p.Thanks.Set)
	assert.Equal(t, "", p.Thanks.Value)
}

func TestSummarize(t *testing.T) {
	s := NewStore()

	_, _ = s.Replace("2024-05-03", Input{Contents: "c"})
	_, _ = s.Replace("2024-05-01", Input{Todo: "t", Contents: "c"})
	_, _ = s.Replace("2023-12-31", Input{Todo: "t"})
	_, _ = s.Replace("2024-05-02", Input{Thanks: "only thanks"})
	_, _ = s.Merge("2024-04-30", Patch{})

	got := s.Summarize()
	assert.Equal(t, []string{"2024-05-01", "2024-05-03"}, got.HaveContents)
	assert.Equal(t, []string{"2023-12-31", "2024-05-01"}, got.HaveTodos)
}

func TestSummarizeEmptyStore(t *testing.T) {
	got := NewStore().Summarize()
	assert.NotNil(t, got.HaveContents)
	assert.NotNil(t, got.HaveTodos)
	assert.Empty(t, got.HaveContents)
	assert.Empty(t, got.HaveTodos)
}

func TestSummarizeReflectsLaterWrites(t *testing.T) {
	s := NewStore()
	_, _ = s.Replace("2024-05-01", Input{Contents: "c"})
	assert.Equal(t, []string{"2024-05-01"}, s.Summarize().HaveContents)

	_, _ = s.Merge("2024-05-01", Patch{Contents: Some("")})
	assert.Empty(t, s.Summarize().HaveContents)
}

func TestConcurrentMerges(t *testing.T) {
	s := NewStore()
	_, err := s.Replace("2024-05-01", Input{Todo: "keep"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _ = s.Merge("2024-05-01", Patch{Contents: Some(fmt.Sprintf("c%d", i))})
			_ = s.Summarize()
		}(i)
	}
	wg.Wait()

	got, _ := s.Read("2024-05-01")
	assert.Equal(t, []string{"keep"}, got.TodoItems)
	assert.NotEmpty(t, got.Contents)
}
