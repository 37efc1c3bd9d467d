package genres

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Waddenn/filmoria/internal/tmdb"
)

type fakeLister struct {
	lists map[string][]tmdb.Genre
	errs  map[string]error
	calls atomic.Int32
}

func (f *fakeLister) GenreList(_ context.Context, kind string) ([]tmdb.Genre, error) {
	f.calls.Add(1)
	if err := f.errs[kind]; err != nil {
		return nil, err
	}
	return f.lists[kind], nil
}

func TestAll_Union(t *testing.T) {
	src := &fakeLister{lists: map[string][]tmdb.Genre{
		"movie": {{ID: 28, Name: "Action"}, {ID: 18, Name: "Drama"}},
		"tv":    {{ID: 10759, Name: "Action & Adventure"}, {ID: 18, Name: "Drama (TV)"}},
	}}

	got := New(src, nil).All(context.Background())

	assert.Equal(t, []Genre{
		{ID: 28, Name: "Action"},
		{ID: 18, Name: "Drama (TV)"},
		{ID: 10759, Name: "Action & Adventure"},
	}, got)
	assert.Equal(t, int32(2), src.calls.Load())
}

func TestAll_EitherFailureUsesFallback(t *testing.T) {
	src := &fakeLister{
		lists: map[string][]tmdb.Genre{"movie": {{ID: 28, Name: "Action"}}},
		errs:  map[string]error{"tv": errors.New("boom")},
	}
	logger, hook := test.NewNullLogger()

	got := New(src, logger).All(context.Background())

	require.Len(t, got, 18)
	assert.Equal(t, Fallback, got)
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "genres", hook.LastEntry().Data["op"])
}

func TestNamed(t *testing.T) {
	var ids []int
	for _, g := range Named {
		ids = append(ids, g.ID)
	}
	assert.Equal(t, []int{16, 12, 35, 18, 27, 80, 99}, ids)
}

func TestName(t *testing.T) {
	assert.Equal(t, "Horror", Name(Fallback, 27))
	assert.Equal(t, "Genre", Name(Fallback, 1))
}

func TestLookup(t *testing.T) {
	tests := []struct {
		input  string
		wantID int
		ok     bool
	}{
		{"comedy", 35, true},
		{"  SCIENCE FICTION ", 878, true},
		{"Documentry", 99, true},
		{"Thriler", 53, true},
		{"", 0, false},
		{"xyzzy", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			g, ok := Lookup(Fallback, tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.wantID, g.ID)
		})
	}
}
