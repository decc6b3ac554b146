package edit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/cxform/pkg/edit"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		replacements []edit.Replacement
		contentLen   int
		wantErr      bool
	}{
		{
			name:         "valid set",
			replacements: []edit.Replacement{edit.Replace(0, 3, "x"), edit.Insert(5, "y")},
			contentLen:   10,
		},
		{
			name:         "negative start",
			replacements: []edit.Replacement{edit.Replace(-1, 3, "x")},
			contentLen:   10,
			wantErr:      true,
		},
		{
			name:         "end before start",
			replacements: []edit.Replacement{{StartOffset: 5, EndOffset: 3}},
			contentLen:   10,
			wantErr:      true,
		},
		{
			name:         "end past content",
			replacements: []edit.Replacement{edit.Replace(0, 11, "x")},
			contentLen:   10,
			wantErr:      true,
		},
		{
			name:         "empty set",
			replacements: nil,
			contentLen:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := edit.Validate(tt.replacements, tt.contentLen)
			if tt.wantErr {
				var verr *edit.ValidationError
				require.ErrorAs(t, err, &verr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSortStable_KeepsDeclarationOrderOnTies(t *testing.T) {
	t.Parallel()

	rs := []edit.Replacement{
		edit.Replace(5, 8, "second-declared"),
		edit.Replace(0, 3, "third"),
		edit.Replace(5, 6, "fourth-declared"),
	}
	// Two replacements start at 5; the one declared first must stay first
	// even though it covers more bytes.
	edit.SortStable(rs)

	assert.Equal(t, "third", rs[0].NewText)
	assert.Equal(t, "second-declared", rs[1].NewText)
	assert.Equal(t, "fourth-declared", rs[2].NewText)
}

func TestFilterOverlaps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		sorted       []edit.Replacement
		wantAccepted int
		wantDropped  int
	}{
		{
			name:         "empty",
			sorted:       nil,
			wantAccepted: 0,
			wantDropped:  0,
		},
		{
			name: "disjoint all accepted",
			sorted: []edit.Replacement{
				edit.Replace(0, 3, "a"),
				edit.Replace(5, 8, "b"),
			},
			wantAccepted: 2,
		},
		{
			name: "adjacent all accepted",
			sorted: []edit.Replacement{
				edit.Replace(0, 3, "a"),
				edit.Replace(3, 6, "b"),
			},
			wantAccepted: 2,
		},
		{
			name: "overlap drops the later",
			sorted: []edit.Replacement{
				edit.Replace(0, 5, "a"),
				edit.Replace(3, 8, "b"),
			},
			wantAccepted: 1,
			wantDropped:  1,
		},
		{
			name: "contained range dropped",
			sorted: []edit.Replacement{
				edit.Replace(0, 10, "a"),
				edit.Replace(2, 4, "b"),
			},
			wantAccepted: 1,
			wantDropped:  1,
		},
		{
			name: "same start keeps the first declared",
			sorted: []edit.Replacement{
				edit.Replace(0, 5, "winner"),
				edit.Replace(0, 3, "loser"),
			},
			wantAccepted: 1,
			wantDropped:  1,
		},
		{
			name: "insertion at accepted end survives",
			sorted: []edit.Replacement{
				edit.Replace(0, 5, "a"),
				edit.Insert(5, "x"),
			},
			wantAccepted: 2,
		},
		{
			name: "insertion inside accepted span dropped",
			sorted: []edit.Replacement{
				edit.Replace(0, 5, "a"),
				edit.Insert(3, "x"),
			},
			wantAccepted: 1,
			wantDropped:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			accepted, dropped := edit.FilterOverlaps(tt.sorted)
			assert.Len(t, accepted, tt.wantAccepted)
			assert.Len(t, dropped, tt.wantDropped)
		})
	}
}

func TestFilterOverlaps_EarliestDeclaredWins(t *testing.T) {
	t.Parallel()

	rs := []edit.Replacement{
		edit.Replace(0, 5, "first-declared"),
		edit.Replace(0, 8, "second-declared"),
	}
	edit.SortStable(rs)
	accepted, dropped := edit.FilterOverlaps(rs)

	require.Len(t, accepted, 1)
	require.Len(t, dropped, 1)
	assert.Equal(t, "first-declared", accepted[0].NewText)
	assert.Equal(t, "second-declared", dropped[0].NewText)
}
