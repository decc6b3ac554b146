package edit_test

import (
	"testing"

	"github.com/yaklabco/cxform/pkg/edit"
)

func TestApply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		content      string
		replacements []edit.Replacement
		want         string
	}{
		{
			name:         "empty set returns original",
			content:      "int x;",
			replacements: nil,
			want:         "int x;",
		},
		{
			name:    "single replacement",
			content: "namespace foo {}",
			replacements: []edit.Replacement{
				edit.Replace(10, 13, "bar"),
			},
			want: "namespace bar {}",
		},
		{
			name:    "replacement longer than original span",
			content: "namespace foo {}",
			replacements: []edit.Replacement{
				edit.Replace(10, 13, "much_longer_name"),
			},
			want: "namespace much_longer_name {}",
		},
		{
			name:    "deletion",
			content: "inline namespace v1 {}",
			replacements: []edit.Replacement{
				edit.Replace(0, 7, ""),
			},
			want: "namespace v1 {}",
		},
		{
			name:    "insertion",
			content: "int x;",
			replacements: []edit.Replacement{
				edit.Insert(0, "static "),
			},
			want: "static int x;",
		},
		{
			name:    "multiple disjoint replacements",
			content: "aa bb cc",
			replacements: []edit.Replacement{
				edit.Replace(0, 2, "XX"),
				edit.Replace(6, 8, "ZZ"),
			},
			want: "XX bb ZZ",
		},
		{
			name:    "adjacent replacements",
			content: "abcdef",
			replacements: []edit.Replacement{
				edit.Replace(0, 3, "X"),
				edit.Replace(3, 6, "Y"),
			},
			want: "XY",
		},
		{
			name:    "insertion at end of content",
			content: "abc",
			replacements: []edit.Replacement{
				edit.Insert(3, "def"),
			},
			want: "abcdef",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := edit.Apply([]byte(tt.content), tt.replacements)
			if string(got) != tt.want {
				t.Errorf("Apply() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	content := []byte("hello world")
	edit.Apply(content, []edit.Replacement{edit.Replace(0, 5, "howdy")})
	if string(content) != "hello world" {
		t.Errorf("input buffer mutated: %q", content)
	}
}
