package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/contentpack/internal/domain"
	"github.com/quantmind-br/contentpack/internal/registry"
)

func strPtr(s string) *string {
	return &s
}

func TestBuildRelations_Fixture(t *testing.T) {
	rel := BuildRelations(BuildDocs(fixtureRegistry(), nil))

	assert.Equal(t, []string{
		"semester_1_c_notes_unit1",
		"semester_1_c_notes_unit2",
		"semester_2_dld_notes_unit1",
	}, rel.NextPrev.Keys())

	unit1, _ := rel.NextPrev.Get("semester_1_c_notes_unit1")
	assert.Equal(t, domain.Relation{
		Next: strPtr("semester_1_c_notes_unit2"),
		Up:   strPtr("semester_1_c_notes"),
	}, unit1)

	unit2, _ := rel.NextPrev.Get("semester_1_c_notes_unit2")
	assert.Equal(t, domain.Relation{
		Prev: strPtr("semester_1_c_notes_unit1"),
		Up:   strPtr("semester_1_c_notes"),
	}, unit2)

	dld, _ := rel.NextPrev.Get("semester_2_dld_notes_unit1")
	assert.Equal(t, domain.Relation{
		Up: strPtr("semester_2_dld_notes_index"),
	}, dld)
}

func TestBuildRelations_ChainSortedByNumber(t *testing.T) {
	reg := newTestRegistry(
		[3]string{"os_notes_unit3", "", "x.html"},
		[3]string{"os_notes_unit1", "", "x.html"},
		[3]string{"os_notes_unit10", "", "x.html"},
	)

	rel := BuildRelations(BuildDocs(reg, nil))

	middle, ok := rel.NextPrev.Get("os_notes_unit3")
	require.True(t, ok)
	assert.Equal(t, strPtr("os_notes_unit1"), middle.Prev)
	assert.Equal(t, strPtr("os_notes_unit10"), middle.Next)
	assert.Nil(t, middle.Up)
}

func TestBuildRelations_CoursesAreIndependent(t *testing.T) {
	reg := newTestRegistry(
		[3]string{"os_notes_unit1", "", "x.html"},
		[3]string{"cn_notes_unit1", "", "x.html"},
		[3]string{"os_notes_unit2", "", "x.html"},
	)

	rel := BuildRelations(BuildDocs(reg, nil))

	assert.Equal(t, []string{"os_notes_unit1", "os_notes_unit2", "cn_notes_unit1"}, rel.NextPrev.Keys())
	cn, _ := rel.NextPrev.Get("cn_notes_unit1")
	assert.Nil(t, cn.Prev)
	assert.Nil(t, cn.Next)
}

func TestBuildRelations_DuplicateNumbersKeepRegistryOrder(t *testing.T) {
	reg := newTestRegistry(
		[3]string{"os_notes_unit1", "", "x.html"},
		[3]string{"os_notes_unit01", "", "x.html"},
	)

	rel := BuildRelations(BuildDocs(reg, nil))

	first, _ := rel.NextPrev.Get("os_notes_unit1")
	assert.Equal(t, strPtr("os_notes_unit01"), first.Next)
}

func TestBuildRelations_NoUnits(t *testing.T) {
	rel := BuildRelations(BuildDocs(newTestRegistry(
		[3]string{"careers", "", "careers.html"},
	), nil))

	require.NotNil(t, rel.NextPrev)
	assert.Equal(t, 0, rel.NextPrev.Len())
}

func TestFindNotesIndex(t *testing.T) {
	tests := []struct {
		name     string
		course   string
		ids      []string
		expected string
		found    bool
	}{
		{
			name:     "course notes",
			course:   "semester_1_c",
			ids:      []string{"semester_1_c_notes_index", "semester_1_c_notes"},
			expected: "semester_1_c_notes",
			found:    true,
		},
		{
			name:     "course notes index",
			course:   "semester_1_c",
			ids:      []string{"semester_1_c_notes_index"},
			expected: "semester_1_c_notes_index",
			found:    true,
		},
		{
			name:     "last segment replaced",
			course:   "semester_2_os_lab",
			ids:      []string{"semester_2_os_notes"},
			expected: "semester_2_os_notes",
			found:    true,
		},
		{
			name:     "fallback scan skips units",
			course:   "cn",
			ids:      []string{"cn_notes_unit1", "cn_all_notes"},
			expected: "cn_all_notes",
			found:    true,
		},
		{
			name:     "fallback scan takes first in order",
			course:   "cn",
			ids:      []string{"cn_notes_b", "cn_notes_a"},
			expected: "cn_notes_b",
			found:    true,
		},
		{
			name:   "nothing matches",
			course: "cn",
			ids:    []string{"cn_handout", "os_notes"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := newTestRegistry()
			for _, id := range tt.ids {
				reg.Set(id, registry.Entry{Source: id + ".html"})
			}

			got, ok := FindNotesIndex(tt.course, BuildDocs(reg, nil))
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}
