package manifest

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantmind-br/contentpack/internal/domain"
)

func TestBuildSidebarTree_Fixture(t *testing.T) {
	tree := BuildSidebarTree(BuildDocs(fixtureRegistry(), nil))

	expected := []*domain.SidebarNode{
		{
			ID:    "sem1",
			Title: "Semester 1",
			Items: []*domain.SidebarNode{
				{
					ID:    "s1_c",
					Title: "C",
					DocID: "semester_1_c",
					Items: []*domain.SidebarNode{
						{ID: "semester_1_c_handout", Title: "Handout", DocID: "semester_1_c_handout"},
						{ID: "semester_1_c_notes", Title: "Notes", DocID: "semester_1_c_notes"},
						{ID: "semester_1_c_pyq", Title: "PYQ", DocID: "semester_1_c_pyq"},
					},
				},
			},
		},
		{
			ID:    "sem2",
			Title: "Semester 2",
			Items: []*domain.SidebarNode{
				{ID: "s2_dld", Title: "DLD", DocID: "semester_2_dld"},
			},
		},
	}
	if diff := cmp.Diff(expected, tree); diff != "" {
		t.Errorf("sidebar tree mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildSidebarTree_SemestersSortedNumerically(t *testing.T) {
	reg := newTestRegistry(
		[3]string{"semester_10_ai_notes", "", "x.html"},
		[3]string{"semester_2_os_notes", "", "x.html"},
		[3]string{"semester_1_c_notes", "", "x.html"},
	)

	tree := BuildSidebarTree(BuildDocs(reg, nil))

	require.Len(t, tree, 3)
	assert.Equal(t, "sem1", tree[0].ID)
	assert.Equal(t, "sem2", tree[1].ID)
	assert.Equal(t, "sem10", tree[2].ID)
}

func TestBuildSidebarTree_SubjectsKeepFirstSeenOrder(t *testing.T) {
	reg := newTestRegistry(
		[3]string{"semester_1_math_notes", "", "x.html"},
		[3]string{"semester_1_c_notes", "", "x.html"},
		[3]string{"semester_1_math_pyq", "", "x.html"},
	)

	tree := BuildSidebarTree(BuildDocs(reg, nil))

	require.Len(t, tree, 1)
	require.Len(t, tree[0].Items, 2)
	assert.Equal(t, "s1_math", tree[0].Items[0].ID)
	assert.Equal(t, "s1_c", tree[0].Items[1].ID)
	assert.Len(t, tree[0].Items[0].Items, 2)
}

func TestBuildSidebarTree_Exclusions(t *testing.T) {
	reg := newTestRegistry(
		[3]string{"semester_1_c_notes_unit1", "", "x.html"}, // unit
		[3]string{"semester_1_c_lab", "", "x.html"},         // doc
		[3]string{"semester1_c_notes", "", "x.html"},        // no subject token
		[3]string{"c_notes", "", "x.html"},                  // semester 0
	)

	tree := BuildSidebarTree(BuildDocs(reg, nil))

	assert.Empty(t, tree)
	assert.NotNil(t, tree)
}

func TestBuildSidebarTree_NonSubjectIndexMaterializesEmptySubject(t *testing.T) {
	reg := newTestRegistry(
		[3]string{"semester_4_os_lab_index", "", ""},
	)

	tree := BuildSidebarTree(BuildDocs(reg, nil))

	require.Len(t, tree, 1)
	require.Len(t, tree[0].Items, 1)
	subject := tree[0].Items[0]
	assert.Equal(t, "s4_os", subject.ID)
	assert.Equal(t, "Os", subject.Title)
	assert.Empty(t, subject.DocID)
	assert.Nil(t, subject.Items)
}

func TestBuildSidebarTree_LenientSemesterToken(t *testing.T) {
	reg := newTestRegistry(
		[3]string{"semester_2a_java_notes", "", "x.html"},
	)

	tree := BuildSidebarTree(BuildDocs(reg, nil))

	require.Len(t, tree, 1)
	assert.Equal(t, "sem2", tree[0].ID)
	require.Len(t, tree[0].Items, 1)
	assert.Equal(t, "s2_java", tree[0].Items[0].ID)
}

func TestBuildSidebarTree_ItemTitlesComeFromType(t *testing.T) {
	reg := newTestRegistry(
		[3]string{"semester_3_dbms_assignments", "Whatever", "x.html"},
		[3]string{"semester_3_dbms_projects", "", "x.html"},
	)

	tree := BuildSidebarTree(BuildDocs(reg, nil))

	require.Len(t, tree, 1)
	items := tree[0].Items[0].Items
	require.Len(t, items, 2)
	assert.Equal(t, "Assignments", items[0].Title)
	assert.Equal(t, "Projects", items[1].Title)
}

func TestExtractSubject(t *testing.T) {
	tests := []struct {
		id       string
		expected string
	}{
		{"semester_1_c_programming", "c"},
		{"semester_1_c", "c"},
		{"semester_12_java_notes", "java"},
		{"semester_-1_c", "c"},
		{"semester_3x_ai", "ai"},
		{"semester_1", ""},
		{"semester_x_c", ""},
		{"semester__c", ""},
		{"semester1_c_notes", ""},
		{"Semester_1_c", ""},
		{"careers", ""},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractSubject(tt.id))
		})
	}
}
