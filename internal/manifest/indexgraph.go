package manifest

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/quantmind-br/contentpack/internal/domain"
	"github.com/quantmind-br/contentpack/internal/ordered"
	"github.com/quantmind-br/contentpack/internal/registry"
	"github.com/quantmind-br/contentpack/internal/utils"
)

// maxChildDepth is how many directory levels below an index's own directory
// a document may sit and still be listed as its child. Unit files one level
// deeper than their index are flattened into the index's child list.
const maxChildDepth = 1

var childUnitRe = regexp.MustCompile(`(?i)unit(\d+)`)

// BuildIndexGraph maps every index document to the documents found beneath
// its directory. Indexes without children are left out.
func BuildIndexGraph(docs *ordered.Map[domain.Document], reg *registry.Registry) *ordered.Map[[]string] {
	graph := ordered.New[[]string]()

	for id, doc := range docs.All() {
		if doc.Type != domain.DocTypeIndex {
			continue
		}
		if children := FindChildren(id, reg); len(children) > 0 {
			graph.Set(id, children)
		}
	}

	return graph
}

// FindChildren lists the registry entries whose directory lies strictly below
// the directory of indexID, at most maxChildDepth levels down.
func FindChildren(indexID string, reg *registry.Registry) []string {
	entry, _ := reg.Get(indexID)
	prefix := utils.SlashDir(entry.Source) + "/"

	var children []string
	for id, candidate := range reg.All() {
		if id == indexID {
			continue
		}
		dir := utils.SlashDir(candidate.Source)
		if !strings.HasPrefix(dir, prefix) {
			continue
		}
		if utils.CountSegments(dir[len(prefix):]) <= maxChildDepth {
			children = append(children, id)
		}
	}

	sortChildren(children)
	return children
}

// sortChildren orders unit documents by unit number when both sides carry
// one, and falls back to locale-aware string order otherwise.
func sortChildren(children []string) {
	collator := collate.New(language.Und)

	slices.SortStableFunc(children, func(a, b string) int {
		an, aok := childUnitNumber(a)
		bn, bok := childUnitNumber(b)
		if aok && bok {
			return an - bn
		}
		return collator.CompareString(a, b)
	})
}

func childUnitNumber(id string) (int, bool) {
	m := childUnitRe.FindStringSubmatch(id)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}
