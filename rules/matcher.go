package rules

import (
	"github.com/ghetzel/go-snapscroll/geometry"
	"github.com/gobwas/glob"
)

// snapProperties matches every declaration the engine cares about; everything
// else in a matched rule is dropped before the bag reaches the engine.
var snapProperties = glob.MustCompile(`scroll-{snap,padding}*`)

// CandidateSpec pairs a prospective snap candidate with the declarations the
// matcher found on it. Candidates arrive in document order, which is assumed
// to also be spatial order along each axis.
type CandidateSpec struct {
	Region       geometry.Region
	Declarations Declarations
}

// Match describes one recognized snap container: the scroll surface, the
// container's own declarations, and its ordered candidates.
type Match struct {
	ID           string
	Surface      geometry.Surface
	Declarations Declarations
	Candidates   []CandidateSpec
}

type MatchFunc func(match Match)

type UnmatchFunc func(id string)

// Matcher is the rule-matching service: it reports containers whose styles
// match the snap property set, and reports again when the match is withdrawn.
type Matcher interface {
	OnMatch(fn MatchFunc)
	OnUnmatch(fn UnmatchFunc)
}

// StaticMatcher is a Matcher fed by hand. Tests and embedders that already
// know their matched element set use it in place of a live selector engine.
type StaticMatcher struct {
	matched   []MatchFunc
	unmatched []UnmatchFunc
	active    map[string]bool
}

func NewStaticMatcher() *StaticMatcher {
	return &StaticMatcher{
		active: make(map[string]bool),
	}
}

func (self *StaticMatcher) OnMatch(fn MatchFunc) {
	self.matched = append(self.matched, fn)
}

func (self *StaticMatcher) OnUnmatch(fn UnmatchFunc) {
	self.unmatched = append(self.unmatched, fn)
}

// Report a matched container. Declarations outside the scroll-snap family are
// filtered out before delivery.
func (self *StaticMatcher) Add(match Match) {
	match.Declarations = filterDeclarations(match.Declarations)

	for i, candidate := range match.Candidates {
		match.Candidates[i].Declarations = filterDeclarations(candidate.Declarations)
	}

	self.active[match.ID] = true

	for _, fn := range self.matched {
		fn(match)
	}
}

// Withdraw a previously reported container.
func (self *StaticMatcher) Remove(id string) {
	if !self.active[id] {
		return
	}

	delete(self.active, id)

	for _, fn := range self.unmatched {
		fn(id)
	}
}

func filterDeclarations(decls Declarations) Declarations {
	filtered := make(Declarations)

	for key, value := range decls {
		if snapProperties.Match(key) {
			filtered[key] = value
		}
	}

	return filtered
}
