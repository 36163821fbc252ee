package domain

// GroupClass classifies a topic group by how essential its items are.
type GroupClass string

const (
	ClassMustKnow   GroupClass = "must-know"
	ClassGoodToKnow GroupClass = "good-to-know"
	ClassTools      GroupClass = "tools"
)

// ValidGroupClasses is the canonical set of accepted topic group class tags.
var ValidGroupClasses = map[string]bool{
	string(ClassMustKnow):   true,
	string(ClassGoodToKnow): true,
	string(ClassTools):      true,
}

// Label returns a short human label for the class.
func (c GroupClass) Label() string {
	switch c {
	case ClassMustKnow:
		return "Must know"
	case ClassGoodToKnow:
		return "Good to know"
	case ClassTools:
		return "Tools"
	default:
		return string(c)
	}
}
