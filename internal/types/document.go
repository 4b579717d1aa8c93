// Package types defines the shared data model for the resume ranking system.
package types

// Document is an immutable text blob carried in two representations.
// Normalized is a pure function of Raw for a fixed pipeline configuration.
type Document struct {
	Raw        string `json:"raw"`
	Normalized string `json:"normalized"`
}

// SkillSet holds the technical and soft skills extracted from one document.
// Both lists are deduplicated and follow catalog order.
type SkillSet struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
}

// TechnicalSet returns the technical skills as a set for intersection tests.
func (s SkillSet) TechnicalSet() map[string]struct{} {
	set := make(map[string]struct{}, len(s.Technical))
	for _, skill := range s.Technical {
		set[skill] = struct{}{}
	}
	return set
}
