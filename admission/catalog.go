package admission

import "github.com/nonsonwune/rankmatch/models"

// Catalog indexes cutoffs by institution and program group, keeping the order
// in which they first appear.
type Catalog struct {
	cutoffs []models.AdmissionCutoff
}

// NewCatalog copies cutoffs into a catalog.
func NewCatalog(cutoffs []models.AdmissionCutoff) *Catalog {
	c := &Catalog{cutoffs: make([]models.AdmissionCutoff, len(cutoffs))}
	copy(c.cutoffs, cutoffs)

	return c
}

// Institutions lists distinct institutions.
func (c *Catalog) Institutions() []string {
	seen := make(map[string]bool)
	var out []string
	for _, co := range c.cutoffs {
		if !seen[co.Institution] {
			seen[co.Institution] = true
			out = append(out, co.Institution)
		}
	}

	return out
}

// Groups lists the distinct program groups of an institution.
func (c *Catalog) Groups(institution string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, co := range c.cutoffs {
		if co.Institution == institution && !seen[co.ProgramGroup] {
			seen[co.ProgramGroup] = true
			out = append(out, co.ProgramGroup)
		}
	}

	return out
}

// Programs returns the cutoffs of one program group.
func (c *Catalog) Programs(institution, group string) []models.AdmissionCutoff {
	var out []models.AdmissionCutoff
	for _, co := range c.cutoffs {
		if co.Institution == institution && co.ProgramGroup == group {
			out = append(out, co)
		}
	}

	return out
}
