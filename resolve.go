package mechconf

// catalog indexes the species and phases parsed so far. Reaction parsers
// only read it.
type catalog struct {
	species map[string]struct{}
	phases  map[string]Phase
}

func newCatalog(species []Species, phases []Phase) *catalog {
	c := &catalog{
		species: make(map[string]struct{}, len(species)),
		phases:  make(map[string]Phase, len(phases)),
	}
	for _, s := range species {
		c.species[s.Name] = struct{}{}
	}
	for _, p := range phases {
		if _, dup := c.phases[p.Name]; !dup {
			c.phases[p.Name] = p
		}
	}
	return c
}

func (c *catalog) hasSpecies(name string) bool {
	_, ok := c.species[name]
	return ok
}

// requireSpecies reports every component naming an undeclared species.
func (r *Reader) requireSpecies(c *catalog, groups ...[]componentRef) {
	for _, g := range groups {
		for _, ref := range g {
			if c.hasSpecies(ref.Species) {
				continue
			}
			v, _ := ref.node.Get(keySpeciesName)
			r.Add(ref.path.Field(keySpeciesName).Issue(v, ReactionRequiresUnknownSpecies, "unknown species %q", ref.Species))
		}
	}
}

// phase reads the phase name at key and resolves it. The returned Phase
// always carries the name that was read, resolved or not.
func (r *Reader) phase(c *catalog, key string) (Phase, bool) {
	name, ok := r.String(key)
	if !ok {
		return Phase{}, false
	}
	ph, found := c.phases[name]
	if !found {
		v, _ := r.n.Get(key)
		r.Add(r.p.Field(key).Issue(v, UnknownPhase, "unknown phase %q", name))
		return Phase{Name: name}, false
	}
	return ph, true
}

// aerosolWater reads the aerosol-phase water species at key: it must be a
// declared species and, when the aerosol phase resolved, one of its members.
func (r *Reader) aerosolWater(c *catalog, aerosol Phase, resolved bool, key string) string {
	name, ok := r.String(key)
	if !ok {
		return ""
	}
	v, _ := r.n.Get(key)
	switch {
	case !c.hasSpecies(name):
		r.Add(r.p.Field(key).Issue(v, ReactionRequiresUnknownSpecies, "unknown species %q", name))
	case resolved && !aerosol.Contains(name):
		r.Add(r.p.Field(key).Issue(v, RequestedAerosolSpeciesNotIncludedInAerosolPhase,
			"species %q is not in aerosol phase %q", name, aerosol.Name))
	}
	return name
}

// requireMembers reports declared species that the resolved phase does not
// list. Undeclared species are left to requireSpecies.
func (r *Reader) requireMembers(c *catalog, ph Phase, resolved bool, groups ...[]componentRef) {
	if !resolved {
		return
	}
	for _, g := range groups {
		for _, ref := range g {
			if !c.hasSpecies(ref.Species) || ph.Contains(ref.Species) {
				continue
			}
			v, _ := ref.node.Get(keySpeciesName)
			r.Add(ref.path.Field(keySpeciesName).Issue(v, RequestedAerosolSpeciesNotIncludedInAerosolPhase,
				"species %q is not in aerosol phase %q", ref.Species, ph.Name))
		}
	}
}
