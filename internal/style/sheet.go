package style

// Sheet is the static descriptor list of one widget type.
type Sheet struct {
	Name        string
	Descriptors []Descriptor
	// Defaults are widget-level values layered under user overrides.
	Defaults Overrides
}

// Names returns the descriptor names in list order.
func (s Sheet) Names() []string {
	names := make([]string, len(s.Descriptors))
	for i, d := range s.Descriptors {
		names[i] = d.Name
	}
	return names
}

// Lookup finds a descriptor by name.
func (s Sheet) Lookup(name string) (Descriptor, bool) {
	for _, d := range s.Descriptors {
		if d.Name == name {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Overrides layers user values on top of the sheet defaults. Empty user
// values do not mask a default.
func (s Sheet) Overrides(user Overrides) Overrides {
	if len(s.Defaults) == 0 {
		return user
	}
	out := make(Overrides, len(s.Defaults)+len(user))
	for k, v := range s.Defaults {
		out[k] = v
	}
	for k, v := range user {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

func seq(parts ...[]Descriptor) []Descriptor {
	n := 0
	for _, p := range parts {
		n += len(p)
	}
	out := make([]Descriptor, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// replaceAndMerge substitutes the descriptor called name with replacements,
// keeping the surrounding order. The list is returned as a copy when name is
// absent.
func replaceAndMerge(list []Descriptor, name string, replacements ...Descriptor) []Descriptor {
	idx := -1
	for i, d := range list {
		if d.Name == name {
			idx = i
			break
		}
	}
	if idx < 0 {
		return seq(list)
	}
	return seq(list[:idx], replacements, list[idx+1:])
}

// without drops the named descriptors.
func without(list []Descriptor, names ...string) []Descriptor {
	drop := make(map[string]struct{}, len(names))
	for _, n := range names {
		drop[n] = struct{}{}
	}
	out := make([]Descriptor, 0, len(list))
	for _, d := range list {
		if _, ok := drop[d.Name]; !ok {
			out = append(out, d)
		}
	}
	return out
}

// mapNamed applies fn to the named descriptors only.
func mapNamed(list []Descriptor, fn func(Descriptor) Descriptor, names ...string) []Descriptor {
	match := make(map[string]struct{}, len(names))
	for _, n := range names {
		match[n] = struct{}{}
	}
	out := make([]Descriptor, len(list))
	for i, d := range list {
		if _, ok := match[d.Name]; ok {
			d = fn(d)
		}
		out[i] = d
	}
	return out
}

func onPlatform(p Platform, list ...Descriptor) []Descriptor {
	out := make([]Descriptor, len(list))
	for i, d := range list {
		out[i] = d.On(p)
	}
	return out
}
