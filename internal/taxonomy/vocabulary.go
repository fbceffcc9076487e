package taxonomy

import (
	"sync/atomic"
)

// Definition is the serializable form of a vocabulary, matching the schema of
// external override files.
type Definition struct {
	Name     string       `yaml:"name" json:"name"`
	Domains  []DomainDef  `yaml:"domains" json:"domains"`
	Doctypes []DoctypeDef `yaml:"doctypes" json:"doctypes"`
	Aliases  AliasDef     `yaml:"aliases" json:"aliases"`
}

// DomainDef describes a domain and its categories.
type DomainDef struct {
	Name        string        `yaml:"name" json:"name"`
	Description string        `yaml:"description" json:"description"`
	Categories  []CategoryDef `yaml:"categories" json:"categories"`
}

// CategoryDef describes a category within a domain.
type CategoryDef struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

// DoctypeDef describes a document type.
type DoctypeDef struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

// AliasDef groups the three alias tables.
type AliasDef struct {
	Domains    map[string]string  `yaml:"domains" json:"domains"`
	Categories []CategoryAliasDef `yaml:"categories" json:"categories"`
	Doctypes   map[string]string  `yaml:"doctypes" json:"doctypes"`
}

// CategoryAliasDef maps a (domain, alias) pair to a canonical category.
type CategoryAliasDef struct {
	Domain    string `yaml:"domain" json:"domain"`
	Alias     string `yaml:"alias" json:"alias"`
	Canonical string `yaml:"canonical" json:"canonical"`
}

type categoryKey struct {
	domain string
	alias  string
}

// Vocabulary is a compiled, read-only taxonomy. All tokens are normalized at
// compile time; lookups never mutate state, so a Vocabulary is safe for
// unsynchronized concurrent use.
type Vocabulary struct {
	Name     string
	Domains  []DomainDef
	Doctypes []DoctypeDef

	domainSet       map[string]struct{}
	categorySets    map[string]map[string]struct{}
	doctypeSet      map[string]struct{}
	domainAliases   map[string]string
	categoryAliases map[categoryKey]string
	doctypeAliases  map[string]string
}

// Compile normalizes a definition into a lookup-ready Vocabulary. Entries
// whose names normalize to the empty token are dropped, as are aliases whose
// canonical target is absent from the compiled sets.
func Compile(def Definition) *Vocabulary {
	v := &Vocabulary{
		Name:            def.Name,
		domainSet:       make(map[string]struct{}, len(def.Domains)),
		categorySets:    make(map[string]map[string]struct{}, len(def.Domains)),
		doctypeSet:      make(map[string]struct{}, len(def.Doctypes)),
		domainAliases:   make(map[string]string, len(def.Aliases.Domains)),
		categoryAliases: make(map[categoryKey]string, len(def.Aliases.Categories)),
		doctypeAliases:  make(map[string]string, len(def.Aliases.Doctypes)),
	}

	for _, d := range def.Domains {
		name := NormalizeToken(d.Name)
		if name == "" {
			continue
		}
		compiled := DomainDef{Name: name, Description: d.Description}
		cats := make(map[string]struct{}, len(d.Categories))
		for _, c := range d.Categories {
			catName := NormalizeToken(c.Name)
			if catName == "" {
				continue
			}
			compiled.Categories = append(compiled.Categories, CategoryDef{Name: catName, Description: c.Description})
			cats[catName] = struct{}{}
		}
		v.Domains = append(v.Domains, compiled)
		v.domainSet[name] = struct{}{}
		v.categorySets[name] = cats
	}

	for _, dt := range def.Doctypes {
		name := NormalizeToken(dt.Name)
		if name == "" {
			continue
		}
		v.Doctypes = append(v.Doctypes, DoctypeDef{Name: name, Description: dt.Description})
		v.doctypeSet[name] = struct{}{}
	}

	for alias, canonical := range def.Aliases.Domains {
		a, c := NormalizeToken(alias), NormalizeToken(canonical)
		if a == "" || c == "" {
			continue
		}
		v.domainAliases[a] = c
	}
	for _, ca := range def.Aliases.Categories {
		domain, alias, canonical := NormalizeToken(ca.Domain), NormalizeToken(ca.Alias), NormalizeToken(ca.Canonical)
		if domain == "" || alias == "" || canonical == "" {
			continue
		}
		v.categoryAliases[categoryKey{domain: domain, alias: alias}] = canonical
	}
	for alias, canonical := range def.Aliases.Doctypes {
		a, c := NormalizeToken(alias), NormalizeToken(canonical)
		if a == "" || c == "" {
			continue
		}
		v.doctypeAliases[a] = c
	}

	return v
}

// DomainNames returns the canonical domain slugs in definition order.
func (v *Vocabulary) DomainNames() []string {
	names := make([]string, 0, len(v.Domains))
	for _, d := range v.Domains {
		names = append(names, d.Name)
	}
	return names
}

// CategoryNames returns the canonical categories for a domain in definition
// order. The domain must already be canonical.
func (v *Vocabulary) CategoryNames(domain string) []string {
	for _, d := range v.Domains {
		if d.Name == domain {
			names := make([]string, 0, len(d.Categories))
			for _, c := range d.Categories {
				names = append(names, c.Name)
			}
			return names
		}
	}
	return nil
}

// DoctypeNames returns the canonical doctype slugs in definition order.
func (v *Vocabulary) DoctypeNames() []string {
	names := make([]string, 0, len(v.Doctypes))
	for _, dt := range v.Doctypes {
		names = append(names, dt.Name)
	}
	return names
}

var active atomic.Pointer[Vocabulary]

// Active returns the process-wide vocabulary, lazily initializing it with the
// built-in defaults on first access.
func Active() *Vocabulary {
	if v := active.Load(); v != nil {
		return v
	}
	active.CompareAndSwap(nil, Builtin())
	return active.Load()
}

// Activate replaces the process-wide vocabulary with an atomic pointer swap.
// Passing nil resets to the built-in defaults on next access.
func Activate(v *Vocabulary) {
	active.Store(v)
}
