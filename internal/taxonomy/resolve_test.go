package taxonomy

import "testing"

func TestNormalizeToken(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
		{"lowercases", "Financial", "financial"},
		{"trims", "  banking  ", "banking"},
		{"spaces to underscores", "home improvement", "home_improvement"},
		{"hyphens to underscores", "lab-results", "lab_results"},
		{"mixed", "  Home-Improvement Project ", "home_improvement_project"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeToken(tt.raw); got != tt.want {
				t.Errorf("NormalizeToken(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestResolveDomain(t *testing.T) {
	v := Builtin()

	tests := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{"direct", "financial", "financial", true},
		{"direct uppercase", "FINANCIAL", "financial", true},
		{"alias", "finances", "financial", true},
		{"alias uppercase with whitespace", "  FINANCES ", "financial", true},
		{"unknown", "astrology", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := v.ResolveDomain(tt.raw)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ResolveDomain(%q) = (%q, %v), want (%q, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestResolveCategory(t *testing.T) {
	v := Builtin()

	tests := []struct {
		name   string
		domain string
		raw    string
		want   string
		wantOK bool
	}{
		{"direct", "financial", "banking", "banking", true},
		{"alias", "financial", "checking", "banking", true},
		{"alias-spelled domain", "Finances", "Banking", "banking", true},
		{"alias-spelled domain with category alias", "finances", "savings", "banking", true},
		{"domain scoping", "insurance", "car", "auto", true},
		{"same raw other domain", "automotive", "car", "", false},
		{"unknown category", "financial", "unknown_category", "", false},
		{"unknown domain", "astrology", "banking", "", false},
		{"empty category", "financial", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := v.ResolveCategory(tt.domain, tt.raw)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ResolveCategory(%q, %q) = (%q, %v), want (%q, %v)",
					tt.domain, tt.raw, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestResolveDoctype(t *testing.T) {
	v := Builtin()

	tests := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{"direct", "statement", "statement", true},
		{"alias", "bank statement", "statement", true},
		{"alias hyphenated", "tax-return", "return", true},
		{"numeric doctype", "1099", "1099", true},
		{"unknown", "mixtape", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := v.ResolveDoctype(tt.raw)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ResolveDoctype(%q) = (%q, %v), want (%q, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

// Every alias in the built-in tables must resolve to its canonical slug.
func TestBuiltinAliasClosure(t *testing.T) {
	def := builtinDefinition()
	v := Builtin()

	for alias, canonical := range def.Aliases.Domains {
		got, ok := v.ResolveDomain(alias)
		if !ok || got != canonical {
			t.Errorf("domain alias %q: resolved to (%q, %v), want %q", alias, got, ok, canonical)
		}
	}
	for _, ca := range def.Aliases.Categories {
		got, ok := v.ResolveCategory(ca.Domain, ca.Alias)
		if !ok || got != ca.Canonical {
			t.Errorf("category alias (%q, %q): resolved to (%q, %v), want %q",
				ca.Domain, ca.Alias, got, ok, ca.Canonical)
		}
	}
	for alias, canonical := range def.Aliases.Doctypes {
		got, ok := v.ResolveDoctype(alias)
		if !ok || got != canonical {
			t.Errorf("doctype alias %q: resolved to (%q, %v), want %q", alias, got, ok, canonical)
		}
	}
}

func TestActiveDefaultsToBuiltin(t *testing.T) {
	Activate(nil)
	t.Cleanup(func() { Activate(nil) })

	if got := Active(); got != Builtin() {
		t.Fatal("expected Active() to lazily return the built-in vocabulary")
	}
}

func TestActivateSwapsVocabulary(t *testing.T) {
	t.Cleanup(func() { Activate(nil) })

	custom := Compile(Definition{
		Name: "custom",
		Domains: []DomainDef{
			{Name: "research", Categories: []CategoryDef{{Name: "papers"}}},
		},
		Doctypes: []DoctypeDef{{Name: "preprint"}},
	})
	Activate(custom)

	if got, ok := ResolveDomain("research"); !ok || got != "research" {
		t.Fatalf("expected custom domain to resolve, got (%q, %v)", got, ok)
	}
	if _, ok := ResolveDomain("financial"); ok {
		t.Fatal("built-in domain should not resolve after swap")
	}
}
