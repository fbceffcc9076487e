package taxonomy

import "sync"

var builtinOnce = sync.OnceValue(func() *Vocabulary {
	return Compile(builtinDefinition())
})

// Builtin returns the compiled default vocabulary. The result is shared and
// must be treated as read-only.
func Builtin() *Vocabulary {
	return builtinOnce()
}

// builtinDefinition is the household archive taxonomy shipped with docket.
// External override files replace it wholesale; there is no merging.
func builtinDefinition() Definition {
	return Definition{
		Name: "household",
		Domains: []DomainDef{
			{
				Name:        "financial",
				Description: "Money movement and account records",
				Categories: []CategoryDef{
					{Name: "banking", Description: "Checking, savings, and transfers"},
					{Name: "investment", Description: "Brokerage and retirement accounts"},
					{Name: "credit", Description: "Credit cards and loans"},
					{Name: "retail", Description: "Purchases from merchants"},
					{Name: "utilities", Description: "Power, water, internet, phone"},
					{Name: "payroll", Description: "Pay stubs and employer statements"},
				},
			},
			{
				Name:        "property",
				Description: "Real estate and residence records",
				Categories: []CategoryDef{
					{Name: "real_estate", Description: "Purchase, sale, and ownership"},
					{Name: "rental", Description: "Leases and landlord correspondence"},
					{Name: "maintenance", Description: "Repairs and upkeep"},
					{Name: "home_improvement", Description: "Renovations and additions"},
				},
			},
			{
				Name:        "insurance",
				Description: "Coverage and claims",
				Categories: []CategoryDef{
					{Name: "health"},
					{Name: "auto"},
					{Name: "home"},
					{Name: "life"},
				},
			},
			{
				Name:        "tax",
				Description: "Tax filings and supporting records",
				Categories: []CategoryDef{
					{Name: "federal"},
					{Name: "state"},
					{Name: "local"},
				},
			},
			{
				Name:        "legal",
				Description: "Contracts and legal affairs",
				Categories: []CategoryDef{
					{Name: "contracts"},
					{Name: "estate", Description: "Wills, trusts, powers of attorney"},
					{Name: "identity", Description: "Licenses, passports, vital records"},
					{Name: "disputes"},
				},
			},
			{
				Name:        "medical",
				Description: "Health care records",
				Categories: []CategoryDef{
					{Name: "providers", Description: "Doctors, clinics, hospitals"},
					{Name: "pharmacy"},
					{Name: "lab"},
					{Name: "dental"},
					{Name: "vision"},
				},
			},
			{
				Name:        "automotive",
				Description: "Vehicle records",
				Categories: []CategoryDef{
					{Name: "purchase"},
					{Name: "service"},
					{Name: "registration"},
				},
			},
			{
				Name:        "personal",
				Description: "Everything tied to a person rather than an asset",
				Categories: []CategoryDef{
					{Name: "education"},
					{Name: "travel"},
					{Name: "memberships"},
					{Name: "correspondence"},
				},
			},
		},
		Doctypes: []DoctypeDef{
			{Name: "statement", Description: "Periodic account summary"},
			{Name: "receipt"},
			{Name: "invoice"},
			{Name: "policy", Description: "Insurance or coverage terms"},
			{Name: "contract"},
			{Name: "agreement"},
			{Name: "deed"},
			{Name: "title"},
			{Name: "letter"},
			{Name: "notice"},
			{Name: "report"},
			{Name: "form"},
			{Name: "return", Description: "Filed tax return"},
			{Name: "prescription"},
			{Name: "lab_results"},
			{Name: "claim"},
			{Name: "estimate"},
			{Name: "manual"},
			{Name: "warranty"},
			{Name: "certificate"},
			{Name: "application"},
			{Name: "1099"},
			{Name: "1040"},
			{Name: "w2"},
		},
		Aliases: AliasDef{
			Domains: map[string]string{
				"finance":     "financial",
				"finances":    "financial",
				"money":       "financial",
				"realestate":  "property",
				"real_estate": "property",
				"housing":     "property",
				"healthcare":  "medical",
				"health":      "medical",
				"taxes":       "tax",
				"vehicle":     "automotive",
				"auto":        "automotive",
				"car":         "automotive",
				"coverage":    "insurance",
				"law":         "legal",
			},
			Categories: []CategoryAliasDef{
				{Domain: "financial", Alias: "checking", Canonical: "banking"},
				{Domain: "financial", Alias: "savings", Canonical: "banking"},
				{Domain: "financial", Alias: "bank", Canonical: "banking"},
				{Domain: "financial", Alias: "brokerage", Canonical: "investment"},
				{Domain: "financial", Alias: "stocks", Canonical: "investment"},
				{Domain: "financial", Alias: "retirement", Canonical: "investment"},
				{Domain: "financial", Alias: "credit_card", Canonical: "credit"},
				{Domain: "financial", Alias: "loans", Canonical: "credit"},
				{Domain: "financial", Alias: "shopping", Canonical: "retail"},
				{Domain: "financial", Alias: "wages", Canonical: "payroll"},
				{Domain: "property", Alias: "renovation", Canonical: "home_improvement"},
				{Domain: "property", Alias: "lease", Canonical: "rental"},
				{Domain: "property", Alias: "repairs", Canonical: "maintenance"},
				{Domain: "insurance", Alias: "car", Canonical: "auto"},
				{Domain: "insurance", Alias: "homeowners", Canonical: "home"},
				{Domain: "insurance", Alias: "medical", Canonical: "health"},
				{Domain: "tax", Alias: "irs", Canonical: "federal"},
				{Domain: "medical", Alias: "doctor", Canonical: "providers"},
				{Domain: "medical", Alias: "physician", Canonical: "providers"},
				{Domain: "medical", Alias: "drugs", Canonical: "pharmacy"},
				{Domain: "medical", Alias: "bloodwork", Canonical: "lab"},
				{Domain: "automotive", Alias: "repair", Canonical: "service"},
				{Domain: "personal", Alias: "school", Canonical: "education"},
			},
			Doctypes: map[string]string{
				"bank_statement":          "statement",
				"account_statement":       "statement",
				"sales_receipt":           "receipt",
				"bill":                    "invoice",
				"insurance_policy":        "policy",
				"rx":                      "prescription",
				"lab_report":              "lab_results",
				"test_results":            "lab_results",
				"tax_return":              "return",
				"w_2":                     "w2",
				"form_1099":               "1099",
				"form_1040":               "1040",
				"user_manual":             "manual",
				"guarantee":               "warranty",
				"explanation_of_benefits": "claim",
				"eob":                     "claim",
				"quote":                   "estimate",
			},
		},
	}
}
