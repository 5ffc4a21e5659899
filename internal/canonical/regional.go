package canonical

// regionalEntries are sub-national partition-era field names from the 1990s
// data (disputed-territory splits, federation sub-units, island breakdowns).
// They pass through unchanged but are tagged country_specific so downstream
// analytics can exclude them.
var regionalEntries = map[string]struct{}{
	"Turkish Area":               {},
	"Turkish area":               {},
	"Turkish Cypriot area":       {},
	"Turkish area - agriculture": {},
	"Turkish area - industry":    {},
	"Turkish area - paved":       {},
	"Turkish area - services":    {},
	"Turkish area - total":       {},
	"Turkish area - unpaved":     {},
	"Turkish sector":             {},
	"Serbia":                     {},
	"Serbia - 0-14 years":        {},
	"Serbia - 15-64 years":       {},
	"Serbia - 65 years and over": {},
	"Serbia - all ages":          {},
	"Serbia - at birth":          {},
	"Serbia - female":            {},
	"Serbia - male":              {},
	"Serbia - males age 15-49":   {},
	"Serbia - males fit for military service": {},
	"Serbia - total population":               {},
	"Serbia - under 15 years":                 {},
	"Sabah":          {},
	"Sarawak":        {},
	"Bonaire":        {},
	"Sint Eustatius": {},
	"Sint Maarten":   {},
	"Saba":           {},
	"Wales":          {},
	"Scotland":       {},
	"Zanzibar":       {},
	"West Island":    {},
	"Republika Srpska": {},
	"Republic":         {},
	"Swiss nationals":  {},
	// Montenegro splits
	"Montenegro":                     {},
	"Montenegro - 0-14 years":        {},
	"Montenegro - 15-64 years":       {},
	"Montenegro - 65 years and over": {},
	"Montenegro - all ages":          {},
	"Montenegro - at birth":          {},
	"Montenegro - female":            {},
	"Montenegro - male":              {},
	"Montenegro - males age 15-49":   {},
	"Montenegro - males fit for military service":          {},
	"Montenegro - males reach military age (19) annually":  {},
	"Montenegro - total population":                        {},
	"Montenegro - under 15 years":                          {},
	// Cyprus Greek area splits
	"Greek area":               {},
	"Greek area - agriculture": {},
	"Greek area - industry":    {},
	"Greek area - paved":       {},
	"Greek area - recipient":   {},
	"Greek area - services":    {},
	"Greek area - total":       {},
	"Greek area - unpaved":     {},
	"Greek sector":             {},
	"Greek Cypriot":            {},
	"Cypriot area":             {},
	// UK constituent countries
	"England":          {},
	"Northern Ireland": {},
	// Germany / Herzegovina / Morocco
	"Germany":     {},
	"Herzegovina": {},
	"Morocco":     {},
	// Netherlands Antilles islands
	"Curacao": {},
	// Malaysia state breakdowns
	"Peninsular Malaysia": {},
	"Home Island":         {},
	// Misc regional
	"Canadian dollars":            {},
	"French francs":               {},
	"German deutsche marks":       {},
	"Italian lire":                {},
	"Japanese yen":                {},
	"British pounds":              {},
	"Summer (January) population": {},
	"Summer only stations":        {},
	"Summer-only stations":        {},
	"Winter (July) population":    {},
	"Year-round stations":         {},
}

// referenceEntries are appendix/glossary/legend names that are neither real
// statistical fields nor parser noise. Tagged country_specific like regional
// entries so they survive canonicalization without polluting analytics.
var referenceEntries = map[string]struct{}{
	"Appendixes":                {},
	"Antarctic Treaty Summary":  {},
	"Terminology":               {},
	"Telephone numbers":         {},
	"Reference maps":            {},
	"Transnational Issues":      {},
	"Transportation":            {},
	"United Nations System":     {},
	"Web uniform resource locator (URL)": {},
	"Weights and measures":      {},
	"ACIC M 49-1":               {},
	"Abbreviation":              {},
	"Abbreviations":             {},
	"Affiliation":               {},
	"Data code":                 {},
	"Digraph":                   {},
	"Years":                     {},
	"Shipyards and Ship Building": {},
	"World Cup 2022":            {},
	"Dates of information":      {},
	"Entities":                  {},
	"Money figures":             {},
	"FIPS 10-4":                 {},
	"ISO 3166":                  {},
	"IHO 23-3rd":                {},
	"IHO 23-4th":                {},
	"DIAM 65-18":                {},
	"Country map":               {},
	"Flag graphic":              {},
	"Geographic names":          {},
	"Maps":                      {},
	"GDP methodology":           {},
	"GNP/GDP methodology":       {},
	"Gross domestic product":    {},
	"Gross domestic product (GDP)": {},
	"Gross national product":       {},
	"Gross national product (GNP)": {},
	"Gross world product":          {},
	"Gross world product (GWP)":    {},
	"GWP (gross world product)":    {},
	"Economy":                      {},
	"Geography":                    {},
	"People":                       {},
	"Communications":               {},
	"Military":                     {},
	"Introduction":                 {},
	"International organizations":  {},
	"Mail":                         {},
	"Note":                         {},
	"Notes":                        {},
	"Historical perspective":       {},
	"Data codes-country":           {},
	"Data codes-hydrographic":      {},
	"Digraphs":                     {},
	"Member":                       {},
	"Environmental Agreements and Appendix E": {},
	"Environmental agreements":                {},
	"Other agreements":                        {},
}
