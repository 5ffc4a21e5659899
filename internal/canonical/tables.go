package canonical

// knownRenames maps documented historical field names to their modern
// canonical spellings. Entries mapping to themselves are legitimate fields
// that were dropped from recent editions and must not be altered.
var knownRenames = map[string]string{
	// Pre-standard era (1990-1996) -> standard
	"Agriculture":                        "Agricultural products",
	"Comparative area":                   "Area - comparative",
	"Total area":                         "Area",
	"Ethnic divisions":                   "Ethnic groups",
	"Language":                           "Languages",
	"Religion":                           "Religions",
	"Disputes":                           "Disputes - international",
	"International disputes":             "Disputes - international",
	"Environment":                        "Environment - current issues",
	"Type":                               "Government type",
	"Type of government":                 "Government type",
	"Leaders":                            "Executive branch",
	"Branches":                           "Military and security forces",
	"Overview":                           "Economic overview",
	"Telecommunications":                 "Telecommunication systems",
	"Railroads":                          "Railways",
	"Highways":                           "Roadways",
	"Organized labor":                    "Organized labor", // trade unions, not total workforce
	"National product":                   "Real GDP (purchasing power parity)",
	"National product per capita":        "Real GDP per capita",
	"National product real growth rate":  "Real GDP growth rate",
	"US diplomatic representation":       "Diplomatic representation from the US",
	"Diplomatic representation in US":    "Diplomatic representation in the US",
	"Civil air":                          "Civil air", // aircraft fleet data, not airport counts
	"Airfield":                           "Airports",
	"Airport":                            "Airports",
	"Defense expenditures":               "Military expenditures",
	"Unemployment":                       "Unemployment rate",
	"Television":                         "Broadcast media",
	"Televisions":                        "Televisions", // device count, not broadcast infrastructure
	"Aid":                                "Aid",          // foreign aid commitments, not government budget
	"Diplomatic representation":          "Diplomatic representation in the US",
	"Land area":                          "Area",
	"Territorial sea":                    "Maritime claims",

	// Modern era renames
	"Economy - overview":                          "Economic overview",
	"Agriculture - products":                      "Agricultural products",
	"GDP (purchasing power parity)":               "Real GDP (purchasing power parity)",
	"GDP - real growth rate":                      "Real GDP growth rate",
	"GDP real growth rate":                        "Real GDP growth rate",
	"GDP - per capita":                            "Real GDP per capita",
	"GDP - per capita (PPP)":                      "Real GDP per capita",
	"GDP per capita":                              "Real GDP per capita",
	"GDP":                                         "Real GDP (purchasing power parity)",
	"GDP composition by sector":                   "GDP - composition, by sector of origin",
	"GDP - composition by sector":                 "GDP - composition, by sector of origin",
	"Elevation extremes":                          "Elevation",
	"Telephone system":                            "Telecommunication systems",
	"Telephones - main lines in use":              "Telephones - fixed lines",
	"Telephones":                                  "Telephones - fixed lines",
	"telephone":                                   "Telephones - fixed lines",
	"Distribution of family income - Gini index":  "Gini Index coefficient - distribution of family income",
	"Unemployment, youth ages 15-24":              "Youth unemployment rate (ages 15-24)",
	"Military branches":                           "Military and security forces",
	"Maternal mortality rate":                     "Maternal mortality ratio",
	"Physicians density":                          "Physician density",
	"Radio broadcast stations":                    "Broadcast media",
	"Television broadcast stations":               "Broadcast media",
	"Television-broadcast stations":               "Broadcast media",
	"Radio":                                       "Broadcast media",
	"Radios":                                      "Radios", // device count, not broadcast infrastructure
	"Environment - international agreements":      "International environmental agreements",
	"Ports and terminals":                         "Ports",
	"Ports and harbors":                           "Ports",
	"National anthem":                             "National anthem(s)",
	"Political parties and leaders":               "Political parties",
	"Political pressure groups and leaders":       "Political parties",
	"Flag description":                            "Flag",
	"Waterways":                                   "Waterways",
	"Inland waterways":                            "Waterways",
	"Area Rankings":                               "Area - rankings",
	"Reserves of foreign exchange & gold":         "Reserves of foreign exchange and gold",
	"Transportation note":                         "Transportation - note",
	"Education expenditures":                      "Education expenditure",
	"Health expenditures":                         "Health expenditure",
	"International law organization participation": "International law organization participation",
	"Currency":        "Exchange rates",
	"Currency code":   "Exchange rates",
	"Currency (code)": "Exchange rates",
	"Appendix A":      "Appendix A",
	"Appendix B":      "Appendix B",
	"Appendix C":      "Appendix C",
	"Appendix D":      "Appendix D",
	"Appendix E":      "Appendix E",
	"Appendix F":      "Appendix F",
	"Appendix G":      "Appendix G",
	"Appendix H":      "Appendix H",
	"Carbon dioxide emissions from consumption of energy": "Carbon dioxide emissions",
	"Terrorist groups - foreign based":                    "Terrorist group(s)",
	"Terrorist groups - home based":                       "Terrorist group(s)",

	// More pre-standard era renames
	"External debt":                    "Debt - external",
	"Geographic note":                  "Geography - note",
	"Defense note":                     "Military - note",
	"Government note":                  "Government - note",
	"Communications note":              "Communications - note",
	"Name of country":                  "Country name",
	"Names":                            "Country name",
	"Long-form name":                   "Country name",
	"National capital":                 "Capital",
	"National holidays":                "National holiday",
	"Exchange rate":                    "Exchange rates",
	"Industrial production":            "Industrial production growth rate",
	"Industry":                         "Industries",
	"Land boundary":                    "Land boundaries",
	"Manpower availability":            "Manpower availability", // demographic measure, not actual personnel
	"GNP":                              "GNP",                   // distinct measure from GDP (1990-1992)
	"Growth rate (population)":         "Population growth rate",
	"Current Health Expenditure":       "Current health expenditure",
	"GDP (purchasing power parity) - real": "Real GDP (purchasing power parity)",
	"Inflation rate - consumer price index": "Inflation rate (consumer prices)",
	"Major cities - population":        "Major urban areas - population",
	"Head of Government":               "Executive branch",
	"Chief of State":                   "Executive branch",
	"Elections":                        "Executive branch",
	"Member of":                        "International organization participation",
	"Other political or pressure groups": "Political parties",
	"Other political pressure groups":  "Political parties",
	"Other political groups":           "Political parties",
	"Current issues":                   "Environment - current issues",
	"Dependent area":                   "Dependency status",
	"Economic aid":                     "Economic aid",
	"Economic aid - donor":             "Economic aid",
	"Economic aid - recipient":         "Economic aid",
	"Communists":                       "Political parties",
	"Legislature":                      "Legislative branch",
	"Telephone":                        "Telecommunication systems",
	"Internet":                         "Internet users",
	"Internet Service Providers (ISPs)": "Internet users",
	"Internet hosts":                   "Internet users",
	"FAX":                              "Diplomatic representation in the US",
	"Gross national saving":            "Gross national saving",
	"Ease of Doing Business Index scores": "Ease of Doing Business Index scores",
	"Maritime threats":                 "Maritime threats",
	"Child labor - children ages 5-14": "Child labor - children ages 5-14",
	"Labor force - by occupation":      "Labor force - by occupation",
	"Demographic profile":              "Demographic profile",

	// Legitimate fields dropped before the modern editions (map to themselves)
	"Airports - with paved runways":   "Airports - with paved runways",
	"Airports - with unpaved runways": "Airports - with unpaved runways",
	"Fiscal year":                     "Fiscal year",
	"Icebreakers":                     "Icebreakers",
	"Economy of the area administered by Turkish Cypriots": "Economy of the area administered by Turkish Cypriots",
	"HIV/AIDS - adult prevalence rate":                      "HIV/AIDS - adult prevalence rate",
	"HIV/AIDS - deaths":                                     "HIV/AIDS - deaths",
	"HIV/AIDS - people living with HIV/AIDS":                "HIV/AIDS - people living with HIV/AIDS",
	"Stock of broad money":                                  "Stock of broad money",
	"Stock of narrow money":                                 "Stock of narrow money",
	"Stock of money":                                        "Stock of narrow money",
	"Stock of quasi money":                                  "Stock of narrow money",
	"Stock of domestic credit":                              "Stock of domestic credit",
	"Stock of direct foreign investment - at home":          "Stock of direct foreign investment - at home",
	"Stock of direct foreign investment - abroad":           "Stock of direct foreign investment - abroad",
	"Market value of publicly traded shares":                "Market value of publicly traded shares",
	"Commercial bank prime lending rate":                    "Commercial bank prime lending rate",
	"Central bank discount rate":                            "Central bank discount rate",
	"Investment (gross fixed)":                              "Investment (gross fixed)",
	"Budget surplus (+) or deficit (-)":                     "Budget surplus (+) or deficit (-)",
	"Taxes and other revenues":                              "Taxes and other revenues",
	"Population - distribution":                             "Population distribution",
	"Population below poverty line":                         "Population below poverty line",
	"Freshwater withdrawal (domestic/industrial/agricultural)": "Total water withdrawal",
	"Major infectious diseases":                             "Major infectious diseases",
	"Credit ratings":                                        "Credit ratings",
	"Food insecurity":                                       "Food insecurity",
}

// consolidations maps sub-field names to the parent aggregate field used for
// roll-up queries. The original name stays canonical; only ConsolidatedTo is
// set.
var consolidations = map[string]string{
	// Oil sub-fields -> Petroleum
	"Oil - production":      "Petroleum",
	"Oil - consumption":     "Petroleum",
	"Oil - exports":         "Petroleum",
	"Oil - imports":         "Petroleum",
	"Oil - proved reserves": "Petroleum",
	// Crude oil
	"Crude oil - production":      "Petroleum",
	"Crude oil - exports":         "Petroleum",
	"Crude oil - imports":         "Petroleum",
	"Crude oil - proved reserves": "Petroleum",
	// Refined petroleum
	"Refined petroleum products - production":  "Petroleum",
	"Refined petroleum products - consumption": "Petroleum",
	"Refined petroleum products - exports":     "Petroleum",
	"Refined petroleum products - imports":     "Petroleum",
	// Natural gas sub-fields
	"Natural gas - production":      "Natural gas",
	"Natural gas - consumption":     "Natural gas",
	"Natural gas - exports":         "Natural gas",
	"Natural gas - imports":         "Natural gas",
	"Natural gas - proved reserves": "Natural gas",
	// Electricity sub-fields
	"Electricity - production":                      "Electricity",
	"Electricity - consumption":                     "Electricity",
	"Electricity - exports":                         "Electricity",
	"Electricity - imports":                         "Electricity",
	"Electricity - installed generating capacity":   "Electricity",
	"Electricity - from fossil fuels":               "Electricity generation sources",
	"Electricity - from hydroelectric plants":       "Electricity generation sources",
	"Electricity - from nuclear fuels":              "Electricity generation sources",
	"Electricity - from other renewable sources":    "Electricity generation sources",
	"Electricity - production by source":            "Electricity generation sources",
	"Electricity production by source":              "Electricity generation sources",
	// Military manpower -> personnel strengths
	"Military manpower - availability":                     "Military and security service personnel strengths",
	"Military manpower - fit for military service":         "Military and security service personnel strengths",
	"Military manpower - reaching military age annually":   "Military service age and obligation",
	"Military manpower - military age":                     "Military service age and obligation",
	"Military manpower - military age and obligation":      "Military service age and obligation",
	"Manpower available for military service":              "Military and security service personnel strengths",
	"Manpower fit for military service":                    "Military and security service personnel strengths",
	"Manpower reaching military service age annually":      "Military service age and obligation",
	"Manpower reaching militarily significant age annually": "Military service age and obligation",
	"Military expenditures - dollar figure":                "Military expenditures",
	"Military expenditures - percent of GDP":               "Military expenditures",
	"Military manpower":                                    "Military and security service personnel strengths",
	// Maritime claims sub-fields (1990s separate entries)
	"Contiguous zone":              "Maritime claims",
	"Continental shelf":            "Maritime claims",
	"Exclusive economic zone":      "Maritime claims",
	"Exclusive fishing zone":       "Maritime claims",
	"Extended economic zone":       "Maritime claims",
	"Gulf of Sidra closing line":   "Maritime claims",
	"Military boundary line":       "Maritime claims",
	// Electricity sub-fields (1997 only)
	"Electricity - capacity":               "Electricity",
	"Electricity - consumption per capita": "Energy consumption per capita",
}

// govBodyKeywords detect 1990s country-specific legislature/assembly names
// that appeared as standalone field names.
var govBodyKeywords = []string{
	"Assembly", "Senate", "Parliament", "Congress", "Council",
	"Chamber", "House of", "Duma", "Diet", "Sejm", "Seimas",
	"Storting", "Bundestag", "Bundesrat", "Majlis", "Shura",
	"Tribunal", "Court", "Staten", "Knesset", "Hural",
	"Sobranje", "Soviet", "Keneshom", "Folketing", "Fono",
	"Legislative Yuan", "Lagting", "Majilis",
	"Presidential Administration", "Group of Assistants",
	"Armed Forces", "KRAF",
}
