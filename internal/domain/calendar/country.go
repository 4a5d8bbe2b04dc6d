package calendar

import "strings"

// countryKeyword pairs a literal description substring with the country
// code it implies.
type countryKeyword struct {
	Keyword string
	Code    string
}

// countryKeywords is the classification table for macro-economic event
// descriptions. Matching is case-sensitive substring search in table
// order, first match wins, so broader keywords placed earlier shadow
// later ones ("FED" catches "FED interest rate" before the specific
// entry is ever reached). This is a best-effort heuristic, not a parse.
var countryKeywords = []countryKeyword{
	{"FED", "US"}, {"Core PCE", "US"}, {"Manufacturing PMI (ISM)", "US"},
	{"Services PMI (ISM)", "US"}, {"Durable goods orders", "US"},
	{"Consumer confidence index", "US"}, {"Initial jobless claims", "US"},
	{"EIA crude oil inventories", "US"}, {"10Y & 30Y Treasury auctions", "US"},
	{"Retail sales", "US"}, {"FED interest rate", "US"}, {"FED minutes", "US"},
	{"CPI", "US"}, {"PPI", "US"}, {"PMI", "US"}, {"Jobless claims", "US"},
	{"Treasury", "US"}, {"GDP (US)", "US"}, {"Inflation (US)", "US"},
	{"BOE", "UK"}, {"(UK)", "UK"}, {"GfK consumer confidence", "UK"},
	{"Halifax house price index", "UK"}, {"UK CPI", "UK"}, {"UK GDP", "UK"},
	{"RBA", "AU"}, {"(AU)", "AU"}, {"NAB business confidence", "AU"},
	{"Westpac consumer confidence", "AU"}, {"Building approvals", "AU"},
	{"CoreLogic home prices", "AU"}, {"AU CPI", "AU"}, {"AU GDP", "AU"},
	{"PBOC", "CN"}, {"(CN)", "CN"}, {"CPI & PPI", "CN"},
	{"NBS manufacturing PMI", "CN"}, {"Caixin", "CN"}, {"CN CPI", "CN"},
	{"RBI", "IN"}, {"(IN)", "IN"}, {"IN CPI", "IN"},
	{"BOC", "CA"}, {"(CA)", "CA"}, {"Housing starts", "CA"}, {"CA CPI", "CA"},
	{"ECB", "EU"}, {"(EU)", "EU"}, {"ZEW economic sentiment", "EU"},
	{"Monetary policy statement", "EU"}, {"EU CPI", "EU"},
	{"(DE)", "DE"}, {"Ifo business climate", "DE"}, {"ZEW sentiment", "DE"},
	{"Industrial production", "DE"}, {"DE CPI", "DE"},
	{"CBRT", "TR"}, {"(TR)", "TR"}, {"TR CPI", "TR"},
	{"BCB", "BR"}, {"(BR)", "BR"}, {"Copom minutes", "BR"}, {"BR CPI", "BR"},
	{"Banxico", "MX"}, {"(MX)", "MX"}, {"MX CPI", "MX"},
	{"BCRA", "AR"}, {"(AR)", "AR"}, {"AR CPI", "AR"},
	{"BOJ", "JP"}, {"(JP)", "JP"}, {"Tankan survey", "JP"},
	{"Machinery orders", "JP"}, {"JP CPI", "JP"},
	{"BI interest rate decision", "ID"}, {"(ID)", "ID"}, {"ID CPI", "ID"},
	{"MAS", "SG"}, {"(SG)", "SG"}, {"Non-oil exports", "SG"}, {"SG CPI", "SG"},
	{"SAMA", "SA"}, {"(SA)", "SA"}, {"Crude oil production", "SA"},
	{"Fiscal balance", "SA"}, {"Budget announcements", "SA"}, {"SA CPI", "SA"},
	{"CBUAE", "AE"}, {"(AE)", "AE"}, {"Sovereign fund activity", "AE"}, {"AE CPI", "AE"},
	{"CBR", "RU"}, {"(RU)", "RU"}, {"Crude oil/natural gas output", "RU"}, {"RU CPI", "RU"},
	{"RBNZ", "NZ"}, {"(NZ)", "NZ"}, {"ANZ business confidence", "NZ"},
	{"Dairy auction results", "NZ"}, {"Consumer confidence (NZ)", "NZ"}, {"NZ CPI", "NZ"},
}

// DetectCountry returns the country code implied by the first keyword
// found in description, or "" when no keyword matches.
func DetectCountry(description string) string {
	for _, kw := range countryKeywords {
		if strings.Contains(description, kw.Keyword) {
			return kw.Code
		}
	}
	return ""
}
