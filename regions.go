package housing

// UnknownRegionCode marks a region that has no entry in the code registry.
// Upstream region naming drifts occasionally; an unknown region must degrade
// to this marker, never fail the pipeline.
const UnknownRegionCode = "N/A"

// regionCodes maps region display names to their USPS codes: the 50 US
// states, the District of Columbia, and the 5 inhabited US territories.
// Built once at initialization, read-only thereafter.
var regionCodes = map[string]string{
	"Alabama":                  "AL",
	"Alaska":                   "AK",
	"Arizona":                  "AZ",
	"Arkansas":                 "AR",
	"California":               "CA",
	"Colorado":                 "CO",
	"Connecticut":              "CT",
	"Delaware":                 "DE",
	"District of Columbia":     "DC",
	"Florida":                  "FL",
	"Georgia":                  "GA",
	"Hawaii":                   "HI",
	"Idaho":                    "ID",
	"Illinois":                 "IL",
	"Indiana":                  "IN",
	"Iowa":                     "IA",
	"Kansas":                   "KS",
	"Kentucky":                 "KY",
	"Louisiana":                "LA",
	"Maine":                    "ME",
	"Maryland":                 "MD",
	"Massachusetts":            "MA",
	"Michigan":                 "MI",
	"Minnesota":                "MN",
	"Mississippi":              "MS",
	"Missouri":                 "MO",
	"Montana":                  "MT",
	"Nebraska":                 "NE",
	"Nevada":                   "NV",
	"New Hampshire":            "NH",
	"New Jersey":               "NJ",
	"New Mexico":               "NM",
	"New York":                 "NY",
	"North Carolina":           "NC",
	"North Dakota":             "ND",
	"Ohio":                     "OH",
	"Oklahoma":                 "OK",
	"Oregon":                   "OR",
	"Pennsylvania":             "PA",
	"Rhode Island":             "RI",
	"South Carolina":           "SC",
	"South Dakota":             "SD",
	"Tennessee":                "TN",
	"Texas":                    "TX",
	"Utah":                     "UT",
	"Vermont":                  "VT",
	"Virginia":                 "VA",
	"Washington":               "WA",
	"West Virginia":            "WV",
	"Wisconsin":                "WI",
	"Wyoming":                  "WY",
	"American Samoa":           "AS",
	"Guam":                     "GU",
	"Northern Mariana Islands": "MP",
	"Puerto Rico":              "PR",
	"U.S. Virgin Islands":      "VI",
}

// RegionCode returns the short code for a region display name,
// and whether the region is known to the registry.
func RegionCode(region string) (string, bool) {
	code, ok := regionCodes[region]
	return code, ok
}

// AddRegionCodes returns a new table with the Code column filled in for
// every row: the registry code, or UnknownRegionCode when the region name
// has no registry entry. Every input row is preserved.
func AddRegionCodes(t *Table) *Table {
	out := t.Rows()
	for i := range out {
		code, ok := RegionCode(out[i].Region)
		if !ok {
			code = UnknownRegionCode
		}
		out[i].Code = code
	}
	return &Table{records: out}
}
