package entities

// Location hierarchy levels, from widest to narrowest.
const (
	LevelCountry       = "country"
	LevelRegion        = "region"
	LevelCity          = "city"
	LevelNeighbourhood = "neighbourhood"
)

// LocationParams selects a position in the hierarchy. Parameters are
// meaningful only in strict order: a city without a region, or a region
// without a country, is ignored below the shallowest missing ancestor.
type LocationParams struct {
	OrgKey  string `json:"org_key"`
	Country string `json:"country,omitempty"`
	Region  string `json:"region,omitempty"`
	City    string `json:"city,omitempty"`
}

// LocationOption is one selectable value at a hierarchy level.
type LocationOption struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// LocationResponse enumerates the next level to choose under the supplied
// parent chain. An unknown parent yields the next level with no options,
// never an error.
type LocationResponse struct {
	Level   string           `json:"level"`
	Parent  string           `json:"parent,omitempty"`
	Options []LocationOption `json:"options"`
}

// LocationHierarchy is the precomputed country → region → city →
// neighbourhood tree a location provider hands the resolver. Counts are
// active-listing counts at every level, neighbourhoods included.
type LocationHierarchy struct {
	Countries map[string]*CountryNode `json:"countries"`
}

// CountryNode holds one country's listing count and its regions.
type CountryNode struct {
	Count   int                    `json:"count"`
	Regions map[string]*RegionNode `json:"regions"`
}

// RegionNode holds one region's listing count and its cities.
type RegionNode struct {
	Count  int                  `json:"count"`
	Cities map[string]*CityNode `json:"cities"`
}

// CityNode holds one city's listing count and its neighbourhood counts,
// keyed by neighbourhood name.
type CityNode struct {
	Count          int            `json:"count"`
	Neighbourhoods map[string]int `json:"neighbourhoods"`
}
