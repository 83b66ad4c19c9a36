package domain

import "strings"

// Gazetteer is a static place-name → coordinate lookup table. Lookups are
// case-insensitive. It is read-only after construction.
type Gazetteer map[string]Geo

// DefaultGazetteer returns the built-in table of major Indian coastal cities.
// Social media trends referencing areas outside this table produce no signal.
func DefaultGazetteer() Gazetteer {
	return Gazetteer{
		"mumbai":             {Lat: 19.0760, Lon: 72.8777},
		"chennai":            {Lat: 13.0827, Lon: 80.2707},
		"kolkata":            {Lat: 22.5726, Lon: 88.3639},
		"kochi":              {Lat: 9.9312, Lon: 76.2673},
		"visakhapatnam":      {Lat: 17.6868, Lon: 83.2185},
		"thiruvananthapuram": {Lat: 8.5241, Lon: 76.9366},
		"mangalore":          {Lat: 12.9141, Lon: 74.8560},
		"puri":               {Lat: 19.8135, Lon: 85.8312},
		"goa":                {Lat: 15.2993, Lon: 74.1240},
		"surat":              {Lat: 21.1702, Lon: 72.8311},
		"puducherry":         {Lat: 11.9416, Lon: 79.8083},
		"bhubaneswar":        {Lat: 20.2961, Lon: 85.8245},
		"paradip":            {Lat: 20.3086, Lon: 86.6236},
		"kandla":             {Lat: 23.0225, Lon: 70.2167},
		"tuticorin":          {Lat: 8.7642, Lon: 78.1348},
		"calicut":            {Lat: 11.2588, Lon: 75.7804},
		"thane":              {Lat: 19.2183, Lon: 72.9781},
		"navi mumbai":        {Lat: 19.0330, Lon: 73.0297},
		"cuddalore":          {Lat: 11.7480, Lon: 79.7714},
	}
}

// Resolve looks up a place name, ignoring case and surrounding whitespace.
func (g Gazetteer) Resolve(name string) (Geo, bool) {
	coords, ok := g[strings.ToLower(strings.TrimSpace(name))]
	return coords, ok
}
