package pcarsserver

import (
	"strconv"

	"justapengu.in/simresults"
)

// The log references vehicles and tracks by content id only. The tables
// below cover the shipped game content; ids missing from them fall back to
// the numeric id as a label so no entry is ever lost over a content update.

type vehicleInfo struct {
	name  string
	class string
}

var vehicleInfoByID = map[int64]vehicleInfo{
	-2124866223: {"Ford Mustang Cobra TransAm", "Trans-Am"},
	-2039016068: {"Ford Mustang Boss 302R1", "Trans-Am"},
	-1976259917: {"Mitsubishi Lancer Evolution IX FQ360", "Road C1"},
	-1887490864: {"Audi R8 LMS Ultra", "GT3"},
	-1625974633: {"BMW Z4 GT3", "GT3"},
	-1140649500: {"McLaren 12C GT3", "GT3"},
	-902002041:  {"Mercedes-Benz A 45 AMG", "Road C1"},
	-57961709:   {"Renault Clio Cup", "Clio Cup"},
	224357679:   {"Formula Rookie", "Formula Rookie"},
	655852609:   {"Formula A", "Formula A"},
	1099859674:  {"Ginetta G40 Junior", "Ginetta Junior"},
	1356861379:  {"Caterham Seven Classic", "Road D"},
	1451679246:  {"Ariel Atom 3 Mugen", "Road B"},
	2055757212:  {"BMW 1M Coupe", "Road C1"},
}

var trackVenueByID = map[int64]string{
	-1271657611: "Brands Hatch Indy",
	-1175295553: "Oulton Park Fosters",
	-360755705:  "Zolder",
	113470001:   "Silverstone National",
	845021612:   "Mazda Raceway Laguna Seca",
	1420094676:  "Watkins Glen International",
	1639592061:  "Donington Park GP",
}

func vehicleLabel(id int64) simresults.Vehicle {
	if info, ok := vehicleInfoByID[id]; ok {
		return simresults.Vehicle{Name: info.name, Class: info.class}
	}

	if id == 0 {
		return simresults.Vehicle{}
	}

	return simresults.Vehicle{Name: strconv.FormatInt(id, 10)}
}

func trackVenue(id int64) string {
	if venue, ok := trackVenueByID[id]; ok {
		return venue
	}

	if id == 0 {
		return ""
	}

	return strconv.FormatInt(id, 10)
}
