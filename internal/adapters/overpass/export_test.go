package overpass

var ParseStatus = parseStatus
