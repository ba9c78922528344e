package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lintang-b-s/navbearing/pkg/geo"
	"github.com/lintang-b-s/navbearing/pkg/guidance"
	"github.com/lintang-b-s/navbearing/pkg/util"
)

var (
	fromLon  = flag.Float64("from-lon", 0, "longitude of the start point, decimal degrees")
	fromLat  = flag.Float64("from-lat", 0, "latitude of the start point, decimal degrees")
	toLon    = flag.Float64("to-lon", 0, "longitude of the end point, decimal degrees")
	toLat    = flag.Float64("to-lat", 0, "latitude of the end point, decimal degrees")
	absolute = flag.Bool("absolute", false, "print the bearing in [0, 360) instead of (-180, 180]")
	verbose  = flag.Bool("v", false, "also print final bearing and compass point")
)

func main() {
	flag.Parse()
	run(os.Stdout, geo.NewCoordinate(*fromLon, *fromLat), geo.NewCoordinate(*toLon, *toLat), *absolute, *verbose)
}

func run(out io.Writer, from, to geo.Coordinate, absolute, verbose bool) {
	bearing := geo.Bearing(from, to)
	if absolute {
		bearing = geo.AbsBearing(bearing)
	}

	if !verbose {
		fmt.Fprintln(out, bearing)
		return
	}
	fmt.Fprintf(out, "initial bearing: %v\nfinal bearing: %v\ncompass: %s\n",
		util.RoundFloat(bearing, 6), util.RoundFloat(geo.FinalBearing(from, to), 6), guidance.BearingToCompass(bearing))
}
