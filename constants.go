package lpsim

// Physical constants used throughout the simulation. All values are SI.
const (
	// G is the universal gravitational constant in m^3 kg^-1 s^-2.
	G = 6.67430e-11
	// AU is one astronomical unit in meters.
	AU = 1.495978707e11
	// Hours is the number of seconds in an hour.
	Hours = 60 * 60
	// Years is the number of seconds in a Julian year.
	Years = 365.25 * 24 * Hours
	// SatMass is the mass of the satellite in kilograms.
	// It must remain negligible compared to the star and planet masses.
	SatMass = 1.0
)

// Reference masses in kilograms.
const (
	SunMass     = 1.98847e30
	EarthMass   = 5.9722e24
	MoonMass    = 7.34767309e22
	JupiterMass = 1.89813e27
)

// Reference distances in astronomical units.
const (
	SunEarthDist   = 0.9954
	SunJupiterDist = 4.953
	EarthMoonDist  = 0.002617
)

// Constants maps the names accepted in preset files and front-end input
// fields to their values. Masses are in kilograms and distances in AU.
var Constants = map[string]float64{
	"G":                G,
	"AU":               AU,
	"years":            Years,
	"hours":            Hours,
	"sun_mass":         SunMass,
	"earth_mass":       EarthMass,
	"moon_mass":        MoonMass,
	"jupiter_mass":     JupiterMass,
	"sun_earth_dist":   SunEarthDist,
	"sun_jupiter_dist": SunJupiterDist,
	"earth_moon_dist":  EarthMoonDist,
}
