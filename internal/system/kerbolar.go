package system

import (
	"github.com/san-kum/orbitsim/internal/orbit"
	"github.com/san-kum/orbitsim/internal/vec"
)

// Kerbolar returns the element table of the Kerbol system: the star,
// seven planets and their moons, parents listed before children.
// Masses in kg, distances in m, angles in degrees, mean anomaly in rad.
func Kerbolar() []Row {
	return []Row{
		{Name: "Kerbol", Color: rgb(1.0, 0.9, 0.5), Mass: 1.7565459e28, Radius: 261_600_000},

		{Name: "Moho", Parent: "Kerbol", Color: rgb(0.8, 0.4, 0.0), Mass: 2.5263314e21, Radius: 250_000,
			Elements: orbit.Elements{SemiMajorAxis: 5_263_138_304, Eccentricity: 0.2, Inclination: 7, ArgumentOfPeriapsis: 15, LongitudeOfAscendingNode: 70, MeanAnomaly: 3.14}},

		{Name: "Eve", Parent: "Kerbol", Color: rgb(0.4, 0.3, 0.4), Mass: 1.2243980e23, Radius: 700_000,
			Elements: orbit.Elements{SemiMajorAxis: 9_832_684_544, Eccentricity: 0.01, Inclination: 2.1, ArgumentOfPeriapsis: 0, LongitudeOfAscendingNode: 15, MeanAnomaly: 3.14}},
		{Name: "Gilly", Parent: "Eve", Color: rgb(0.8, 0.4, 0.0), Mass: 1.2420363e17, Radius: 13_000,
			Elements: orbit.Elements{SemiMajorAxis: 31_500_000, Eccentricity: 0.55, Inclination: 12, ArgumentOfPeriapsis: 10, LongitudeOfAscendingNode: 80, MeanAnomaly: 0.9}},

		{Name: "Kerbin", Parent: "Kerbol", Color: rgb(0.0, 0.5, 0.0), Mass: 5.2915158e22, Radius: 600_000,
			Elements: orbit.Elements{SemiMajorAxis: 13_599_840_256, Eccentricity: 0, Inclination: 0, ArgumentOfPeriapsis: 0, LongitudeOfAscendingNode: 0, MeanAnomaly: 3.14}},
		{Name: "Mun", Parent: "Kerbin", Color: rgb(0.4, 0.4, 0.4), Mass: 9.7599066e20, Radius: 200_000,
			Elements: orbit.Elements{SemiMajorAxis: 12_000_000, Eccentricity: 0, Inclination: 0, ArgumentOfPeriapsis: 0, LongitudeOfAscendingNode: 0, MeanAnomaly: 1.7}},
		{Name: "Minmus", Parent: "Kerbin", Color: rgb(0.69, 0.882, 0.808), Mass: 2.6457580e19, Radius: 60_000,
			Elements: orbit.Elements{SemiMajorAxis: 47_000_000, Eccentricity: 0, Inclination: 6, ArgumentOfPeriapsis: 38, LongitudeOfAscendingNode: 78, MeanAnomaly: 0.9}},

		{Name: "Duna", Parent: "Kerbol", Color: rgb(0.7, 0.3, 0.2), Mass: 4.5154270e21, Radius: 320_000,
			Elements: orbit.Elements{SemiMajorAxis: 20_726_155_264, Eccentricity: 0.051, Inclination: 0.06, ArgumentOfPeriapsis: 0, LongitudeOfAscendingNode: 135.5, MeanAnomaly: 3.14}},
		{Name: "Ike", Parent: "Duna", Color: rgb(0.5, 0.5, 0.5), Mass: 2.7821615e20, Radius: 130_000,
			Elements: orbit.Elements{SemiMajorAxis: 3_200_000, Eccentricity: 0.03, Inclination: 0.2, ArgumentOfPeriapsis: 0, LongitudeOfAscendingNode: 0, MeanAnomaly: 1.7}},

		{Name: "Dres", Parent: "Kerbol", Color: rgb(0.6, 0.55, 0.5), Mass: 3.2190937e20, Radius: 138_000,
			Elements: orbit.Elements{SemiMajorAxis: 40_839_348_203, Eccentricity: 0.145, Inclination: 5, ArgumentOfPeriapsis: 90, LongitudeOfAscendingNode: 280, MeanAnomaly: 3.14}},

		{Name: "Jool", Parent: "Kerbol", Color: rgb(0.3, 0.6, 0.2), Mass: 4.2332127e24, Radius: 6_000_000,
			Elements: orbit.Elements{SemiMajorAxis: 68_773_560_320, Eccentricity: 0.05, Inclination: 1.304, ArgumentOfPeriapsis: 0, LongitudeOfAscendingNode: 52, MeanAnomaly: 0.1}},
		{Name: "Laythe", Parent: "Jool", Color: rgb(0.3, 0.4, 0.7), Mass: 2.9397311e22, Radius: 500_000,
			Elements: orbit.Elements{SemiMajorAxis: 27_184_000, Eccentricity: 0, Inclination: 0, ArgumentOfPeriapsis: 0, LongitudeOfAscendingNode: 0, MeanAnomaly: 3.14}},
		{Name: "Vall", Parent: "Jool", Color: rgb(0.6, 0.7, 0.8), Mass: 3.1087655e21, Radius: 300_000,
			Elements: orbit.Elements{SemiMajorAxis: 43_152_000, Eccentricity: 0, Inclination: 0, ArgumentOfPeriapsis: 0, LongitudeOfAscendingNode: 0, MeanAnomaly: 0.9}},
		{Name: "Tylo", Parent: "Jool", Color: rgb(0.8, 0.75, 0.7), Mass: 4.2332127e22, Radius: 600_000,
			Elements: orbit.Elements{SemiMajorAxis: 68_500_000, Eccentricity: 0, Inclination: 0.025, ArgumentOfPeriapsis: 0, LongitudeOfAscendingNode: 0, MeanAnomaly: 3.14}},
		{Name: "Bop", Parent: "Jool", Color: rgb(0.5, 0.4, 0.3), Mass: 3.7261090e19, Radius: 65_000,
			Elements: orbit.Elements{SemiMajorAxis: 128_500_000, Eccentricity: 0.235, Inclination: 15, ArgumentOfPeriapsis: 25, LongitudeOfAscendingNode: 10, MeanAnomaly: 0.9}},
		{Name: "Pol", Parent: "Jool", Color: rgb(0.8, 0.8, 0.5), Mass: 1.0813507e19, Radius: 44_000,
			Elements: orbit.Elements{SemiMajorAxis: 179_890_000, Eccentricity: 0.171, Inclination: 4.25, ArgumentOfPeriapsis: 15, LongitudeOfAscendingNode: 2, MeanAnomaly: 0.9}},

		{Name: "Eeloo", Parent: "Kerbol", Color: rgb(0.85, 0.85, 0.8), Mass: 1.1149224e21, Radius: 210_000,
			Elements: orbit.Elements{SemiMajorAxis: 90_118_820_000, Eccentricity: 0.26, Inclination: 6.15, ArgumentOfPeriapsis: 260, LongitudeOfAscendingNode: 50, MeanAnomaly: 3.14}},
	}
}

func rgb(r, g, b float32) vec.Vec3[float32] {
	return vec.Vec3[float32]{X: r, Y: g, Z: b}
}
