package system_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/orbitsim/internal/nbody"
	"github.com/san-kum/orbitsim/internal/orbit"
	"github.com/san-kum/orbitsim/internal/system"
	"github.com/san-kum/orbitsim/internal/vec"
)

var _ = Describe("Build", func() {
	var (
		star   system.Row
		planet system.Row
		moon   system.Row
	)

	BeforeEach(func() {
		star = system.Row{Name: "Star", Mass: 2e30, Radius: 7e8}
		planet = system.Row{Name: "Planet", Parent: "Star", Mass: 6e24, Radius: 6.4e6,
			Elements: orbit.Elements{SemiMajorAxis: 1.5e11, MeanAnomaly: 1.0}}
		moon = system.Row{Name: "Moon", Parent: "Planet", Mass: 7e22, Radius: 1.7e6,
			Elements: orbit.Elements{SemiMajorAxis: 3.8e8, Eccentricity: 0.05, Inclination: 5, MeanAnomaly: 2.0}}
	})

	It("places the root at the origin at rest", func() {
		bodies, err := system.Build([]system.Row{star})
		Expect(err).NotTo(HaveOccurred())
		Expect(bodies).To(HaveLen(1))
		Expect(bodies[0].Orbit.Position).To(Equal(vec.Zero))
		Expect(bodies[0].Orbit.Velocity).To(Equal(vec.Zero))
	})

	It("composes a moon's state with its parent's absolute state", func() {
		bodies, err := system.Build([]system.Row{star, planet, moon})
		Expect(err).NotTo(HaveOccurred())

		rel, err := orbit.FromKeplerian(nbody.G*planet.Mass, moon.Elements)
		Expect(err).NotTo(HaveOccurred())

		want := rel.RelativeTo(bodies[1].Orbit)
		Expect(bodies[2].Orbit).To(Equal(want))
	})

	It("uses the parent's mass for the gravitational parameter", func() {
		bodies, err := system.Build([]system.Row{star, planet})
		Expect(err).NotTo(HaveOccurred())

		speed := vec.Magnitude(bodies[1].Orbit.Velocity)
		Expect(speed).To(BeNumerically("~", math.Sqrt(nbody.G*star.Mass/planet.Elements.SemiMajorAxis), 1e-6))
	})

	It("carries name, colour, mass and radius through", func() {
		planet.Color = vec.Vec3[float32]{X: 0.1, Y: 0.2, Z: 0.3}
		bodies, err := system.Build([]system.Row{star, planet})
		Expect(err).NotTo(HaveOccurred())
		Expect(bodies[1].Name).To(Equal("Planet"))
		Expect(bodies[1].Color).To(Equal(planet.Color))
		Expect(bodies[1].Mass).To(Equal(planet.Mass))
		Expect(bodies[1].Radius).To(Equal(planet.Radius))
	})

	Context("with a malformed row", func() {
		It("rejects a child that precedes its parent", func() {
			bodies, err := system.Build([]system.Row{star, moon, planet})
			Expect(err).To(MatchError(system.ErrUnknownParent))
			Expect(bodies).To(HaveLen(1))
		})

		It("reports the failing row", func() {
			_, err := system.Build([]system.Row{star, planet, planet})
			var be *system.BodyError
			Expect(err).To(BeAssignableToTypeOf(be))
			Expect(err.(*system.BodyError).Index).To(Equal(2))
			Expect(err.(*system.BodyError).Name).To(Equal("Planet"))
		})
	})
})

var _ = Describe("Kerbolar", func() {
	It("lists every parent before its children", func() {
		seen := map[string]bool{}
		for _, row := range system.Kerbolar() {
			if row.Parent != "" {
				Expect(seen).To(HaveKey(row.Parent), row.Name)
			}
			seen[row.Name] = true
		}
	})

	It("builds a single root", func() {
		roots := 0
		for _, row := range system.Kerbolar() {
			if row.Parent == "" {
				roots++
			}
		}
		Expect(roots).To(Equal(1))
	})
})
