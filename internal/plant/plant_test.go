package plant_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nkato/regulab/internal/plant"
)

var _ = Describe("ThermalRoom", func() {
	var room *plant.ThermalRoom

	BeforeEach(func() {
		room = plant.NewThermalRoom()
		room.SetTemp(15.0)
		room.OutsideTemp = 15.0
		room.Conductivity = 5.0
		room.ThermalMass = 50.0
		room.AmbientLoss = 0.0
	})

	It("integrates heater power over dt", func() {
		room.Step(10.0, 1.0)
		Expect(room.Current()).To(Equal(15.2))
	})

	It("loses heat through walls toward the outside temperature", func() {
		room.OutsideTemp = 5.0
		room.Step(0, 1.0)
		// dT = (0 - 5*(15-5) - 0)/50 = -1
		Expect(room.Current()).To(Equal(14.0))
	})

	It("applies the constant ambient loss", func() {
		room.AmbientLoss = 25.0
		room.Step(0, 1.0)
		Expect(room.Current()).To(Equal(14.5))
	})

	It("never saturates temperature", func() {
		room.Step(1e6, 1.0)
		Expect(room.Current()).To(BeNumerically(">", 1000))
	})

	It("restores the construction-time temperature", func() {
		room.Step(100.0, 1.0)
		room.Restore()
		Expect(room.Current()).To(Equal(15.0))
	})
})

var _ = Describe("PitchStabilizer", func() {
	var craft *plant.PitchStabilizer

	BeforeEach(func() {
		craft = plant.NewPitchStabilizer()
		craft.SetAttitude(0, 0)
		craft.Inertia = 100.0
		craft.NaturalMoment = 0
		craft.Effectiveness = 10.0
		craft.Disturbance = 0
	})

	It("behaves as a double integrator", func() {
		// a = 10*1/100 = 0.1; rate = 0.1; pitch = 0.1
		craft.Step(1.0, 1.0)
		Expect(craft.Rate).To(Equal(0.1))
		Expect(craft.Current()).To(Equal(0.1))

		// rate keeps growing, pitch accelerates
		craft.Step(1.0, 1.0)
		Expect(craft.Rate).To(Equal(0.2))
		Expect(craft.Current()).To(BeNumerically("~", 0.3, 1e-12))
	})

	It("drifts under natural moment with no deflection", func() {
		craft.NaturalMoment = -5.0
		craft.Step(0, 1.0)
		Expect(craft.Rate).To(Equal(-0.05))
		Expect(craft.Current()).To(Equal(-0.05))
	})

	It("feels disturbance torque", func() {
		craft.Disturbance = 20.0
		craft.Step(0, 0.5)
		Expect(craft.Rate).To(Equal(0.1))
	})
})

var _ = Describe("Positioner", func() {
	var rotor *plant.Positioner

	BeforeEach(func() {
		rotor = plant.NewPositioner()
		rotor.SetMotion(0, 0)
		rotor.Inertia = 20.0
	})

	It("accumulates velocity and position without dt scaling", func() {
		rotor.Step(40.0, 0.01)
		Expect(rotor.Velocity).To(Equal(2.0))
		Expect(rotor.Current()).To(Equal(2.0))

		// same signal with a wildly different dt moves identically
		other := plant.NewPositioner()
		other.SetMotion(0, 0)
		other.Inertia = 20.0
		other.Step(40.0, 10.0)
		Expect(other.Current()).To(Equal(rotor.Current()))
	})

	It("keeps coasting at constant velocity", func() {
		rotor.Step(40.0, 1.0)
		rotor.Step(0, 1.0)
		Expect(rotor.Current()).To(Equal(4.0))
	})
})

var _ = Describe("WrapDegrees", func() {
	It("wraps 190 to -170", func() {
		Expect(plant.WrapDegrees(190)).To(Equal(-170.0))
	})

	It("wraps -190 to 170", func() {
		Expect(plant.WrapDegrees(-190)).To(Equal(170.0))
	})

	It("maps the boundary into [-180, 180)", func() {
		Expect(plant.WrapDegrees(180)).To(Equal(-180.0))
		Expect(plant.WrapDegrees(-180)).To(Equal(-180.0))
		Expect(plant.WrapDegrees(540)).To(Equal(-180.0))
	})

	It("leaves small errors untouched", func() {
		Expect(plant.WrapDegrees(15)).To(Equal(15.0))
		Expect(plant.WrapDegrees(-15)).To(Equal(-15.0))
	})
})
