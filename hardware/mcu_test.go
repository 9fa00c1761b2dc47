// This file is part of ACRSim.
//
// ACRSim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ACRSim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ACRSim.  If not, see <https://www.gnu.org/licenses/>.
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***

package hardware_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/acrsim/environment"
	"github.com/jetsetilly/acrsim/hardware"
	"github.com/jetsetilly/acrsim/hardware/device"
	"github.com/jetsetilly/acrsim/hardware/registers"
	"github.com/jetsetilly/acrsim/logger"
	"github.com/jetsetilly/acrsim/test"
)

// records the order of events within each tick
type recorder struct {
	device.NopInterrupts
	regs   *registers.File
	events []string
	loops  int
}

func (r *recorder) Setup(regs *registers.File) {
	r.regs = regs

	// Timer0 counts every tick and matches on every fourth count
	regs.TCCR0B = 0x02
	regs.OCR0A = 4
	regs.TIMSK0 = registers.OCIEA

	// Timer2 in clear on compare match mode, toggling the output
	regs.TCCR2A = registers.WGM21 | registers.COM2A0
	regs.TCCR2B = 0x02
	regs.OCR2A = 1
}

func (r *recorder) Loop() {
	r.loops++
	r.events = append(r.events, "loop")
}

func (r *recorder) Timer0CompareA() {
	r.events = append(r.events, "t0a")
	r.regs.TCNT0 = 0
}

func newMCU(t *testing.T, dev device.Device) *hardware.MCU {
	t.Helper()
	env, err := environment.NewEnvironment(environment.MainSimulation, nil)
	test.DemandSuccess(t, err)
	mcu, err := hardware.NewMCU(env, dev)
	test.DemandSuccess(t, err)
	return mcu
}

func TestStepOrder(t *testing.T) {
	dev := &recorder{}
	mcu := newMCU(t, dev)
	test.ExpectEquality(t, mcu.Frequency(), uint32(1000000))

	mcu.RunUntil(4)
	test.ExpectEquality(t, mcu.Clock, uint32(4))
	test.ExpectEquality(t, dev.loops, 4)
	test.ExpectEquality(t, strings.Join(dev.events, " "), "loop loop loop t0a loop")

	// running to an earlier tick does nothing
	mcu.RunUntil(2)
	test.ExpectEquality(t, mcu.Clock, uint32(4))
}

func TestCompareOutput(t *testing.T) {
	mcu := newMCU(t, &recorder{})

	// Timer2 matches every second tick and toggles the output
	var toggles int
	prev := mcu.OutputLevel()
	for i := 0; i < 20; i++ {
		mcu.Step()
		if mcu.OutputLevel() != prev {
			toggles++
			prev = mcu.OutputLevel()
		}
	}
	test.ExpectEquality(t, toggles, 10)
}

// Timer2 with a channel B match well before the channel A match
type channelB struct {
	device.Idle
}

func (d *channelB) Setup(regs *registers.File) {
	d.Idle.Setup(regs)
	regs.TCCR2A = registers.WGM21 | registers.COM2A0
	regs.TCCR2B = 0x02
	regs.OCR2A = 200
	regs.OCR2B = 5
}

func TestCompareOutputChannelB(t *testing.T) {
	mcu := newMCU(t, &channelB{})
	prev := mcu.OutputLevel()
	for i := 0; i < 20; i++ {
		mcu.Step()
		test.ExpectEquality(t, mcu.OutputLevel(), prev)
	}
}

func TestRun(t *testing.T) {
	mcu := newMCU(t, &device.Idle{})
	err := mcu.Run(func() (bool, error) {
		return mcu.Clock < 100, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, mcu.Clock, uint32(100))
}

func TestTime(t *testing.T) {
	mcu := newMCU(t, &device.Idle{})
	mcu.RunUntil(500000)
	test.ExpectEquality(t, mcu.Time(), 0.5)
	mcu.SetTimeOffset(1.0)
	test.ExpectEquality(t, mcu.Time(), 1.5)

	s := mcu.Snapshot()
	test.ExpectEquality(t, s.Clock, uint32(500000))
	test.ExpectEquality(t, s.Time, 1.5)
}

func TestConfigurationPins(t *testing.T) {
	env, err := environment.NewEnvironment(environment.MainSimulation, nil)
	test.DemandSuccess(t, err)

	dev := &device.Idle{}
	_, err = hardware.NewMCU(env, dev)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dev.Regs.PINB&registers.LegacyMode, registers.LegacyMode)
	test.ExpectEquality(t, dev.Regs.PINC&registers.SkewComp, registers.SkewComp)

	test.ExpectSuccess(t, env.Prefs.LegacyMode.Set(true))
	test.ExpectSuccess(t, env.Prefs.SkewCompensation.Set(true))
	dev = &device.Idle{}
	_, err = hardware.NewMCU(env, dev)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dev.Regs.PINB&registers.LegacyMode, uint8(0))
	test.ExpectEquality(t, dev.Regs.PINC&registers.SkewComp, uint8(0))
}

// turns the LED on at tick 10 and off at tick 20
type blinker struct {
	device.Idle
	clk int
}

func (b *blinker) Loop() {
	b.clk++
	switch b.clk {
	case 10:
		b.Regs.PORTB |= registers.LED
	case 20:
		b.Regs.PORTB &^= registers.LED
	}
}

func TestLED(t *testing.T) {
	logger.Clear()
	mcu := newMCU(t, &blinker{})
	mcu.RunUntil(9)
	test.ExpectFailure(t, mcu.LED())
	mcu.RunUntil(10)
	test.ExpectSuccess(t, mcu.LED())
	mcu.RunUntil(30)
	test.ExpectFailure(t, mcu.LED())

	w := &test.CompareWriter{}
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "LED: on : 0.000010\nLED: off : 0.000020\n")
}

func TestMissingDevice(t *testing.T) {
	env, err := environment.NewEnvironment(environment.MainSimulation, nil)
	test.DemandSuccess(t, err)
	_, err = hardware.NewMCU(env, nil)
	test.ExpectFailure(t, err)
}
