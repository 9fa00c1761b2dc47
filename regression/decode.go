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

package regression

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jetsetilly/acrsim/curated"
	"github.com/jetsetilly/acrsim/database"
	"github.com/jetsetilly/acrsim/digest"
	"github.com/jetsetilly/acrsim/environment"
	"github.com/jetsetilly/acrsim/firmware/acr"
	"github.com/jetsetilly/acrsim/hardware"
	"github.com/jetsetilly/acrsim/hardware/bus"
	"github.com/jetsetilly/acrsim/paths"
	"github.com/jetsetilly/acrsim/serial"
	"github.com/jetsetilly/acrsim/soundload"
)

const decodeEntryID = "decode"

const (
	decodeFieldInput int = iota
	decodeFieldFormat
	decodeFieldLegacy
	decodeFieldSkew
	decodeFieldOutput
	decodeFieldDigest
	numDecodeFields
)

// a recording of the signal has clean edges so fewer pulses are required to
// detect the carrier
const csvMinGoodPulses = 50

// DecodeEntry is a regression test that loads a recording into the ACR
// firmware and compares the digest of the received bytes.
type DecodeEntry struct {
	Input  string
	Format string
	Legacy bool
	Skew   bool

	// the received bytes saved when the entry was added
	Output string

	digest string
}

// NewDecodeEntry is the preferred method of initialisation for the
// DecodeEntry type.
func NewDecodeEntry(input string, format string, legacy bool, skew bool) (*DecodeEntry, error) {
	if _, _, err := acr.ParseFormat(format); err != nil {
		return nil, curated.Errorf("decode entry: %v", err)
	}
	if !soundload.IsSource(input) {
		return nil, curated.Errorf("decode entry: not a recording: %s", input)
	}

	return &DecodeEntry{
		Input:  input,
		Format: format,
		Legacy: legacy,
		Skew:   skew,
	}, nil
}

func deserialiseDecodeEntry(fields database.SerialisedEntry) (database.Entry, error) {
	if len(fields) != numDecodeFields {
		return nil, curated.Errorf("decode entry: wrong number of fields (%d)", len(fields))
	}

	ent := &DecodeEntry{
		Input:  fields[decodeFieldInput],
		Format: fields[decodeFieldFormat],
		Output: fields[decodeFieldOutput],
		digest: fields[decodeFieldDigest],
	}

	var err error

	ent.Legacy, err = strconv.ParseBool(fields[decodeFieldLegacy])
	if err != nil {
		return nil, curated.Errorf("decode entry: invalid legacy field [%s]", fields[decodeFieldLegacy])
	}

	ent.Skew, err = strconv.ParseBool(fields[decodeFieldSkew])
	if err != nil {
		return nil, curated.Errorf("decode entry: invalid skew field [%s]", fields[decodeFieldSkew])
	}

	return ent, nil
}

// ID implements the database.Entry interface.
func (ent DecodeEntry) ID() string {
	return decodeEntryID
}

// String implements the database.Entry interface.
func (ent DecodeEntry) String() string {
	s := fmt.Sprintf("[%s] %s [%s]", decodeEntryID, filepath.Base(ent.Input), ent.Format)
	if ent.Legacy {
		s = fmt.Sprintf("%s legacy", s)
	}
	if ent.Skew {
		s = fmt.Sprintf("%s skew", s)
	}
	return s
}

// Serialise implements the database.Entry interface.
func (ent *DecodeEntry) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{
		ent.Input,
		ent.Format,
		strconv.FormatBool(ent.Legacy),
		strconv.FormatBool(ent.Skew),
		ent.Output,
		ent.digest,
	}, nil
}

// CleanUp implements the database.Entry interface.
func (ent DecodeEntry) CleanUp() error {
	return removeOutput(ent.Output)
}

func (ent DecodeEntry) output() string {
	return ent.Output
}

func (ent *DecodeEntry) regress(newRegression bool, outputDir string) (rok bool, rerr error) {
	env, err := environment.NewEnvironment(environment.MainSimulation, nil)
	if err != nil {
		return false, err
	}
	_ = env.Prefs.Quiet.Set(true)
	_ = env.Prefs.KeepGoing.Set(true)
	_ = env.Prefs.LegacyMode.Set(ent.Legacy)
	_ = env.Prefs.SkewCompensation.Set(ent.Skew)

	fw := acr.NewFirmware()
	if soundload.IsCSV(ent.Input) {
		fw.SetMinGoodPulses(csvMinGoodPulses)
	}

	mcu, err := hardware.NewMCU(env, fw)
	if err != nil {
		return false, err
	}

	_, ctrl, err := acr.ParseFormat(ent.Format)
	if err != nil {
		return false, err
	}
	mcu.Bus.Write(bus.Control, ctrl)

	dec := serial.NewDecoder(env, mcu, mcu.Bus)

	dig := digest.NewStream()
	dec.SetDigest(dig)

	if newRegression {
		ent.Output = filepath.Join(outputDir, fmt.Sprintf("%s.bin", paths.UniqueFilename(decodeEntryID, ent.Input)))
		f, err := os.Create(ent.Output)
		if err != nil {
			return false, err
		}
		defer func() {
			if err := f.Close(); err != nil && rerr == nil {
				rok = false
				rerr = err
			}
		}()
		dec.SetOutput(f)
	}

	err = soundload.Load(env, ent.Input, mcu, dec)

	// decoding errors are part of the result and are reflected in the digest
	if curated.Is(err, soundload.DecodeErrors) {
		err = nil
	}

	if ferr := dec.Finish(); ferr != nil && err == nil {
		err = ferr
	}
	if err != nil {
		return false, err
	}

	if newRegression {
		ent.digest = dig.Hash()
		return true, nil
	}

	return dig.Hash() == ent.digest, nil
}

func removeOutput(output string) error {
	if output == "" {
		return nil
	}
	err := os.Remove(output)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
