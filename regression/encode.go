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

	"github.com/jetsetilly/acrsim/curated"
	"github.com/jetsetilly/acrsim/database"
	"github.com/jetsetilly/acrsim/digest"
	"github.com/jetsetilly/acrsim/environment"
	"github.com/jetsetilly/acrsim/firmware/acr"
	"github.com/jetsetilly/acrsim/hardware"
	"github.com/jetsetilly/acrsim/hardware/bus"
	"github.com/jetsetilly/acrsim/paths"
	"github.com/jetsetilly/acrsim/wavwriter"
)

const encodeEntryID = "encode"

const (
	encodeFieldInput int = iota
	encodeFieldFormat
	encodeFieldOutput
	encodeFieldDigest
	numEncodeFields
)

// EncodeEntry is a regression test that generates the audio for a data file
// and compares the digest of the PCM samples.
type EncodeEntry struct {
	Input  string
	Format string

	// the WAV file saved when the entry was added
	Output string

	digest string
}

// NewEncodeEntry is the preferred method of initialisation for the
// EncodeEntry type.
func NewEncodeEntry(input string, format string) (*EncodeEntry, error) {
	if _, _, err := acr.ParseFormat(format); err != nil {
		return nil, curated.Errorf("encode entry: %v", err)
	}

	return &EncodeEntry{
		Input:  input,
		Format: format,
	}, nil
}

func deserialiseEncodeEntry(fields database.SerialisedEntry) (database.Entry, error) {
	if len(fields) != numEncodeFields {
		return nil, curated.Errorf("encode entry: wrong number of fields (%d)", len(fields))
	}

	return &EncodeEntry{
		Input:  fields[encodeFieldInput],
		Format: fields[encodeFieldFormat],
		Output: fields[encodeFieldOutput],
		digest: fields[encodeFieldDigest],
	}, nil
}

// ID implements the database.Entry interface.
func (ent EncodeEntry) ID() string {
	return encodeEntryID
}

// String implements the database.Entry interface.
func (ent EncodeEntry) String() string {
	return fmt.Sprintf("[%s] %s [%s]", encodeEntryID, filepath.Base(ent.Input), ent.Format)
}

// Serialise implements the database.Entry interface.
func (ent *EncodeEntry) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{
		ent.Input,
		ent.Format,
		ent.Output,
		ent.digest,
	}, nil
}

// CleanUp implements the database.Entry interface.
func (ent EncodeEntry) CleanUp() error {
	return removeOutput(ent.Output)
}

func (ent EncodeEntry) output() string {
	return ent.Output
}

func (ent *EncodeEntry) regress(newRegression bool, outputDir string) (bool, error) {
	data, err := os.ReadFile(ent.Input)
	if err != nil {
		return false, err
	}

	env, err := environment.NewEnvironment(environment.MainSimulation, nil)
	if err != nil {
		return false, err
	}
	_ = env.Prefs.Quiet.Set(true)

	mcu, err := hardware.NewMCU(env, acr.NewFirmware())
	if err != nil {
		return false, err
	}

	_, ctrl, err := acr.ParseFormat(ent.Format)
	if err != nil {
		return false, err
	}
	mcu.Bus.Write(bus.Control, ctrl)

	dig := digest.NewStream()

	if newRegression {
		ent.Output = filepath.Join(outputDir, fmt.Sprintf("%s.wav", paths.UniqueFilename(encodeEntryID, ent.Input)))
		if err := wavwriter.WriteFile(mcu, data, ent.Output, dig); err != nil {
			return false, err
		}
		ent.digest = dig.Hash()
		return true, nil
	}

	enc := wavwriter.NewEncoder(mcu)
	enc.SetDigest(dig)
	if err := enc.Encode(data); err != nil {
		return false, err
	}

	return dig.Hash() == ent.digest, nil
}
