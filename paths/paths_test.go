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

package paths_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/jetsetilly/acrsim/paths"
	"github.com/jetsetilly/acrsim/test"
)

func TestLocalResourcePath(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	test.DemandSuccess(t, os.Mkdir(".acrsim", 0o700))

	test.ExpectEquality(t, paths.ResourcePath("regression", "db"), filepath.Join(".acrsim", "regression", "db"))
	test.ExpectEquality(t, paths.ResourcePath("", "db"), filepath.Join(".acrsim", "db"))
	test.ExpectEquality(t, paths.ResourcePath(), ".acrsim")

	pth := paths.ResourcePath("regression", "db")
	test.ExpectSuccess(t, paths.MkResourceDir(pth))
	info, err := os.Stat(filepath.Dir(pth))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())
}

func TestUniqueFilename(t *testing.T) {
	re := regexp.MustCompile(`^regress_tape_\d{8}_\d{6}$`)
	test.ExpectSuccess(t, re.MatchString(paths.UniqueFilename("regress", "/tmp/tape.wav")))

	re = regexp.MustCompile(`^regress_\d{8}_\d{6}$`)
	test.ExpectSuccess(t, re.MatchString(paths.UniqueFilename("regress", "")))
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent to testing.T.Chdir from Go 1.24)
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}
