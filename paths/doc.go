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

// Package paths prepares paths to ACRSim resources, such as the regression
// database.
//
// The ResourcePath() function prepends the resource with the base resource
// directory. If a directory named ".acrsim" is present in the current
// directory then that is used as the base. Otherwise the "acrsim" directory
// in the user's config directory is used, as returned by os.UserConfigDir().
//
// For example, on a modern Linux system the following:
//
//	pth := paths.ResourcePath("regression", "db")
//
// will return:
//
//	/home/user/.config/acrsim/regression/db
package paths
