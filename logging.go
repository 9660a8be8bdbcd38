// logging.go
// Copyright (C) 2024 The scrabble-solver contributors

// This file wires structured logging for the defensive/diagnostic
// paths named in the error-handling design: out-of-range bonus
// queries and unknown board characters. Unknown tray characters are
// not logged here; NewTrayFromString returns them to the caller. The
// hot path (anchor enumeration, automaton transitions) never logs.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package solver

import "github.com/rs/zerolog"

// logger defaults to a no-op so the package is silent unless a
// caller opts in.
var logger zerolog.Logger = zerolog.Nop()

// SetLogger overrides the package logger, typically called once by
// the CLI front-end at startup.
func SetLogger(l zerolog.Logger) {
	logger = l
}
