// This file is part of TinyCanvas.
//
// TinyCanvas is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// TinyCanvas is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with TinyCanvas.  If not, see <https://www.gnu.org/licenses/>.

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, with
// some differences. Whereas, with flag.FlagSet you call Parse() with the
// array of strings as the only argument, with modalflag you first NewArgs()
// with the array of arguments and then Parse() with no arguments:
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	_, _ = md.Parse()
//
// Once the arguments have been parsed, non-flag arguments can be retrieved
// with the RemainingArgs() or GetArg() function.
//
// Adding flags is similar to the flag package. Adding a boolean flag:
//
//	echo := md.AddBool("log", false, "echo log entries to stderr")
//
// The most important difference between the standard flag package and the
// modalflag package is the ability of the latter to handle "modes". In this
// context, a mode is a special command line argument that, when specified,
// puts the program into a different mode of operation, each with its own
// flags and expected arguments. Modes are added with the AddSubModes()
// function:
//
//	md.AddSubModes("run", "performance", "version")
//
// For simplicity, all sub-mode comparisons are case insensitive.
//
// Subsequent calls to Parse() will process flags in the normal way but will
// also check whether the first argument after the flags is one of these
// modes:
//
//	md.Parse()
//	switch md.Mode() {
//	case "RUN":
//		runMode()
//	case "PERFORMANCE":
//		perfMode()
//	}
//
// Once the mode is decided, NewMode() and a further call to Parse() will
// process the remaining arguments against that mode's own flags. Modes can
// be chained together as deep as required.
package modalflag
