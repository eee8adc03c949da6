/*
 * errors.go, part of gocg.
 *
 * Copyright 2024 Raul Mera <rmera{at}usachDOTcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 * goCG is developed at the Universidad de Santiago de Chile
 * (USACH).
 *
 */

package cg

import "fmt"

//Error is the interface for errors that all packages in this library implement.
//The Decorate method allows to add and retrieve info from the error, without
//changing its type or wrapping it around something else. The decoration slice
//should contain a list of the functions in the calling stack, plus, for each
//function, any relevant information, or nothing. If information is to be added
//to an element of the slice, it should be in this format: "FunctionName: Extra info".
type Error interface {
	Error() string
	Decorate(string) []string
}

//CError is the concrete error type for the cg package.
type CError struct {
	msg  string
	deco []string
}

func (err *CError) Error() string { return err.msg }

//Decorate adds the given string to the decoration slice, if not empty, and
//returns the resulting slice.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}

//NoBoxError reports an operation that requires a periodic box, invoked on a
//Structure that lacks one. It is recoverable: the operation was skipped and
//the Structure was left unchanged.
type NoBoxError struct {
	deco []string
}

func (err *NoBoxError) Error() string { return "cg: No periodic box set" }

func (err *NoBoxError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

//IntegrityError reports a violation of the structural invariants, such as a
//bond referencing a particle that does not exist. It is fatal: every algorithm
//in the library assumes these invariants, so processing must stop.
type IntegrityError struct {
	msg  string
	deco []string
}

func (err *IntegrityError) Error() string { return err.msg }

func (err *IntegrityError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

func newIntegrityError(format string, args ...interface{}) *IntegrityError {
	return &IntegrityError{msg: fmt.Sprintf(format, args...)}
}
