/*
Copyright (C) 2018 the GCTP-Go authors.
This file is part of GCTP-Go.

GCTP-Go is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

GCTP-Go is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with GCTP-Go.  If not, see <http://www.gnu.org/licenses/>.
*/

package gctp

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// MessageType distinguishes informational messages from error messages
// emitted through the diagnostic message sink.
type MessageType int

const (
	// InfoMessage is an advisory message such as a parameter summary.
	InfoMessage MessageType = iota
	// ErrorMessage describes a failure in more detail than the returned
	// error value.
	ErrorMessage
)

// MessageFunc receives diagnostic messages from the engine. Messages are
// advisory and have no effect on transformation results.
type MessageFunc func(messageType MessageType, message string)

// messageCallback is the currently installed sink. The default writes
// through logrus.
var messageCallback MessageFunc = func(messageType MessageType, message string) {
	if messageType == ErrorMessage {
		logrus.StandardLogger().Error(message)
	} else {
		logrus.StandardLogger().Info(message)
	}
}

// SetMessageCallback installs a caller-supplied sink for diagnostic
// messages. Passing nil restores no-op behavior.
func SetMessageCallback(callback MessageFunc) {
	if callback == nil {
		callback = func(MessageType, string) {}
	}
	messageCallback = callback
}

func printInfo(format string, args ...interface{}) {
	messageCallback(InfoMessage, fmt.Sprintf(format, args...))
}

func printError(format string, args ...interface{}) {
	messageCallback(ErrorMessage, fmt.Sprintf(format, args...))
}

// The report helpers below print parameter summaries for the projection
// modules in a common format.

func reportTitle(projName string) {
	printInfo("%s PROJECTION PARAMETERS:", projName)
}

func reportRadius(radius float64) {
	printInfo("   Radius of Sphere:     %f meters", radius)
}

func reportRadius2(major, minor float64) {
	printInfo("   Semi-Major Axis of Ellipsoid:     %f meters", major)
	printInfo("   Semi-Minor Axis of Ellipsoid:     %f meters", minor)
}

func reportCenterLon(a float64) {
	printInfo("   Longitude of Center:     %f degrees", a*r2d)
}

func reportCenterLonMer(a float64) {
	printInfo("   Longitude of Central Meridian:     %f degrees", a*r2d)
}

func reportCenterLat(a float64) {
	printInfo("   Latitude  of Center:     %f degrees", a*r2d)
}

func reportOrigin(a float64) {
	printInfo("   Latitude of Origin:     %f degrees", a*r2d)
}

func reportStandardParallels(a, b float64) {
	printInfo("   1st Standard Parallel:     %f degrees", a*r2d)
	printInfo("   2nd Standard Parallel:     %f degrees", b*r2d)
}

func reportStandardParallel(a float64) {
	printInfo("   Standard Parallel:     %f degrees", a*r2d)
}

func reportFalseOffsets(easting, northing float64) {
	printInfo("   False Easting:      %f meters", easting)
	printInfo("   False Northing:     %f meters", northing)
}

func reportValue(value float64, label string) {
	printInfo("   %s %f", label, value)
}

func reportIntValue(value int, label string) {
	printInfo("   %s %d", label, value)
}
