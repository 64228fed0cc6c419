/*
   Copyright 2025 The kcenon Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package code

// Category identifies a band of the code space. The numeric value of a
// category is the first (highest) code of its band.
type Category int32

const (
	CategorySuccess    Category = 0
	CategoryCommon     Category = -1
	CategoryThread     Category = -100
	CategoryLogger     Category = -200
	CategoryMonitoring Category = -300
	CategoryContainer  Category = -400
	CategoryDatabase   Category = -500
	CategoryNetwork    Category = -600

	// CategoryUnassigned covers -700 .. -999 and any positive value.
	// Codes in this band are rejected by Validate.
	CategoryUnassigned Category = -700

	// CategoryReserved covers -1000 and below.
	CategoryReserved Category = -1000
)

// CategoryOf returns the band that contains c.
func CategoryOf(c Code) Category {
	switch {
	case c == 0:
		return CategorySuccess
	case c > 0:
		return CategoryUnassigned
	case c > -100:
		return CategoryCommon
	case c > -200:
		return CategoryThread
	case c > -300:
		return CategoryLogger
	case c > -400:
		return CategoryMonitoring
	case c > -500:
		return CategoryContainer
	case c > -600:
		return CategoryDatabase
	case c > -700:
		return CategoryNetwork
	case c > -1000:
		return CategoryUnassigned
	default:
		return CategoryReserved
	}
}

// Range returns the inclusive bounds of the band as (high, low), e.g.
// (-100, -199) for CategoryThread. The reserved band has no lower bound and
// reports the minimum Code value.
func (c Category) Range() (high, low Code) {
	switch c {
	case CategorySuccess:
		return 0, 0
	case CategoryCommon:
		return -1, -99
	case CategoryThread, CategoryLogger, CategoryMonitoring,
		CategoryContainer, CategoryDatabase, CategoryNetwork:
		return Code(c), Code(c) - (BandWidth - 1)
	case CategoryUnassigned:
		return -700, -999
	default:
		return -1000, Code(-1 << 31)
	}
}

// Contains reports whether code falls inside the band.
func (c Category) Contains(code Code) bool {
	return CategoryOf(code) == c
}

// Base returns the first code of the band. Subsystems derive their codes as
// Base() - offset, mirroring how the registry itself is laid out.
func (c Category) Base() Code { return Code(c) }

// Name returns the display name of the band, e.g. "ThreadSystem".
func (c Category) Name() string {
	switch c {
	case CategorySuccess:
		return "Success"
	case CategoryCommon:
		return "Common"
	case CategoryThread:
		return "ThreadSystem"
	case CategoryLogger:
		return "LoggerSystem"
	case CategoryMonitoring:
		return "MonitoringSystem"
	case CategoryContainer:
		return "ContainerSystem"
	case CategoryDatabase:
		return "DatabaseSystem"
	case CategoryNetwork:
		return "NetworkSystem"
	case CategoryReserved:
		return "Reserved"
	default:
		return "Unassigned"
	}
}

// String returns the snake_case identifier of the band, e.g. "thread_system".
// It is the form used in logs, trace attributes and mapper rule files.
func (c Category) String() string {
	switch c {
	case CategorySuccess:
		return "success"
	case CategoryCommon:
		return "common"
	case CategoryThread:
		return "thread_system"
	case CategoryLogger:
		return "logger_system"
	case CategoryMonitoring:
		return "monitoring_system"
	case CategoryContainer:
		return "container_system"
	case CategoryDatabase:
		return "database_system"
	case CategoryNetwork:
		return "network_system"
	case CategoryReserved:
		return "reserved"
	default:
		return "unassigned"
	}
}

// ParseCategory resolves the snake_case identifier produced by String.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories() {
		if c.String() == s {
			return c, true
		}
	}
	return CategoryUnassigned, false
}

// Categories lists every assigned band, success first.
func Categories() []Category {
	return []Category{
		CategorySuccess,
		CategoryCommon,
		CategoryThread,
		CategoryLogger,
		CategoryMonitoring,
		CategoryContainer,
		CategoryDatabase,
		CategoryNetwork,
		CategoryReserved,
	}
}
