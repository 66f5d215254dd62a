package models

// UserType classifies accounts. It is profile data only; the API applies the
// same capabilities to every authenticated user.
type UserType string

const (
	UserTypeChild  UserType = "child"
	UserTypeParent UserType = "parent"
	UserTypeAdmin  UserType = "admin"
)

// UserStatus is the lifecycle state of an account.
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
	UserStatusPending  UserStatus = "pending"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// AsdLevel is the autism spectrum support level selected in parental settings.
type AsdLevel string

const (
	AsdLevelLow    AsdLevel = "low"
	AsdLevelMedium AsdLevel = "medium"
	AsdLevelHigh   AsdLevel = "high"
	AsdLevelNone   AsdLevel = "noAsd"
)

// DayOfWeek uses the three-letter names the mobile client sends.
type DayOfWeek string

const (
	Mon DayOfWeek = "Mon"
	Tue DayOfWeek = "Tue"
	Wed DayOfWeek = "Wed"
	Thu DayOfWeek = "Thu"
	Fri DayOfWeek = "Fri"
	Sat DayOfWeek = "Sat"
	Sun DayOfWeek = "Sun"
)

// DayOrder maps days to their position for sorting downtime schedules.
var DayOrder = map[DayOfWeek]int{
	Mon: 0, Tue: 1, Wed: 2, Thu: 3, Fri: 4, Sat: 5, Sun: 6,
}

// ValidDay reports whether d is one of the seven known day names.
func ValidDay(d DayOfWeek) bool {
	_, ok := DayOrder[d]
	return ok
}

type GridLayout string

const (
	GridLayoutSimple   GridLayout = "simple"
	GridLayoutStandard GridLayout = "standard"
	GridLayoutDense    GridLayout = "dense"
)

type TextSize string

const (
	TextSizeSmall  TextSize = "small"
	TextSizeMedium TextSize = "medium"
	TextSizeLarge  TextSize = "large"
)

type ContrastMode string

const (
	ContrastDefault   ContrastMode = "default"
	ContrastHighLight ContrastMode = "high-contrast-light"
	ContrastHighDark  ContrastMode = "high-contrast-dark"
)

type SelectionMode string

const (
	SelectionDrag      SelectionMode = "drag"
	SelectionLongClick SelectionMode = "longClick"
)
