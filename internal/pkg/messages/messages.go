// Package messages is the localized-string catalog. Services emit message
// keys and parameters only; the rendered text never feeds back into logic.
package messages

import (
	"fmt"
	"strings"
)

type Key string

const (
	KeyAuthorization     Key = "error.authorization"
	KeyNotWorkDay        Key = "attendance.error.notWorkDay"
	KeyPunchAlreadyExist Key = "attendance.error.punchAlreadyExists"
	KeyPunchInEmpty      Key = "attendance.error.punchInEmpty"
	KeyTrainingTimeRange Key = "attendance.error.trainingTimeRange"
	KeyBlankTimeError    Key = "attendance.error.blankTime"
	KeyMaxLength         Key = "error.maxLength"
	KeyInputInvalid      Key = "error.inputInvalid"
	KeyTimeValueInvalid  Key = "attendance.error.timeValue"
	KeyUpdateNotice      Key = "attendance.notice.updated"
	KeyNoteField         Key = "attendance.field.note"
	KeyStartTimeField    Key = "attendance.field.startTime"
	KeyEndTimeField      Key = "attendance.field.endTime"
)

// Templates use {0}, {1}, ... positional placeholders.
var catalog = map[Key]string{
	KeyAuthorization:     "You are not authorized to perform this operation.",
	KeyNotWorkDay:        "The selected date is not a scheduled training day.",
	KeyPunchAlreadyExist: "Today's attendance has already been entered. Please edit it directly.",
	KeyPunchInEmpty:      "Clock-out cannot be entered because there is no clock-in.",
	KeyTrainingTimeRange: "Clock-out time must be later than clock-in time. ({0})",
	KeyBlankTimeError:    "Blank time must not exceed the time worked.",
	KeyMaxLength:         "{0} must be {1} characters or fewer.",
	KeyInputInvalid:      "{0} is incomplete. Enter both hour and minute.",
	KeyTimeValueInvalid:  "{0} is not a valid time.",
	KeyUpdateNotice:      "Attendance has been saved.",
	KeyNoteField:         "Note",
	KeyStartTimeField:    "Clock-in time",
	KeyEndTimeField:      "Clock-out time",
}

// Catalog resolves message keys to display text.
type Catalog interface {
	Get(key Key, params ...string) string
}

type catalogImpl struct{}

func NewCatalog() Catalog {
	return &catalogImpl{}
}

// Get renders the template for key, substituting {n} placeholders in order.
// Unknown keys render as the key itself so a missing entry is visible, not fatal.
func (c *catalogImpl) Get(key Key, params ...string) string {
	template, ok := catalog[key]
	if !ok {
		return string(key)
	}
	for i, p := range params {
		template = strings.ReplaceAll(template, fmt.Sprintf("{%d}", i), p)
	}
	return template
}
