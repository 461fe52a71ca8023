package schema

// Enum dictionaries used by HandlerEnum FieldSpecs, both in the global
// dictionary and in per-class override tables. Keys are the raw integer
// value observed on the wire; values are the display strings a caller sees
// in the decoded property map.

var olRepeats = map[int64]string{
	8202: "Daily",
	8203: "Weekly",
	8204: "Monthly",
	8205: "Yearly",
}

var olRecurrenceEndType = map[int64]string{
	8225: "EndOnDate",
	8226: "EndAfterCount",
	8227: "NoEndDate",
}

var olRecurrenceType = map[int64]string{
	0: "Daily",
	1: "Weekly",
	2: "Monthly",
	3: "MonthNth",
	5: "Yearly",
	6: "YearNth",
}

var olBusyStatus = map[int64]string{
	0: "Busy",
	1: "Free",
	2: "Tentative",
	3: "OutOfOffice",
}

var response = map[int64]string{
	0: "None",
	1: "Accepted",
	2: "Tentative",
}

var olRecipientType = map[int64]string{
	0: "Required",
	1: "Optional",
	2: "Resource",
}

var olSearchType = map[int64]string{
	1: "Mail",
	2: "Contact",
	4: "Task",
	5: "Note",
}

var olFolderClass = map[int64]string{
	0: "Mail",
	1: "Contact",
	2: "Event",
	4: "Note",
	5: "Task",
	7: "Group",
}

var olSensitivity = map[int64]string{
	0: "Public",
	1: "Personal",
	2: "Private",
	3: "Confidential",
}

var olPriority = map[int64]string{
	1: "High",
	2: "HighOverride",
	3: "Normal",
	4: "LowOverride",
	5: "Low",
}

var olAddressPart = map[int64]string{
	2: "Street",
	3: "City",
	4: "State",
	5: "Zip",
	6: "Country",
}

var olTimeUnit = map[int64]string{
	1: "Minutes",
	2: "Hours",
	3: "Days",
}

var olDayOfWeek = map[int64]string{
	1: "SU",
	2: "MO",
	3: "TU",
	4: "WE",
	5: "TH",
	6: "FR",
	7: "SA",
}

var olOrganizerType = map[int64]string{
	0:   "Other",
	128: "CalendarOwner",
}

var olAction = map[int64]string{
	2:  "Reply",
	3:  "Forward",
	11: "ReplyAll",
}

var olUserType = map[int64]string{
	1: "DistributionList",
	2: "User",
	4: "AttendeeMe",
	8: "AttendeeUnknown",
}

var olFlagStatus = map[int64]string{
	1: "Flagged",
	2: "Completed",
}

var olAttendeeType = map[int64]string{
	0: "User",
	2: "ContactGroup",
}

var locale = map[int64]string{
	1033: "en-US",
}
