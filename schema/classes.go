package schema

import "github.com/hshore29/pyolk/pmap"

func skipSet(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

func remapTable(pairs map[pmap.PropertyKey]string) map[pmap.PropertyKey]string {
	return pairs
}

// Sub-schemas, used as the Sub field of HandlerCollection/HandlerList
// FieldSpecs in the global dictionary.

var olkRecurrence = &Schema{
	Class: "OlkRecurrence",
	Overrides: map[pmap.PropertyKey]FieldSpec{
		key(0x02, 0x01): enumField("Freq", olRepeats),
		key(0x03, 0x01): enumField("RecurrenceType", olRecurrenceType),
		key(0x03, 0x03): enumField("EndType", olRecurrenceEndType),
		key(0x03, 0x07): funcField("WeekDay", false, daysOfWeekField),
		key(0x03, 0x09): funcField("MonthDOW", false, daysOfWeekField),
		key(0x03, 0x10): funcField("Until", false, winMinutesField),
		key(0x0D, 0x01): funcField("RecurrenceDates", true, dateListField),
		key(0x0D, 0x02): funcField("ExceptionDates", true, dateListField),
	},
	Remap: remapTable(map[pmap.PropertyKey]string{
		key(0x03, 0x02): "Interval",
		key(0x03, 0x04): "Occurrences",
		key(0x03, 0x0A): "MonthNth",
	}),
	SkipNull: skipSet("MessageSize"),
	SkipDupe: skipSet("AlarmTrigger"),
}

var olkAttendee = &Schema{
	Class: "OlkAttendee",
	Overrides: map[pmap.PropertyKey]FieldSpec{
		key(0x03, 0x01): enumField("RecipientType", olRecipientType),
		key(0x03, 0x02): enumField("AttendeeType", olAttendeeType),
	},
	Remap: remapTable(map[pmap.PropertyKey]string{
		key(0x0B, 0x02): "bool02",
		key(0x0B, 0x03): "bool03",
	}),
	SkipNull: skipSet("bool02", "bool03", "bool04"),
}

var olkTimezone = &Schema{
	Class:    "OlkTimezone",
	SkipDupe: skipSet("TZLongName"),
}

var olkTZProp = &Schema{Class: "OlkTZProp"}

var olkAttachment = &Schema{
	Class: "OlkAttachment",
	Overrides: map[pmap.PropertyKey]FieldSpec{
		key(0x03, 0x4C01): funcField("int4C01", true, longField),
	},
	SkipIndb: skipSet("AttachmentBlockID"),
	SkipDupe: skipSet("FileNameUnicode"),
}

var olkContentType = &Schema{
	Class: "OlkContentType",
	Overrides: map[pmap.PropertyKey]FieldSpec{
		key(0x03, 0x04): funcField("x-mac-creator", true, typeCodeField),
		key(0x03, 0x05): funcField("x-mac-type", true, typeCodeField),
	},
	Remap: remapTable(map[pmap.PropertyKey]string{
		key(0x02, 0x01): "ContentTypeId",
		key(0x02, 0x02): "ContentSubtypeId",
		key(0x03, 0x01): "StartPos",
		key(0x03, 0x02): "HeaderEndPos",
		key(0x03, 0x03): "BodyEndPos",
		key(0x1E, 0x01): "ContentType",
		key(0x1E, 0x03): "Charset",
		key(0x1E, 0x04): "ContentID",
		key(0x1F, 0x01): "FileName",
		key(0x1F, 0x02): "FileNameUnicode",
	}),
	SkipDupe: skipSet("FileNameUnicode", "ContentTypeId", "ContentSubtypeId"),
}

var olkMultipartType = &Schema{
	Class: "OlkMultipartType",
	Overrides: map[pmap.PropertyKey]FieldSpec{
		key(0x0D, 0x01): listField("Parts", olkContentType),
	},
	Remap: remapTable(map[pmap.PropertyKey]string{
		key(0x02, 0x01): "ContentTypeId",
		key(0x02, 0x02): "ContentSubtypeId",
		key(0x03, 0x01): "StartPos",
		key(0x03, 0x02): "HeaderEndPos",
		key(0x03, 0x03): "BodyEndPos",
		key(0x1E, 0x01): "ContentType",
		key(0x1E, 0x02): "Boundary",
	}),
	SkipDupe: skipSet("ContentTypeId", "ContentSubtypeId"),
}

var olkAddressFormat = &Schema{
	Class: "OlkMainCountry",
	Overrides: map[pmap.PropertyKey]FieldSpec{
		key(0x03, 0x01): enumField("part_1", olAddressPart),
		key(0x03, 0x02): enumField("part_2", olAddressPart),
		key(0x03, 0x05): enumField("part_5", olAddressPart),
		key(0x03, 0x06): enumField("part_6", olAddressPart),
		key(0x03, 0x07): enumField("part_7", olAddressPart),
		key(0x03, 0x09): enumField("part_9", olAddressPart),
		key(0x03, 0x0A): enumField("part_A", olAddressPart),
		key(0x03, 0x0D): enumField("part_D", olAddressPart),
		key(0x03, 0x14): FieldSpec{Name: "int14", Mode: DecodingMode{Raw: false, Kind: HandlerNone}},
	},
	Remap: remapTable(map[pmap.PropertyKey]string{
		key(0x0B, 0x02): "bool02",
		key(0x0B, 0x03): "bool03",
		key(0x1F, 0x01): "country_code",
		key(0x1F, 0x02): "sep_street",
		key(0x1F, 0x05): "sep_5_6",
		key(0x1F, 0x08): "sep_9_A",
	}),
	SkipNull: skipSet("bool02", "bool03"),
}

// Entity class schemas, one per record class-id.

var olkMain = &Schema{
	Class: "OlkMain",
	Overrides: map[pmap.PropertyKey]FieldSpec{
		key(0x03, 0x03): FieldSpec{Name: "BlockID", Mode: DecodingMode{Raw: true, Kind: HandlerNone}},
	},
	SkipIndb: skipSet("BlockID"),
}

var olkFolder = &Schema{
	Class:    "OlkFolder",
	SkipNull: skipSet("bool5F01", "bool6001"),
	SkipIndb: skipSet(
		"FolderID", "AccountUID", "ExchangeID", "ExchangeChangeKey",
		"Name", "OnlineFolderType", "SyncMapBlockID", "FolderSyncBlockID",
	),
}

var olkMessage = &Schema{
	Class: "OlkMessage",
	Overrides: map[pmap.PropertyKey]FieldSpec{
		key(0x02, 0x01): funcField("HasMessageSource", false, boolFromShortField(1)),
		key(0x03, 0x04): funcField("MessageType", true, typeCodeField),
		key(0x03, 0x07): FieldSpec{Name: "MessageSourceBlockID", Mode: DecodingMode{Raw: true, Kind: HandlerNone}},
		key(0x03, 0x2B): funcField("int2B", true, longField),
		key(0x03, 0x14): FieldSpec{Name: "int14", Mode: DecodingMode{Raw: false, Kind: HandlerNone}},
	},
	Remap: remapTable(map[pmap.PropertyKey]string{
		key(0x03, 0x1A): "DownloadState",
		key(0x1E, 0x04): "Headers",
		key(0x1F, 0x01): "Subject",
		key(0x1F, 0x1E): "Body",
		key(0x1F, 0x23): "RecipientList",
		key(0x1F, 0x6A): "CardData",
	}),
	SkipDupe: skipSet(
		"From2", "From3", "ThreadTopic2", "References2", "References3",
		"Reminder2", "HasAttachmentOrInline", "Sent2", "HasvCalendar",
	),
	SkipIndb: skipSet(
		"DownloadState", "ConversationID", "FolderID", "AccountUID", "Sent",
		"ExchangeID", "ExchangeChangeKey", "TimeReceived", "Priority", "Read",
		"ThreadTopic", "MessageID", "Preview", "HasAttachment", "HasReminder",
		"PartiallyDownloaded", "RecipientList", "MentionedMe",
		"SuppressAutobackfill", "MessageSourceBlockID", "MsrcBlockStruct",
	),
}

var olkContact = &Schema{
	Class: "OlkContact",
	Remap: remapTable(map[pmap.PropertyKey]string{
		key(0x1F, 0x01): "FirstName",
		key(0x1F, 0x02): "LastName",
		key(0x1F, 0x04): "Notes",
		key(0x1F, 0x08): "HomeAddressState",
		key(0x1F, 0x09): "HomeAddressPostalCode",
		key(0x1F, 0x0A): "HomeAddressCountry",
		key(0x1F, 0x0B): "PhoneHome",
		key(0x1F, 0x0C): "PhoneHomeFax",
		key(0x1F, 0x0E): "WebPageHome",
		key(0x1F, 0x1E): "PhoneWorkFax",
		key(0x1F, 0x23): "PhonePrimary",
		key(0x1F, 0x5A): "Phone1",
		key(0x1F, 0x5B): "Phone2",
		key(0x1F, 0x5C): "Phone3",
		key(0x1F, 0x5D): "Phone4",
	}),
	SkipIndb: skipSet(
		"FolderID", "AccountUID", "ExchangeID", "ExchangeChangeKey",
		"UUID", "HasReminder", "PictureBlockID",
	),
}

var olkAccountExchange = &Schema{
	Class:    "OlkAccountExchange",
	SkipDupe: skipSet("EmailAddressUnicode", "EmailAddress2"),
	SkipIndb: skipSet("MailAccountUID", "DisplayName", "EmailAddress", "LDAPAccountUID"),
}

var olkNote = &Schema{
	Class: "OlkNote",
	SkipIndb: skipSet(
		"FolderID", "AccountUID", "ExchangeID", "ExchangeChangeKey",
		"UUID", "ModDate", "Title",
	),
}

var olkTask = &Schema{
	Class: "OlkTask",
	Remap: remapTable(map[pmap.PropertyKey]string{
		key(0x1F, 0x0B): "Body",
	}),
	SkipIndb: skipSet(
		"FolderID", "AccountUID", "ExchangeID", "ExchangeChangeKey",
		"UUID", "ModDate", "Name", "StartDate", "DueDate",
		"Completed", "HasReminder",
	),
}

var olkEvent = &Schema{
	Class: "OlkEvent",
	Remap: remapTable(map[pmap.PropertyKey]string{
		key(0x03, 0x1A): "MasterRecordID",
		key(0x1E, 0x04): "CalendarUID",
		key(0x1F, 0x01): "Body",
		key(0x1F, 0x02): "Subject",
		key(0x1F, 0x04): "Location",
		key(0x1F, 0x08): "Conference",
		key(0x1F, 0x09): "ConferenceJoinLink",
		key(0x1F, 0x0A): "ConferenceHTTPJoinLink",
		key(0x1F, 0x0B): "ConferenceCapabilities",
		key(0x1F, 0x0C): "ConferenceInBand",
	}),
	Overrides: map[pmap.PropertyKey]FieldSpec{
		key(0x03, 0x03): enumField("OrganizerIsCalendarOwner", olOrganizerType),
		key(0x03, 0x0E): funcField("NextReminderTime", false, winMinutesField),
	},
	SkipNull: skipSet(
		"DismissTime", "DownloadDate", "MessageSize",
		"Overdue", "AttachmentExchangeID", "AttachmentBlockID",
		"bool0E", "bool13", "bool18",
	),
	SkipDupe: skipSet("ReplyTo", "DownloadDate2", "Address", "Timezone2"),
	SkipIndb: skipSet(
		"MasterRecordID", "RecurrenceID", "AttendeeCount",
		"FolderID", "AccountUID", "ExchangeID", "ExchangeChangeKey",
		"UUID", "ModDate", "CalendarUID", "StartDateUTC",
		"EndDateUTC", "IsRecurring", "AllowNewTimeProposal",
	),
}

var olkCategory = &Schema{
	Class: "OlkCategory",
	SkipNull: skipSet(
		"short3201", "date3501", "date3601", "date3701", "date3801", "date3901",
	),
	SkipIndb: skipSet("AccountUID", "ExchangeGUID", "Name", "IsLocalCategory"),
}

var olkAccountMail = &Schema{
	Class:    "OlkAccountMail",
	SkipDupe: skipSet("EmailAddressUnicode"),
	SkipIndb: skipSet("ExchangeAccountUID", "EmailAddress", "DisplayName"),
}

var olkSavedSearch = &Schema{
	Class: "OlkSavedSearch",
	Overrides: map[pmap.PropertyKey]FieldSpec{
		key(0x03, 0x04): enumField("SearchType", olSearchType),
		key(0x03, 0x06): funcField("int06", true, int8Field),
	},
	Remap: remapTable(map[pmap.PropertyKey]string{
		key(0x1F, 0x01): "Name",
	}),
	SkipNull: skipSet("int02", "int06", "int09", "int0A", "long01"),
}

var olkSignature = &Schema{Class: "OlkSignature"}

// ClassToSchema resolves an entity's class-id to the schema that decodes it.
var ClassToSchema = map[int32]*Schema{
	1:  olkMain,
	2:  olkFolder,
	3:  olkMessage,
	4:  olkContact,
	5:  olkAccountExchange,
	6:  olkNote,
	7:  olkTask,
	8:  olkEvent,
	9:  olkCategory,
	14: olkAccountMail,
	19: olkSavedSearch,
	21: olkSignature,
}
