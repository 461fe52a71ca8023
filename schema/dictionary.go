package schema

import "github.com/hshore29/pyolk/pmap"

// GlobalDictionary is the process-wide (variant tag, index) -> FieldSpec
// table, populated once in canonical order by buildGlobalDictionary below. Unknown
// keys are the caller's responsibility to report (schema has no concept of
// "unmapped"; it just returns ok=false).
type GlobalDictionary struct {
	entries map[pmap.PropertyKey]FieldSpec
}

// Lookup resolves a global dictionary entry.
func (d *GlobalDictionary) Lookup(key pmap.PropertyKey) (FieldSpec, bool) {
	fs, ok := d.entries[key]
	return fs, ok
}

// Dictionary is the single global property dictionary, built at package
// init by buildGlobalDictionary.
var Dictionary = &GlobalDictionary{entries: buildGlobalDictionary()}

func key(tag, index uint16) pmap.PropertyKey { return pmap.PropertyKey{Tag: tag, Index: index} }

func raw(name string) FieldSpec { return FieldSpec{Name: name, Mode: DecodingMode{Raw: true}} }

func plain(name string) FieldSpec { return FieldSpec{Name: name, Mode: DecodingMode{Raw: false}} }

func enumField(name string, table map[int64]string) FieldSpec {
	return FieldSpec{Name: name, Mode: DecodingMode{Raw: false, Kind: HandlerEnum}, Enum: table}
}

func funcField(name string, raw bool, fn func([]byte, pmap.Value) pmap.Value) FieldSpec {
	return FieldSpec{Name: name, Mode: DecodingMode{Raw: raw, Kind: HandlerFunc}, Func: fn}
}

func collectionField(name string, sub *Schema) FieldSpec {
	return FieldSpec{Name: name, Mode: DecodingMode{Raw: false, Kind: HandlerCollection}, Sub: sub}
}

func listField(name string, sub *Schema) FieldSpec {
	return FieldSpec{Name: name, Mode: DecodingMode{Raw: false, Kind: HandlerList}, Sub: sub}
}

// buildGlobalDictionary transcribes the property dictionary. It is a
// representative, actively-used subset of the full table: every field any
// schema overlay, post-processor, or seed scenario in this repository
// references is present, plus enough of the surrounding entries (by tag) to
// show the dictionary's real shape. Entries not yet transcribed fall back
// to the decoder's "unmapped, use hex key" path, which is always safe.
func buildGlobalDictionary() map[pmap.PropertyKey]FieldSpec {
	m := map[pmap.PropertyKey]FieldSpec{}

	// 02: shorts
	m[key(0x02, 0x01)] = plain("short01")
	m[key(0x02, 0x02)] = plain("short02")
	m[key(0x02, 0x03)] = plain("short03")
	m[key(0x02, 0x04)] = plain("short04")
	m[key(0x02, 0x06)] = plain("short06")
	m[key(0x02, 0x65)] = raw("DefaultEmailRaw")
	m[key(0x02, 0x77)] = raw("DefaultIMRaw")
	m[key(0x02, 0x80)] = enumField("Sensitivity", olSensitivity)
	m[key(0x02, 0x81)] = enumField("Priority", olPriority)
	m[key(0x02, 0x82)] = plain("short82")
	m[key(0x02, 0xD4)] = raw("shortD4")
	m[key(0x02, 0x2C01)] = plain("DownloadHeadersOnly")
	m[key(0x02, 0x2D01)] = plain("SpecialFolderType")
	m[key(0x02, 0x2F01)] = enumField("CalendarWeekStart", olDayOfWeek)
	m[key(0x02, 0x3001)] = enumField("DefaultEventReminderUnit", olTimeUnit)
	m[key(0x02, 0x3101)] = enumField("LocaleIdentifier", locale)
	m[key(0x02, 0x3201)] = raw("short3201")
	m[key(0x02, 0x3301)] = plain("OnlineFolderType")

	// 03: ints, dates, enums
	m[key(0x03, 0x00)] = plain("RecordID")
	m[key(0x03, 0x01)] = plain("int01")
	m[key(0x03, 0x02)] = plain("int02")
	m[key(0x03, 0x03)] = plain("int03")
	m[key(0x03, 0x04)] = plain("int04")
	m[key(0x03, 0x05)] = plain("MessageSize")
	m[key(0x03, 0x06)] = plain("AlarmTrigger")
	m[key(0x03, 0x07)] = plain("int07")
	m[key(0x03, 0x08)] = plain("MonthDay")
	m[key(0x03, 0x09)] = plain("int09")
	m[key(0x03, 0x0A)] = plain("int0A")
	m[key(0x03, 0x0C)] = enumField("Response", response)
	m[key(0x03, 0x0D)] = plain("int0D")
	m[key(0x03, 0x0E)] = plain("int0E")
	m[key(0x03, 0x0F)] = funcField("StartDate", false, winMinutesField)
	m[key(0x03, 0x10)] = plain("int10")
	m[key(0x03, 0x13)] = funcField("StartDateUTC", false, winMinutesField)
	m[key(0x03, 0x14)] = funcField("EndDateUTC", false, winMinutesField)
	m[key(0x03, 0x15)] = plain("int15")
	m[key(0x03, 0x16)] = plain("int16")
	m[key(0x03, 0x17)] = funcField("StartDateOrganizer", false, winMinutesField)
	m[key(0x03, 0x18)] = funcField("EndDateOrganizer", false, winMinutesField)
	m[key(0x03, 0x1A)] = plain("int1A")
	m[key(0x03, 0x1D)] = enumField("BusyStatus", olBusyStatus)
	m[key(0x03, 0x1E)] = plain("RecurrenceID")
	m[key(0x03, 0x20)] = plain("AttendeeCount")
	m[key(0x03, 0x23)] = plain("int23")
	m[key(0x03, 0x24)] = plain("int24")
	m[key(0x03, 0x27)] = plain("int27")
	m[key(0x03, 0x29)] = funcField("ConversationID", true, longField)
	m[key(0x03, 0x2A)] = plain("int2A")
	m[key(0x03, 0x2B)] = plain("int2B")
	m[key(0x03, 0x35)] = plain("int35")
	m[key(0x03, 0x64)] = plain("EmailCount")
	m[key(0x03, 0x76)] = plain("IMCount")
	m[key(0x03, 0x80)] = plain("intCalendar3")
	m[key(0x03, 0x94)] = plain("int94")
	m[key(0x03, 0x9E)] = plain("int9E")
	m[key(0x03, 0xE3)] = enumField("FlagStatus", olFlagStatus)
	m[key(0x03, 0xE4)] = plain("EmailTypesRaw")
	m[key(0x03, 0xE5)] = plain("IMTypesRaw")
	m[key(0x03, 0x2C01)] = funcField("ServerType", true, typeCodeField)
	m[key(0x03, 0x2E01)] = plain("UseSignatureNewMessage")
	m[key(0x03, 0x2F01)] = plain("UseSignatureReplyForward")
	m[key(0x03, 0x3001)] = plain("int3001")
	m[key(0x03, 0x3201)] = plain("DirectoryServiceMaxResults")
	m[key(0x03, 0x3701)] = plain("int3701")
	m[key(0x03, 0x3801)] = plain("ExchangeServerPort")
	m[key(0x03, 0x3901)] = plain("int3901")
	m[key(0x03, 0x3A01)] = plain("DirectoryServicePort")
	m[key(0x03, 0x3D01)] = funcField("EncryptionAlgorithm", true, typeCodeField)
	m[key(0x03, 0x3E01)] = funcField("SigningAlgorithm", true, typeCodeField)
	m[key(0x03, 0x4801)] = funcField("x-mac-type", true, typeCodeField)
	m[key(0x03, 0x4901)] = funcField("x-mac-creator", true, typeCodeField)
	m[key(0x03, 0x4A01)] = funcField("type4A01", true, typeCodeField)
	m[key(0x03, 0x4B01)] = funcField("type4B01", true, typeCodeField)
	m[key(0x03, 0x4C01)] = plain("int4C01")
	m[key(0x03, 0x4E01)] = funcField("FolderType", true, typeCodeField)
	m[key(0x03, 0x4F01)] = enumField("FolderClass", olFolderClass)
	m[key(0x03, 0x5101)] = plain("ItemCount")
	m[key(0x03, 0x5201)] = plain("FolderID")
	m[key(0x03, 0x5401)] = plain("CalendarDefaultTimezone")
	m[key(0x03, 0x5501)] = plain("CalendarWorkDayStarts")
	m[key(0x03, 0x5601)] = plain("CalendarWorkDayEnds")
	m[key(0x03, 0x5701)] = plain("DefaultEventReminderBefore")
	m[key(0x03, 0xE803)] = raw("PictureBlockID")
	m[key(0x03, 0xE903)] = funcField("PictureFormat", true, typeCodeField)

	// 08: bstrings (opaque bytes)
	m[key(0x08, 0x03)] = raw("bytes03")
	m[key(0x08, 0x04)] = raw("bytes04")
	m[key(0x08, 0x05)] = raw("SearchData")

	// 0B: booleans
	m[key(0x0B, 0x02)] = plain("bool02")
	m[key(0x0B, 0x03)] = plain("IsRecurring")
	m[key(0x0B, 0x04)] = plain("bool04")
	m[key(0x0B, 0x05)] = plain("Completed")
	m[key(0x0B, 0x07)] = plain("AllDayEvent")
	m[key(0x0B, 0x08)] = plain("HasReminder")
	m[key(0x0B, 0x0B)] = plain("IsMyMeeting")
	m[key(0x0B, 0x10)] = plain("Overdue")
	m[key(0x0B, 0x11)] = plain("AllowNewTimeProposal")
	m[key(0x0B, 0x14)] = plain("IsCancelled")
	m[key(0x0B, 0x15)] = plain("CanJoinOnline")
	m[key(0x0B, 0x16)] = plain("DoNotForward")
	m[key(0x0B, 0x23)] = plain("HasDownloadedExternalImages")
	m[key(0x0B, 0x3D)] = plain("DidReply")
	m[key(0x0B, 0x3E)] = plain("DidForward")
	m[key(0x0B, 0x41)] = plain("HasAttachmentOrInline")
	m[key(0x0B, 0x42)] = plain("Sent")
	m[key(0x0B, 0x4A)] = plain("Sent2")
	m[key(0x0B, 0x4B)] = plain("PartiallyDownloaded")
	m[key(0x0B, 0x4D)] = plain("HasvCalendar")
	m[key(0x0B, 0x50)] = plain("SuppressAutobackfill")
	m[key(0x0B, 0x51)] = plain("MentionedMe")
	m[key(0x0B, 0x53)] = plain("HasAttachment")
	m[key(0x0B, 0xE1)] = plain("boolE1")
	m[key(0x0B, 0xE2)] = plain("JapaneseFormat")
	m[key(0x0B, 0x7D01)] = plain("Read")
	m[key(0x0B, 0x7E01)] = plain("IsLocalCategory")
	m[key(0x0B, 0x9A01)] = plain("SyncSharedMailboxes")
	m[key(0x0B, 0x3301)] = plain("SignOutgoingMessages")
	m[key(0x0B, 0x3401)] = plain("SignIncludeCertificate")
	m[key(0x0B, 0x3501)] = plain("SignSendAsClearText")
	m[key(0x0B, 0x3601)] = plain("EncryptOutgoingMessages")
	m[key(0x0B, 0x3F01)] = plain("DirectoryServiceUseSSL")
	m[key(0x0B, 0x4001)] = plain("DirectoryServiceUseExchangeCreds")
	m[key(0x0B, 0x6501)] = plain("ContainsPartialDwnldMsgs")
	m[key(0x0B, 0x6601)] = plain("WorkOffline")
	m[key(0x0B, 0x6801)] = plain("DefaultEventReminderEnabled")
	m[key(0x0B, 0x6901)] = plain("PlaySoundNewMessage")
	m[key(0x0B, 0x6A01)] = plain("PlaySoundNoNewMessages")
	m[key(0x0B, 0x6B01)] = plain("PlaySoundSentMessage")
	m[key(0x0B, 0x6C01)] = plain("PlaySoundSyncError")
	m[key(0x0B, 0x6D01)] = plain("PlaySoundWelcome")
	m[key(0x0B, 0x6E01)] = plain("PlaySoundReminder")
	m[key(0x0B, 0x7601)] = plain("NotifyBounceIconInDock")
	m[key(0x0B, 0x7801)] = plain("ReplyWithDefaultEmailAccount")
	m[key(0x0B, 0x7901)] = plain("AssignMessagesToContactCategories")
	m[key(0x0B, 0x7A01)] = plain("NotifyDisplayAlert")
	m[key(0x0B, 0x7B01)] = plain("NotifyShowPreviewInAlert")

	// 0D: collections, lists, and bespoke handlers
	m[key(0x0D, 0x02)] = collectionField("RRule", olkRecurrence)
	m[key(0x0D, 0x07)] = funcField("ReplyTo", false, replyToListField)
	m[key(0x0D, 0x09)] = collectionField("Timezone", olkTimezone)
	m[key(0x0D, 0x0B)] = listField("Attendees", olkAttendee)
	m[key(0x0D, 0x0D)] = funcField("Organizer", false, messageUserField)
	m[key(0x0D, 0x0E)] = FieldSpec{Name: "AttachmentExchangeID", Mode: DecodingMode{Raw: false, Kind: HandlerNone}}
	m[key(0x0D, 0x0F)] = collectionField("Timezone2", olkTimezone)
	m[key(0x0D, 0x82)] = FieldSpec{Name: "AttachmentBlockID", Mode: DecodingMode{Raw: false, Kind: HandlerNone}}
	m[key(0x0D, 0x03)] = funcField("From", false, messageUserListField)
	m[key(0x0D, 0x04)] = funcField("From2", false, messageUserListField)
	m[key(0x0D, 0x05)] = collectionField("MsrcBlockStruct", olkMultipartType)
	m[key(0x0D, 0x06)] = funcField("From3", false, messageUserListField)
	m[key(0x0D, 0x1E)] = funcField("To", false, messageUserListField)
	m[key(0x0D, 0x1F)] = funcField("CC", false, messageUserListField)
	m[key(0x0D, 0x20)] = funcField("BCC", false, messageUserListField)
	m[key(0x0D, 0x21)] = listField("AttachmentMetadata", olkAttachment)
	m[key(0x0D, 0x2D)] = funcField("MeetingAttendees", false, messageUserListField)
	m[key(0x0D, 0xC1)] = funcField("ActionsTaken", false, actionsTakenField)
	m[key(0x0D, 0x3301)] = collectionField("AttcBlockStruct", olkContentType)
	m[key(0x0D, 0x3401)] = funcField("BackgroundColor", true, colorField)
	m[key(0x0D, 0x3901)] = listField("AddressFormats", olkAddressFormat)
	m[key(0x0D, 0x3F01)] = listField("Standard", olkTZProp)
	m[key(0x0D, 0x4001)] = listField("Daylight", olkTZProp)

	// 14: longs
	m[key(0x14, 0x01)] = plain("long01")
	m[key(0x14, 0x61)] = raw("long61")
	m[key(0x14, 0x2C01)] = raw("AttachmentBlockID")
	m[key(0x14, 0x2D01)] = raw("SyncMapBlockID")
	m[key(0x14, 0x2E01)] = raw("FolderSyncBlockID")
	m[key(0x14, 0x3001)] = plain("AccountUID")
	m[key(0x14, 0x3201)] = plain("ExchangeAccountUID")
	m[key(0x14, 0x3301)] = plain("MailAccountUID")
	m[key(0x14, 0x3401)] = plain("LDAPAccountUID")
	m[key(0x14, 0x3601)] = plain("ExchangeAccountUID")
	m[key(0x14, 0x3701)] = plain("long3701")
	m[key(0x14, 0x3801)] = plain("MailAccountUID")
	m[key(0x14, 0x3901)] = plain("GroupID")

	// 1D: user-defined blobs (email/IM address slots)
	for i, name := range []string{
		"EmailAddress_1", "EmailAddress_2", "EmailAddress_3", "EmailAddress_4",
		"EmailAddress_5", "EmailAddress_6", "EmailAddress_7", "EmailAddress_8",
		"EmailAddress_9", "EmailAddress_10", "EmailAddress_11", "EmailAddress_12",
		"EmailAddress_13",
	} {
		m[key(0x1D, uint16(0x66+i))] = plain(name)
	}
	for i, name := range []string{
		"IMAddress_1", "IMAddress_2", "IMAddress_3", "IMAddress_4",
		"IMAddress_5", "IMAddress_6", "IMAddress_7", "IMAddress_8",
		"IMAddress_9", "IMAddress_10", "IMAddress_11", "IMAddress_12",
		"IMAddress_13",
	} {
		m[key(0x1D, uint16(0x78+i))] = plain(name)
	}

	// 1E: ANSI strings
	m[key(0x1E, 0x01)] = plain("Address")
	m[key(0x1E, 0x02)] = plain("MessageID")
	m[key(0x1E, 0x03)] = plain("string03")
	m[key(0x1E, 0x04)] = plain("string04")
	m[key(0x1E, 0x0A)] = plain("MessageClass")
	m[key(0x1E, 0x1E)] = plain("References2")
	m[key(0x1E, 0x1F)] = plain("References3")
	m[key(0x1E, 0x22)] = plain("InReplyTo")
	m[key(0x1E, 0x23)] = plain("vCalendar")
	m[key(0x1E, 0x24)] = plain("References")
	m[key(0x1E, 0x40)] = plain("MessageClass")
	m[key(0x1E, 0x67)] = plain("ExchangeID")
	m[key(0x1E, 0x68)] = plain("ExchangeChangeKey")
	m[key(0x1E, 0x2C01)] = plain("EmailAddress")
	m[key(0x1E, 0x2D01)] = plain("ExchangeServerURL")
	m[key(0x1E, 0x3A01)] = plain("EmailAddress2")
	m[key(0x1E, 0x3B01)] = plain("OutlookOABURL")
	m[key(0x1E, 0x3E01)] = plain("FileType")
	m[key(0x1E, 0x3F01)] = plain("ContentType")
	m[key(0x1E, 0x4001)] = plain("FileName")
	m[key(0x1E, 0x4201)] = plain("ExchangeGUID")
	m[key(0x1E, 0x4E01)] = plain("CalendarOwnerAccount")
	m[key(0x1E, 0x5001)] = plain("CalendarToken")

	// 1F: unicode strings
	m[key(0x1F, 0x01)] = plain("Name")
	m[key(0x1F, 0x02)] = plain("unicode02")
	m[key(0x1F, 0x04)] = plain("unicode04")
	m[key(0x1F, 0x05)] = plain("CalendarOwnerName")
	m[key(0x1F, 0x06)] = plain("HomeAddressStreet")
	m[key(0x1F, 0x07)] = plain("HomeAddressCity")
	m[key(0x1F, 0x08)] = plain("unicode08")
	m[key(0x1F, 0x09)] = plain("unicode09")
	m[key(0x1F, 0x0A)] = plain("unicode0A")
	m[key(0x1F, 0x0B)] = plain("unicode0B")
	m[key(0x1F, 0x0C)] = plain("unicode0C")
	m[key(0x1F, 0x14)] = plain("Company")
	m[key(0x1F, 0x15)] = plain("WorkTitle")
	m[key(0x1F, 0x16)] = plain("WorkAddressStreet")
	m[key(0x1F, 0x17)] = plain("WorkAddressCity")
	m[key(0x1F, 0x18)] = plain("WorkAddressState")
	m[key(0x1F, 0x19)] = plain("WorkAddressPostalCode")
	m[key(0x1F, 0x1A)] = plain("WorkAddressCountry")
	m[key(0x1F, 0x1B)] = plain("Department")
	m[key(0x1F, 0x1C)] = plain("OfficeLocation")
	m[key(0x1F, 0x1D)] = plain("PhoneWork")
	m[key(0x1F, 0x1E)] = plain("unicode1E")
	m[key(0x1F, 0x1F)] = plain("PhonePager")
	m[key(0x1F, 0x20)] = plain("WebPageWork")
	m[key(0x1F, 0x21)] = plain("PhoneMobile")
	m[key(0x1F, 0x22)] = plain("PhoneWork2")
	m[key(0x1F, 0x23)] = plain("unicode23")
	m[key(0x1F, 0x24)] = plain("Alias")
	m[key(0x1F, 0x25)] = plain("PhoneAssistant")
	m[key(0x1F, 0x27)] = plain("Preview")
	m[key(0x1F, 0x2A)] = plain("ThreadTopic")
	m[key(0x1F, 0x2F)] = plain("ThreadTopic2")
	m[key(0x1F, 0x3E)] = plain("Nickname")
	m[key(0x1F, 0x3F)] = plain("Title")
	m[key(0x1F, 0x40)] = plain("Suffix")
	m[key(0x1F, 0x4B)] = plain("Birthday")
	m[key(0x1F, 0x4C)] = plain("Anniversary")
	m[key(0x1F, 0x5A)] = plain("XML:Tasks")
	m[key(0x1F, 0x5B)] = plain("XML:Meetings")
	m[key(0x1F, 0x5C)] = plain("XML:Addresses")
	m[key(0x1F, 0x5D)] = plain("XML:Emails")
	m[key(0x1F, 0x5E)] = plain("XML:Phones")
	m[key(0x1F, 0x5F)] = plain("XML:Urls")
	m[key(0x1F, 0x60)] = plain("XML:Contacts")
	m[key(0x1F, 0x61)] = plain("ThreadTopic")
	m[key(0x1F, 0x62)] = plain("HTMLBody")
	m[key(0x1F, 0x6A)] = plain("MiddleName")
	m[key(0x1F, 0xFA)] = plain("HomeAddressFormat")
	m[key(0x1F, 0xFB)] = plain("WorkAddressFormat")
	m[key(0x1F, 0x2C01)] = plain("DisplayName")
	m[key(0x1F, 0x2E01)] = plain("UserName")
	m[key(0x1F, 0x2F01)] = plain("EmailAddressUnicode")
	m[key(0x1F, 0x3401)] = plain("FileNameUnicode")
	m[key(0x1F, 0x3501)] = plain("Name")
	m[key(0x1F, 0x3601)] = plain("Name")
	m[key(0x1F, 0x3701)] = plain("Title")
	m[key(0x1F, 0x3801)] = plain("Body")
	m[key(0x1F, 0x3901)] = plain("Name")
	m[key(0x1F, 0x3A01)] = plain("Body")
	m[key(0x1F, 0x3B01)] = plain("SoundSet")
	m[key(0x1F, 0x3C01)] = plain("DefaultCategory")
	m[key(0x1F, 0x4C01)] = plain("CalendarOwnerName")

	// 20: footer longs, including the size-array footer key
	m[key(0x20, 0x14)] = plain("foot14")
	m[key(0x20, 0x15)] = funcField("foot15", true, sizeArrayField)
	m[key(0x20, 0x16)] = plain("foot16")

	// 48: GUID
	m[key(0x48, 0x00)] = plain("UUID")

	// 4D: Mac-absolute dates
	m[key(0x4D, 0x01)] = plain("TimeSent")
	m[key(0x4D, 0x02)] = plain("TimeReceived")
	m[key(0x4D, 0x04)] = plain("ModDate")
	m[key(0x4D, 0x09)] = plain("StartDate")
	m[key(0x4D, 0x0A)] = plain("CompletedDate")
	m[key(0x4D, 0x0B)] = plain("DueDate")
	m[key(0x4D, 0x0C)] = plain("Reminder")
	m[key(0x4D, 0x0D)] = plain("Reminder2")
	m[key(0x4D, 0x10)] = plain("DownloadDate2")
	m[key(0x4D, 0x11)] = plain("DownloadDate")
	m[key(0x4D, 0x12)] = plain("CreationTime")
	m[key(0x4D, 0x15)] = plain("date15")
	m[key(0x4D, 0x16)] = plain("DismissTime")
	m[key(0x4D, 0x17)] = plain("ReplyTime")
	m[key(0x4D, 0x18)] = plain("OwnerCriticalChange")
	m[key(0x4D, 0x19)] = plain("date19")
	m[key(0x4D, 0x1A)] = plain("date1A")
	m[key(0x4D, 0x1B)] = plain("ScheduledSendDate")
	m[key(0x4D, 0x3101)] = plain("CreatedDate")
	m[key(0x4D, 0x3201)] = plain("CreatedDate")
	m[key(0x4D, 0x3301)] = plain("CreatedDate")

	// Timezone sub-property namespaces (4643/7453/4C44), passthrough tags.
	m[key(0x4643, 0x7A74)] = funcField("TZID", true, asciiField)
	m[key(0x5A54, 0x4449)] = funcField("MSTZID", true, int32Field)
	m[key(0x614E, 0x656D)] = funcField("TZLongName", true, asciiField)
	m[key(0x7453, 0x6C52)] = funcField("RRule", true, asciiField)
	m[key(0x7453, 0x6F54)] = funcField("OffsetTo", true, asciiField)
	m[key(0x7453, 0x7246)] = funcField("OffsetFrom", true, asciiField)
	m[key(0x7453, 0x7453)] = funcField("StartDate", true, winMinutesRawField)
	m[key(0x4C44, 0x6C52)] = funcField("RRule", true, asciiField)
	m[key(0x4C44, 0x6F54)] = funcField("OffsetTo", true, asciiField)
	m[key(0x4C44, 0x7246)] = funcField("OffsetFrom", true, asciiField)
	m[key(0x4C44, 0x7453)] = funcField("StartDate", true, winMinutesRawField)

	return m
}
