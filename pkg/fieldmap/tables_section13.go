package fieldmap

import "github.com/clearform/sf86gen/pkg/field"

// Section 13 splits employment history across five lowercase subform
// families, one per 13A subsection, each with a "-2" continuation subform
// holding the second entry. Widget index maps below follow the extraction
// audit of the real PDF field inventory.
func employmentTable() *Table {
	return &Table{
		Section: 13,
		Key:     "section13",
		Title:   "Employment Activities",
		Groups: []Group{
			federalEmploymentGroup(),
			nonFederalEmploymentGroup(),
			selfEmploymentGroup(),
			unemploymentGroup(),
			employmentRecordIssuesGroup(),
		},
	}
}

// 13A.1 Federal employment.
func federalEmploymentGroup() Group {
	return Group{
		Key:      "federalEmployment",
		Entries:  2,
		Subforms: []string{"section13_1[0]", "section13_1-2[0]"},
		Fields: []Binding{
			{Field: "employmentType", Widget: "RadioButtonList", Index: 0, Kind: field.KindRadio},
			{Field: "hasAdditionalInfo", Widget: "RadioButtonList", Index: 1, Kind: field.KindRadio},
			{Field: "fromDate", Widget: "From_Datefield_Name_2", Index: 0, Kind: field.KindDate},
			{Field: "toDate", Widget: "From_Datefield_Name_2", Index: 1, Kind: field.KindDate},
			{Field: "supervisorName", Widget: "TextField11", Index: 0, Kind: field.KindText},
			{Field: "supervisorRank", Widget: "TextField11", Index: 1, Kind: field.KindText},
			{Field: "supervisorTitle", Widget: "TextField11", Index: 2, Kind: field.KindText},
			{Field: "supervisorAddress", Widget: "TextField11", Index: 3, Kind: field.KindText},
			{Field: "supervisorCity", Widget: "TextField11", Index: 4, Kind: field.KindText},
			{Field: "supervisorZip", Widget: "TextField11", Index: 5, Kind: field.KindText},
			{Field: "employerStreet", Widget: "TextField11", Index: 6, Kind: field.KindText},
			{Field: "employerCity", Widget: "TextField11", Index: 7, Kind: field.KindText},
			{Field: "employerZip", Widget: "TextField11", Index: 8, Kind: field.KindText},
			{Field: "dutyStreet", Widget: "TextField11", Index: 9, Kind: field.KindText},
			{Field: "dutyCity", Widget: "TextField11", Index: 10, Kind: field.KindText},
			{Field: "dutyZip", Widget: "TextField11", Index: 11, Kind: field.KindText},
			{Field: "extension", Widget: "TextField11", Index: 12, Kind: field.KindText},
			{Field: "otherExplanation", Widget: "TextField11", Index: 13, Kind: field.KindTextarea},
			{Field: "supervisorState", Widget: "School6_State", Index: 0, Kind: field.KindState},
			{Field: "employerState", Widget: "School6_State", Index: 1, Kind: field.KindState},
			{Field: "dutyState", Widget: "School6_State", Index: 2, Kind: field.KindState},
			{Field: "supervisorPhone", Widget: "p3-t68", Index: 0, Kind: field.KindPhone},
			{Field: "employerPhone", Widget: "p3-t68", Index: 1, Kind: field.KindPhone},
			{Field: "supervisorEmail", Widget: "p3-t68", Index: 2, Kind: field.KindEmail},
			{Field: "employerCountry", Widget: "DropDownList17", Index: 0, Kind: field.KindCountry},
			{Field: "supervisorCountry", Widget: "DropDownList18", Index: 0, Kind: field.KindCountry},
			{Field: "dutyCountry", Widget: "DropDownList20", Index: 0, Kind: field.KindCountry},
		},
	}
}

// 13A.2 Non-federal employment.
// section13.nonFederalEmployment.entries[0].employerName resolves to
// form1[0].section13_2[0].TextField11[0].
func nonFederalEmploymentGroup() Group {
	return Group{
		Key:      "nonFederalEmployment",
		Entries:  2,
		Subforms: []string{"section13_2[0]", "section13_2-2[0]"},
		Fields: []Binding{
			{Field: "employerName", Widget: "TextField11", Index: 0, Kind: field.KindText},
			{Field: "positionTitle", Widget: "TextField11", Index: 1, Kind: field.KindText},
			{Field: "supervisorName", Widget: "TextField11", Index: 2, Kind: field.KindText},
			{Field: "supervisorTitle", Widget: "TextField11", Index: 3, Kind: field.KindText},
			{Field: "employerStreet", Widget: "TextField11", Index: 4, Kind: field.KindText},
			{Field: "employerCity", Widget: "TextField11", Index: 5, Kind: field.KindText},
			{Field: "employerZip", Widget: "TextField11", Index: 6, Kind: field.KindText},
			{Field: "employerPhone", Widget: "TextField11", Index: 7, Kind: field.KindPhone},
			{Field: "extension", Widget: "TextField11", Index: 8, Kind: field.KindText},
			{Field: "dutyStreet", Widget: "TextField11", Index: 9, Kind: field.KindText},
			{Field: "dutyCity", Widget: "TextField11", Index: 10, Kind: field.KindText},
			{Field: "dutyZip", Widget: "TextField11", Index: 11, Kind: field.KindText},
			{Field: "additionalInfo", Widget: "TextField11", Index: 12, Kind: field.KindTextarea},
			{Field: "reasonForLeaving", Widget: "TextField11", Index: 13, Kind: field.KindTextarea},
			{Field: "employmentType", Widget: "RadioButtonList", Index: 0, Kind: field.KindRadio},
			{Field: "hasAdditionalInfo", Widget: "RadioButtonList", Index: 1, Kind: field.KindRadio},
			{Field: "isCurrentEmployment", Widget: "RadioButtonList", Index: 2, Kind: field.KindRadio},
			{Field: "fromDate", Widget: "From_Datefield_Name_2", Index: 0, Kind: field.KindDate},
			{Field: "toDate", Widget: "From_Datefield_Name_2", Index: 1, Kind: field.KindDate},
			{Field: "employerState", Widget: "School6_State", Index: 0, Kind: field.KindState},
			{Field: "dutyState", Widget: "School6_State", Index: 1, Kind: field.KindState},
			{Field: "supervisorState", Widget: "School6_State", Index: 2, Kind: field.KindState},
		},
	}
}

// 13A.3 Self-employment.
func selfEmploymentGroup() Group {
	return Group{
		Key:      "selfEmployment",
		Entries:  2,
		Subforms: []string{"section13_3[0]", "section13_3-2[0]"},
		Fields: []Binding{
			{Field: "businessName", Widget: "TextField11", Index: 0, Kind: field.KindText},
			{Field: "businessType", Widget: "TextField11", Index: 1, Kind: field.KindText},
			{Field: "businessDescription", Widget: "TextField11", Index: 2, Kind: field.KindTextarea},
			{Field: "businessStreet", Widget: "TextField11", Index: 3, Kind: field.KindText},
			{Field: "businessCity", Widget: "TextField11", Index: 4, Kind: field.KindText},
			{Field: "businessZip", Widget: "TextField11", Index: 5, Kind: field.KindText},
			{Field: "hasEmployees", Widget: "RadioButtonList", Index: 1, Kind: field.KindRadio},
			{Field: "isCurrentBusiness", Widget: "RadioButtonList", Index: 2, Kind: field.KindRadio},
			{Field: "fromDate", Widget: "From_Datefield_Name_2", Index: 0, Kind: field.KindDate},
			{Field: "toDate", Widget: "From_Datefield_Name_2", Index: 1, Kind: field.KindDate},
			{Field: "businessState", Widget: "School6_State", Index: 0, Kind: field.KindState},
			{Field: "businessCountry", Widget: "DropDownList9", Index: 0, Kind: field.KindCountry},
			// Phone and email are plain text widgets here, not the p3-t68
			// family used elsewhere.
			{Field: "businessPhone", Widget: "TextField11", Index: 6, Kind: field.KindPhone},
			{Field: "businessExtension", Widget: "TextField11", Index: 7, Kind: field.KindText},
			{Field: "businessEmail", Widget: "TextField11", Index: 8, Kind: field.KindEmail},
		},
	}
}

// 13A.4 Unemployment.
func unemploymentGroup() Group {
	return Group{
		Key:      "unemployment",
		Entries:  2,
		Subforms: []string{"section13_4[0]", "section13_4-2[0]"},
		Fields: []Binding{
			{Field: "firstName", Widget: "TextField11", Index: 0, Kind: field.KindText},
			{Field: "lastName", Widget: "TextField11", Index: 1, Kind: field.KindText},
			{Field: "referenceStreet", Widget: "TextField11", Index: 2, Kind: field.KindText},
			{Field: "referenceCity", Widget: "TextField11", Index: 3, Kind: field.KindText},
			{Field: "referenceZip", Widget: "TextField11", Index: 4, Kind: field.KindText},
			{Field: "referencePhone", Widget: "TextField11", Index: 5, Kind: field.KindPhone},
			{Field: "referenceExtension", Widget: "TextField11", Index: 6, Kind: field.KindText},
			{Field: "referenceEmail", Widget: "TextField11", Index: 7, Kind: field.KindEmail},
			{Field: "additionalInfo", Widget: "TextField11", Index: 12, Kind: field.KindTextarea},
			{Field: "hasReference", Widget: "RadioButtonList", Index: 0, Kind: field.KindRadio},
			{Field: "receivedBenefits", Widget: "RadioButtonList", Index: 1, Kind: field.KindRadio},
			{Field: "isCurrentlyUnemployed", Widget: "RadioButtonList", Index: 2, Kind: field.KindRadio},
			{Field: "fromDate", Widget: "From_Datefield_Name_2", Index: 0, Kind: field.KindDate},
			{Field: "toDate", Widget: "From_Datefield_Name_2", Index: 1, Kind: field.KindDate},
			{Field: "benefitsStartDate", Widget: "From_Datefield_Name_2", Index: 4, Kind: field.KindDate},
			{Field: "benefitsEndDate", Widget: "From_Datefield_Name_2", Index: 5, Kind: field.KindDate},
			{Field: "referenceState", Widget: "School6_State", Index: 0, Kind: field.KindState},
			{Field: "referenceCountry", Widget: "DropDownList6", Index: 0, Kind: field.KindCountry},
		},
	}
}

// 13A.5 Employment record issues. Single instance, no continuation subform.
func employmentRecordIssuesGroup() Group {
	return Group{
		Key:      "employmentRecordIssues",
		Entries:  1,
		Subforms: []string{"section13_5[0]"},
		Fields: []Binding{
			{Field: "agencyName", Widget: "TextField11", Index: 0, Kind: field.KindText},
			{Field: "agencyAddress", Widget: "TextField11", Index: 1, Kind: field.KindText},
			{Field: "clearanceLevel", Widget: "TextField11", Index: 2, Kind: field.KindText},
			{Field: "gapExplanation", Widget: "TextField11", Index: 3, Kind: field.KindTextarea},
			{Field: "classificationLevel", Widget: "TextField11", Index: 4, Kind: field.KindText},
			{Field: "agencyCity", Widget: "TextField11", Index: 5, Kind: field.KindText},
			{Field: "agencyZip", Widget: "TextField11", Index: 7, Kind: field.KindText},
			{Field: "hasFederalEmployment", Widget: "RadioButtonList", Index: 0, Kind: field.KindRadio},
			{Field: "hasGaps", Widget: "RadioButtonList", Index: 1, Kind: field.KindRadio},
			{Field: "clearanceFromDate", Widget: "From_Datefield_Name_2", Index: 0, Kind: field.KindDate},
			{Field: "clearanceToDate", Widget: "From_Datefield_Name_2", Index: 1, Kind: field.KindDate},
			{Field: "gapFromDate", Widget: "From_Datefield_Name_2", Index: 4, Kind: field.KindDate},
			{Field: "gapToDate", Widget: "From_Datefield_Name_2", Index: 5, Kind: field.KindDate},
		},
	}
}
