package fieldmap

import "github.com/clearform/sf86gen/pkg/field"

// Section 9 splits across two subforms: the main status radio and the
// born-to-US-parents block live in the shared Sections7-9[0] subform while
// subsections 9.2-9.4 live in a subform whose name contains escaped dots,
// Section9\.1-9\.4[0]. The escaped dots are part of the AcroForm name and
// must survive verbatim. Widget indices follow the per-field audit of all
// 78 citizenship fields in the reference inventory; TextField11 partitions
// as naturalized 0-7/15-16, non-US 8-14, derived 17-25.
const section9SubsectionsSubform = `Section9\.1-9\.4[0]`

func citizenshipTable() *Table {
	return &Table{
		Section: 9,
		Key:     "section9",
		Title:   "Citizenship",
		Groups: []Group{
			{
				Key:      "status",
				Entries:  1,
				Subforms: []string{"Sections7-9[0]"},
				Fields: []Binding{
					{Field: "citizenshipStatus", Widget: "RadioButtonList", Index: 1, Kind: field.KindRadio},
				},
			},
			{
				Key:      "bornToUSParents",
				Entries:  1,
				Subforms: []string{"Sections7-9[0]"},
				Fields: []Binding{
					{Field: "documentType", Widget: "RadioButtonList", Index: 3, Kind: field.KindRadio},
					{Field: "otherExplanation", Widget: "TextField11", Index: 3, Kind: field.KindText},
					{Field: "documentNumber", Widget: "TextField11", Index: 4, Kind: field.KindText},
					{Field: "documentIssueDate", Widget: "From_Datefield_Name_2", Index: 1, Kind: field.KindDate},
					{Field: "isIssueDateEstimated", Widget: "#field", Index: 25, Kind: field.KindCheckbox},
					{Field: "issueCity", Widget: "TextField11", Index: 5, Kind: field.KindText},
					{Field: "issueState", Widget: "School6_State", Index: 0, Kind: field.KindState},
					{Field: "issueCountry", Widget: "DropDownList12", Index: 0, Kind: field.KindCountry},
					{Field: "documentFirstName", Widget: "TextField11", Index: 8, Kind: field.KindText},
					{Field: "documentMiddleName", Widget: "TextField11", Index: 6, Kind: field.KindText},
					{Field: "documentLastName", Widget: "TextField11", Index: 7, Kind: field.KindText},
					{Field: "documentSuffix", Widget: "suffix", Index: 1, Kind: field.KindDropdown},
					{Field: "wasBornOnMilitaryInstallation", Widget: "RadioButtonList", Index: 2, Kind: field.KindRadio},
					{Field: "militaryBaseName", Widget: "TextField11", Index: 18, Kind: field.KindText},
					{Field: "certificateNumber", Widget: "TextField11", Index: 12, Kind: field.KindText},
					{Field: "certificateIssueDate", Widget: "From_Datefield_Name_2", Index: 2, Kind: field.KindDate},
					{Field: "isCertificateDateEstimated", Widget: "#field", Index: 28, Kind: field.KindCheckbox},
					{Field: "certificateFirstName", Widget: "TextField11", Index: 11, Kind: field.KindText},
					{Field: "certificateMiddleName", Widget: "TextField11", Index: 9, Kind: field.KindText},
					{Field: "certificateLastName", Widget: "TextField11", Index: 10, Kind: field.KindText},
					{Field: "certificateSuffix", Widget: "suffix", Index: 2, Kind: field.KindDropdown},
				},
			},
			{
				Key:      "naturalized",
				Entries:  1,
				Subforms: []string{section9SubsectionsSubform},
				Fields: []Binding{
					{Field: "certificateNumber", Widget: "TextField11", Index: 6, Kind: field.KindText},
					{Field: "certificateFirstName", Widget: "TextField11", Index: 3, Kind: field.KindText},
					{Field: "certificateMiddleName", Widget: "TextField11", Index: 1, Kind: field.KindText},
					{Field: "certificateLastName", Widget: "TextField11", Index: 2, Kind: field.KindText},
					{Field: "certificateSuffix", Widget: "suffix", Index: 0, Kind: field.KindDropdown},
					{Field: "courtStreet", Widget: "TextField11", Index: 4, Kind: field.KindText},
					{Field: "courtCity", Widget: "TextField11", Index: 0, Kind: field.KindText},
					{Field: "courtState", Widget: "School6_State", Index: 0, Kind: field.KindState},
					{Field: "courtZip", Widget: "TextField11", Index: 5, Kind: field.KindText},
					{Field: "courtName", Widget: "TextField11", Index: 15, Kind: field.KindText},
					{Field: "certificateIssueDate", Widget: "From_Datefield_Name_2", Index: 0, Kind: field.KindDate},
					{Field: "isCertificateDateEstimated", Widget: "#field", Index: 10, Kind: field.KindCheckbox},
					{Field: "otherExplanation", Widget: "TextField11", Index: 7, Kind: field.KindText},
					{Field: "entryDate", Widget: "From_Datefield_Name_2", Index: 4, Kind: field.KindDate},
					{Field: "isEntryDateEstimated", Widget: "#field", Index: 32, Kind: field.KindCheckbox},
					{Field: "entryCity", Widget: "TextField11", Index: 16, Kind: field.KindText},
					{Field: "entryState", Widget: "School6_State", Index: 1, Kind: field.KindState},
					{Field: "priorCitizenship", Widget: "DropDownList15", Index: 0, Kind: field.KindCountry},
					{Field: "priorCitizenship2", Widget: "DropDownList15", Index: 1, Kind: field.KindCountry},
					{Field: "priorCitizenship3", Widget: "DropDownList15", Index: 2, Kind: field.KindCountry},
					{Field: "priorCitizenship4", Widget: "DropDownList15", Index: 3, Kind: field.KindCountry},
					{Field: "hasAlienRegistration", Widget: "RadioButtonList", Index: 1, Kind: field.KindRadio},
				},
			},
			{
				Key:      "derived",
				Entries:  1,
				Subforms: []string{section9SubsectionsSubform},
				Fields: []Binding{
					{Field: "alienRegistrationNumber", Widget: "TextField11", Index: 17, Kind: field.KindText},
					{Field: "permanentResidentCardNumber", Widget: "TextField11", Index: 18, Kind: field.KindText},
					{Field: "certificateOfCitizenshipNumber", Widget: "TextField11", Index: 19, Kind: field.KindText},
					{Field: "documentFirstName", Widget: "TextField11", Index: 20, Kind: field.KindText},
					{Field: "documentMiddleName", Widget: "TextField11", Index: 21, Kind: field.KindText},
					{Field: "documentLastName", Widget: "TextField11", Index: 22, Kind: field.KindText},
					{Field: "documentSuffix", Widget: "suffix", Index: 2, Kind: field.KindDropdown},
					{Field: "otherExplanation", Widget: "TextField11", Index: 23, Kind: field.KindText},
					{Field: "documentIssueDate", Widget: "From_Datefield_Name_2", Index: 5, Kind: field.KindDate},
					{Field: "isDocumentIssueDateEstimated", Widget: "#field", Index: 50, Kind: field.KindCheckbox},
					{Field: "isBasisEstimated", Widget: "#field", Index: 51, Kind: field.KindCheckbox},
					{Field: "isDateEstimated", Widget: "#field", Index: 53, Kind: field.KindCheckbox},
					{Field: "additionalFirstName", Widget: "TextField11", Index: 24, Kind: field.KindText},
					{Field: "additionalExplanation", Widget: "TextField11", Index: 25, Kind: field.KindText},
					{Field: "otherProvideExplanation", Widget: "#field", Index: 27, Kind: field.KindCheckbox},
					{Field: "basisOfNaturalization", Widget: "#field", Index: 28, Kind: field.KindCheckbox},
				},
			},
			{
				Key:      "nonUSCitizen",
				Entries:  1,
				Subforms: []string{section9SubsectionsSubform},
				Fields: []Binding{
					{Field: "residenceStatus", Widget: "TextField11", Index: 8, Kind: field.KindText},
					{Field: "entryDate", Widget: "From_Datefield_Name_2", Index: 1, Kind: field.KindDate},
					{Field: "isEntryDateEstimated", Widget: "#field", Index: 15, Kind: field.KindCheckbox},
					{Field: "alienRegistrationNumber", Widget: "TextField11", Index: 9, Kind: field.KindText},
					{Field: "documentIssueDate", Widget: "From_Datefield_Name_2", Index: 2, Kind: field.KindDate},
					{Field: "isDocumentIssueDateEstimated", Widget: "#field", Index: 18, Kind: field.KindCheckbox},
					{Field: "documentExpirationDate", Widget: "From_Datefield_Name_2", Index: 3, Kind: field.KindDate},
					{Field: "isDocumentExpirationEstimated", Widget: "#field", Index: 26, Kind: field.KindCheckbox},
					{Field: "documentFirstName", Widget: "TextField11", Index: 12, Kind: field.KindText},
					{Field: "documentMiddleName", Widget: "TextField11", Index: 10, Kind: field.KindText},
					{Field: "documentLastName", Widget: "TextField11", Index: 11, Kind: field.KindText},
					{Field: "documentSuffix", Widget: "suffix", Index: 1, Kind: field.KindDropdown},
					{Field: "documentNumber", Widget: "TextField11", Index: 13, Kind: field.KindText},
					{Field: "hasAlienRegistration", Widget: "RadioButtonList", Index: 0, Kind: field.KindRadio},
					{Field: "explanation", Widget: "TextField11", Index: 14, Kind: field.KindText},
					{Field: "additionalDocumentExpirationDate", Widget: "From_Datefield_Name_2", Index: 6, Kind: field.KindDate},
					{Field: "isAdditionalDocumentExpirationEstimated", Widget: "#field", Index: 55, Kind: field.KindCheckbox},
					{Field: "entryState", Widget: "School6_State", Index: 2, Kind: field.KindState},
				},
			},
		},
	}
}
