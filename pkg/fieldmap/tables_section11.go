package fieldmap

import "github.com/clearform/sf86gen/pkg/field"

// Section 11 is the cleanest subform-per-entry layout in the PDF: residence
// entry N lives wholly inside its own subform and widget indices restart at
// zero for every entry.
func residenceTable() *Table {
	return &Table{
		Section: 11,
		Key:     "section11",
		Title:   "Where You Have Lived",
		Groups: []Group{
			{
				Key:     "residences",
				Entries: 4,
				Subforms: []string{
					"Section11[0]",
					"Section11-2[0]",
					"Section11-3[0]",
					"Section11-4[0]",
				},
				Fields: []Binding{
					{Field: "street", Widget: "TextField11", Index: 0, Kind: field.KindText},
					{Field: "city", Widget: "TextField11", Index: 1, Kind: field.KindText},
					{Field: "zip", Widget: "TextField11", Index: 2, Kind: field.KindText},
					{Field: "county", Widget: "TextField11", Index: 3, Kind: field.KindText},
					{Field: "verifierLastName", Widget: "TextField11", Index: 4, Kind: field.KindText},
					{Field: "verifierFirstName", Widget: "TextField11", Index: 5, Kind: field.KindText},
					{Field: "verifierStreet", Widget: "TextField11", Index: 6, Kind: field.KindText},
					{Field: "verifierCity", Widget: "TextField11", Index: 7, Kind: field.KindText},
					{Field: "verifierZip", Widget: "TextField11", Index: 8, Kind: field.KindText},
					{Field: "state", Widget: "School6_State", Index: 0, Kind: field.KindState},
					{Field: "verifierState", Widget: "School6_State", Index: 1, Kind: field.KindState},
					{Field: "country", Widget: "DropDownList4", Index: 0, Kind: field.KindCountry},
					{Field: "fromDate", Widget: "From_Datefield_Name_2", Index: 0, Kind: field.KindDate},
					{Field: "toDate", Widget: "From_Datefield_Name_2", Index: 1, Kind: field.KindDate},
					{Field: "isCurrent", Widget: "RadioButtonList", Index: 0, Kind: field.KindRadio},
					{Field: "residenceType", Widget: "RadioButtonList", Index: 1, Kind: field.KindRadio},
					{Field: "verifierPhone", Widget: "p3-t68", Index: 0, Kind: field.KindPhone},
					{Field: "verifierEmail", Widget: "p3-t68", Index: 1, Kind: field.KindEmail},
				},
			},
		},
	}
}
