package fieldmap

import "github.com/clearform/sf86gen/pkg/field"

// Sections 1 through 6 share the Sections1-6[0] subform; each section's
// widgets are addressed by literal index inside it.

func fullNameTable() *Table {
	return &Table{
		Section: 1,
		Key:     "section1",
		Title:   "Full Name",
		Groups: []Group{
			{
				Key:      "fullName",
				Entries:  1,
				Subforms: []string{"Sections1-6[0]"},
				Fields: []Binding{
					{Field: "lastName", Widget: "TextField11", Index: 0, Kind: field.KindText},
					{Field: "firstName", Widget: "TextField11", Index: 1, Kind: field.KindText},
					{Field: "middleName", Widget: "TextField11", Index: 2, Kind: field.KindText},
					{Field: "suffix", Widget: "suffix", Index: 0, Kind: field.KindDropdown},
				},
			},
		},
	}
}

func dateOfBirthTable() *Table {
	return &Table{
		Section: 2,
		Key:     "section2",
		Title:   "Date of Birth",
		Groups: []Group{
			{
				Key:      "dateOfBirth",
				Entries:  1,
				Subforms: []string{"Sections1-6[0]"},
				Fields: []Binding{
					{Field: "date", Widget: "From_Datefield_Name_2", Index: 0, Kind: field.KindDate},
					{Field: "isEstimate", Widget: "#field", Index: 18, Kind: field.KindCheckbox},
				},
			},
		},
	}
}

func placeOfBirthTable() *Table {
	return &Table{
		Section: 3,
		Key:     "section3",
		Title:   "Place of Birth",
		Groups: []Group{
			{
				Key:      "placeOfBirth",
				Entries:  1,
				Subforms: []string{"Sections1-6[0]"},
				Fields: []Binding{
					{Field: "city", Widget: "TextField11", Index: 3, Kind: field.KindText},
					{Field: "county", Widget: "TextField11", Index: 4, Kind: field.KindText},
					{Field: "state", Widget: "School6_State", Index: 0, Kind: field.KindState},
					{Field: "country", Widget: "DropDownList1", Index: 0, Kind: field.KindCountry},
				},
			},
		},
	}
}
