package fieldmap

import "github.com/clearform/sf86gen/pkg/field"

// Section 16 packs its three "person who knows you" entries into the single
// Section16_3[0] subform by partitioning widget indices: TextField11 advances
// 11 per person (0-10, 11-21, 22-32), suffix advances 1, and the phone family
// p3-t68 advances 2. The foreign organization block lives in Section16_1[0].
func peopleTable() *Table {
	return &Table{
		Section: 16,
		Key:     "section16",
		Title:   "People Who Know You Well",
		Groups: []Group{
			{
				Key:      "foreignOrganization",
				Entries:  1,
				Subforms: []string{"Section16_1[0]"},
				Fields: []Binding{
					{Field: "organizationName", Widget: "TextField11", Index: 0, Kind: field.KindText},
					{Field: "positionDescription", Widget: "TextField11", Index: 1, Kind: field.KindTextarea},
					{Field: "organizationCountry", Widget: "DropDownList12", Index: 0, Kind: field.KindCountry},
					{Field: "fromDate", Widget: "From_Datefield_Name_2", Index: 0, Kind: field.KindDate},
					{Field: "toDate", Widget: "From_Datefield_Name_2", Index: 1, Kind: field.KindDate},
					{Field: "hasServed", Widget: "RadioButtonList", Index: 0, Kind: field.KindRadio},
				},
			},
			{
				Key:      "peopleWhoKnowYou",
				Entries:  3,
				Subforms: []string{"Section16_3[0]"},
				Fields: []Binding{
					{Field: "lastName", Widget: "TextField11", Index: 0, Stride: 11, Kind: field.KindText},
					{Field: "firstName", Widget: "TextField11", Index: 1, Stride: 11, Kind: field.KindText},
					{Field: "middleName", Widget: "TextField11", Index: 2, Stride: 11, Kind: field.KindText},
					{Field: "street", Widget: "TextField11", Index: 3, Stride: 11, Kind: field.KindText},
					{Field: "city", Widget: "TextField11", Index: 4, Stride: 11, Kind: field.KindText},
					{Field: "zip", Widget: "TextField11", Index: 5, Stride: 11, Kind: field.KindText},
					{Field: "email", Widget: "TextField11", Index: 6, Stride: 11, Kind: field.KindEmail},
					{Field: "relationshipOther", Widget: "TextField11", Index: 7, Stride: 11, Kind: field.KindText},
					{Field: "rankTitle", Widget: "TextField11", Index: 8, Stride: 11, Kind: field.KindText},
					{Field: "apoFpo", Widget: "TextField11", Index: 9, Stride: 11, Kind: field.KindText},
					{Field: "apoFpoZip", Widget: "TextField11", Index: 10, Stride: 11, Kind: field.KindText},
					{Field: "suffix", Widget: "suffix", Index: 0, Stride: 1, Kind: field.KindDropdown},
					{Field: "phone", Widget: "p3-t68", Index: 0, Stride: 2, Kind: field.KindPhone},
					{Field: "phoneExtension", Widget: "p3-t68", Index: 1, Stride: 2, Kind: field.KindText},
					{Field: "state", Widget: "School6_State", Index: 0, Stride: 1, Kind: field.KindState},
					// The dates-known widgets sit inside per-person #area
					// containers, so the names are spelled out per entry.
					{Field: "knownFromDate", Kind: field.KindDate, Names: []string{
						"form1[0].Section16_3[0].#area[0].From_Datefield_Name_2[0]",
						"form1[0].Section16_3[0].#area[1].From_Datefield_Name_2[2]",
						"form1[0].Section16_3[0].#area[2].From_Datefield_Name_2[4]",
					}},
					{Field: "knownToDate", Kind: field.KindDate, Names: []string{
						"form1[0].Section16_3[0].#area[0].From_Datefield_Name_2[1]",
						"form1[0].Section16_3[0].#area[1].From_Datefield_Name_2[3]",
						"form1[0].Section16_3[0].#area[2].From_Datefield_Name_2[5]",
					}},
				},
			},
		},
	}
}
