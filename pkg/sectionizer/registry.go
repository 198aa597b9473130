package sectionizer

// SectionInfo is the registry metadata for one SF-86 section: its number,
// the logical key used in data paths, the printed title, the page span it
// occupies in the 136 page form, and the entry capacity of its repeated
// block. MaxEntries is zero when the section has no single repeated block
// (identity sections) or when capacity varies per subsection (employment).
type SectionInfo struct {
	Number     int
	Key        string
	Title      string
	FirstPage  int
	LastPage   int
	MaxEntries int
}

// Registry lists all 30 sections in order.
func Registry() []SectionInfo {
	return registry
}

// Info returns the registry entry for a section number.
func Info(number int) (SectionInfo, bool) {
	for _, info := range registry {
		if info.Number == number {
			return info, true
		}
	}
	return SectionInfo{}, false
}

var registry = []SectionInfo{
	{Number: 1, Key: "section1", Title: "Full Name", FirstPage: 4, LastPage: 4},
	{Number: 2, Key: "section2", Title: "Date of Birth", FirstPage: 4, LastPage: 4},
	{Number: 3, Key: "section3", Title: "Place of Birth", FirstPage: 4, LastPage: 4},
	{Number: 4, Key: "section4", Title: "Social Security Number", FirstPage: 4, LastPage: 4},
	{Number: 5, Key: "section5", Title: "Other Names Used", FirstPage: 4, LastPage: 5, MaxEntries: 4},
	{Number: 6, Key: "section6", Title: "Your Identifying Information", FirstPage: 5, LastPage: 5},
	{Number: 7, Key: "section7", Title: "Your Contact Information", FirstPage: 5, LastPage: 5},
	{Number: 8, Key: "section8", Title: "U.S. Passport Information", FirstPage: 5, LastPage: 6},
	{Number: 9, Key: "section9", Title: "Citizenship", FirstPage: 6, LastPage: 7},
	{Number: 10, Key: "section10", Title: "Dual/Multiple Citizenship & Foreign Passport", FirstPage: 7, LastPage: 8, MaxEntries: 2},
	{Number: 11, Key: "section11", Title: "Where You Have Lived", FirstPage: 9, LastPage: 12, MaxEntries: 4},
	{Number: 12, Key: "section12", Title: "Where You Went to School", FirstPage: 13, LastPage: 16, MaxEntries: 4},
	{Number: 13, Key: "section13", Title: "Employment Activities", FirstPage: 17, LastPage: 33},
	{Number: 14, Key: "section14", Title: "Selective Service Record", FirstPage: 34, LastPage: 34},
	{Number: 15, Key: "section15", Title: "Military History", FirstPage: 35, LastPage: 38, MaxEntries: 2},
	{Number: 16, Key: "section16", Title: "People Who Know You Well", FirstPage: 39, LastPage: 41, MaxEntries: 3},
	{Number: 17, Key: "section17", Title: "Marital/Relationship Status", FirstPage: 42, LastPage: 47, MaxEntries: 2},
	{Number: 18, Key: "section18", Title: "Relatives", FirstPage: 48, LastPage: 65, MaxEntries: 6},
	{Number: 19, Key: "section19", Title: "Foreign Contacts", FirstPage: 66, LastPage: 71, MaxEntries: 4},
	{Number: 20, Key: "section20", Title: "Foreign Activities", FirstPage: 72, LastPage: 86},
	{Number: 21, Key: "section21", Title: "Psychological and Emotional Health", FirstPage: 87, LastPage: 94},
	{Number: 22, Key: "section22", Title: "Police Record", FirstPage: 95, LastPage: 102},
	{Number: 23, Key: "section23", Title: "Illegal Use of Drugs or Drug Activity", FirstPage: 103, LastPage: 107},
	{Number: 24, Key: "section24", Title: "Use of Alcohol", FirstPage: 108, LastPage: 110},
	{Number: 25, Key: "section25", Title: "Investigations and Clearance Record", FirstPage: 111, LastPage: 113},
	{Number: 26, Key: "section26", Title: "Financial Record", FirstPage: 114, LastPage: 125},
	{Number: 27, Key: "section27", Title: "Use of Information Technology Systems", FirstPage: 126, LastPage: 128},
	{Number: 28, Key: "section28", Title: "Involvement in Non-Criminal Court Actions", FirstPage: 129, LastPage: 130},
	{Number: 29, Key: "section29", Title: "Association Record", FirstPage: 131, LastPage: 133},
	{Number: 30, Key: "section30", Title: "Continuation Space", FirstPage: 134, LastPage: 136},
}
