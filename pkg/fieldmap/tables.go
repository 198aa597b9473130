package fieldmap

// DefaultTables returns the built-in mapping tables. Coverage is the
// identity block (sections 1-3), citizenship (9), residence history (11),
// employment (13), and people who know you (16); the remaining sections are
// classified by the sectionizer but carry no logical bindings yet.
func DefaultTables() []*Table {
	return []*Table{
		fullNameTable(),
		dateOfBirthTable(),
		placeOfBirthTable(),
		citizenshipTable(),
		residenceTable(),
		employmentTable(),
		peopleTable(),
	}
}

// DefaultResolver builds a resolver over DefaultTables.
func DefaultResolver() (*Resolver, error) {
	return NewResolver(DefaultTables()...)
}
